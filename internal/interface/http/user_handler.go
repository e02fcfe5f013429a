package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devconnect/devconnect-api/internal/domain/repository"
	"github.com/devconnect/devconnect-api/internal/interface/middleware"
	"github.com/devconnect/devconnect-api/pkg/response"
	"github.com/devconnect/devconnect-api/pkg/validation"
)

type UserHandler struct {
	Repo   repository.UserRepository
	Logger *logrus.Logger
}

func NewUserHandler(repo repository.UserRepository, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Repo: repo, Logger: logger}
}

type updateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// List GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Repo.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).WithField("request_id", c.GetString(middleware.CtxRequestIDKey)).Error("list users failed")
		response.Message(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get GET /api/users/:id — users may only read their own record.
func (h *UserHandler) Get(c *gin.Context) {
	id := c.Param("id")
	u, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Message(c, http.StatusNotFound, "User not found")
			return
		}
		h.Logger.WithError(err).WithField("request_id", c.GetString(middleware.CtxRequestIDKey)).Error("get user failed")
		response.Message(c, http.StatusInternalServerError, "Server Error")
		return
	}
	if c.GetString(middleware.CtxUserIDKey) != id {
		response.Message(c, http.StatusForbidden, "Forbidden")
		return
	}
	c.JSON(http.StatusOK, u)
}

// Update PUT /api/users/:id — name and/or email, self only.
func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")
	u, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Message(c, http.StatusNotFound, "User not found")
			return
		}
		h.Logger.WithError(err).WithField("request_id", c.GetString(middleware.CtxRequestIDKey)).Error("get user failed")
		response.Message(c, http.StatusInternalServerError, "Server Error")
		return
	}
	if c.GetString(middleware.CtxUserIDKey) != id {
		response.Message(c, http.StatusForbidden, "Forbidden")
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" && req.Email == "" {
		response.Message(c, http.StatusBadRequest, "Name or email is required")
		return
	}
	if req.Email != "" && !validation.IsEmail(req.Email) {
		response.Message(c, http.StatusBadRequest, "Invalid email format")
		return
	}

	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Email != "" {
		u.Email = req.Email
	}
	if err := h.Repo.Update(c.Request.Context(), u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Message(c, http.StatusConflict, "User already exists")
			return
		}
		h.Logger.WithError(err).WithField("request_id", c.GetString(middleware.CtxRequestIDKey)).Error("update user failed")
		response.Message(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, u)
}
