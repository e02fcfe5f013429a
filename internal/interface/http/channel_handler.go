package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
	"github.com/devconnect/devconnect-api/internal/domain/repository"
	"github.com/devconnect/devconnect-api/internal/interface/middleware"
	"github.com/devconnect/devconnect-api/pkg/response"
)

type ChannelHandler struct {
	Repo   repository.ChannelRepository
	Logger *logrus.Logger
}

func NewChannelHandler(repo repository.ChannelRepository, logger *logrus.Logger) *ChannelHandler {
	return &ChannelHandler{Repo: repo, Logger: logger}
}

type createChannelRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updateChannelRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// List GET /api/channels
func (h *ChannelHandler) List(c *gin.Context) {
	channels, err := h.Repo.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).WithField("request_id", c.GetString(middleware.CtxRequestIDKey)).Error("list channels failed")
		response.Message(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, channels)
}

// Get GET /api/channels/:id
func (h *ChannelHandler) Get(c *gin.Context) {
	ch, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Message(c, http.StatusNotFound, "Channel not found")
			return
		}
		h.Logger.WithError(err).WithField("request_id", c.GetString(middleware.CtxRequestIDKey)).Error("get channel failed")
		response.Message(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, ch)
}

// Create POST /api/channels — the creator becomes the sole member and admin.
func (h *ChannelHandler) Create(c *gin.Context) {
	var req createChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		response.Message(c, http.StatusBadRequest, "Channel name is required")
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	ch := &entity.Channel{
		Name:        req.Name,
		Description: req.Description,
		Members:     []string{uid},
		Admins:      []string{uid},
	}
	if err := h.Repo.Create(c.Request.Context(), ch); err != nil {
		h.Logger.WithError(err).WithField("request_id", c.GetString(middleware.CtxRequestIDKey)).Error("create channel failed")
		response.Message(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusCreated, ch)
}

// Update PUT /api/channels/:id — admin gate runs first; the not-found branch
// here is defensive in case the route is ever wired without it.
func (h *ChannelHandler) Update(c *gin.Context) {
	ch, ok := middleware.ChannelFromCtx(c)
	if !ok {
		var err error
		ch, err = h.Repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Message(c, http.StatusNotFound, "Channel not found")
				return
			}
			h.Logger.WithError(err).WithField("request_id", c.GetString(middleware.CtxRequestIDKey)).Error("get channel failed")
			response.Message(c, http.StatusInternalServerError, "Server Error")
			return
		}
	}

	var req updateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		response.Message(c, http.StatusBadRequest, "Channel name is required")
		return
	}

	ch.Name = req.Name
	if req.Description != nil {
		ch.Description = *req.Description
	}
	if err := h.Repo.Update(c.Request.Context(), ch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Message(c, http.StatusNotFound, "Channel not found")
			return
		}
		h.Logger.WithError(err).WithField("request_id", c.GetString(middleware.CtxRequestIDKey)).Error("update channel failed")
		response.Message(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, ch)
}

// Delete DELETE /api/channels/:id — admin gate runs first.
func (h *ChannelHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if ch, ok := middleware.ChannelFromCtx(c); ok {
		id = ch.ID
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Message(c, http.StatusNotFound, "Channel not found")
			return
		}
		h.Logger.WithError(err).WithField("request_id", c.GetString(middleware.CtxRequestIDKey)).Error("delete channel failed")
		response.Message(c, http.StatusInternalServerError, "Server Error")
		return
	}
	response.Message(c, http.StatusOK, "Channel deleted successfully")
}
