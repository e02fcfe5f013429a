package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
	"github.com/devconnect/devconnect-api/internal/domain/repository"
	"github.com/devconnect/devconnect-api/pkg/response"
)

// CtxChannelKey is the gin context key carrying the channel fetched by
// ChannelAdmin, so handlers behind the gate skip a second lookup.
const CtxChannelKey = "channel"

// ChannelAdmin loads the channel addressed by the :id path parameter and
// rejects the request unless the authenticated user is one of its admins.
// Must run after Auth.
func ChannelAdmin(repo repository.ChannelRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ch, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.AbortMessage(c, http.StatusNotFound, "Channel not found")
				return
			}
			response.AbortMessage(c, http.StatusInternalServerError, "Server Error")
			return
		}
		if !ch.IsAdmin(c.GetString(CtxUserIDKey)) {
			response.AbortMessage(c, http.StatusForbidden, "You are not an admin of this channel")
			return
		}
		c.Set(CtxChannelKey, ch)
		c.Next()
	}
}

// ChannelFromCtx returns the channel attached by ChannelAdmin, if any.
func ChannelFromCtx(c *gin.Context) (*entity.Channel, bool) {
	v, ok := c.Get(CtxChannelKey)
	if !ok {
		return nil, false
	}
	ch, ok := v.(*entity.Channel)
	return ch, ok
}
