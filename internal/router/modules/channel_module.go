package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/devconnect/devconnect-api/internal/domain/repository"
	handlers "github.com/devconnect/devconnect-api/internal/interface/http"
	"github.com/devconnect/devconnect-api/internal/interface/middleware"
	"github.com/devconnect/devconnect-api/pkg/helpers"
)

// ChannelModule wires the channel routes. Every route sits behind the bearer
// gate; mutation of an existing channel additionally requires the admin gate.
type ChannelModule struct {
	Handler *handlers.ChannelHandler
	Repo    repository.ChannelRepository
	JWT     *helpers.JWTManager
}

func NewChannelModule(h *handlers.ChannelHandler, repo repository.ChannelRepository, jwt *helpers.JWTManager) *ChannelModule {
	return &ChannelModule{Handler: h, Repo: repo, JWT: jwt}
}

func (m *ChannelModule) Register(rg *gin.RouterGroup) {
	admin := middleware.ChannelAdmin(m.Repo)

	channels := rg.Group("/channels")
	channels.Use(middleware.Auth(m.JWT))
	{
		channels.GET("", m.Handler.List)
		channels.POST("", m.Handler.Create)
		channels.GET("/:id", m.Handler.Get)
		channels.PUT("/:id", admin, m.Handler.Update)
		channels.DELETE("/:id", admin, m.Handler.Delete)
	}
}
