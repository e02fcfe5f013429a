package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/devconnect/devconnect-api/internal/interface/http"
	"github.com/devconnect/devconnect-api/internal/interface/middleware"
	"github.com/devconnect/devconnect-api/pkg/helpers"
)

// UserModule wires the user routes, all behind the bearer gate.
// GET /api/users, GET /api/users/:id, PUT /api/users/:id
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.Auth(m.JWT))
	{
		users.GET("", m.Handler.List)
		users.GET("/:id", m.Handler.Get)
		users.PUT("/:id", m.Handler.Update)
	}
}
