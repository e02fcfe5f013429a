package router

import (
	"github.com/devconnect/devconnect-api/internal/application"
	"github.com/devconnect/devconnect-api/internal/container"
	pginfra "github.com/devconnect/devconnect-api/internal/infrastructure/postgres"
	handlers "github.com/devconnect/devconnect-api/internal/interface/http"
	"github.com/devconnect/devconnect-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup after the container singletons
// are set.
func InitModules(r *Registry) {
	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	channelRepo := pginfra.NewChannelRepository(container.GetPGPool())
	logger := container.GetLogger()

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userRepo, logger), container.GetJWT()))
	r.Add(modules.NewChannelModule(handlers.NewChannelHandler(channelRepo, logger), channelRepo, container.GetJWT()))
}
