package http

import (
	"github.com/MKhiriev/go-user-signup/internal/logger"
	"github.com/MKhiriev/go-user-signup/internal/service"
)

// Handler serves the signup REST surface. Each route reaches only the
// service it needs: registration and profile go to users, the bearer gate
// to tokens and the version endpoint to appInfo.
type Handler struct {
	users   service.UserService
	tokens  service.TokenService
	appInfo service.AppInfoService

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().
		Bool("users", services.UserService != nil).
		Bool("tokens", services.TokenService != nil).
		Bool("app_info", services.AppInfoService != nil).
		Msg("signup http handler created")

	return &Handler{
		users:   services.UserService,
		tokens:  services.TokenService,
		appInfo: services.AppInfoService,
		logger:  logger,
	}
}
