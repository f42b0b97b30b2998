package service

import (
	"fmt"

	"github.com/MKhiriev/go-user-signup/internal/config"
	"github.com/MKhiriev/go-user-signup/internal/crypto"
	"github.com/MKhiriev/go-user-signup/internal/logger"
	"github.com/MKhiriev/go-user-signup/internal/store"
	"github.com/MKhiriev/go-user-signup/models"
)

type Services struct {
	UserService    UserService
	TokenService   TokenService
	AppInfoService AppInfoService
}

// NewServices wires the services on top of storages. UserService is wrapped
// with input validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	tokenService, err := NewTokenService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	hasher := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)
	userService := NewUserValidationService().Wrap(
		NewUserService(storages.UserRepository, hasher, tokenService, logger),
	)

	return &Services{
		UserService:    userService,
		TokenService:   tokenService,
		AppInfoService: appInfoService,
	}, nil
}
