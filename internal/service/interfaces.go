// Package service holds the business logic of user registration.
//
// TokenService mints and verifies session tokens, UserService orchestrates
// the registration flow on top of the store and the password hasher, and
// AppInfoService exposes build metadata. Decorators implementing
// UserServiceWrapper add cross-cutting behaviour such as input validation.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=UserServiceWrapper

import (
	"context"

	"github.com/MKhiriev/go-user-signup/models"
)

// UserService is the registration orchestrator.
type UserService interface {
	// SaveUser registers a new user and returns it with its session token.
	//
	// It fails with ErrDuplicateEmail when the email is taken (nothing is
	// written in that case) and with ErrSavingUser on any other fault.
	SaveUser(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// GetProfile returns the stored user identified by userID or ErrUserNotFound.
	GetProfile(ctx context.Context, userID string) (models.User, error)
}

// TokenService mints and verifies signed session tokens.
type TokenService interface {
	// GenerateToken returns a compact signed token whose subject is userID
	// and whose "email" claim is email.
	GenerateToken(userID, email string) (string, error)

	// ValidateToken reports whether token is well-formed, correctly signed
	// and not expired. It never fails.
	ValidateToken(token string) bool

	// GetUserIDFromToken returns the subject of a verified token, or an
	// error wrapping ErrInvalidToken.
	GetUserIDFromToken(token string) (string, error)
}

// AppInfoService exposes metadata about the running build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}
