package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-signup/internal/config"
	"github.com/MKhiriev/go-user-signup/internal/logger"
	"github.com/MKhiriev/go-user-signup/internal/utils"
)

type idGenerator interface {
	Generate() string
}

// tokenService signs HS256 JWTs carrying the user id as subject and the
// email as a custom claim.
type tokenService struct {
	signKey       string
	tokenDuration time.Duration

	ids idGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService builds a TokenService from the token settings in cfg.
// The sign key must hold at least config.MinTokenSignKeyLength bytes.
func NewTokenService(cfg config.App, logger *logger.Logger) (TokenService, error) {
	if len(cfg.TokenSignKey) < config.MinTokenSignKeyLength {
		return nil, ErrWeakSignKey
	}

	return &tokenService{
		signKey:       cfg.TokenSignKey,
		tokenDuration: cfg.TokenDuration,
		ids:           utils.NewUUIDGenerator(),
		now:           time.Now,
		logger:        logger,
	}, nil
}

func (s *tokenService) GenerateToken(userID, email string) (string, error) {
	if userID == "" {
		return "", ErrInvalidTokenParams
	}

	token, err := utils.GenerateJWTToken(userID, email, s.ids.Generate(), s.now(), s.tokenDuration, s.signKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidTokenParams, err)
	}

	return token, nil
}

func (s *tokenService) ValidateToken(token string) bool {
	if _, err := utils.ParseJWTToken(token, s.signKey, s.now); err != nil {
		s.logger.Debug().Err(err).Msg("token validation failed")
		return false
	}

	return true
}

func (s *tokenService) GetUserIDFromToken(token string) (string, error) {
	claims, err := utils.ParseJWTToken(token, s.signKey, s.now)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return claims.UserID(), nil
}
