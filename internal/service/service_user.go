package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-signup/internal/crypto"
	"github.com/MKhiriev/go-user-signup/internal/logger"
	"github.com/MKhiriev/go-user-signup/internal/store"
	"github.com/MKhiriev/go-user-signup/models"
)

// userService turns a registration request into a stored, token-bearing user.
type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	tokenService   TokenService

	now func() time.Time

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokenService TokenService, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenService:   tokenService,
		now:            time.Now,
		logger:         logger,
	}
}

// SaveUser checks the email, hashes the password, stores the user, mints a
// token for the stored id and stores the user again with the token attached.
//
// The cause of a processing fault is logged and replaced by ErrSavingUser.
func (s *userService) SaveUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)
	log.Info().Str("email", request.Email).Msg("saving user with email")

	exists, err := s.userRepository.ExistsByEmail(ctx, request.Email)
	if err != nil {
		return models.User{}, s.failed(log, err, "checking email existence failed")
	}
	if exists {
		log.Warn().Str("email", request.Email).Msg("email already registered")
		return models.User{}, ErrDuplicateEmail
	}

	hashedPassword, err := s.hasher.Hash(request.Password)
	if err != nil {
		return models.User{}, s.failed(log, err, "password hashing failed")
	}

	phones := make([]models.Phone, 0, len(request.Phones))
	for _, p := range request.Phones {
		phones = append(phones, p.ToPhone())
	}

	user := models.User{
		Name:      request.Name,
		Email:     request.Email,
		Password:  hashedPassword,
		Phones:    phones,
		LastLogin: s.now(),
	}

	saved, err := s.userRepository.Save(ctx, user)
	if err != nil {
		return models.User{}, s.failed(log, err, "first user save failed")
	}

	token, err := s.tokenService.GenerateToken(saved.ID, saved.Email)
	if err != nil {
		return models.User{}, s.failed(log, err, "token generation failed")
	}
	saved.Token = token

	saved, err = s.userRepository.Save(ctx, saved)
	if err != nil {
		return models.User{}, s.failed(log, err, "saving user token failed")
	}

	log.Info().Str("id", saved.ID).Msg("user registered")
	return saved, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	user, err := s.userRepository.FindByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// failed logs cause and maps it onto the error returned to the caller.
// A unique violation caught by the store means another request registered
// the same email after the existence check.
func (s *userService) failed(log *logger.Logger, cause error, msg string) error {
	if errors.Is(cause, store.ErrEmailAlreadyExists) {
		log.Warn().Err(cause).Msg("email registered concurrently")
		return ErrDuplicateEmail
	}

	log.Err(cause).Msg(msg)
	return ErrSavingUser
}
