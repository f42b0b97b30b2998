package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-signup/internal/validators"
	"github.com/MKhiriev/go-user-signup/models"
)

// UserValidationService rejects malformed registration requests before they
// reach the wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewRegisterRequestValidator(),
	}
}

// SaveUser returns an error wrapping *validators.ValidationError when request
// breaks any field rule.
func (v *UserValidationService) SaveUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("error during registration request validation: %w", err)
	}

	return v.inner.SaveUser(ctx, request)
}

func (v *UserValidationService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, ErrUserNotFound
	}

	return v.inner.GetProfile(ctx, userID)
}

func (v *UserValidationService) Wrap(wrapper UserService) UserService {
	v.inner = wrapper
	return v
}
