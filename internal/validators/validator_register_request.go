package validators

import (
	"context"
	"errors"
	"reflect"
	"slices"
	"strings"

	"github.com/MKhiriev/go-user-signup/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation of a
// [models.RegisterRequest] to a subset of its top-level fields.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldPhones   = "phones"
)

var registerRequestFields = []string{FieldName, FieldEmail, FieldPassword, FieldPhones}

// RegisterRequestValidator validates sign-up payloads using the
// go-playground/validator tags declared on [models.RegisterRequest].
type RegisterRequestValidator struct {
	validate *validator.Validate
}

// NewRegisterRequestValidator builds a validator with every custom rule
// registered and JSON names used for field paths.
func NewRegisterRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// tags are static and non-empty, registration cannot fail
	_ = v.RegisterValidation(TagNotBlank, isNotBlank)
	_ = v.RegisterValidation(TagEmailFormat, isEmailFormat)
	_ = v.RegisterValidation(TagStrongPassword, isStrongPassword)
	_ = v.RegisterValidation(TagPhoneNumber, isPhoneNumber)
	_ = v.RegisterValidation(TagCityCode, isShortCode)
	_ = v.RegisterValidation(TagCountryCode, isShortCode)

	return &RegisterRequestValidator{validate: v}
}

// Validate implements [Validator]. It accepts models.RegisterRequest and
// *models.RegisterRequest. When fields are given only those top-level
// fields are reported.
func (v *RegisterRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRegisterRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RegisterRequestValidator) validateRegisterRequest(ctx context.Context, req models.RegisterRequest, fields ...string) error {
	for _, f := range fields {
		if !slices.Contains(registerRequestFields, f) {
			return ErrUnknownField
		}
	}

	err := v.validate.StructCtx(ctx, req)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}

	result := &ValidationError{}
	for _, fe := range vErrs {
		path := fieldPath(fe)
		if len(fields) > 0 && !slices.Contains(fields, topLevel(path)) {
			continue
		}
		result.Fields = append(result.Fields, FieldError{Field: path, Message: messageFor(fe)})
	}

	if len(result.Fields) == 0 {
		return nil
	}

	return result
}

// fieldPath strips the root struct name from the namespace:
// "RegisterRequest.phones[0].number" becomes "phones[0].number".
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

func topLevel(path string) string {
	end := strings.IndexAny(path, ".[")
	if end < 0 {
		return path
	}
	return path[:end]
}
