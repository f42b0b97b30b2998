package service

import "errors"

// User-facing errors of the registration flow. Their text is returned to
// API clients as is.
var (
	ErrDuplicateEmail = errors.New("El correo ya está registrado")
	ErrSavingUser     = errors.New("Error al guardar el usuario")
)

var (
	ErrUserNotFound = errors.New("user not found")

	ErrInvalidToken       = errors.New("token is expired or invalid")
	ErrInvalidTokenParams = errors.New("invalid token params")
	ErrWeakSignKey        = errors.New("token sign key is too short")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
