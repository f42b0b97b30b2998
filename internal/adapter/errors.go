package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrInvalidAddress = errors.New("invalid server address")
)

// APIError is a non-2xx reply of the server.
type APIError struct {
	StatusCode int
	// Message is the "mensaje" of the reply body, or the raw body when it is
	// not a JSON error.
	Message string

	kind error
}

func (e *APIError) Error() string {
	if e.kind == nil {
		return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
	}
	return e.kind.Error() + ": " + e.Message
}

func (e *APIError) Unwrap() error {
	return e.kind
}
