// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Fixed messages written under the "mensaje" key.
const (
	msgInvalidJSON    = "Invalid JSON was passed"
	msgUnauthorized   = "Token inválido o expirado"
	msgUserNotFound   = "Usuario no encontrado"
	msgNotFound       = "Recurso no encontrado"
	msgInternalServer = "Error interno del servidor"
)
