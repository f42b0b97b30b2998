// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the command-line client to
// talk to the signup server.
//
// [ServerAdapter] decouples the client runtime from the protocol. The package
// ships an HTTP/REST implementation built on resty ([NewHTTPServerAdapter]).
//
// Non-2xx replies are mapped by mapHTTPError onto *[APIError] values that wrap
// the sentinels in errors.go, so callers can use [errors.Is] (e.g.
// [ErrBadRequest] for 400) and read the server's "mensaje" text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-signup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the signup server.
type ServerAdapter interface {
	// Register submits a registration request and returns the creation
	// summary, including the session token.
	Register(ctx context.Context, request models.RegisterRequest) (models.UserResponse, error)

	// Profile fetches the profile of the user owning token.
	Profile(ctx context.Context, token string) (models.UserProfile, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
