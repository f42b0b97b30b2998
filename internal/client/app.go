package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-user-signup/internal/adapter"
	"github.com/MKhiriev/go-user-signup/internal/config"
	"github.com/MKhiriev/go-user-signup/internal/logger"
	"github.com/MKhiriev/go-user-signup/models"
)

type App struct {
	adapter      adapter.ServerAdapter
	registration config.ClientRegistration

	out    io.Writer
	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, registration config.ClientRegistration, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter:      serverAdapter,
		registration: registration,
		out:          out,
		logger:       logger,
	}
}

// Run registers the configured user, prints the creation summary and then
// prints the profile fetched with the issued token.
func (a *App) Run(ctx context.Context) error {
	phones, err := parsePhones(a.registration.Phones)
	if err != nil {
		return err
	}

	if version, err := a.adapter.Version(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("server version unavailable")
	} else {
		a.logger.Info().Str("version", version).Msg("connected to server")
	}

	created, err := a.adapter.Register(ctx, models.RegisterRequest{
		Name:     a.registration.Name,
		Email:    a.registration.Email,
		Password: a.registration.Password,
		Phones:   phones,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	if err = a.print(created); err != nil {
		return err
	}

	profile, err := a.adapter.Profile(ctx, created.Token)
	if err != nil {
		return fmt.Errorf("profile request failed: %w", err)
	}

	return a.print(profile)
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error printing result: %w", err)
	}
	return nil
}
