package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-user-signup/internal/config"
	"github.com/MKhiriev/go-user-signup/internal/logger"
	"github.com/MKhiriev/go-user-signup/internal/utils"
	"github.com/MKhiriev/go-user-signup/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and configures
// the underlying HTTP client with the resolved base URL and request timeout.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [ServerAdapter] with POST /users/.
func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.UserResponse, error) {
	var created models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&created).
		Post("/users/")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	h.logger.Debug().Str("id", created.ID).Msg("user registered")
	return created, nil
}

// Profile implements [ServerAdapter] with GET /users/me.
func (h *httpServerAdapter) Profile(ctx context.Context, token string) (models.UserProfile, error) {
	var profile models.UserProfile

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&profile).
		Get("/users/me")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	return profile, nil
}

// Version implements [ServerAdapter] with GET /api/version/.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
