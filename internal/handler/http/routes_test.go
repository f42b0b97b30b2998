package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-signup/internal/config"
	"github.com/MKhiriev/go-user-signup/internal/logger"
	"github.com/MKhiriev/go-user-signup/internal/service"
	"github.com/MKhiriev/go-user-signup/internal/store"
	"github.com/MKhiriev/go-user-signup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const juanRequest = `{
	"name": "Juan Pérez",
	"email": "juan@test.com",
	"password": "Test123@",
	"phones": [{"number": "987654321", "cityCode": "2", "countryCode": "56"}]
}`

// newTestServer wires real services over the in-memory store.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:     "routes-test-sign-key-0123456789abcdef",
			TokenDuration:    time.Hour,
			PasswordHashCost: 4,
			Version:          "1.2.3",
		},
		Storage: config.Storage{DB: config.DB{Driver: config.DriverMemory}},
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)

	services, err := service.NewServices(storages, cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(services, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	return srv
}

func doRequest(t *testing.T, method, url, body, token string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, body
}

// ─────────────────────────────────────────────
// Registration scenario
// ─────────────────────────────────────────────

func TestRoutes_RegisterThenDuplicate(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doRequest(t, http.MethodPost, srv.URL+"/users/", juanRequest, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var created map[string]any
	require.NoError(t, json.Unmarshal(body, &created))
	for _, key := range []string{"id", "created", "modified", "lastLogin", "token", "isActive"} {
		assert.Contains(t, created, key)
	}
	assert.Equal(t, true, created["isActive"])
	assert.NotEmpty(t, created["token"])
	assert.NotContains(t, created, "password")

	resp, body = doRequest(t, http.MethodPost, srv.URL+"/users/", juanRequest, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"mensaje":"El correo ya está registrado"}`, string(body))
}

func TestRoutes_RegisterWithoutTrailingSlash(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doRequest(t, http.MethodPost, srv.URL+"/users", juanRequest, "")

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestRoutes_RegisterRejectsBadInput(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "malformed json",
			body:    `{"name":`,
			wantMsg: "Invalid JSON was passed",
		},
		{
			name:    "empty phones",
			body:    `{"name":"Ana","email":"ana@test.com","password":"Test123@","phones":[]}`,
			wantMsg: "phones: Phones list cannot be empty",
		},
		{
			name: "several invalid fields",
			body: `{"name":"","email":"ana","password":"Test123@",
				"phones":[{"number":"12","cityCode":"2","countryCode":"56"}]}`,
			wantMsg: "name: Name cannot be blank; email: Formato de email inválido; " +
				"phones[0].number: Phone number must contain only digits and be between 7 and 15 characters",
		},
		{
			name: "letter country code",
			body: `{"name":"Ana","email":"ana@test.com","password":"Test123@",
				"phones":[{"number":"987654321","cityCode":"2","countryCode":"US"}]}`,
			wantMsg: "phones[0].countryCode: Country code must contain 1 to 4 digits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doRequest(t, http.MethodPost, srv.URL+"/users/", tt.body, "")

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var reply models.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &reply))
			assert.Equal(t, tt.wantMsg, reply.Message)
		})
	}
}

func TestRoutes_RegisterSingleDigitCountryCode(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doRequest(t, http.MethodPost, srv.URL+"/users/", `{
		"name": "John Smith",
		"email": "john@test.com",
		"password": "Test123@",
		"phones": [{"number": "5550100", "cityCode": "212", "countryCode": "1"}]
	}`, "")

	assert.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
}

// ─────────────────────────────────────────────
// Profile
// ─────────────────────────────────────────────

func TestRoutes_ProfileWithIssuedToken(t *testing.T) {
	srv := newTestServer(t)

	_, body := doRequest(t, http.MethodPost, srv.URL+"/users/", juanRequest, "")
	var created models.UserResponse
	require.NoError(t, json.Unmarshal(body, &created))

	resp, body := doRequest(t, http.MethodGet, srv.URL+"/users/me", "", created.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var profile models.UserProfile
	require.NoError(t, json.Unmarshal(body, &profile))
	assert.Equal(t, created.ID, profile.ID)
	assert.Equal(t, "Juan Pérez", profile.Name)
	assert.Equal(t, "juan@test.com", profile.Email)
	require.Len(t, profile.Phones, 1)
	assert.Equal(t, "987654321", profile.Phones[0].Number)
	assert.NotContains(t, string(body), "token")
}

func TestRoutes_ProfileRequiresValidToken(t *testing.T) {
	srv := newTestServer(t)

	for _, token := range []string{"", "invalid.token.here"} {
		resp, body := doRequest(t, http.MethodGet, srv.URL+"/users/me", "", token)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.JSONEq(t, `{"mensaje":"Token inválido o expirado"}`, string(body))
	}
}

// ─────────────────────────────────────────────
// Misc routes
// ─────────────────────────────────────────────

func TestRoutes_Version(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doRequest(t, http.MethodGet, srv.URL+"/api/version/", "", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1.2.3", string(body))
}

func TestRoutes_Metrics(t *testing.T) {
	srv := newTestServer(t)
	doRequest(t, http.MethodGet, srv.URL+"/api/version/", "", "")

	resp, body := doRequest(t, http.MethodGet, srv.URL+"/metrics", "", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "signup_http_requests_total")
}

func TestRoutes_UnknownRoutesAndMethods(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/nope"},
		{http.MethodPost, "/users/me"},
		{http.MethodDelete, "/users/"},
		{http.MethodPost, "/api/version/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, body := doRequest(t, tt.method, srv.URL+tt.path, "", "")

			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.JSONEq(t, `{"mensaje":"Recurso no encontrado"}`, string(body))
		})
	}
}

func TestRoutes_TraceIDEchoed(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/version/", nil)
	require.NoError(t, err)
	req.Header.Set(traceIDHeader, "trace-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "trace-123", resp.Header.Get(traceIDHeader))
}
