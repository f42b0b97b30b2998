package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-user-signup/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:             "POST 201",
			method:           http.MethodPost,
			path:             "/users/",
			handlerStatus:    http.StatusCreated,
			handlerResponse:  `{"id":"1"}`,
			checkLogContains: []string{`"method":"POST"`, `"uri":"/users/"`, `"status":201`, `"size":10`},
		},
		{
			name:             "GET 401",
			method:           http.MethodGet,
			path:             "/users/me",
			handlerStatus:    http.StatusUnauthorized,
			checkLogContains: []string{`"method":"GET"`, `"status":401`, `"size":0`, `"level":"info"`},
		},
		{
			name:             "POST 500 logged as error",
			method:           http.MethodPost,
			path:             "/users/",
			handlerStatus:    http.StatusInternalServerError,
			handlerResponse:  `{"mensaje":"Error al guardar el usuario"}`,
			checkLogContains: []string{`"level":"error"`, `"status":500`, `"message":"signup request served"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerResponse))
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, s := range tt.checkLogContains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestWithLogging_RoutePatternAndImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(zerolog.New(&buf).WithContext(r.Context())))
		})
	})
	router.Use(h.withLogging)
	router.Get("/users/me", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users/me", nil))

	assert.Contains(t, buf.String(), `"route":"/users/me"`)
	assert.Contains(t, buf.String(), `"status":200`)
}
