package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-signup/internal/logger"
	"github.com/MKhiriev/go-user-signup/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// The token is first checked with [service.TokenService.ValidateToken]; only
// a valid token is then asked for its subject, which is stored in the request
// context under [utils.UserIDCtxKey] before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when the header is absent,
// is not of the form "Bearer <token>", or carries an invalid or expired token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(ErrInvalidAuthorizationHeader).Send()
			utils.WriteError(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		tokens := h.tokens
		if !tokens.ValidateToken(tokenString) {
			log.Warn().Msg("token is expired or invalid")
			utils.WriteError(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		userID, err := tokens.GetUserIDFromToken(tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), userID)))
	})
}
