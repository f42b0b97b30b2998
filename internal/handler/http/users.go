package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-user-signup/internal/logger"
	"github.com/MKhiriev/go-user-signup/internal/utils"
	"github.com/MKhiriev/go-user-signup/models"
)

const maxRequestBodySize = 1 << 20

// saveUser registers a user and replies 201 with the creation summary.
func (h *Handler) saveUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.users.SaveUser(ctx, request)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.NewUserResponse(user), http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

// getProfile replies with the profile of the user owning the bearer token.
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteError(w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	user, err := h.users.GetProfile(ctx, userID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.NewUserProfile(user), http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}
