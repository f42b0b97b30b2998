package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-signup/internal/logger"
	"github.com/MKhiriev/go-user-signup/internal/service"
	"github.com/MKhiriev/go-user-signup/internal/utils"
	"github.com/MKhiriev/go-user-signup/internal/validators"
)

type errorReply struct {
	status  int
	message string
}

// errorReplies lists the service errors whose identity reaches the client.
// Duplicate email and saving errors carry their own user-facing text.
var errorReplies = []struct {
	target error
	reply  errorReply
}{
	{service.ErrDuplicateEmail, errorReply{http.StatusBadRequest, service.ErrDuplicateEmail.Error()}},
	{service.ErrSavingUser, errorReply{http.StatusInternalServerError, service.ErrSavingUser.Error()}},
	{service.ErrUserNotFound, errorReply{http.StatusNotFound, msgUserNotFound}},
	{service.ErrInvalidToken, errorReply{http.StatusUnauthorized, msgUnauthorized}},
}

// replyFromError maps err onto the status and message sent to the client.
// Validation failures are joined "field: message" pairs; anything unknown
// becomes a generic 500 so internal detail never leaks.
func replyFromError(err error) errorReply {
	if vErr, ok := validators.AsValidationError(err); ok {
		return errorReply{http.StatusBadRequest, vErr.Error()}
	}

	for _, e := range errorReplies {
		if errors.Is(err, e.target) {
			return e.reply
		}
	}

	return errorReply{http.StatusInternalServerError, msgInternalServer}
}

func writeServiceError(w http.ResponseWriter, log *logger.Logger, err error) {
	reply := replyFromError(err)
	if reply.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", reply.status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", reply.status).Msg("request rejected")
	}

	if _, wErr := utils.WriteError(w, reply.message, reply.status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}
