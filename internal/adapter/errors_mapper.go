package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-user-signup/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Message:    extractMessage(resp.Body()),
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		apiErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		apiErr.kind = ErrUnauthorized
	case http.StatusNotFound:
		apiErr.kind = ErrNotFound
	case http.StatusInternalServerError:
		apiErr.kind = ErrInternalServerError
	default:
		apiErr.kind = ErrUnexpectedStatus
	}

	return apiErr
}

// extractMessage returns the "mensaje" of a JSON error body, or the trimmed
// body itself.
func extractMessage(body []byte) string {
	var reply models.ErrorResponse
	if err := json.Unmarshal(body, &reply); err == nil && reply.Message != "" {
		return reply.Message
	}
	return strings.TrimSpace(string(body))
}
