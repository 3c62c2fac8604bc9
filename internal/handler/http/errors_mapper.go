package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-post-gateway/internal/logger"
	"github.com/MKhiriev/go-post-gateway/internal/service"
	"github.com/MKhiriev/go-post-gateway/internal/store"
	"github.com/MKhiriev/go-post-gateway/internal/utils"
)

// errorStatuses is matched in order; the first target found in the error
// chain decides the answer.
var errorStatuses = []struct {
	target  error
	status  int
	message string
}{
	{service.ErrAuth, http.StatusUnauthorized, authErrorMessage},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, "invalid data provided"},
	{service.ErrForbidden, http.StatusForbidden, "forbidden"},

	{store.ErrEmailAlreadyExists, http.StatusConflict, "email already exists"},
	{store.ErrNoUserWasFound, http.StatusNotFound, "user not found"},
	{store.ErrPostNotFound, http.StatusNotFound, "post not found"},
	{store.ErrNotAnImage, http.StatusBadRequest, "uploaded file is not an image"},

	{ErrInvalidRequestBody, http.StatusBadRequest, "invalid request body"},
	{ErrUnsupportedMediaType, http.StatusUnsupportedMediaType, "unsupported media type"},
	{ErrRequestTooLarge, http.StatusRequestEntityTooLarge, "request body too large"},
}

// statusFromError returns the HTTP status and client message for err.
// Anything unknown is a 500 with the generic server error message.
func statusFromError(err error) (int, string) {
	for _, s := range errorStatuses {
		if errors.Is(err, s.target) {
			return s.status, s.message
		}
	}
	return http.StatusInternalServerError, serverErrorMessage
}

// writeError logs err and answers with the status mapped from it.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, message, status)
}
