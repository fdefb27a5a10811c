package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorStatuses is checked in order and the first match wins, so an error
// wrapping several targets always gets the same status. A request timeout
// surfaces from storage as ErrStorageUnavailable wrapping
// context.DeadlineExceeded and must be answered with 504. An empty message
// means the error text itself is safe to return.
var errorStatuses = []errorResponse{
	{service.ErrAuthMissing, http.StatusUnauthorized, app.MsgNoTokenProvided},
	{service.ErrAuthExpired, http.StatusUnauthorized, app.MsgTokenExpired},
	{service.ErrAuthInvalid, http.StatusUnauthorized, app.MsgInvalidToken},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrEmailTaken, http.StatusConflict, app.MsgEmailAlreadyExists},
	{service.ErrNotFound, http.StatusNotFound, app.MsgEntryNotFound},

	{validators.ErrValidationFailed, http.StatusBadRequest, ""},
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrInvalidQuery, http.StatusBadRequest, ""},

	{context.DeadlineExceeded, http.StatusGatewayTimeout, app.MsgRequestTimeout},
	{store.ErrStorageUnavailable, http.StatusServiceUnavailable, app.MsgStorageUnavailable},
}

func statusFromError(err error) (int, string) {
	for _, resp := range errorStatuses {
		if !errors.Is(err, resp.target) {
			continue
		}
		if resp.message != "" {
			return resp.status, resp.message
		}

		var vErr *validators.ValidationError
		if errors.As(err, &vErr) {
			return resp.status, vErr.Error()
		}
		return resp.status, err.Error()
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with its mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	writeMessage(w, status, message)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}
