package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/chronos/internal/app"
	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/internal/ratelimit"
	"github.com/MKhiriev/chronos/internal/service"
	"github.com/MKhiriev/chronos/internal/store"
	"github.com/MKhiriev/chronos/internal/utils"
	"github.com/MKhiriev/chronos/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:       http.StatusBadRequest,
	ErrInvalidIdentifier: http.StatusBadRequest,
	ErrNoCredentials:     http.StatusUnauthorized,

	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrValidation:            http.StatusBadRequest,
	service.ErrInvalidSuccessionType: http.StatusBadRequest,
	service.ErrLevelExceedsMax:       http.StatusBadRequest,
	service.ErrNotAuthorized:         http.StatusForbidden,
	service.ErrInvalidOrExpired:      http.StatusUnauthorized,
	service.ErrTooManyAttempts:       http.StatusTooManyRequests,
	service.ErrSessionExpired:        http.StatusUnauthorized,
	service.ErrSessionInvalid:        http.StatusUnauthorized,
	service.ErrOTPNotIssued:          http.StatusInternalServerError,
	service.ErrTokenCreationFailed:   http.StatusInternalServerError,

	ratelimit.ErrLimitExceeded: http.StatusTooManyRequests,

	store.ErrNotFound:           http.StatusNotFound,
	store.ErrAlreadyExists:      http.StatusConflict,
	store.ErrReferenceNotFound:  http.StatusUnprocessableEntity,
	store.ErrConstraintViolated: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessageMap holds the client-facing text of errors whose own message
// is not meant for the client.
var errorMessageMap = map[error]string{
	ErrInvalidJSON:                   app.MsgInvalidDataProvided,
	ErrInvalidIdentifier:             app.MsgInvalidIdentifier,
	ErrNoCredentials:                 app.MsgSessionExpiredOrInvalid,
	service.ErrInvalidDataProvided:   app.MsgInvalidDataProvided,
	service.ErrInvalidSuccessionType: app.MsgInvalidSuccessionType,
	service.ErrNotAuthorized:         app.MsgEmailNotAuthorized,
	service.ErrInvalidOrExpired:      app.MsgInvalidOrExpiredOTP,
	service.ErrTooManyAttempts:       app.MsgTooManyAttempts,
	service.ErrSessionExpired:        app.MsgSessionExpiredOrInvalid,
	service.ErrSessionInvalid:        app.MsgSessionExpiredOrInvalid,
	ratelimit.ErrLimitExceeded:       app.MsgRateLimitExceeded,
	store.ErrNotFound:                app.MsgNotFound,
	store.ErrAlreadyExists:           app.MsgAlreadyExists,
	store.ErrReferenceNotFound:       app.MsgReferenceNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text written into the error envelope.
// Validation failures carry the validator's message; server errors never
// leak details.
func messageFromError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return app.MsgInternalServerError
	}
	if errors.Is(err, service.ErrValidation) || errors.Is(err, service.ErrLevelExceedsMax) ||
		errors.Is(err, store.ErrConstraintViolated) {
		return err.Error()
	}
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return http.StatusText(status)
}

// writeError logs err and writes the {success:false, error} envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ActionResponse{
		Success: false,
		Error:   messageFromError(err, status),
	}, status)
}

func writeData(w http.ResponseWriter, data any, status int) {
	utils.WriteJSON(w, models.ActionResponse{Success: true, Data: data}, status)
}

func writeMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ActionResponse{Success: true, Message: message}, status)
}
