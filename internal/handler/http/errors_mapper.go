package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/court-fund/internal/logger"
	"github.com/MKhiriev/court-fund/internal/service"
	"github.com/MKhiriev/court-fund/internal/store"
	"github.com/MKhiriev/court-fund/internal/utils"
)

type errorStatus struct {
	sentinel error
	status   int
}

// errorStatuses is checked in order; the first sentinel in the chain wins.
// Client errors come before the 5xx storage wrappers so a chain carrying
// both reports the client error.
var errorStatuses = []errorStatus{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidPathParam, http.StatusBadRequest},
	{ErrInvalidQueryParam, http.StatusBadRequest},
	{ErrNoIdentity, http.StatusUnauthorized},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrValidation, http.StatusBadRequest},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrNotAnAdmin, http.StatusForbidden},
	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError},

	{store.ErrLoginAlreadyExists, http.StatusConflict},
	{store.ErrFundAlreadyExists, http.StatusConflict},
	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrFundNotFound, http.StatusNotFound},
	{store.ErrAdminNotFound, http.StatusNotFound},
	{store.ErrServiceFeeNotFound, http.StatusNotFound},
	{store.ErrNegativeBalance, http.StatusUnprocessableEntity},
	{store.ErrBalanceOutOfRange, http.StatusUnprocessableEntity},
	{store.ErrInvalidServiceFee, http.StatusUnprocessableEntity},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	status, _ := matchError(err)
	return status
}

// matchError returns the mapped status and the sentinel that matched it.
// target is nil for unmapped errors.
func matchError(err error) (status int, target error) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.sentinel) {
			return es.status, es.sentinel
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError logs err and replies with {"message": ...} and the mapped status.
// Server-side failures never leak their text; client errors expose the
// validation detail or the sentinel message.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	status, target := matchError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
		utils.WriteMessage(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)

	message := target.Error()
	if errors.Is(err, service.ErrValidation) || errors.Is(err, ErrInvalidJSON) || errors.Is(err, ErrInvalidQueryParam) {
		message = err.Error()
	}
	utils.WriteMessage(w, message, status)
}
