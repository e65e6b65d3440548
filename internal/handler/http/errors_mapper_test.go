package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/court-fund/internal/service"
	"github.com/MKhiriev/court-fund/internal/store"
	"github.com/MKhiriev/court-fund/internal/validators"
	"github.com/stretchr/testify/assert"
)

func validationError(err error) error {
	return fmt.Errorf("%w: %w", service.ErrValidation, err)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", validationError(validators.ErrNegativeBalance), http.StatusBadRequest},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized},
		{"not an admin", service.ErrNotAnAdmin, http.StatusForbidden},
		{"fund not found", fmt.Errorf("error getting fund: %w", store.ErrFundNotFound), http.StatusNotFound},
		{"admin not found", store.ErrAdminNotFound, http.StatusNotFound},
		{"fee not found", store.ErrServiceFeeNotFound, http.StatusNotFound},
		{"duplicate login", store.ErrLoginAlreadyExists, http.StatusConflict},
		{"duplicate fund", store.ErrFundAlreadyExists, http.StatusConflict},
		{"overdraft", fmt.Errorf("error changing balance: %w", store.ErrNegativeBalance), http.StatusUnprocessableEntity},
		{"fee constraint", store.ErrInvalidServiceFee, http.StatusUnprocessableEntity},
		{"balance overflow", fmt.Errorf("error changing balance: %w", store.ErrBalanceOutOfRange), http.StatusUnprocessableEntity},
		{"money scale", validationError(validators.ErrInvalidMoney), http.StatusBadRequest},
		{"query failure", fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("conn reset")), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMatchError_FirstListedSentinelWins(t *testing.T) {
	err := fmt.Errorf("%w: %w", store.ErrExecutingStatement, store.ErrInvalidServiceFee)

	for range 50 {
		status, target := matchError(err)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Same(t, store.ErrInvalidServiceFee, target)
	}
}

func TestWriteError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"sentinel text for wrapped not found", fmt.Errorf("error getting fund 3: %w", store.ErrFundNotFound), store.ErrFundNotFound.Error()},
		{"full text for validation", validationError(validators.ErrInvalidMonth), "validation failed: " + validators.ErrInvalidMonth.Error()},
		{"status text for server errors", errors.New("secret dsn"), http.StatusText(http.StatusInternalServerError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))

			writeError(rec, req, tt.err, "failed")

			assert.Equal(t, tt.want, messageOf(t, rec))
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}
