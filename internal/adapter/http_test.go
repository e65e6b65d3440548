// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/court-fund/internal/config"
	"github.com/MKhiriev/court-fund/internal/logger"
	"github.com/MKhiriev/court-fund/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "header.payload.signature"

func newTestAdapter(t *testing.T, serverURL, token string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
		Token:          token,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func requireBearer(t *testing.T, r *http.Request) {
	t.Helper()
	assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"adds scheme", "localhost:8080", "http://localhost:8080", false},
		{"keeps https", "https://fund.example.com/", "https://fund.example.com", false},
		{"trims spaces", "  127.0.0.1:9000 ", "http://127.0.0.1:9000", false},
		{"empty", "   ", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

func TestNewHTTPServerAdapter_TokenFromConfig(t *testing.T) {
	a := newTestAdapter(t, "localhost:8080", "  "+testToken+"\n")
	assert.Equal(t, testToken, a.Token())
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/login", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "root", user.Login)
		assert.Equal(t, "secret", user.Password)

		w.Header().Set("Authorization", "Bearer "+testToken)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	token, err := a.Login(context.Background(), models.User{Login: "root", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, testToken, token)
	assert.Equal(t, testToken, a.Token())
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "wrong password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Login(context.Background(), models.User{Login: "root", Password: "bad"})

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "wrong password")
	assert.Empty(t, a.Token())
}

func TestLogin_MissingAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Login(context.Background(), models.User{Login: "root", Password: "secret"})

	assert.Error(t, err)
	assert.Empty(t, a.Token())
}

// ── funds ───────────────────────────────────────────────────────────────────

func TestMyFund_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/admin/funds/me", r.URL.Path)
		requireBearer(t, r)

		writeJSON(t, w, http.StatusOK, models.Fund{ID: 1, AdminID: 3, Balance: decimal.RequireFromString("120.50")})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testToken)
	fund, err := a.MyFund(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), fund.AdminID)
	assert.True(t, fund.Balance.Equal(decimal.RequireFromString("120.5")))
}

func TestMyFund_NoToken(t *testing.T) {
	a := newTestAdapter(t, "localhost:1", "")
	_, err := a.MyFund(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestMyFund_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.MessageResponse{Message: "Bạn không có quyền truy cập"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testToken)
	_, err := a.MyFund(context.Background())

	require.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, err.Error(), "Bạn không có quyền truy cập")
}

func TestDeposit_SendsAmount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/admin/funds/me/deposit", r.URL.Path)
		requireBearer(t, r)

		var body models.BalanceChangeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body.Amount.Equal(decimal.NewFromInt(40)))

		writeJSON(t, w, http.StatusOK, models.Fund{ID: 1, AdminID: 3, Balance: decimal.NewFromInt(140)})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testToken)
	fund, err := a.Deposit(context.Background(), decimal.NewFromInt(40))

	require.NoError(t, err)
	assert.True(t, fund.Balance.Equal(decimal.NewFromInt(140)))
}

func TestWithdraw_Overdraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/funds/me/withdraw", r.URL.Path)
		writeJSON(t, w, http.StatusUnprocessableEntity, models.MessageResponse{Message: "balance cannot be negative"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testToken)
	_, err := a.Withdraw(context.Background(), decimal.NewFromInt(1000))

	assert.ErrorIs(t, err, ErrUnprocessable)
}

// ── service fees ────────────────────────────────────────────────────────────

func TestListFees_SendsFilter(t *testing.T) {
	dueBefore := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/admin/service-fees", r.URL.Path)
		requireBearer(t, r)

		q := r.URL.Query()
		assert.Equal(t, "7", q.Get("court_id"))
		assert.Equal(t, "overdue", q.Get("status"))
		assert.Equal(t, "2025-06", q.Get("month"))
		assert.Equal(t, "2025-07-01T00:00:00Z", q.Get("due_before"))

		writeJSON(t, w, http.StatusOK, models.ServiceFeesResponse{
			ServiceFees: []models.ServiceFee{{ID: 9, CourtID: 7, Status: models.FeeStatusOverdue}},
			Length:      1,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testToken)
	fees, err := a.ListFees(context.Background(), models.ServiceFeeFilter{
		CourtID:   7,
		Status:    models.FeeStatusOverdue,
		Month:     "2025-06",
		DueBefore: &dueBefore,
	})

	require.NoError(t, err)
	require.Len(t, fees, 1)
	assert.Equal(t, int64(9), fees[0].ID)
}

func TestFilterQuery_EmptyFilter(t *testing.T) {
	assert.Empty(t, filterQuery(models.ServiceFeeFilter{}))
}

func TestCreateFee_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/admin/service-fees", r.URL.Path)

		var body models.CreateServiceFeeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.NotNil(t, body.CourtID)
		assert.Equal(t, int64(7), *body.CourtID)

		writeJSON(t, w, http.StatusCreated, models.ServiceFee{ID: 11, CourtID: 7, Status: models.FeeStatusPending})
	}))
	defer srv.Close()

	courtID := int64(7)
	amount := decimal.NewFromInt(500)
	due := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	a := newTestAdapter(t, srv.URL, testToken)
	fee, err := a.CreateFee(context.Background(), models.CreateServiceFeeRequest{
		CourtID: &courtID,
		Amount:  &amount,
		DueDate: &due,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), fee.ID)
	assert.Equal(t, models.FeeStatusPending, fee.Status)
}

func TestCreateFee_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.MessageResponse{Message: "validation failed"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testToken)
	_, err := a.CreateFee(context.Background(), models.CreateServiceFeeRequest{})

	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestUpdateFeeStatus_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/admin/service-fees/11/status", r.URL.Path)
		requireBearer(t, r)

		var body models.UpdateFeeStatusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.FeeStatusCompleted, body.Status)

		paid := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
		writeJSON(t, w, http.StatusOK, models.ServiceFee{ID: 11, Status: models.FeeStatusCompleted, PaidDate: &paid})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testToken)
	fee, err := a.UpdateFeeStatus(context.Background(), models.UpdateFeeStatusRequest{ID: 11, Status: models.FeeStatusCompleted})

	require.NoError(t, err)
	assert.Equal(t, models.FeeStatusCompleted, fee.Status)
	assert.NotNil(t, fee.PaidDate)
}

func TestUpdateFeeStatus_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.MessageResponse{Message: "service fee not found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testToken)
	_, err := a.UpdateFeeStatus(context.Background(), models.UpdateFeeStatusRequest{ID: 404, Status: models.FeeStatusOverdue})

	assert.ErrorIs(t, err, ErrNotFound)
}
