// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/court-fund/internal/logger"
	"github.com/MKhiriev/court-fund/models"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fundRowColumns = []string{"fund_id", "admin_id", "balance", "created_at", "updated_at"}

func newTestFundRepo(t *testing.T) (*fundRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &fundRepository{db: db, logger: logger.Nop()}, mock
}

// ── CreateFund ────────────────────────────────────────────────────────────────

func TestFundRepository_CreateFund_Success(t *testing.T) {
	// Arrange
	repo, mock := newTestFundRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO funds \\(admin_id,balance,created_at,updated_at\\)").
		WithArgs(int64(3), decimal.NewFromInt(250), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(fundRowColumns).AddRow(int64(1), int64(3), "250.00", now, now))

	// Act
	fund, err := repo.CreateFund(context.Background(), models.Fund{AdminID: 3, Balance: decimal.NewFromInt(250)})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(1), fund.ID)
	assert.Equal(t, int64(3), fund.AdminID)
	assert.True(t, fund.Balance.Equal(decimal.NewFromInt(250)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFundRepository_CreateFund_ConstraintErrors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{"pg unique admin", pgError(pgerrcode.UniqueViolation), ErrFundAlreadyExists},
		{"pg negative balance", pgError(pgerrcode.CheckViolation), ErrNegativeBalance},
		{"pg unknown admin", pgError(pgerrcode.ForeignKeyViolation), ErrAdminNotFound},
		{"sqlite unique admin", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, ErrFundAlreadyExists},
		{"sqlite negative balance", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck}, ErrNegativeBalance},
		{"other", errors.New("connection reset"), ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestFundRepo(t)
			mock.ExpectQuery("INSERT INTO funds").WillReturnError(tt.dbErr)

			_, err := repo.CreateFund(context.Background(), models.Fund{AdminID: 3})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── reads ─────────────────────────────────────────────────────────────────────

func TestFundRepository_GetFundByAdminID(t *testing.T) {
	repo, mock := newTestFundRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT fund_id, admin_id, balance, created_at, updated_at FROM funds WHERE admin_id = \\$1").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(fundRowColumns).AddRow(int64(1), int64(3), "10.50", now, now))

	fund, err := repo.GetFundByAdminID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "10.5", fund.Balance.String())
	assert.True(t, fund.UpdatedAt.Equal(now))
}

func TestFundRepository_GetFundByID_NotFound(t *testing.T) {
	repo, mock := newTestFundRepo(t)

	mock.ExpectQuery("SELECT fund_id.* WHERE fund_id = \\$1").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(fundRowColumns))

	_, err := repo.GetFundByID(context.Background(), 9)

	assert.ErrorIs(t, err, ErrFundNotFound)
}

func TestFundRepository_ListFunds(t *testing.T) {
	repo, mock := newTestFundRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT fund_id.* FROM funds ORDER BY fund_id").
		WillReturnRows(sqlmock.NewRows(fundRowColumns).
			AddRow(int64(1), int64(3), "0", now, now).
			AddRow(int64(2), int64(4), "99.99", now, now))

	funds, err := repo.ListFunds(context.Background())

	require.NoError(t, err)
	require.Len(t, funds, 2)
	assert.Equal(t, int64(4), funds[1].AdminID)
	assert.Equal(t, "99.99", funds[1].Balance.String())
}

func TestFundRepository_ListFunds_Empty(t *testing.T) {
	repo, mock := newTestFundRepo(t)

	mock.ExpectQuery("SELECT fund_id").WillReturnRows(sqlmock.NewRows(fundRowColumns))

	funds, err := repo.ListFunds(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, funds)
	assert.Empty(t, funds)
}

func TestFundRepository_ListFunds_QueryError(t *testing.T) {
	repo, mock := newTestFundRepo(t)

	mock.ExpectQuery("SELECT fund_id").WillReturnError(errors.New("boom"))

	_, err := repo.ListFunds(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── AdjustBalance ─────────────────────────────────────────────────────────────

func TestFundRepository_AdjustBalance_Success(t *testing.T) {
	repo, mock := newTestFundRepo(t)
	now := time.Now()

	mock.ExpectQuery("UPDATE funds SET balance = ROUND\\(balance \\+ \\$1, 2\\), updated_at = \\$2 WHERE admin_id = \\$3 RETURNING").
		WithArgs(decimal.RequireFromString("-25.5"), sqlmock.AnyArg(), int64(3)).
		WillReturnRows(sqlmock.NewRows(fundRowColumns).AddRow(int64(1), int64(3), "74.5", now, now))

	fund, err := repo.AdjustBalance(context.Background(), 3, decimal.RequireFromString("-25.5"))

	require.NoError(t, err)
	assert.Equal(t, "74.5", fund.Balance.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFundRepository_AdjustBalance_Overdraft(t *testing.T) {
	repo, mock := newTestFundRepo(t)

	mock.ExpectQuery("UPDATE funds").WillReturnError(pgError(pgerrcode.CheckViolation))

	_, err := repo.AdjustBalance(context.Background(), 3, decimal.NewFromInt(-1000))

	assert.ErrorIs(t, err, ErrNegativeBalance)
}

func TestFundRepository_AdjustBalance_NoFund(t *testing.T) {
	repo, mock := newTestFundRepo(t)

	mock.ExpectQuery("UPDATE funds").WillReturnRows(sqlmock.NewRows(fundRowColumns))

	_, err := repo.AdjustBalance(context.Background(), 3, decimal.NewFromInt(10))

	assert.ErrorIs(t, err, ErrFundNotFound)
}
