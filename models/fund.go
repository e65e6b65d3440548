package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fund is the running balance owned by a single admin.
// There is at most one Fund per admin and Balance never drops below zero;
// both rules are enforced by the funds table constraints.
type Fund struct {
	// ID is the server-assigned identifier of the fund.
	ID int64 `json:"id"`

	// AdminID references the admin user who owns the fund.
	AdminID int64 `json:"admin_id" validate:"required,gt=0"`

	// Balance is the current amount held by the fund.
	Balance decimal.Decimal `json:"balance" validate:"gte=0,money"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Fund model.
func (f Fund) TableName() string {
	return "funds"
}

// CreateFundRequest is the body of POST /api/admin/funds.
// The owner is always the calling admin; Balance defaults to zero.
type CreateFundRequest struct {
	Balance *decimal.Decimal `json:"balance,omitempty"`
}

// BalanceChangeRequest is the body of the deposit and withdraw endpoints.
type BalanceChangeRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"gt=0,money"`
}
