package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeStatus is the lifecycle state of a ServiceFee.
type FeeStatus string

const (
	// FeeStatusPending is the default state of a newly created fee.
	FeeStatusPending FeeStatus = "pending"

	// FeeStatusCompleted marks a fee that has been paid.
	FeeStatusCompleted FeeStatus = "completed"

	// FeeStatusOverdue marks a fee that was not paid by its due date.
	// Nothing sets it automatically; an admin changes the status by hand.
	FeeStatusOverdue FeeStatus = "overdue"
)

// FeeStatuses lists every accepted FeeStatus value.
var FeeStatuses = []FeeStatus{FeeStatusPending, FeeStatusCompleted, FeeStatusOverdue}

// IsValid reports whether s is one of the known statuses.
func (s FeeStatus) IsValid() bool {
	for _, status := range FeeStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ServiceFee is a per-court, per-month billing obligation.
type ServiceFee struct {
	ID int64 `json:"id"`

	// CourtID references a court owned by the court service.
	CourtID int64 `json:"court_id"`

	Amount decimal.Decimal `json:"amount"`

	// Month is the billing period token, e.g. "2025-06".
	Month string `json:"month,omitempty"`

	Status FeeStatus `json:"status"`

	DueDate  time.Time  `json:"due_date"`
	PaidDate *time.Time `json:"paid_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the ServiceFee model.
func (s ServiceFee) TableName() string {
	return "service_fees"
}

// CreateServiceFeeRequest is the body of POST /api/admin/service-fees.
// Pointer fields distinguish "missing" from a zero value.
type CreateServiceFeeRequest struct {
	CourtID  *int64           `json:"court_id" validate:"required,gt=0"`
	Amount   *decimal.Decimal `json:"amount" validate:"required,gte=0,money"`
	Month    string           `json:"month,omitempty" validate:"omitempty,datetime=2006-01"`
	Status   FeeStatus        `json:"status,omitempty" validate:"omitempty,oneof=pending completed overdue"`
	DueDate  *time.Time       `json:"due_date" validate:"required,nonzerotime"`
	PaidDate *time.Time       `json:"paid_date,omitempty"`
}

// ToServiceFee converts a validated request into a ServiceFee,
// defaulting Status to pending.
func (r CreateServiceFeeRequest) ToServiceFee() ServiceFee {
	fee := ServiceFee{
		Month:    r.Month,
		Status:   r.Status,
		PaidDate: r.PaidDate,
	}
	if r.CourtID != nil {
		fee.CourtID = *r.CourtID
	}
	if r.Amount != nil {
		fee.Amount = *r.Amount
	}
	if r.DueDate != nil {
		fee.DueDate = *r.DueDate
	}
	if fee.Status == "" {
		fee.Status = FeeStatusPending
	}

	return fee
}

// UpdateFeeStatusRequest is the body of PATCH /api/admin/service-fees/{feeID}/status.
type UpdateFeeStatusRequest struct {
	ID       int64      `json:"-"`
	Status   FeeStatus  `json:"status" validate:"required,oneof=pending completed overdue"`
	PaidDate *time.Time `json:"paid_date,omitempty"`
}

// ServiceFeeFilter narrows ListServiceFees. Zero-valued fields are ignored.
type ServiceFeeFilter struct {
	CourtID   int64
	Status    FeeStatus
	Month     string
	DueBefore *time.Time
}
