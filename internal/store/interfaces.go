package store

import (
	"context"
	"time"

	"github.com/MKhiriev/court-fund/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// FundRepository persists the per-admin funds.
type FundRepository interface {
	CreateFund(ctx context.Context, fund models.Fund) (models.Fund, error)
	GetFundByAdminID(ctx context.Context, adminID int64) (models.Fund, error)
	GetFundByID(ctx context.Context, fundID int64) (models.Fund, error)
	ListFunds(ctx context.Context) ([]models.Fund, error)

	// AdjustBalance adds delta (negative for withdrawals) to the admin's fund
	// in a single UPDATE and returns the updated fund.
	AdjustBalance(ctx context.Context, adminID int64, delta decimal.Decimal) (models.Fund, error)
}

// ServiceFeeRepository persists court service fees.
type ServiceFeeRepository interface {
	CreateServiceFee(ctx context.Context, fee models.ServiceFee) (models.ServiceFee, error)
	GetServiceFee(ctx context.Context, feeID int64) (models.ServiceFee, error)
	ListServiceFees(ctx context.Context, filter models.ServiceFeeFilter) ([]models.ServiceFee, error)
	UpdateServiceFeeStatus(ctx context.Context, feeID int64, status models.FeeStatus, paidDate *time.Time) (models.ServiceFee, error)
	DeleteServiceFee(ctx context.Context, feeID int64) error
}
