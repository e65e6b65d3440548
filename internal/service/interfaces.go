package service

import (
	"context"

	"github.com/MKhiriev/court-fund/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// FundService manages the per-admin funds. Every method acting on "my fund"
// takes the admin's user ID from the request identity.
type FundService interface {
	CreateFund(ctx context.Context, adminID int64, req models.CreateFundRequest) (models.Fund, error)
	GetFundByAdmin(ctx context.Context, adminID int64) (models.Fund, error)
	GetFund(ctx context.Context, fundID int64) (models.Fund, error)
	ListFunds(ctx context.Context) ([]models.Fund, error)

	Deposit(ctx context.Context, adminID int64, req models.BalanceChangeRequest) (models.Fund, error)
	Withdraw(ctx context.Context, adminID int64, req models.BalanceChangeRequest) (models.Fund, error)
}

// ServiceFeeService manages court service fees. Status changes are manual;
// nothing moves a fee to overdue on its own.
type ServiceFeeService interface {
	CreateServiceFee(ctx context.Context, req models.CreateServiceFeeRequest) (models.ServiceFee, error)
	GetServiceFee(ctx context.Context, feeID int64) (models.ServiceFee, error)
	ListServiceFees(ctx context.Context, filter models.ServiceFeeFilter) ([]models.ServiceFee, error)
	UpdateServiceFeeStatus(ctx context.Context, req models.UpdateFeeStatusRequest) (models.ServiceFee, error)
	DeleteServiceFee(ctx context.Context, feeID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// FundServiceWrapper defines middleware composition for FundService.
// Implementations wrap an existing FundService to add behavior such as
// validating.
type FundServiceWrapper interface {
	Wrap(FundService) FundService
}

// ServiceFeeServiceWrapper defines middleware composition for ServiceFeeService.
type ServiceFeeServiceWrapper interface {
	Wrap(ServiceFeeService) ServiceFeeService
}
