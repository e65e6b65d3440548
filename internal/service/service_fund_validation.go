package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/court-fund/internal/validators"
	"github.com/MKhiriev/court-fund/models"
	"github.com/shopspring/decimal"
)

// FundValidationService validates requests before they reach the wrapped
// FundService.
type FundValidationService struct {
	inner     FundService
	validator validators.Validator
}

func NewFundValidationService() FundServiceWrapper {
	return &FundValidationService{
		validator: validators.NewFundValidator(),
	}
}

func (v *FundValidationService) CreateFund(ctx context.Context, adminID int64, req models.CreateFundRequest) (models.Fund, error) {
	fund := models.Fund{AdminID: adminID, Balance: decimal.Zero}
	if req.Balance != nil {
		fund.Balance = *req.Balance
	}

	if err := v.validator.Validate(ctx, fund); err != nil {
		return models.Fund{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.CreateFund(ctx, adminID, req)
}

func (v *FundValidationService) GetFundByAdmin(ctx context.Context, adminID int64) (models.Fund, error) {
	if adminID <= 0 {
		return models.Fund{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidAdminID)
	}

	return v.inner.GetFundByAdmin(ctx, adminID)
}

func (v *FundValidationService) GetFund(ctx context.Context, fundID int64) (models.Fund, error) {
	if fundID <= 0 {
		return models.Fund{}, fmt.Errorf("%w: %w", ErrValidation, ErrInvalidDataProvided)
	}

	return v.inner.GetFund(ctx, fundID)
}

func (v *FundValidationService) ListFunds(ctx context.Context) ([]models.Fund, error) {
	return v.inner.ListFunds(ctx)
}

func (v *FundValidationService) Deposit(ctx context.Context, adminID int64, req models.BalanceChangeRequest) (models.Fund, error) {
	if err := v.validateChange(ctx, adminID, req); err != nil {
		return models.Fund{}, err
	}

	return v.inner.Deposit(ctx, adminID, req)
}

func (v *FundValidationService) Withdraw(ctx context.Context, adminID int64, req models.BalanceChangeRequest) (models.Fund, error) {
	if err := v.validateChange(ctx, adminID, req); err != nil {
		return models.Fund{}, err
	}

	return v.inner.Withdraw(ctx, adminID, req)
}

func (v *FundValidationService) validateChange(ctx context.Context, adminID int64, req models.BalanceChangeRequest) error {
	if adminID <= 0 {
		return fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidAdminID)
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

func (v *FundValidationService) Wrap(wrapped FundService) FundService {
	v.inner = wrapped
	return v
}
