package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/court-fund/internal/validators"
	"github.com/MKhiriev/court-fund/models"
)

type ServiceFeeValidationService struct {
	inner     ServiceFeeService
	validator validators.Validator
}

func NewServiceFeeValidationService() ServiceFeeServiceWrapper {
	return &ServiceFeeValidationService{
		validator: validators.NewServiceFeeValidator(),
	}
}

func (v *ServiceFeeValidationService) CreateServiceFee(ctx context.Context, req models.CreateServiceFeeRequest) (models.ServiceFee, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ServiceFee{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.CreateServiceFee(ctx, req)
}

func (v *ServiceFeeValidationService) GetServiceFee(ctx context.Context, feeID int64) (models.ServiceFee, error) {
	if feeID <= 0 {
		return models.ServiceFee{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidFeeID)
	}

	return v.inner.GetServiceFee(ctx, feeID)
}

// ListServiceFees rejects filters with an unknown status or a malformed month.
func (v *ServiceFeeValidationService) ListServiceFees(ctx context.Context, filter models.ServiceFeeFilter) ([]models.ServiceFee, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidStatus)
	}
	if filter.Month != "" {
		if _, err := time.Parse("2006-01", filter.Month); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidMonth)
		}
	}

	return v.inner.ListServiceFees(ctx, filter)
}

func (v *ServiceFeeValidationService) UpdateServiceFeeStatus(ctx context.Context, req models.UpdateFeeStatusRequest) (models.ServiceFee, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ServiceFee{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.UpdateServiceFeeStatus(ctx, req)
}

func (v *ServiceFeeValidationService) DeleteServiceFee(ctx context.Context, feeID int64) error {
	if feeID <= 0 {
		return fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidFeeID)
	}

	return v.inner.DeleteServiceFee(ctx, feeID)
}

func (v *ServiceFeeValidationService) Wrap(wrapped ServiceFeeService) ServiceFeeService {
	v.inner = wrapped
	return v
}
