package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/court-fund/internal/logger"
	"github.com/MKhiriev/court-fund/internal/store"
	"github.com/MKhiriev/court-fund/models"
)

type serviceFeeService struct {
	serviceFeeRepository store.ServiceFeeRepository

	// now stamps the paid date of fees completed without one.
	now func() time.Time

	logger *logger.Logger
}

func NewServiceFeeService(serviceFeeRepository store.ServiceFeeRepository, logger *logger.Logger) ServiceFeeService {
	return &serviceFeeService{
		serviceFeeRepository: serviceFeeRepository,
		now:                  time.Now,
		logger:               logger,
	}
}

// CreateServiceFee stores a new fee. A missing status becomes pending.
func (s *serviceFeeService) CreateServiceFee(ctx context.Context, req models.CreateServiceFeeRequest) (models.ServiceFee, error) {
	log := logger.FromContext(ctx)

	fee, err := s.serviceFeeRepository.CreateServiceFee(ctx, req.ToServiceFee())
	if err != nil {
		log.Err(err).Str("func", "*serviceFeeService.CreateServiceFee").Msg("error creating service fee")
		return models.ServiceFee{}, fmt.Errorf("error creating service fee: %w", err)
	}

	log.Info().Int64("service_fee_id", fee.ID).Int64("court_id", fee.CourtID).Str("month", fee.Month).Msg("service fee created")
	return fee, nil
}

func (s *serviceFeeService) GetServiceFee(ctx context.Context, feeID int64) (models.ServiceFee, error) {
	fee, err := s.serviceFeeRepository.GetServiceFee(ctx, feeID)
	if err != nil {
		return models.ServiceFee{}, fmt.Errorf("error getting service fee %d: %w", feeID, err)
	}

	return fee, nil
}

func (s *serviceFeeService) ListServiceFees(ctx context.Context, filter models.ServiceFeeFilter) ([]models.ServiceFee, error) {
	fees, err := s.serviceFeeRepository.ListServiceFees(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing service fees: %w", err)
	}

	return fees, nil
}

// UpdateServiceFeeStatus sets the status by hand. Completing a fee without
// a paid date records the current time as the paid date.
func (s *serviceFeeService) UpdateServiceFeeStatus(ctx context.Context, req models.UpdateFeeStatusRequest) (models.ServiceFee, error) {
	log := logger.FromContext(ctx)

	paidDate := req.PaidDate
	if req.Status == models.FeeStatusCompleted && paidDate == nil {
		now := s.now()
		paidDate = &now
	}

	fee, err := s.serviceFeeRepository.UpdateServiceFeeStatus(ctx, req.ID, req.Status, paidDate)
	if err != nil {
		log.Err(err).Str("func", "*serviceFeeService.UpdateServiceFeeStatus").Int64("service_fee_id", req.ID).Msg("error updating service fee status")
		return models.ServiceFee{}, fmt.Errorf("error updating service fee status: %w", err)
	}

	log.Info().Int64("service_fee_id", fee.ID).Str("status", string(fee.Status)).Msg("service fee status changed")
	return fee, nil
}

func (s *serviceFeeService) DeleteServiceFee(ctx context.Context, feeID int64) error {
	if err := s.serviceFeeRepository.DeleteServiceFee(ctx, feeID); err != nil {
		return fmt.Errorf("error deleting service fee %d: %w", feeID, err)
	}

	return nil
}
