package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/court-fund/internal/logger"
	"github.com/MKhiriev/court-fund/models"
)

// serviceFeeRepository is the SQL implementation of [ServiceFeeRepository]
// over the "service_fees" table.
type serviceFeeRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewServiceFeeRepository(db *DB, logger *logger.Logger) ServiceFeeRepository {
	logger.Debug().Msg("creating service fee repository")
	return &serviceFeeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *serviceFeeRepository) CreateServiceFee(ctx context.Context, fee models.ServiceFee) (models.ServiceFee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateServiceFeeQuery(r.db.builder, fee, time.Now())
	if err != nil {
		log.Err(err).Str("func", "*serviceFeeRepository.CreateServiceFee").Msg("error building query")
		return models.ServiceFee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanServiceFee(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*serviceFeeRepository.CreateServiceFee").Str("class", r.db.errorClass(err)).Int64("court_id", fee.CourtID).Msg("error creating service fee")
		return models.ServiceFee{}, serviceFeeWriteError(err)
	}

	return created, nil
}

func (r *serviceFeeRepository) GetServiceFee(ctx context.Context, feeID int64) (models.ServiceFee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectServiceFeeQuery(r.db.builder, feeID)
	if err != nil {
		log.Err(err).Str("func", "*serviceFeeRepository.GetServiceFee").Msg("error building query")
		return models.ServiceFee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	fee, err := scanServiceFee(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ServiceFee{}, ErrServiceFeeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*serviceFeeRepository.GetServiceFee").Str("class", r.db.errorClass(err)).Int64("service_fee_id", feeID).Msg("error getting service fee")
		return models.ServiceFee{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return fee, nil
}

func (r *serviceFeeRepository) ListServiceFees(ctx context.Context, filter models.ServiceFeeFilter) ([]models.ServiceFee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListServiceFeesQuery(r.db.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*serviceFeeRepository.ListServiceFees").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*serviceFeeRepository.ListServiceFees").Str("class", r.db.errorClass(err)).Msg("error listing service fees")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	fees := make([]models.ServiceFee, 0)
	for rows.Next() {
		fee, scanErr := scanServiceFee(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*serviceFeeRepository.ListServiceFees").Msg("error scanning service fee")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		fees = append(fees, fee)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*serviceFeeRepository.ListServiceFees").Msg("error iterating service fees")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return fees, nil
}

func (r *serviceFeeRepository) UpdateServiceFeeStatus(ctx context.Context, feeID int64, status models.FeeStatus, paidDate *time.Time) (models.ServiceFee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateServiceFeeStatusQuery(r.db.builder, feeID, status, paidDate)
	if err != nil {
		log.Err(err).Str("func", "*serviceFeeRepository.UpdateServiceFeeStatus").Msg("error building query")
		return models.ServiceFee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	fee, err := scanServiceFee(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ServiceFee{}, ErrServiceFeeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*serviceFeeRepository.UpdateServiceFeeStatus").Str("class", r.db.errorClass(err)).Int64("service_fee_id", feeID).Msg("error updating service fee status")
		return models.ServiceFee{}, serviceFeeWriteError(err)
	}

	return fee, nil
}

func (r *serviceFeeRepository) DeleteServiceFee(ctx context.Context, feeID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteServiceFeeQuery(r.db.builder, feeID)
	if err != nil {
		log.Err(err).Str("func", "*serviceFeeRepository.DeleteServiceFee").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*serviceFeeRepository.DeleteServiceFee").Str("class", r.db.errorClass(err)).Int64("service_fee_id", feeID).Msg("error deleting service fee")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrServiceFeeNotFound
	}

	return nil
}

func serviceFeeWriteError(err error) error {
	switch constraintViolation(err) {
	case checkViolation, notNullViolation, rangeViolation:
		return fmt.Errorf("%w: %w", ErrInvalidServiceFee, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}
