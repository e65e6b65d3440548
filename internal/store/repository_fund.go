// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/court-fund/internal/logger"
	"github.com/MKhiriev/court-fund/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

// fundRepository is the SQL implementation of [FundRepository] over the
// "funds" table.
type fundRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewFundRepository(db *DB, logger *logger.Logger) FundRepository {
	logger.Debug().Msg("creating fund repository")
	return &fundRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFund inserts the fund of fund.AdminID.
//
// Constraint violations map to [ErrFundAlreadyExists] (unique admin_id),
// [ErrNegativeBalance] (balance check) and [ErrAdminNotFound] (foreign key).
func (r *fundRepository) CreateFund(ctx context.Context, fund models.Fund) (models.Fund, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateFundQuery(r.db.builder, fund, time.Now())
	if err != nil {
		log.Err(err).Str("func", "*fundRepository.CreateFund").Msg("error building query")
		return models.Fund{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanFund(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*fundRepository.CreateFund").Str("class", r.db.errorClass(err)).Int64("admin_id", fund.AdminID).Msg("error creating fund")
		return models.Fund{}, fundWriteError(err)
	}

	return created, nil
}

func (r *fundRepository) GetFundByAdminID(ctx context.Context, adminID int64) (models.Fund, error) {
	return r.getFund(ctx, "*fundRepository.GetFundByAdminID", sq.Eq{"admin_id": adminID})
}

func (r *fundRepository) GetFundByID(ctx context.Context, fundID int64) (models.Fund, error) {
	return r.getFund(ctx, "*fundRepository.GetFundByID", sq.Eq{"fund_id": fundID})
}

func (r *fundRepository) getFund(ctx context.Context, funcName string, where sq.Eq) (models.Fund, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFundQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.Fund{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	fund, err := scanFund(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Fund{}, ErrFundNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Str("class", r.db.errorClass(err)).Msg("error getting fund")
		return models.Fund{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return fund, nil
}

func (r *fundRepository) ListFunds(ctx context.Context) ([]models.Fund, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFundsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*fundRepository.ListFunds").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*fundRepository.ListFunds").Str("class", r.db.errorClass(err)).Msg("error listing funds")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	funds := make([]models.Fund, 0)
	for rows.Next() {
		fund, scanErr := scanFund(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*fundRepository.ListFunds").Msg("error scanning fund")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		funds = append(funds, fund)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*fundRepository.ListFunds").Msg("error iterating funds")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return funds, nil
}

// AdjustBalance adds delta to the admin's balance in one statement.
// A result below zero is rejected by the table and reported as
// [ErrNegativeBalance]; a missing fund as [ErrFundNotFound].
func (r *fundRepository) AdjustBalance(ctx context.Context, adminID int64, delta decimal.Decimal) (models.Fund, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAdjustBalanceQuery(r.db.builder, adminID, delta, time.Now())
	if err != nil {
		log.Err(err).Str("func", "*fundRepository.AdjustBalance").Msg("error building query")
		return models.Fund{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	fund, err := scanFund(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Fund{}, ErrFundNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*fundRepository.AdjustBalance").
			Str("class", r.db.errorClass(err)).
			Int64("admin_id", adminID).
			Str("delta", delta.String()).
			Msg("error adjusting balance")
		return models.Fund{}, fundWriteError(err)
	}

	return fund, nil
}

func fundWriteError(err error) error {
	switch constraintViolation(err) {
	case uniqueViolation:
		return ErrFundAlreadyExists
	case checkViolation:
		return ErrNegativeBalance
	case rangeViolation:
		return ErrBalanceOutOfRange
	case foreignKeyViolation:
		return ErrAdminNotFound
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}
