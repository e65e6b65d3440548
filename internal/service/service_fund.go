// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/court-fund/internal/logger"
	"github.com/MKhiriev/court-fund/internal/store"
	"github.com/MKhiriev/court-fund/models"
	"github.com/shopspring/decimal"
)

type fundService struct {
	fundRepository store.FundRepository
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewFundService(fundRepository store.FundRepository, userRepository store.UserRepository, logger *logger.Logger) FundService {
	return &fundService{
		fundRepository: fundRepository,
		userRepository: userRepository,
		logger:         logger,
	}
}

// CreateFund opens the fund of adminID with the optional initial balance.
// The owner must exist and carry the admin role.
func (s *fundService) CreateFund(ctx context.Context, adminID int64, req models.CreateFundRequest) (models.Fund, error) {
	log := logger.FromContext(ctx)

	admin, err := s.userRepository.FindUserByID(ctx, adminID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Fund{}, store.ErrAdminNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*fundService.CreateFund").Int64("admin_id", adminID).Msg("error finding fund owner")
		return models.Fund{}, fmt.Errorf("error finding fund owner: %w", err)
	}
	if !admin.IsAdmin() {
		log.Warn().Int64("user_id", adminID).Msg("fund requested for a non-admin user")
		return models.Fund{}, ErrNotAnAdmin
	}

	balance := decimal.Zero
	if req.Balance != nil {
		balance = *req.Balance
	}

	fund, err := s.fundRepository.CreateFund(ctx, models.Fund{AdminID: adminID, Balance: balance})
	if err != nil {
		log.Err(err).Str("func", "*fundService.CreateFund").Int64("admin_id", adminID).Msg("error creating fund")
		return models.Fund{}, fmt.Errorf("error creating fund: %w", err)
	}

	log.Info().Int64("fund_id", fund.ID).Int64("admin_id", adminID).Msg("fund created")
	return fund, nil
}

func (s *fundService) GetFundByAdmin(ctx context.Context, adminID int64) (models.Fund, error) {
	fund, err := s.fundRepository.GetFundByAdminID(ctx, adminID)
	if err != nil {
		return models.Fund{}, fmt.Errorf("error getting fund of admin %d: %w", adminID, err)
	}

	return fund, nil
}

func (s *fundService) GetFund(ctx context.Context, fundID int64) (models.Fund, error) {
	fund, err := s.fundRepository.GetFundByID(ctx, fundID)
	if err != nil {
		return models.Fund{}, fmt.Errorf("error getting fund %d: %w", fundID, err)
	}

	return fund, nil
}

func (s *fundService) ListFunds(ctx context.Context) ([]models.Fund, error) {
	funds, err := s.fundRepository.ListFunds(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing funds: %w", err)
	}

	return funds, nil
}

func (s *fundService) Deposit(ctx context.Context, adminID int64, req models.BalanceChangeRequest) (models.Fund, error) {
	return s.adjust(ctx, adminID, req.Amount)
}

// Withdraw fails with store.ErrNegativeBalance when the fund holds less
// than the requested amount.
func (s *fundService) Withdraw(ctx context.Context, adminID int64, req models.BalanceChangeRequest) (models.Fund, error) {
	return s.adjust(ctx, adminID, req.Amount.Neg())
}

func (s *fundService) adjust(ctx context.Context, adminID int64, delta decimal.Decimal) (models.Fund, error) {
	log := logger.FromContext(ctx)

	fund, err := s.fundRepository.AdjustBalance(ctx, adminID, delta)
	if err != nil {
		log.Err(err).Str("func", "*fundService.adjust").Int64("admin_id", adminID).Str("delta", delta.String()).Msg("balance change rejected")
		return models.Fund{}, fmt.Errorf("error changing balance: %w", err)
	}

	log.Info().Int64("fund_id", fund.ID).Str("delta", delta.String()).Str("balance", fund.Balance.String()).Msg("balance changed")
	return fund, nil
}
