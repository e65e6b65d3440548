// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/court-fund/internal/logger"
	"github.com/MKhiriev/court-fund/internal/utils"
	"github.com/MKhiriev/court-fund/models"
)

// createFund creates the fund of the calling admin. The body is optional;
// a missing balance starts the fund at zero.
func (h *Handler) createFund(w http.ResponseWriter, r *http.Request) {
	adminID, err := callerID(r)
	if err != nil {
		writeError(w, r, err, "no caller identity")
		return
	}

	var req models.CreateFundRequest
	if err = decodeOptionalJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid JSON was passed")
		return
	}

	fund, err := h.services.FundService.CreateFund(r.Context(), adminID, req)
	if err != nil {
		writeError(w, r, err, "error creating fund")
		return
	}

	utils.WriteJSON(w, fund, http.StatusCreated)
}

func (h *Handler) getMyFund(w http.ResponseWriter, r *http.Request) {
	adminID, err := callerID(r)
	if err != nil {
		writeError(w, r, err, "no caller identity")
		return
	}

	fund, err := h.services.FundService.GetFundByAdmin(r.Context(), adminID)
	if err != nil {
		writeError(w, r, err, "error getting fund of admin")
		return
	}

	utils.WriteJSON(w, fund, http.StatusOK)
}

func (h *Handler) getFund(w http.ResponseWriter, r *http.Request) {
	fundID, err := pathID(r, "fundID")
	if err != nil {
		writeError(w, r, err, "bad fund id")
		return
	}

	fund, err := h.services.FundService.GetFund(r.Context(), fundID)
	if err != nil {
		writeError(w, r, err, "error getting fund")
		return
	}

	utils.WriteJSON(w, fund, http.StatusOK)
}

func (h *Handler) listFunds(w http.ResponseWriter, r *http.Request) {
	funds, err := h.services.FundService.ListFunds(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing funds")
		return
	}

	utils.WriteJSON(w, models.FundsResponse{Funds: funds, Length: len(funds)}, http.StatusOK)
}

func (h *Handler) deposit(w http.ResponseWriter, r *http.Request) {
	h.changeBalance(w, r, h.services.FundService.Deposit)
}

func (h *Handler) withdraw(w http.ResponseWriter, r *http.Request) {
	h.changeBalance(w, r, h.services.FundService.Withdraw)
}

// changeBalance runs a deposit or a withdrawal against the caller's fund and
// replies with the updated fund.
func (h *Handler) changeBalance(w http.ResponseWriter, r *http.Request,
	apply func(ctx context.Context, adminID int64, req models.BalanceChangeRequest) (models.Fund, error),
) {
	adminID, err := callerID(r)
	if err != nil {
		writeError(w, r, err, "no caller identity")
		return
	}

	var req models.BalanceChangeRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid JSON was passed")
		return
	}

	fund, err := apply(r.Context(), adminID, req)
	if err != nil {
		writeError(w, r, err, "balance change failed")
		return
	}

	logger.FromRequest(r).Info().
		Int64("fund_id", fund.ID).
		Str("amount", req.Amount.String()).
		Str("balance", fund.Balance.String()).
		Msg("fund balance changed")

	utils.WriteJSON(w, fund, http.StatusOK)
}
