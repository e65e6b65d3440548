package http

import (
	"net/http"

	"github.com/MKhiriev/court-fund/internal/logger"
	"github.com/MKhiriev/court-fund/internal/utils"
	"github.com/MKhiriev/court-fund/models"
)

func (h *Handler) createServiceFee(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceFeeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid JSON was passed")
		return
	}

	fee, err := h.services.ServiceFeeService.CreateServiceFee(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "error creating service fee")
		return
	}

	utils.WriteJSON(w, fee, http.StatusCreated)
}

func (h *Handler) getServiceFee(w http.ResponseWriter, r *http.Request) {
	feeID, err := pathID(r, "feeID")
	if err != nil {
		writeError(w, r, err, "bad service fee id")
		return
	}

	fee, err := h.services.ServiceFeeService.GetServiceFee(r.Context(), feeID)
	if err != nil {
		writeError(w, r, err, "error getting service fee")
		return
	}

	utils.WriteJSON(w, fee, http.StatusOK)
}

func (h *Handler) listServiceFees(w http.ResponseWriter, r *http.Request) {
	filter, err := parseServiceFeeFilter(r.URL.Query())
	if err != nil {
		writeError(w, r, err, "bad service fee filter")
		return
	}

	fees, err := h.services.ServiceFeeService.ListServiceFees(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, "error listing service fees")
		return
	}

	utils.WriteJSON(w, models.ServiceFeesResponse{ServiceFees: fees, Length: len(fees)}, http.StatusOK)
}

// updateServiceFeeStatus is the only way a fee changes status.
func (h *Handler) updateServiceFeeStatus(w http.ResponseWriter, r *http.Request) {
	feeID, err := pathID(r, "feeID")
	if err != nil {
		writeError(w, r, err, "bad service fee id")
		return
	}

	var req models.UpdateFeeStatusRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid JSON was passed")
		return
	}
	req.ID = feeID

	fee, err := h.services.ServiceFeeService.UpdateServiceFeeStatus(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "error updating service fee status")
		return
	}

	logger.FromRequest(r).Info().Int64("service_fee_id", fee.ID).Str("status", string(fee.Status)).Msg("service fee status updated")

	utils.WriteJSON(w, fee, http.StatusOK)
}

func (h *Handler) deleteServiceFee(w http.ResponseWriter, r *http.Request) {
	feeID, err := pathID(r, "feeID")
	if err != nil {
		writeError(w, r, err, "bad service fee id")
		return
	}

	if err = h.services.ServiceFeeService.DeleteServiceFee(r.Context(), feeID); err != nil {
		writeError(w, r, err, "error deleting service fee")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
