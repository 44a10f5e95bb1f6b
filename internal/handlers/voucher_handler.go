package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"lr-backend/internal/models"
	"lr-backend/internal/services"
	"lr-backend/pkg/utils"
)

type VoucherHandler struct {
	Service *services.VoucherService
}

func NewVoucherHandler(service *services.VoucherService) *VoucherHandler {
	return &VoucherHandler{Service: service}
}

func (h *VoucherHandler) AddVoucher(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if _, err := time.Parse("2006-01-02", req.BillDate); err != nil {
		utils.Error(w, http.StatusBadRequest, "bill_date must be formatted YYYY-MM-DD")
		return
	}

	voucher, baleCount, err := h.Service.CreateVoucher(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Voucher and bales added successfully.",
		"data": map[string]interface{}{
			"voucher_number": voucher.VoucherNumber,
			"total_bales":    baleCount,
		},
	})
}

func (h *VoucherHandler) GetVoucherBales(w http.ResponseWriter, r *http.Request) {
	voucherNumber := r.URL.Query().Get("voucher_number")
	if voucherNumber == "" {
		utils.Error(w, http.StatusBadRequest, "voucher_number parameter required")
		return
	}

	bales, err := h.Service.ListBalesByVoucher(r.Context(), voucherNumber)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"voucher_number": voucherNumber,
		"count":          len(bales),
		"bales":          bales,
	})
}

func (h *VoucherHandler) GetVoucherDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.Service.ListVoucherDetails(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(details),
		"vouchers": details,
	})
}

func (h *VoucherHandler) GetAllBales(w http.ResponseWriter, r *http.Request) {
	bales, err := h.Service.ListAllBales(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"total_bales": len(bales),
		"bales":       bales,
	})
}
