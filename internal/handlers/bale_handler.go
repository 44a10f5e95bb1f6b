package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"lr-backend/internal/models"
	"lr-backend/internal/services"
	"lr-backend/pkg/utils"
)

type BaleHandler struct {
	Service *services.BaleService
}

func NewBaleHandler(service *services.BaleService) *BaleHandler {
	return &BaleHandler{Service: service}
}

func (h *BaleHandler) AcceptBales(w http.ResponseWriter, r *http.Request) {
	var req models.AcceptBalesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.VoucherNumber == "" {
		utils.Error(w, http.StatusBadRequest, "voucher_number is required")
		return
	}

	result, err := h.Service.AcceptBales(r.Context(), req.VoucherNumber, req.BaleNumbers)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message":         fmt.Sprintf("%d bale(s) accepted for voucher '%s'.", result.Updated, req.VoucherNumber),
		"accepted_bales":  result.AcceptedBales,
		"payment_created": result.PaymentCreated,
		"payment_details": result.Payment,
	})
}

func (h *BaleHandler) UpdateBaleQuantity(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateBaleQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.VoucherNumber == "" || req.BaleNumber == "" {
		utils.Error(w, http.StatusBadRequest, "voucher_number and bale_number are required")
		return
	}

	result, err := h.Service.UpdateBaleQuantity(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := map[string]interface{}{
		"message": fmt.Sprintf("Bale '%s' updated successfully.", result.Bale.BaleNumber),
		"updated_bale": map[string]interface{}{
			"bale_number": result.Bale.BaleNumber,
			"quantity":    result.Bale.Quantity,
			"remarks":     result.Bale.Remarks,
		},
		"updated_voucher": map[string]interface{}{
			"voucher_number": result.Voucher.VoucherNumber,
			"total_quantity": result.Voucher.Quantity,
			"total_amount":   result.Voucher.TotalAmount,
			"net_payable":    result.Payable,
		},
	}
	if result.Payment != nil {
		resp["updated_payment"] = map[string]interface{}{
			"bill_no":     result.Payment.BillNo,
			"quantity":    result.Payment.Quantity,
			"net_total":   result.Payment.NetTotal,
			"net_payable": result.Payment.NetPayable,
		}
	}

	utils.JSON(w, http.StatusOK, resp)
}

func (h *BaleHandler) UpdatePaymentQuantity(w http.ResponseWriter, r *http.Request) {
	var req models.QuantitySyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updates, err := h.Service.SyncPaymentQuantity(r.Context(), req.BaleNumbers)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Quantity updated in payment table based on bale numbers.",
		"updated": updates,
	})
}
