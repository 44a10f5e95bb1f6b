package handlers

import (
	"encoding/json"
	"net/http"

	"lr-backend/internal/models"
	"lr-backend/internal/services"
	"lr-backend/pkg/utils"
)

type PaymentHandler struct {
	Service *services.PaymentService
}

func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: service}
}

// GetRecentPayments lists payments newest first. The listing omits the
// status and quantity columns; the full rows come from GetPaymentsByLR.
func (h *PaymentHandler) GetRecentPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Service.ListRecent(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	rows := make([]map[string]interface{}, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, map[string]interface{}{
			"id":          p.ID,
			"bill_no":     p.BillNo,
			"lr_no":       p.LRNo,
			"amount":      p.Amount,
			"tds_percent": p.TDSPercent,
			"net_total":   p.NetTotal,
			"net_payable": p.NetPayable,
			"created_at":  p.CreatedAt,
		})
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"payments": rows})
}

func (h *PaymentHandler) GetPaymentsByLR(w http.ResponseWriter, r *http.Request) {
	var req models.LRAndBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payments, err := h.Service.ListByLROrBill(r.Context(), req.LRNumbers, req.BillNumbers)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"lr_numbers":   req.LRNumbers,
		"bill_numbers": req.BillNumbers,
		"count":        len(payments),
		"payments":     payments,
	})
}

func (h *PaymentHandler) MarkPaymentsComplete(w http.ResponseWriter, r *http.Request) {
	var req models.LRAndBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.Service.MarkComplete(r.Context(), req.LRNumbers, req.BillNumbers)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"updated_count": len(updated),
		"updated_bills": updated,
		"message":       "Marked payments as Complete.",
	})
}

func (h *PaymentHandler) GetPaymentStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.Service.ListStatuses(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(statuses),
		"statuses": statuses,
	})
}
