package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"lr-backend/internal/models"
	"lr-backend/internal/services"
	"lr-backend/pkg/utils"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

func (h *ReportHandler) GeneratePaymentPDF(w http.ResponseWriter, r *http.Request) {
	var req models.GeneratePDFRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pdf, err := h.Service.GeneratePaymentStatusPDF(req.Statuses)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=payment_status.pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
