package handlers

import (
	"encoding/json"
	"net/http"

	"lr-backend/internal/models"
	"lr-backend/internal/services"
	"lr-backend/pkg/utils"
)

type TransportHandler struct {
	Service *services.TransportService
}

func NewTransportHandler(service *services.TransportService) *TransportHandler {
	return &TransportHandler{Service: service}
}

func (h *TransportHandler) AddTransport(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTransportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transport := &models.TransportCompany{
		TransportName: req.TransportName,
		Address:       req.Address,
		Contact:       req.Contact,
		Rate:          req.Rate,
	}

	if err := h.Service.CreateTransport(r.Context(), transport); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Transport company added",
		"data":    transport,
	})
}

func (h *TransportHandler) GetTransports(w http.ResponseWriter, r *http.Request) {
	transports, err := h.Service.ListTransports(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, transports)
}
