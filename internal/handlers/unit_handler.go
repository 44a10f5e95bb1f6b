package handlers

import (
	"encoding/json"
	"net/http"

	"lr-backend/internal/models"
	"lr-backend/internal/services"
	"lr-backend/pkg/utils"
)

type UnitHandler struct {
	Service *services.UnitService
}

func NewUnitHandler(service *services.UnitService) *UnitHandler {
	return &UnitHandler{Service: service}
}

func (h *UnitHandler) AddUnit(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	unit := &models.QuantityUnit{QuantityUnit: req.QuantityUnit}

	if err := h.Service.CreateUnit(r.Context(), unit); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Quantity unit added",
		"data":    unit,
	})
}

func (h *UnitHandler) GetUnits(w http.ResponseWriter, r *http.Request) {
	units, err := h.Service.ListUnits(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, units)
}
