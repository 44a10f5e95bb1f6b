package handlers

import (
	"encoding/json"
	"net/http"

	"lr-backend/internal/models"
	"lr-backend/internal/services"
	"lr-backend/pkg/utils"
)

type ItemHandler struct {
	Service *services.ItemService
}

func NewItemHandler(service *services.ItemService) *ItemHandler {
	return &ItemHandler{Service: service}
}

func (h *ItemHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item := &models.Item{
		ItemNumber: req.ItemNumber,
		ItemName:   req.ItemName,
		Quantity:   req.Quantity,
	}

	if err := h.Service.CreateItem(r.Context(), item); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Item added",
		"data":    item,
	})
}

func (h *ItemHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListItems(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, items)
}
