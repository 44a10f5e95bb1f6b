package handlers

import (
	"errors"
	"net/http"

	"lr-backend/internal/models"
	"lr-backend/pkg/utils"
)

// writeServiceError maps the service sentinels onto HTTP status codes:
// Conflict 409, NotFound 404, Blocked 422, everything else 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		utils.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrDuplicateVoucher), errors.Is(err, models.ErrDuplicateUnit):
		utils.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrPaymentComplete):
		utils.Error(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}
