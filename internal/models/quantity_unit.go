package models

// QuantityUnit is a unit label such as "kg" or "bags". Labels are unique
// system-wide.
type QuantityUnit struct {
	ID           int    `json:"id"`
	QuantityUnit string `json:"quantity_unit"`
}

type CreateUnitRequest struct {
	QuantityUnit string `json:"quantity_unit"`
}
