package models

// Item is a master catalog entry for goods carried on vouchers.
type Item struct {
	ID         int    `json:"id"`
	ItemNumber string `json:"item_number"`
	ItemName   string `json:"item_name"`
	Quantity   int    `json:"quantity"`
}

type CreateItemRequest struct {
	ItemNumber string `json:"item_number"`
	ItemName   string `json:"item_name"`
	Quantity   int    `json:"quantity"`
}
