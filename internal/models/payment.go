package models

import "time"

// Payment statuses. The transition Incomplete -> Complete is monotonic.
const (
	PaymentStatusIncomplete = "Incomplete"
	PaymentStatusComplete   = "Complete"
)

// Payment is the record derived from a voucher once all of its bales are
// Accepted. bill_no equals the voucher_number and is unique, which is what
// keeps the acceptance workflow from ever creating a second payment for
// the same voucher.
type Payment struct {
	ID            int       `json:"id"`
	BillNo        string    `json:"bill_no"`
	LRNo          string    `json:"lr_no"`
	Amount        float64   `json:"amount"`
	TDSPercent    float64   `json:"tds_percent"`
	NetTotal      float64   `json:"net_total"`
	NetPayable    float64   `json:"net_payable"`
	PaymentStatus string    `json:"payment_status"`
	Quantity      float64   `json:"quantity"`
	CreatedAt     time.Time `json:"created_at"`
}

// LRAndBillRequest selects payments whose lr_no is in LRNumbers or whose
// bill_no is in BillNumbers.
type LRAndBillRequest struct {
	LRNumbers   []string `json:"lr_numbers"`
	BillNumbers []string `json:"bill_numbers"`
}

// PaymentStatusEntry is one row of the payment-status listing, joined with
// the voucher's transport company.
type PaymentStatusEntry struct {
	BillNo        string    `json:"bill_no"`
	LRNo          string    `json:"lr_no"`
	PaymentStatus string    `json:"payment_status"`
	NetPayable    float64   `json:"net_payable"`
	CreatedAt     time.Time `json:"created_at"`
	TransportName string    `json:"transport_name"`
}

// QuantitySyncUpdate reports one payment whose quantity was overwritten by
// the bale-count sync.
type QuantitySyncUpdate struct {
	BillNo          string `json:"bill_no"`
	UpdatedQuantity int    `json:"updated_quantity"`
}
