package models

import "time"

// Bale statuses. A bale starts Rejected and is flipped to Accepted by the
// acceptance workflow; there is no path back.
const (
	BaleStatusRejected = "Rejected"
	BaleStatusAccepted = "Accepted"
)

// Voucher is a shipment bill. voucher_number and invoice_number are unique
// system-wide. The header amounts arrive pre-computed from the caller;
// only quantity, total_amount and round_off are recomputed later by the
// reconciliation workflow.
type Voucher struct {
	ID            int       `json:"id"`
	VoucherNumber string    `json:"voucher_number"`
	BillDate      time.Time `json:"bill_date"`
	InvoiceNumber string    `json:"invoice_number"`
	PartyName     string    `json:"party_name"`
	TransportID   int       `json:"transport_id"`
	LRNumber      string    `json:"lr_number"`
	ItemID        int       `json:"item_id"`
	Quantity      float64   `json:"quantity"`
	UnitID        int       `json:"unit_id"`
	ActualWeight  float64   `json:"actual_weight"`
	ChargedWeight float64   `json:"charged_weight"`
	Rate          float64   `json:"rate"`
	Amount        float64   `json:"amount"`
	BaseAmount    float64   `json:"base_amount"`
	ExtraCharges  float64   `json:"extra_charges"`
	TotalAmount   float64   `json:"total_amount"`
	RoundOff      float64   `json:"round_off"`
}

// VoucherBale is one physical bale line within a voucher. voucher_number
// and invoice_number are denormalized copies of the parent.
type VoucherBale struct {
	ID            int     `json:"id"`
	VoucherID     int     `json:"voucher_id"`
	VoucherNumber string  `json:"voucher_number"`
	InvoiceNumber string  `json:"invoice_number"`
	BaleNumber    string  `json:"bale_number"`
	Remarks       string  `json:"remarks"`
	Status        string  `json:"status"`
	Quantity      float64 `json:"quantity"`
}

// BaleInput is one bale line in a voucher creation request.
type BaleInput struct {
	BaleNumber string  `json:"bale_number"`
	Quantity   float64 `json:"quantity"`
}

type CreateVoucherRequest struct {
	VoucherNumber string      `json:"voucher_number"`
	BillDate      string      `json:"bill_date"`
	InvoiceNumber string      `json:"invoice_number"`
	PartyName     string      `json:"party_name"`
	TransportID   int         `json:"transport_id"`
	LRNumber      string      `json:"lr_number"`
	ItemID        int         `json:"item_id"`
	Quantity      float64     `json:"quantity"`
	UnitID        int         `json:"unit_id"`
	ActualWeight  float64     `json:"actual_weight"`
	ChargedWeight float64     `json:"charged_weight"`
	Rate          float64     `json:"rate"`
	Amount        float64     `json:"amount"`
	BaseAmount    float64     `json:"base_amount"`
	ExtraCharges  float64     `json:"extra_charges"`
	TotalAmount   float64     `json:"total_amount"`
	RoundOff      float64     `json:"round_off"`
	Bales         []BaleInput `json:"bales"`
}

type AcceptBalesRequest struct {
	VoucherNumber string   `json:"voucher_number"`
	BaleNumbers   []string `json:"bale_numbers"`
}

// UpdateBaleQuantityRequest carries a quantity correction for one bale.
// Remarks is free text, e.g. "Excess Quantity", "Less Quantity", "Normal".
type UpdateBaleQuantityRequest struct {
	VoucherNumber string  `json:"voucher_number"`
	BaleNumber    string  `json:"bale_number"`
	Quantity      float64 `json:"quantity"`
	Remarks       string  `json:"remarks"`
}

type QuantitySyncRequest struct {
	BaleNumbers []string `json:"bale_numbers"`
}

// VoucherTransport, VoucherItem and VoucherUnit are the joined master-data
// slices embedded in the voucher-details view.
type VoucherTransport struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

type VoucherItem struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	ItemNumber string `json:"item_number"`
}

type VoucherUnit struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// VoucherDetails is the joined voucher + transport + item + unit + bales
// view returned by GET /voucher-details.
type VoucherDetails struct {
	VoucherNumber string            `json:"voucher_number"`
	BillDate      time.Time         `json:"bill_date"`
	InvoiceNumber string            `json:"invoice_number"`
	PartyName     string            `json:"party_name"`
	LRNumber      string            `json:"lr_number"`
	Quantity      float64           `json:"quantity"`
	ActualWeight  float64           `json:"actual_weight"`
	ChargedWeight float64           `json:"charged_weight"`
	Rate          float64           `json:"rate"`
	Amount        float64           `json:"amount"`
	BaseAmount    float64           `json:"base_amount"`
	ExtraCharges  float64           `json:"extra_charges"`
	TotalAmount   float64           `json:"total_amount"`
	RoundOff      float64           `json:"round_off"`
	Transport     *VoucherTransport `json:"transport"`
	Item          *VoucherItem      `json:"item"`
	Unit          *VoucherUnit      `json:"unit"`
	Bales         []BaleSummary     `json:"bales"`
}

// BaleSummary is the trimmed bale line embedded in voucher-details.
type BaleSummary struct {
	ID         int     `json:"id"`
	BaleNumber string  `json:"bale_number"`
	Quantity   float64 `json:"quantity"`
	Status     string  `json:"status"`
}
