package models

// ReportStatusEntry is one card of the payment-status PDF. CreatedAt is
// an ISO-date-prefixed string as produced by the payment-status listing.
type ReportStatusEntry struct {
	BillNo        string  `json:"bill_no"`
	LRNo          string  `json:"lr_no"`
	TransportName string  `json:"transport_name"`
	PaymentStatus string  `json:"payment_status"`
	NetPayable    float64 `json:"net_payable"`
	CreatedAt     string  `json:"created_at"`
}

type GeneratePDFRequest struct {
	Statuses []ReportStatusEntry `json:"statuses"`
}
