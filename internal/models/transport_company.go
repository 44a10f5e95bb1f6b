package models

// TransportCompany is a master catalog entry for a carrier.
// Companies are created once and referenced by vouchers; there is no
// update endpoint.
type TransportCompany struct {
	ID            int     `json:"id"`
	TransportName string  `json:"transport_name"`
	Address       string  `json:"address"`
	Contact       string  `json:"contact"`
	Rate          float64 `json:"rate"`
}

type CreateTransportRequest struct {
	TransportName string  `json:"transport_name"`
	Address       string  `json:"address"`
	Contact       string  `json:"contact"`
	Rate          float64 `json:"rate"`
}
