package models

import "errors"

// Sentinel errors shared by repositories and services. Handlers map them
// to HTTP status codes with errors.Is.
var (
	// ErrNotFound covers missing vouchers, bales and payments, and empty
	// result sets on the status listings.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateVoucher is returned when a voucher_number or
	// invoice_number already exists.
	ErrDuplicateVoucher = errors.New("voucher number already exists")

	// ErrDuplicateUnit is returned on a duplicate quantity unit label.
	ErrDuplicateUnit = errors.New("quantity unit already exists")

	// ErrPaymentComplete blocks bale mutations once the voucher's payment
	// has been marked Complete.
	ErrPaymentComplete = errors.New("payment already marked as Complete")
)
