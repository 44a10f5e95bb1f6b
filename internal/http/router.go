package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lr-backend/internal/handlers"
	"lr-backend/pkg/utils"
)

func NewRouter(
	transportHandler *handlers.TransportHandler,
	itemHandler *handlers.ItemHandler,
	unitHandler *handlers.UnitHandler,
	voucherHandler *handlers.VoucherHandler,
	baleHandler *handlers.BaleHandler,
	paymentHandler *handlers.PaymentHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		utils.JSON(w, http.StatusOK, map[string]string{"message": "LR Entry"})
	}).Methods("GET")

	// Master data
	r.HandleFunc("/add-transport", transportHandler.AddTransport).Methods("POST")
	r.HandleFunc("/transports", transportHandler.GetTransports).Methods("GET")
	r.HandleFunc("/add-item", itemHandler.AddItem).Methods("POST")
	r.HandleFunc("/items", itemHandler.GetItems).Methods("GET")
	r.HandleFunc("/add-unit", unitHandler.AddUnit).Methods("POST")
	r.HandleFunc("/units", unitHandler.GetUnits).Methods("GET")

	// Vouchers and bales
	r.HandleFunc("/add-voucher", voucherHandler.AddVoucher).Methods("POST")
	r.HandleFunc("/voucher-bales", voucherHandler.GetVoucherBales).Methods("GET")
	r.HandleFunc("/voucher-details", voucherHandler.GetVoucherDetails).Methods("GET")
	r.HandleFunc("/all-voucher-bales-full", voucherHandler.GetAllBales).Methods("GET")
	r.HandleFunc("/accept-bales", baleHandler.AcceptBales).Methods("PATCH")
	r.HandleFunc("/update-bale-quantity", baleHandler.UpdateBaleQuantity).Methods("PATCH")
	r.HandleFunc("/update-payment-quantity", baleHandler.UpdatePaymentQuantity).Methods("PATCH")

	// Payments
	r.HandleFunc("/payments/recent", paymentHandler.GetRecentPayments).Methods("GET")
	r.HandleFunc("/payments/by-lr", paymentHandler.GetPaymentsByLR).Methods("POST")
	r.HandleFunc("/payments/mark-complete", paymentHandler.MarkPaymentsComplete).Methods("PATCH")
	r.HandleFunc("/payment-status", paymentHandler.GetPaymentStatuses).Methods("GET")

	// Reports
	r.HandleFunc("/generate-payment-pdf", reportHandler.GeneratePaymentPDF).Methods("POST")

	// Health and metrics
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
