package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lr-backend/internal/models"
	"lr-backend/internal/services"
)

// stubUnitStore returns a canned error from Create.
type stubUnitStore struct {
	createErr error
	units     []*models.QuantityUnit
}

func (s *stubUnitStore) Create(context.Context, *models.QuantityUnit) error {
	return s.createErr
}

func (s *stubUnitStore) List(context.Context) ([]*models.QuantityUnit, error) {
	return s.units, nil
}

// stubBaleStore serves a fixed bale list.
type stubBaleStore struct {
	bales []*models.VoucherBale
}

func (s *stubBaleStore) ListByVoucher(_ context.Context, voucherNumber string) ([]*models.VoucherBale, error) {
	var out []*models.VoucherBale
	for _, bale := range s.bales {
		if bale.VoucherNumber == voucherNumber {
			out = append(out, bale)
		}
	}
	return out, nil
}

func (s *stubBaleStore) ListAll(context.Context) ([]*models.VoucherBale, error) {
	return s.bales, nil
}

func (s *stubBaleStore) Get(_ context.Context, voucherNumber, baleNumber string) (*models.VoucherBale, error) {
	for _, bale := range s.bales {
		if bale.VoucherNumber == voucherNumber && bale.BaleNumber == baleNumber {
			return bale, nil
		}
	}
	return nil, fmt.Errorf("bale %s: %w", baleNumber, models.ErrNotFound)
}

func (s *stubBaleStore) GetByBaleNumber(_ context.Context, baleNumber string) (*models.VoucherBale, error) {
	for _, bale := range s.bales {
		if bale.BaleNumber == baleNumber {
			return bale, nil
		}
	}
	return nil, fmt.Errorf("bale %s: %w", baleNumber, models.ErrNotFound)
}

func (s *stubBaleStore) Accept(_ context.Context, voucherNumber, baleNumber string) (bool, error) {
	for _, bale := range s.bales {
		if bale.VoucherNumber == voucherNumber && bale.BaleNumber == baleNumber && bale.Status != models.BaleStatusAccepted {
			bale.Status = models.BaleStatusAccepted
			return true, nil
		}
	}
	return false, nil
}

func (s *stubBaleStore) UpdateQuantity(_ context.Context, voucherNumber, baleNumber string, quantity float64, remarks string) error {
	bale, err := s.Get(context.Background(), voucherNumber, baleNumber)
	if err != nil {
		return err
	}
	bale.Quantity = quantity
	bale.Remarks = remarks
	return nil
}

// stubVoucherStore serves one voucher.
type stubVoucherStore struct {
	voucher *models.Voucher
}

func (s *stubVoucherStore) CreateWithBales(context.Context, *models.Voucher, []models.BaleInput) error {
	return nil
}

func (s *stubVoucherStore) GetByNumber(_ context.Context, voucherNumber string) (*models.Voucher, error) {
	if s.voucher != nil && s.voucher.VoucherNumber == voucherNumber {
		return s.voucher, nil
	}
	return nil, fmt.Errorf("voucher %s: %w", voucherNumber, models.ErrNotFound)
}

func (s *stubVoucherStore) UpdateTotals(context.Context, string, float64, float64, float64) error {
	return nil
}

func (s *stubVoucherStore) ListDetails(context.Context) ([]*models.VoucherDetails, error) {
	return nil, nil
}

// stubPaymentStore flags every bill as having a Complete payment when
// frozen is set.
type stubPaymentStore struct {
	frozen   bool
	payments []*models.Payment
}

func (s *stubPaymentStore) Create(_ context.Context, payment *models.Payment) (bool, error) {
	s.payments = append(s.payments, payment)
	return true, nil
}

func (s *stubPaymentStore) GetByBillNo(_ context.Context, billNo string) (*models.Payment, error) {
	for _, payment := range s.payments {
		if payment.BillNo == billNo {
			return payment, nil
		}
	}
	return nil, fmt.Errorf("payment %s: %w", billNo, models.ErrNotFound)
}

func (s *stubPaymentStore) HasCompleteForBill(context.Context, string) (bool, error) {
	return s.frozen, nil
}

func (s *stubPaymentStore) ListRecent(context.Context) ([]*models.Payment, error) {
	return s.payments, nil
}

func (s *stubPaymentStore) ListByLROrBill(context.Context, []string, []string) ([]*models.Payment, error) {
	return s.payments, nil
}

func (s *stubPaymentStore) MarkComplete(_ context.Context, id int) error {
	for _, payment := range s.payments {
		if payment.ID == id {
			payment.PaymentStatus = models.PaymentStatusComplete
			return nil
		}
	}
	return fmt.Errorf("payment %d: %w", id, models.ErrNotFound)
}

func (s *stubPaymentStore) UpdateAmounts(context.Context, string, float64, float64, float64) error {
	return nil
}

func (s *stubPaymentStore) UpdateQuantity(context.Context, string, float64) (bool, error) {
	return false, nil
}

func (s *stubPaymentStore) ListStatuses(context.Context) ([]*models.PaymentStatusEntry, error) {
	return nil, nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestAddUnitDuplicateIsConflict(t *testing.T) {
	handler := NewUnitHandler(services.NewUnitService(&stubUnitStore{
		createErr: fmt.Errorf("unit kg: %w", models.ErrDuplicateUnit),
	}))

	req := httptest.NewRequest(http.MethodPost, "/add-unit", strings.NewReader(`{"quantity_unit":"kg"}`))
	rec := httptest.NewRecorder()
	handler.AddUnit(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body["error"], "already exists")
}

func TestAddUnitBadBody(t *testing.T) {
	handler := NewUnitHandler(services.NewUnitService(&stubUnitStore{}))

	req := httptest.NewRequest(http.MethodPost, "/add-unit", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	handler.AddUnit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddVoucherBadDate(t *testing.T) {
	handler := NewVoucherHandler(services.NewVoucherService(&stubVoucherStore{}, &stubBaleStore{}))

	req := httptest.NewRequest(http.MethodPost, "/add-voucher",
		strings.NewReader(`{"voucher_number":"V-1001","bill_date":"01/05/2026"}`))
	rec := httptest.NewRecorder()
	handler.AddVoucher(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAllBalesEmptyIsNotFound(t *testing.T) {
	handler := NewVoucherHandler(services.NewVoucherService(&stubVoucherStore{}, &stubBaleStore{}))

	req := httptest.NewRequest(http.MethodGet, "/all-voucher-bales-full", nil)
	rec := httptest.NewRecorder()
	handler.GetAllBales(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetVoucherBalesRequiresParam(t *testing.T) {
	handler := NewVoucherHandler(services.NewVoucherService(&stubVoucherStore{}, &stubBaleStore{}))

	req := httptest.NewRequest(http.MethodGet, "/voucher-bales", nil)
	rec := httptest.NewRecorder()
	handler.GetVoucherBales(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAcceptBalesResponseShape(t *testing.T) {
	voucher := &models.Voucher{ID: 1, VoucherNumber: "V-1001", LRNumber: "LR-77", Quantity: 8, TotalAmount: 80}
	bales := &stubBaleStore{bales: []*models.VoucherBale{
		{ID: 1, VoucherNumber: "V-1001", BaleNumber: "B-1", Quantity: 5, Status: models.BaleStatusRejected},
		{ID: 2, VoucherNumber: "V-1001", BaleNumber: "B-2", Quantity: 3, Status: models.BaleStatusRejected},
	}}
	handler := NewBaleHandler(services.NewBaleService(bales, &stubVoucherStore{voucher: voucher}, &stubPaymentStore{}))

	req := httptest.NewRequest(http.MethodPatch, "/accept-bales",
		strings.NewReader(`{"voucher_number":"V-1001","bale_numbers":["B-1","B-2"]}`))
	rec := httptest.NewRecorder()
	handler.AcceptBales(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "2 bale(s) accepted for voucher 'V-1001'.", body["message"])
	assert.Equal(t, true, body["payment_created"])

	details, ok := body["payment_details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "V-1001", details["bill_no"])
	assert.InDelta(t, 78.4, details["net_payable"].(float64), 1e-9)
}

func TestUpdateBaleQuantityFrozenIsUnprocessable(t *testing.T) {
	bales := &stubBaleStore{bales: []*models.VoucherBale{
		{ID: 1, VoucherNumber: "V-1001", BaleNumber: "B-1", Quantity: 5},
	}}
	handler := NewBaleHandler(services.NewBaleService(bales, &stubVoucherStore{}, &stubPaymentStore{frozen: true}))

	req := httptest.NewRequest(http.MethodPatch, "/update-bale-quantity",
		strings.NewReader(`{"voucher_number":"V-1001","bale_number":"B-1","quantity":6}`))
	rec := httptest.NewRecorder()
	handler.UpdateBaleQuantity(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestMarkPaymentsCompleteEmptySelection(t *testing.T) {
	handler := NewPaymentHandler(services.NewPaymentService(&stubPaymentStore{}))

	req := httptest.NewRequest(http.MethodPatch, "/payments/mark-complete",
		strings.NewReader(`{"lr_numbers":["LR-404"],"bill_numbers":[]}`))
	rec := httptest.NewRecorder()
	handler.MarkPaymentsComplete(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMarkPaymentsCompleteResponse(t *testing.T) {
	store := &stubPaymentStore{payments: []*models.Payment{
		{ID: 1, BillNo: "V-1001", LRNo: "LR-77", PaymentStatus: models.PaymentStatusIncomplete},
	}}
	handler := NewPaymentHandler(services.NewPaymentService(store))

	req := httptest.NewRequest(http.MethodPatch, "/payments/mark-complete",
		strings.NewReader(`{"lr_numbers":[],"bill_numbers":["V-1001"]}`))
	rec := httptest.NewRecorder()
	handler.MarkPaymentsComplete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["updated_count"])
	assert.Equal(t, []interface{}{"V-1001"}, body["updated_bills"])
}

func TestGeneratePaymentPDFHeaders(t *testing.T) {
	handler := NewReportHandler(services.NewReportService("Systaio Logistics Pvt. Ltd.", "Delhi", "support@systaio.com"))

	req := httptest.NewRequest(http.MethodPost, "/generate-payment-pdf",
		strings.NewReader(`{"statuses":[{"bill_no":"V-1001","lr_no":"LR-77","transport_name":"Shree Roadways","payment_status":"Complete","net_payable":78.4,"created_at":"2026-05-01T12:00:00"}]}`))
	rec := httptest.NewRecorder()
	handler.GeneratePaymentPDF(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=payment_status.pdf", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF", rec.Body.String()[:4])
}
