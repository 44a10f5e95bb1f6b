package services

import (
	"context"
	"fmt"

	"lr-backend/internal/models"
)

// fakeStore is an in-memory implementation of VoucherStore and BaleStore.
// Payments live in fakePayments; both interfaces declare UpdateQuantity
// with different shapes, so one type cannot carry them both.
type fakeStore struct {
	vouchers map[string]*models.Voucher
	bales    []*models.VoucherBale
}

func newFakeStore() *fakeStore {
	return &fakeStore{vouchers: make(map[string]*models.Voucher)}
}

func (f *fakeStore) addVoucher(voucher *models.Voucher, bales ...*models.VoucherBale) {
	f.vouchers[voucher.VoucherNumber] = voucher
	f.bales = append(f.bales, bales...)
}

func (f *fakeStore) CreateWithBales(_ context.Context, voucher *models.Voucher, bales []models.BaleInput) error {
	if _, ok := f.vouchers[voucher.VoucherNumber]; ok {
		return fmt.Errorf("voucher %s: %w", voucher.VoucherNumber, models.ErrDuplicateVoucher)
	}
	voucher.ID = len(f.vouchers) + 1
	f.vouchers[voucher.VoucherNumber] = voucher
	for _, input := range bales {
		f.bales = append(f.bales, &models.VoucherBale{
			ID:            len(f.bales) + 1,
			VoucherID:     voucher.ID,
			VoucherNumber: voucher.VoucherNumber,
			InvoiceNumber: voucher.InvoiceNumber,
			BaleNumber:    input.BaleNumber,
			Quantity:      input.Quantity,
			Status:        models.BaleStatusRejected,
		})
	}
	return nil
}

func (f *fakeStore) GetByNumber(_ context.Context, voucherNumber string) (*models.Voucher, error) {
	voucher, ok := f.vouchers[voucherNumber]
	if !ok {
		return nil, fmt.Errorf("voucher %s: %w", voucherNumber, models.ErrNotFound)
	}
	return voucher, nil
}

func (f *fakeStore) UpdateTotals(_ context.Context, voucherNumber string, quantity, totalAmount, roundOff float64) error {
	voucher, ok := f.vouchers[voucherNumber]
	if !ok {
		return fmt.Errorf("voucher %s: %w", voucherNumber, models.ErrNotFound)
	}
	voucher.Quantity = quantity
	voucher.TotalAmount = totalAmount
	voucher.RoundOff = roundOff
	return nil
}

func (f *fakeStore) ListDetails(context.Context) ([]*models.VoucherDetails, error) {
	return nil, nil
}

func (f *fakeStore) ListByVoucher(_ context.Context, voucherNumber string) ([]*models.VoucherBale, error) {
	var out []*models.VoucherBale
	for _, bale := range f.bales {
		if bale.VoucherNumber == voucherNumber {
			out = append(out, bale)
		}
	}
	return out, nil
}

func (f *fakeStore) ListAll(context.Context) ([]*models.VoucherBale, error) {
	return f.bales, nil
}

func (f *fakeStore) Get(_ context.Context, voucherNumber, baleNumber string) (*models.VoucherBale, error) {
	for _, bale := range f.bales {
		if bale.VoucherNumber == voucherNumber && bale.BaleNumber == baleNumber {
			return bale, nil
		}
	}
	return nil, fmt.Errorf("bale %s: %w", baleNumber, models.ErrNotFound)
}

func (f *fakeStore) GetByBaleNumber(_ context.Context, baleNumber string) (*models.VoucherBale, error) {
	for _, bale := range f.bales {
		if bale.BaleNumber == baleNumber {
			return bale, nil
		}
	}
	return nil, fmt.Errorf("bale %s: %w", baleNumber, models.ErrNotFound)
}

func (f *fakeStore) Accept(_ context.Context, voucherNumber, baleNumber string) (bool, error) {
	for _, bale := range f.bales {
		if bale.VoucherNumber == voucherNumber && bale.BaleNumber == baleNumber {
			if bale.Status == models.BaleStatusAccepted {
				return false, nil
			}
			bale.Status = models.BaleStatusAccepted
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) UpdateQuantity(_ context.Context, voucherNumber, baleNumber string, quantity float64, remarks string) error {
	for _, bale := range f.bales {
		if bale.VoucherNumber == voucherNumber && bale.BaleNumber == baleNumber {
			bale.Quantity = quantity
			bale.Remarks = remarks
			return nil
		}
	}
	return fmt.Errorf("bale %s: %w", baleNumber, models.ErrNotFound)
}

// fakePayments is an in-memory PaymentStore.
type fakePayments struct {
	payments []*models.Payment
	nextID   int
}

func newFakePayments() *fakePayments {
	return &fakePayments{nextID: 1}
}

func (f *fakePayments) Create(_ context.Context, payment *models.Payment) (bool, error) {
	for _, existing := range f.payments {
		if existing.BillNo == payment.BillNo {
			return false, nil
		}
	}
	payment.ID = f.nextID
	f.nextID++
	f.payments = append(f.payments, payment)
	return true, nil
}

func (f *fakePayments) GetByBillNo(_ context.Context, billNo string) (*models.Payment, error) {
	for _, payment := range f.payments {
		if payment.BillNo == billNo {
			return payment, nil
		}
	}
	return nil, fmt.Errorf("payment %s: %w", billNo, models.ErrNotFound)
}

func (f *fakePayments) HasCompleteForBill(_ context.Context, billNo string) (bool, error) {
	for _, payment := range f.payments {
		if payment.BillNo == billNo && payment.PaymentStatus == models.PaymentStatusComplete {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePayments) ListRecent(context.Context) ([]*models.Payment, error) {
	out := make([]*models.Payment, len(f.payments))
	for i, payment := range f.payments {
		out[len(f.payments)-1-i] = payment
	}
	return out, nil
}

func (f *fakePayments) ListByLROrBill(_ context.Context, lrNumbers, billNumbers []string) ([]*models.Payment, error) {
	match := func(values []string, v string) bool {
		for _, candidate := range values {
			if candidate == v {
				return true
			}
		}
		return false
	}
	var out []*models.Payment
	for _, payment := range f.payments {
		if match(lrNumbers, payment.LRNo) || match(billNumbers, payment.BillNo) {
			out = append(out, payment)
		}
	}
	return out, nil
}

func (f *fakePayments) MarkComplete(_ context.Context, id int) error {
	for _, payment := range f.payments {
		if payment.ID == id {
			payment.PaymentStatus = models.PaymentStatusComplete
			return nil
		}
	}
	return fmt.Errorf("payment %d: %w", id, models.ErrNotFound)
}

func (f *fakePayments) UpdateAmounts(_ context.Context, billNo string, quantity, netTotal, netPayable float64) error {
	for _, payment := range f.payments {
		if payment.BillNo == billNo {
			payment.Quantity = quantity
			payment.NetTotal = netTotal
			payment.NetPayable = netPayable
			return nil
		}
	}
	return fmt.Errorf("payment %s: %w", billNo, models.ErrNotFound)
}

func (f *fakePayments) UpdateQuantity(_ context.Context, billNo string, quantity float64) (bool, error) {
	for _, payment := range f.payments {
		if payment.BillNo == billNo {
			payment.Quantity = quantity
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePayments) ListStatuses(context.Context) ([]*models.PaymentStatusEntry, error) {
	var out []*models.PaymentStatusEntry
	for _, payment := range f.payments {
		out = append(out, &models.PaymentStatusEntry{
			BillNo:        payment.BillNo,
			LRNo:          payment.LRNo,
			PaymentStatus: payment.PaymentStatus,
			NetPayable:    payment.NetPayable,
			CreatedAt:     payment.CreatedAt,
		})
	}
	return out, nil
}
