package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"lr-backend/internal/metrics"
	"lr-backend/internal/models"
)

// TDSPercent is the fixed tax-deducted-at-source percentage withheld from
// a payment's net total.
const TDSPercent = 2.0

type BaleService struct {
	Bales    BaleStore
	Vouchers VoucherStore
	Payments PaymentStore

	// now is swappable in tests.
	now func() time.Time
}

func NewBaleService(bales BaleStore, vouchers VoucherStore, payments PaymentStore) *BaleService {
	return &BaleService{
		Bales:    bales,
		Vouchers: vouchers,
		Payments: payments,
		now:      time.Now,
	}
}

// AcceptResult reports the outcome of an acceptance request: how many
// bales actually transitioned, the input echoed back, and the payment if
// full acceptance was reached on this call.
type AcceptResult struct {
	Updated        int
	AcceptedBales  []string
	Payment        *models.Payment
	PaymentCreated bool
}

// AcceptBales flips the listed bales to Accepted. Bales that are missing
// or already Accepted are skipped and not counted. When the voucher's
// entire bale set is Accepted afterwards, a payment is derived from the
// voucher totals; the unique bill_no keeps reruns from creating a second
// one.
func (s *BaleService) AcceptBales(ctx context.Context, voucherNumber string, baleNumbers []string) (*AcceptResult, error) {
	result := &AcceptResult{AcceptedBales: baleNumbers}

	for _, baleNumber := range baleNumbers {
		updated, err := s.Bales.Accept(ctx, voucherNumber, baleNumber)
		if err != nil {
			return nil, fmt.Errorf("accept bale %s: %w", baleNumber, err)
		}
		if updated {
			result.Updated++
		}
	}

	allBales, err := s.Bales.ListByVoucher(ctx, voucherNumber)
	if err != nil {
		return nil, err
	}

	allAccepted := len(allBales) > 0
	for _, bale := range allBales {
		if bale.Status != models.BaleStatusAccepted {
			allAccepted = false
			break
		}
	}
	if !allAccepted {
		return result, nil
	}

	voucher, err := s.Vouchers.GetByNumber(ctx, voucherNumber)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return result, nil
		}
		return nil, err
	}

	netTotal := voucher.TotalAmount
	netPayable := netTotal - netTotal*TDSPercent/100

	payment := &models.Payment{
		BillNo:        voucher.VoucherNumber,
		LRNo:          voucher.LRNumber,
		Amount:        voucher.TotalAmount,
		TDSPercent:    TDSPercent,
		NetTotal:      netTotal,
		NetPayable:    netPayable,
		PaymentStatus: models.PaymentStatusIncomplete,
		Quantity:      voucher.Quantity,
		CreatedAt:     s.now().UTC(),
	}

	created, err := s.Payments.Create(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("create payment for %s: %w", voucherNumber, err)
	}
	if created {
		metrics.PaymentsCreatedTotal.Inc()
		result.Payment = payment
		result.PaymentCreated = true
	}

	return result, nil
}

// ReconcileResult reports a bale quantity correction and the voucher and
// payment figures recomputed from it.
type ReconcileResult struct {
	Bale    *models.VoucherBale
	Voucher *models.Voucher
	Payable float64
	Payment *models.Payment
}

// UpdateBaleQuantity sets one bale's quantity and remarks, then
// reconciles the voucher: aggregate quantity is the sum over all of its
// bales, total_amount = quantity x rate, round_off is the rounding
// residual. An existing payment mirrors the new figures: net_payable
// becomes the rounded total, without reapplying TDS. A Complete payment
// freezes the bale set and the update is refused.
func (s *BaleService) UpdateBaleQuantity(ctx context.Context, req models.UpdateBaleQuantityRequest) (*ReconcileResult, error) {
	frozen, err := s.Payments.HasCompleteForBill(ctx, req.VoucherNumber)
	if err != nil {
		return nil, err
	}
	if frozen {
		return nil, fmt.Errorf("voucher %s: %w", req.VoucherNumber, models.ErrPaymentComplete)
	}

	bale, err := s.Bales.Get(ctx, req.VoucherNumber, req.BaleNumber)
	if err != nil {
		return nil, err
	}

	if err := s.Bales.UpdateQuantity(ctx, req.VoucherNumber, req.BaleNumber, req.Quantity, req.Remarks); err != nil {
		return nil, err
	}
	bale.Quantity = req.Quantity
	bale.Remarks = req.Remarks

	allBales, err := s.Bales.ListByVoucher(ctx, req.VoucherNumber)
	if err != nil {
		return nil, err
	}
	totalQuantity := 0.0
	for _, b := range allBales {
		totalQuantity += b.Quantity
	}

	voucher, err := s.Vouchers.GetByNumber(ctx, req.VoucherNumber)
	if err != nil {
		return nil, err
	}

	totalAmount := totalQuantity * voucher.Rate
	roundOff := math.Round(totalAmount) - totalAmount
	payable := math.Round(totalAmount)

	if err := s.Vouchers.UpdateTotals(ctx, req.VoucherNumber, totalQuantity, totalAmount, roundOff); err != nil {
		return nil, err
	}
	voucher.Quantity = totalQuantity
	voucher.TotalAmount = totalAmount
	voucher.RoundOff = roundOff

	result := &ReconcileResult{Bale: bale, Voucher: voucher, Payable: payable}

	payment, err := s.Payments.GetByBillNo(ctx, req.VoucherNumber)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return result, nil
		}
		return nil, err
	}

	if err := s.Payments.UpdateAmounts(ctx, req.VoucherNumber, totalQuantity, totalAmount, payable); err != nil {
		return nil, err
	}
	payment.Quantity = totalQuantity
	payment.NetTotal = totalAmount
	payment.NetPayable = payable
	result.Payment = payment

	return result, nil
}

// SyncPaymentQuantity tallies the input bale numbers per owning voucher
// and overwrites each matching payment's quantity with its tally, a
// count of bales, not a sum of bale quantity. Vouchers without a payment
// are skipped.
func (s *BaleService) SyncPaymentQuantity(ctx context.Context, baleNumbers []string) ([]models.QuantitySyncUpdate, error) {
	tally := make(map[string]int)
	var order []string

	for _, baleNumber := range baleNumbers {
		bale, err := s.Bales.GetByBaleNumber(ctx, baleNumber)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if _, seen := tally[bale.VoucherNumber]; !seen {
			order = append(order, bale.VoucherNumber)
		}
		tally[bale.VoucherNumber]++
	}

	updates := []models.QuantitySyncUpdate{}
	for _, voucherNumber := range order {
		count := tally[voucherNumber]
		updated, err := s.Payments.UpdateQuantity(ctx, voucherNumber, float64(count))
		if err != nil {
			return nil, err
		}
		if updated {
			updates = append(updates, models.QuantitySyncUpdate{
				BillNo:          voucherNumber,
				UpdatedQuantity: count,
			})
		}
	}

	return updates, nil
}
