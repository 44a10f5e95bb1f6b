package services

import (
	"context"
	"fmt"
	"time"

	"lr-backend/internal/models"
)

type VoucherService struct {
	Vouchers VoucherStore
	Bales    BaleStore
}

func NewVoucherService(vouchers VoucherStore, bales BaleStore) *VoucherService {
	return &VoucherService{Vouchers: vouchers, Bales: bales}
}

// CreateVoucher persists a voucher header with its bale set. The header
// amounts arrive pre-computed from the caller. Returns the created voucher
// and the number of bales written.
func (s *VoucherService) CreateVoucher(ctx context.Context, req models.CreateVoucherRequest) (*models.Voucher, int, error) {
	billDate, err := time.Parse("2006-01-02", req.BillDate)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid bill_date %q: %v", req.BillDate, err)
	}

	voucher := &models.Voucher{
		VoucherNumber: req.VoucherNumber,
		BillDate:      billDate,
		InvoiceNumber: req.InvoiceNumber,
		PartyName:     req.PartyName,
		TransportID:   req.TransportID,
		LRNumber:      req.LRNumber,
		ItemID:        req.ItemID,
		Quantity:      req.Quantity,
		UnitID:        req.UnitID,
		ActualWeight:  req.ActualWeight,
		ChargedWeight: req.ChargedWeight,
		Rate:          req.Rate,
		Amount:        req.Amount,
		BaseAmount:    req.BaseAmount,
		ExtraCharges:  req.ExtraCharges,
		TotalAmount:   req.TotalAmount,
		RoundOff:      req.RoundOff,
	}

	if err := s.Vouchers.CreateWithBales(ctx, voucher, req.Bales); err != nil {
		return nil, 0, err
	}

	return voucher, len(req.Bales), nil
}

func (s *VoucherService) ListVoucherDetails(ctx context.Context) ([]*models.VoucherDetails, error) {
	return s.Vouchers.ListDetails(ctx)
}

func (s *VoucherService) ListBalesByVoucher(ctx context.Context, voucherNumber string) ([]*models.VoucherBale, error) {
	return s.Bales.ListByVoucher(ctx, voucherNumber)
}

// ListAllBales returns every bale in the system. An empty system is
// reported as ErrNotFound, matching the listing endpoint's 404 contract.
func (s *VoucherService) ListAllBales(ctx context.Context) ([]*models.VoucherBale, error) {
	bales, err := s.Bales.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(bales) == 0 {
		return nil, fmt.Errorf("no bales: %w", models.ErrNotFound)
	}
	return bales, nil
}
