package services

import (
	"context"

	"lr-backend/internal/models"
)

// Store interfaces implemented by the pgx repositories. Services depend on
// these so the workflows can be exercised against in-memory fakes.

type TransportStore interface {
	Create(ctx context.Context, transport *models.TransportCompany) error
	List(ctx context.Context) ([]*models.TransportCompany, error)
}

type ItemStore interface {
	Create(ctx context.Context, item *models.Item) error
	List(ctx context.Context) ([]*models.Item, error)
}

type UnitStore interface {
	Create(ctx context.Context, unit *models.QuantityUnit) error
	List(ctx context.Context) ([]*models.QuantityUnit, error)
}

type VoucherStore interface {
	CreateWithBales(ctx context.Context, voucher *models.Voucher, bales []models.BaleInput) error
	GetByNumber(ctx context.Context, voucherNumber string) (*models.Voucher, error)
	UpdateTotals(ctx context.Context, voucherNumber string, quantity, totalAmount, roundOff float64) error
	ListDetails(ctx context.Context) ([]*models.VoucherDetails, error)
}

type BaleStore interface {
	ListByVoucher(ctx context.Context, voucherNumber string) ([]*models.VoucherBale, error)
	ListAll(ctx context.Context) ([]*models.VoucherBale, error)
	Get(ctx context.Context, voucherNumber, baleNumber string) (*models.VoucherBale, error)
	GetByBaleNumber(ctx context.Context, baleNumber string) (*models.VoucherBale, error)
	Accept(ctx context.Context, voucherNumber, baleNumber string) (bool, error)
	UpdateQuantity(ctx context.Context, voucherNumber, baleNumber string, quantity float64, remarks string) error
}

type PaymentStore interface {
	Create(ctx context.Context, payment *models.Payment) (bool, error)
	GetByBillNo(ctx context.Context, billNo string) (*models.Payment, error)
	HasCompleteForBill(ctx context.Context, billNo string) (bool, error)
	ListRecent(ctx context.Context) ([]*models.Payment, error)
	ListByLROrBill(ctx context.Context, lrNumbers, billNumbers []string) ([]*models.Payment, error)
	MarkComplete(ctx context.Context, id int) error
	UpdateAmounts(ctx context.Context, billNo string, quantity, netTotal, netPayable float64) error
	UpdateQuantity(ctx context.Context, billNo string, quantity float64) (bool, error)
	ListStatuses(ctx context.Context) ([]*models.PaymentStatusEntry, error)
}
