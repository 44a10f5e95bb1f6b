package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lr-backend/internal/models"
)

type BaleRepository struct {
	DB *pgxpool.Pool
}

func NewBaleRepository(db *pgxpool.Pool) *BaleRepository {
	return &BaleRepository{DB: db}
}

func (r *BaleRepository) ListByVoucher(ctx context.Context, voucherNumber string) ([]*models.VoucherBale, error) {
	query := `
		SELECT id, voucher_id, voucher_number, invoice_number, bale_number, remarks, status, quantity
		FROM voucher_bales
		WHERE voucher_number = $1
		ORDER BY id
	`

	rows, err := r.DB.Query(ctx, query, voucherNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBales(rows)
}

func (r *BaleRepository) ListAll(ctx context.Context) ([]*models.VoucherBale, error) {
	query := `
		SELECT id, voucher_id, voucher_number, invoice_number, bale_number, remarks, status, quantity
		FROM voucher_bales
		ORDER BY id
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBales(rows)
}

func (r *BaleRepository) Get(ctx context.Context, voucherNumber, baleNumber string) (*models.VoucherBale, error) {
	query := `
		SELECT id, voucher_id, voucher_number, invoice_number, bale_number, remarks, status, quantity
		FROM voucher_bales
		WHERE voucher_number = $1 AND bale_number = $2
		ORDER BY id
		LIMIT 1
	`

	bale := &models.VoucherBale{}
	err := r.DB.QueryRow(ctx, query, voucherNumber, baleNumber).Scan(
		&bale.ID,
		&bale.VoucherID,
		&bale.VoucherNumber,
		&bale.InvoiceNumber,
		&bale.BaleNumber,
		&bale.Remarks,
		&bale.Status,
		&bale.Quantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("bale %s: %w", baleNumber, models.ErrNotFound)
		}
		return nil, err
	}

	return bale, nil
}

// GetByBaleNumber resolves a bale without voucher scoping. First match
// wins, as in the quantity-sync workflow.
func (r *BaleRepository) GetByBaleNumber(ctx context.Context, baleNumber string) (*models.VoucherBale, error) {
	query := `
		SELECT id, voucher_id, voucher_number, invoice_number, bale_number, remarks, status, quantity
		FROM voucher_bales
		WHERE bale_number = $1
		ORDER BY id
		LIMIT 1
	`

	bale := &models.VoucherBale{}
	err := r.DB.QueryRow(ctx, query, baleNumber).Scan(
		&bale.ID,
		&bale.VoucherID,
		&bale.VoucherNumber,
		&bale.InvoiceNumber,
		&bale.BaleNumber,
		&bale.Remarks,
		&bale.Status,
		&bale.Quantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("bale %s: %w", baleNumber, models.ErrNotFound)
		}
		return nil, err
	}

	return bale, nil
}

// Accept flips one bale to Accepted. Returns false when the bale does not
// exist or is already Accepted, so already-accepted bales are never
// counted twice.
func (r *BaleRepository) Accept(ctx context.Context, voucherNumber, baleNumber string) (bool, error) {
	query := `
		UPDATE voucher_bales
		SET status = $3
		WHERE voucher_number = $1 AND bale_number = $2 AND status <> $3
	`

	tag, err := r.DB.Exec(ctx, query, voucherNumber, baleNumber, models.BaleStatusAccepted)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (r *BaleRepository) UpdateQuantity(ctx context.Context, voucherNumber, baleNumber string, quantity float64, remarks string) error {
	query := `
		UPDATE voucher_bales
		SET quantity = $3, remarks = $4
		WHERE voucher_number = $1 AND bale_number = $2
	`

	tag, err := r.DB.Exec(ctx, query, voucherNumber, baleNumber, quantity, remarks)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bale %s: %w", baleNumber, models.ErrNotFound)
	}

	return nil
}

func scanBales(rows pgx.Rows) ([]*models.VoucherBale, error) {
	var bales []*models.VoucherBale
	for rows.Next() {
		bale := &models.VoucherBale{}
		err := rows.Scan(
			&bale.ID,
			&bale.VoucherID,
			&bale.VoucherNumber,
			&bale.InvoiceNumber,
			&bale.BaleNumber,
			&bale.Remarks,
			&bale.Status,
			&bale.Quantity,
		)
		if err != nil {
			return nil, err
		}
		bales = append(bales, bale)
	}

	return bales, rows.Err()
}
