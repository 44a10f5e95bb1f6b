package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"lr-backend/internal/models"
)

type VoucherRepository struct {
	DB *pgxpool.Pool
}

func NewVoucherRepository(db *pgxpool.Pool) *VoucherRepository {
	return &VoucherRepository{DB: db}
}

// CreateWithBales inserts the voucher and its bale set in one transaction.
// Every bale starts as Rejected and inherits the parent's voucher_number
// and invoice_number. A duplicate voucher_number or invoice_number returns
// ErrDuplicateVoucher and nothing is written.
func (r *VoucherRepository) CreateWithBales(ctx context.Context, voucher *models.Voucher, bales []models.BaleInput) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	voucherQuery := `
		INSERT INTO vouchers (voucher_number, bill_date, invoice_number, party_name, transport_id,
		                      lr_number, item_id, quantity, unit_id, actual_weight, charged_weight,
		                      rate, amount, base_amount, extra_charges, total_amount, round_off)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`

	err = tx.QueryRow(ctx, voucherQuery,
		voucher.VoucherNumber,
		voucher.BillDate,
		voucher.InvoiceNumber,
		voucher.PartyName,
		voucher.TransportID,
		voucher.LRNumber,
		voucher.ItemID,
		voucher.Quantity,
		voucher.UnitID,
		voucher.ActualWeight,
		voucher.ChargedWeight,
		voucher.Rate,
		voucher.Amount,
		voucher.BaseAmount,
		voucher.ExtraCharges,
		voucher.TotalAmount,
		voucher.RoundOff,
	).Scan(&voucher.ID)
	if err != nil {
		return translateDuplicateVoucher(err)
	}

	baleQuery := `
		INSERT INTO voucher_bales (voucher_id, voucher_number, invoice_number, bale_number, quantity, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, bale := range bales {
		_, err := tx.Exec(ctx, baleQuery,
			voucher.ID,
			voucher.VoucherNumber,
			voucher.InvoiceNumber,
			bale.BaleNumber,
			bale.Quantity,
			models.BaleStatusRejected,
		)
		if err != nil {
			return translateDuplicateVoucher(err)
		}
	}

	return tx.Commit(ctx)
}

func (r *VoucherRepository) GetByNumber(ctx context.Context, voucherNumber string) (*models.Voucher, error) {
	query := `
		SELECT id, voucher_number, bill_date, invoice_number, party_name,
		       COALESCE(transport_id, 0), lr_number, COALESCE(item_id, 0), quantity,
		       COALESCE(unit_id, 0), actual_weight, charged_weight, rate, amount,
		       base_amount, extra_charges, total_amount, round_off
		FROM vouchers
		WHERE voucher_number = $1
	`

	voucher := &models.Voucher{}
	err := r.DB.QueryRow(ctx, query, voucherNumber).Scan(
		&voucher.ID,
		&voucher.VoucherNumber,
		&voucher.BillDate,
		&voucher.InvoiceNumber,
		&voucher.PartyName,
		&voucher.TransportID,
		&voucher.LRNumber,
		&voucher.ItemID,
		&voucher.Quantity,
		&voucher.UnitID,
		&voucher.ActualWeight,
		&voucher.ChargedWeight,
		&voucher.Rate,
		&voucher.Amount,
		&voucher.BaseAmount,
		&voucher.ExtraCharges,
		&voucher.TotalAmount,
		&voucher.RoundOff,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("voucher %s: %w", voucherNumber, models.ErrNotFound)
		}
		return nil, err
	}

	return voucher, nil
}

// UpdateTotals persists the reconciliation results: the aggregate bale
// quantity and the recomputed total_amount and round_off.
func (r *VoucherRepository) UpdateTotals(ctx context.Context, voucherNumber string, quantity, totalAmount, roundOff float64) error {
	query := `
		UPDATE vouchers
		SET quantity = $2, total_amount = $3, round_off = $4
		WHERE voucher_number = $1
	`

	_, err := r.DB.Exec(ctx, query, voucherNumber, quantity, totalAmount, roundOff)
	return err
}

// ListDetails returns every voucher joined with its transport company,
// item, unit and bale lines.
func (r *VoucherRepository) ListDetails(ctx context.Context) ([]*models.VoucherDetails, error) {
	query := `
		SELECT v.voucher_number, v.bill_date, v.invoice_number, v.party_name, v.lr_number,
		       v.quantity, v.actual_weight, v.charged_weight, v.rate, v.amount,
		       v.base_amount, v.extra_charges, v.total_amount, v.round_off,
		       t.id, t.transport_name, t.rate,
		       i.id, i.item_name, i.item_number,
		       u.id, u.quantity_unit
		FROM vouchers v
		LEFT JOIN transport_companies t ON v.transport_id = t.id
		LEFT JOIN items i ON v.item_id = i.id
		LEFT JOIN quantity_units u ON v.unit_id = u.id
		ORDER BY v.id
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []*models.VoucherDetails
	for rows.Next() {
		d := &models.VoucherDetails{}
		var (
			transportID   *int
			transportName *string
			transportRate *float64
			itemID        *int
			itemName      *string
			itemNumber    *string
			unitID        *int
			unitName      *string
		)

		err := rows.Scan(
			&d.VoucherNumber,
			&d.BillDate,
			&d.InvoiceNumber,
			&d.PartyName,
			&d.LRNumber,
			&d.Quantity,
			&d.ActualWeight,
			&d.ChargedWeight,
			&d.Rate,
			&d.Amount,
			&d.BaseAmount,
			&d.ExtraCharges,
			&d.TotalAmount,
			&d.RoundOff,
			&transportID,
			&transportName,
			&transportRate,
			&itemID,
			&itemName,
			&itemNumber,
			&unitID,
			&unitName,
		)
		if err != nil {
			return nil, err
		}

		if transportID != nil {
			d.Transport = &models.VoucherTransport{ID: *transportID, Name: *transportName, Rate: *transportRate}
		}
		if itemID != nil {
			d.Item = &models.VoucherItem{ID: *itemID, Name: *itemName, ItemNumber: *itemNumber}
		}
		if unitID != nil {
			d.Unit = &models.VoucherUnit{ID: *unitID, Name: *unitName}
		}
		d.Bales = []models.BaleSummary{}

		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachBales(ctx, details); err != nil {
		return nil, err
	}

	return details, nil
}

func (r *VoucherRepository) attachBales(ctx context.Context, details []*models.VoucherDetails) error {
	if len(details) == 0 {
		return nil
	}

	byNumber := make(map[string]*models.VoucherDetails, len(details))
	for _, d := range details {
		byNumber[d.VoucherNumber] = d
	}

	rows, err := r.DB.Query(ctx, `
		SELECT id, voucher_number, bale_number, quantity, status
		FROM voucher_bales
		ORDER BY id
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var voucherNumber string
		bale := models.BaleSummary{}
		if err := rows.Scan(&bale.ID, &voucherNumber, &bale.BaleNumber, &bale.Quantity, &bale.Status); err != nil {
			return err
		}
		if d, ok := byNumber[voucherNumber]; ok {
			d.Bales = append(d.Bales, bale)
		}
	}

	return rows.Err()
}

func translateDuplicateVoucher(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w", models.ErrDuplicateVoucher)
	}
	return err
}
