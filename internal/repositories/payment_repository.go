package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lr-backend/internal/models"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

// Create inserts the payment, relying on the unique bill_no constraint to
// make the acceptance workflow idempotent. Returns false when a payment
// for this bill_no already exists; the row is left untouched.
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) (bool, error) {
	query := `
		INSERT INTO payments (bill_no, lr_no, amount, tds_percent, net_total, net_payable, payment_status, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (bill_no) DO NOTHING
		RETURNING id
	`

	err := r.DB.QueryRow(ctx, query,
		payment.BillNo,
		payment.LRNo,
		payment.Amount,
		payment.TDSPercent,
		payment.NetTotal,
		payment.NetPayable,
		payment.PaymentStatus,
		payment.Quantity,
		payment.CreatedAt,
	).Scan(&payment.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (r *PaymentRepository) GetByBillNo(ctx context.Context, billNo string) (*models.Payment, error) {
	query := `
		SELECT id, bill_no, lr_no, amount, tds_percent, net_total, net_payable, payment_status, quantity, created_at
		FROM payments
		WHERE bill_no = $1
	`

	payment := &models.Payment{}
	err := r.DB.QueryRow(ctx, query, billNo).Scan(
		&payment.ID,
		&payment.BillNo,
		&payment.LRNo,
		&payment.Amount,
		&payment.TDSPercent,
		&payment.NetTotal,
		&payment.NetPayable,
		&payment.PaymentStatus,
		&payment.Quantity,
		&payment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("payment for bill %s: %w", billNo, models.ErrNotFound)
		}
		return nil, err
	}

	return payment, nil
}

// HasCompleteForBill reports whether a Complete payment exists for the
// bill, which freezes the voucher's bale set.
func (r *PaymentRepository) HasCompleteForBill(ctx context.Context, billNo string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM payments WHERE bill_no = $1 AND payment_status = $2
		)
	`

	var exists bool
	err := r.DB.QueryRow(ctx, query, billNo, models.PaymentStatusComplete).Scan(&exists)
	return exists, err
}

func (r *PaymentRepository) ListRecent(ctx context.Context) ([]*models.Payment, error) {
	query := `
		SELECT id, bill_no, lr_no, amount, tds_percent, net_total, net_payable, payment_status, quantity, created_at
		FROM payments
		ORDER BY created_at DESC
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

// ListByLROrBill selects payments whose lr_no is in lrNumbers or whose
// bill_no is in billNumbers.
func (r *PaymentRepository) ListByLROrBill(ctx context.Context, lrNumbers, billNumbers []string) ([]*models.Payment, error) {
	query := `
		SELECT id, bill_no, lr_no, amount, tds_percent, net_total, net_payable, payment_status, quantity, created_at
		FROM payments
		WHERE lr_no = ANY($1) OR bill_no = ANY($2)
		ORDER BY created_at DESC
	`

	rows, err := r.DB.Query(ctx, query, lrNumbers, billNumbers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

func (r *PaymentRepository) MarkComplete(ctx context.Context, id int) error {
	query := `
		UPDATE payments
		SET payment_status = $2
		WHERE id = $1
	`

	_, err := r.DB.Exec(ctx, query, id, models.PaymentStatusComplete)
	return err
}

// UpdateAmounts mirrors the voucher reconciliation onto the payment row.
func (r *PaymentRepository) UpdateAmounts(ctx context.Context, billNo string, quantity, netTotal, netPayable float64) error {
	query := `
		UPDATE payments
		SET quantity = $2, net_total = $3, net_payable = $4
		WHERE bill_no = $1
	`

	_, err := r.DB.Exec(ctx, query, billNo, quantity, netTotal, netPayable)
	return err
}

// UpdateQuantity overwrites the payment quantity with a bale tally.
// Returns false when no payment exists for the bill.
func (r *PaymentRepository) UpdateQuantity(ctx context.Context, billNo string, quantity float64) (bool, error) {
	query := `
		UPDATE payments
		SET quantity = $2
		WHERE bill_no = $1
	`

	tag, err := r.DB.Exec(ctx, query, billNo, quantity)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// ListStatuses returns the payment-status view joined with the voucher's
// transport company.
func (r *PaymentRepository) ListStatuses(ctx context.Context) ([]*models.PaymentStatusEntry, error) {
	query := `
		SELECT p.bill_no, p.lr_no, p.payment_status, p.net_payable, p.created_at,
		       COALESCE(t.transport_name, '')
		FROM payments p
		LEFT JOIN vouchers v ON v.voucher_number = p.bill_no
		LEFT JOIN transport_companies t ON v.transport_id = t.id
		ORDER BY p.id
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []*models.PaymentStatusEntry
	for rows.Next() {
		entry := &models.PaymentStatusEntry{}
		err := rows.Scan(
			&entry.BillNo,
			&entry.LRNo,
			&entry.PaymentStatus,
			&entry.NetPayable,
			&entry.CreatedAt,
			&entry.TransportName,
		)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, entry)
	}

	return statuses, rows.Err()
}

func scanPayments(rows pgx.Rows) ([]*models.Payment, error) {
	var payments []*models.Payment
	for rows.Next() {
		payment := &models.Payment{}
		err := rows.Scan(
			&payment.ID,
			&payment.BillNo,
			&payment.LRNo,
			&payment.Amount,
			&payment.TDSPercent,
			&payment.NetTotal,
			&payment.NetPayable,
			&payment.PaymentStatus,
			&payment.Quantity,
			&payment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}
