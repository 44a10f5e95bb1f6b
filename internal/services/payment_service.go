package services

import (
	"context"
	"fmt"

	"lr-backend/internal/models"
)

type PaymentService struct {
	Repo PaymentStore
}

func NewPaymentService(repo PaymentStore) *PaymentService {
	return &PaymentService{Repo: repo}
}

func (s *PaymentService) ListRecent(ctx context.Context) ([]*models.Payment, error) {
	return s.Repo.ListRecent(ctx)
}

func (s *PaymentService) ListByLROrBill(ctx context.Context, lrNumbers, billNumbers []string) ([]*models.Payment, error) {
	return s.Repo.ListByLROrBill(ctx, lrNumbers, billNumbers)
}

// MarkComplete transitions every payment in the LR/bill selection to
// Complete and returns the bill numbers actually changed. The transition
// is monotonic: payments already Complete are left alone and not
// reported, so a second identical call returns an empty list.
func (s *PaymentService) MarkComplete(ctx context.Context, lrNumbers, billNumbers []string) ([]string, error) {
	payments, err := s.Repo.ListByLROrBill(ctx, lrNumbers, billNumbers)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, fmt.Errorf("no payments found matching the criteria: %w", models.ErrNotFound)
	}

	updated := []string{}
	for _, payment := range payments {
		if payment.PaymentStatus == models.PaymentStatusComplete {
			continue
		}
		if err := s.Repo.MarkComplete(ctx, payment.ID); err != nil {
			return nil, fmt.Errorf("mark payment %d complete: %w", payment.ID, err)
		}
		updated = append(updated, payment.BillNo)
	}

	return updated, nil
}

// ListStatuses returns the payment-status view. An empty payments table
// is reported as ErrNotFound per the listing endpoint's contract.
func (s *PaymentService) ListStatuses(ctx context.Context) ([]*models.PaymentStatusEntry, error) {
	statuses, err := s.Repo.ListStatuses(ctx)
	if err != nil {
		return nil, err
	}
	if len(statuses) == 0 {
		return nil, fmt.Errorf("no payments: %w", models.ErrNotFound)
	}

	return statuses, nil
}
