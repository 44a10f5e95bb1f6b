package services

import (
	"context"

	"lr-backend/internal/models"
)

type TransportService struct {
	Repo TransportStore
}

func NewTransportService(repo TransportStore) *TransportService {
	return &TransportService{Repo: repo}
}

func (s *TransportService) CreateTransport(ctx context.Context, transport *models.TransportCompany) error {
	return s.Repo.Create(ctx, transport)
}

func (s *TransportService) ListTransports(ctx context.Context) ([]*models.TransportCompany, error) {
	return s.Repo.List(ctx)
}
