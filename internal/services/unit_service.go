package services

import (
	"context"

	"lr-backend/internal/models"
)

type UnitService struct {
	Repo UnitStore
}

func NewUnitService(repo UnitStore) *UnitService {
	return &UnitService{Repo: repo}
}

// CreateUnit adds a unit label. Duplicates surface as ErrDuplicateUnit
// from the store's unique constraint.
func (s *UnitService) CreateUnit(ctx context.Context, unit *models.QuantityUnit) error {
	return s.Repo.Create(ctx, unit)
}

func (s *UnitService) ListUnits(ctx context.Context) ([]*models.QuantityUnit, error) {
	return s.Repo.List(ctx)
}
