package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"lr-backend/internal/models"
)

type UnitRepository struct {
	DB *pgxpool.Pool
}

func NewUnitRepository(db *pgxpool.Pool) *UnitRepository {
	return &UnitRepository{DB: db}
}

func (r *UnitRepository) Create(ctx context.Context, unit *models.QuantityUnit) error {
	query := `
		INSERT INTO quantity_units (quantity_unit)
		VALUES ($1)
		RETURNING id
	`

	err := r.DB.QueryRow(ctx, query, unit.QuantityUnit).Scan(&unit.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("unit %q: %w", unit.QuantityUnit, models.ErrDuplicateUnit)
		}
		return err
	}

	return nil
}

func (r *UnitRepository) List(ctx context.Context) ([]*models.QuantityUnit, error) {
	query := `
		SELECT id, quantity_unit
		FROM quantity_units
		ORDER BY id
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []*models.QuantityUnit
	for rows.Next() {
		unit := &models.QuantityUnit{}
		if err := rows.Scan(&unit.ID, &unit.QuantityUnit); err != nil {
			return nil, err
		}
		units = append(units, unit)
	}

	return units, nil
}
