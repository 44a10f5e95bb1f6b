package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"lr-backend/internal/models"
)

type TransportRepository struct {
	DB *pgxpool.Pool
}

func NewTransportRepository(db *pgxpool.Pool) *TransportRepository {
	return &TransportRepository{DB: db}
}

func (r *TransportRepository) Create(ctx context.Context, transport *models.TransportCompany) error {
	query := `
		INSERT INTO transport_companies (transport_name, address, contact, rate)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	return r.DB.QueryRow(ctx, query,
		transport.TransportName,
		transport.Address,
		transport.Contact,
		transport.Rate,
	).Scan(&transport.ID)
}

func (r *TransportRepository) List(ctx context.Context) ([]*models.TransportCompany, error) {
	query := `
		SELECT id, transport_name, address, contact, rate
		FROM transport_companies
		ORDER BY id
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transports []*models.TransportCompany
	for rows.Next() {
		transport := &models.TransportCompany{}
		err := rows.Scan(
			&transport.ID,
			&transport.TransportName,
			&transport.Address,
			&transport.Contact,
			&transport.Rate,
		)
		if err != nil {
			return nil, err
		}
		transports = append(transports, transport)
	}

	return transports, nil
}
