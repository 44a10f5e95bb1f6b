package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"lr-backend/internal/models"
)

type ItemRepository struct {
	DB *pgxpool.Pool
}

func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	query := `
		INSERT INTO items (item_number, item_name, quantity)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	return r.DB.QueryRow(ctx, query,
		item.ItemNumber,
		item.ItemName,
		item.Quantity,
	).Scan(&item.ID)
}

func (r *ItemRepository) List(ctx context.Context) ([]*models.Item, error) {
	query := `
		SELECT id, item_number, item_name, quantity
		FROM items
		ORDER BY id
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item := &models.Item{}
		err := rows.Scan(
			&item.ID,
			&item.ItemNumber,
			&item.ItemName,
			&item.Quantity,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
