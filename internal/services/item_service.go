package services

import (
	"context"

	"lr-backend/internal/models"
)

type ItemService struct {
	Repo ItemStore
}

func NewItemService(repo ItemStore) *ItemService {
	return &ItemService{Repo: repo}
}

func (s *ItemService) CreateItem(ctx context.Context, item *models.Item) error {
	return s.Repo.Create(ctx, item)
}

func (s *ItemService) ListItems(ctx context.Context) ([]*models.Item, error) {
	return s.Repo.List(ctx)
}
