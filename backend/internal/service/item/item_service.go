package item

import (
	"context"

	"github.com/dosahouse/pos-order-service/backend/internal/models"
)

type itemRepository interface {
	CreateItem(ctx context.Context, name string, price models.Price) (*models.Item, error)
	GetItemByID(ctx context.Context, itemID int64) (*models.Item, error)
	UpdateItem(ctx context.Context, itemID int64, name string, price models.Price) (*models.Item, error)
	DeleteItem(ctx context.Context, itemID int64) error
	ListItems(ctx context.Context) ([]models.Item, error)
}

// orderCache is the shaped-order cache. Cached views embed item name and
// price, so item mutations must drop them.
type orderCache interface {
	Flush()
}

type Service struct {
	repo  itemRepository
	cache orderCache
}

func New(repo itemRepository, cache orderCache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

func (s *Service) CreateItem(ctx context.Context, req *models.ItemRequest) (*models.Item, error) {
	return s.repo.CreateItem(ctx, req.Name, *req.Price)
}

func (s *Service) GetItemByID(ctx context.Context, itemID int64) (*models.Item, error) {
	return s.repo.GetItemByID(ctx, itemID)
}

func (s *Service) UpdateItem(ctx context.Context, itemID int64, req *models.ItemRequest) (*models.Item, error) {
	if req.ID != nil && *req.ID != itemID {
		return nil, models.ErrItemIDMismatch
	}

	item, err := s.repo.UpdateItem(ctx, itemID, req.Name, *req.Price)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Flush()
	}

	return item, nil
}

func (s *Service) DeleteItem(ctx context.Context, itemID int64) error {
	return s.repo.DeleteItem(ctx, itemID)
}

func (s *Service) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.repo.ListItems(ctx)
}
