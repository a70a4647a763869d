package order

import (
	"context"

	"github.com/dosahouse/pos-order-service/backend/internal/models"
)

type orderRepository interface {
	CreateOrder(ctx context.Context, req *models.OrderRequest) (*models.OrderView, error)
	GetOrderByID(ctx context.Context, orderID int64) (*models.OrderView, error)
	UpdateOrder(ctx context.Context, orderID int64, req *models.OrderRequest) (*models.OrderView, error)
	DeleteOrder(ctx context.Context, orderID int64) error
	ListOrders(ctx context.Context) ([]models.OrderView, error)
	ListItemList(ctx context.Context) ([]models.ItemListEntry, error)
}

type orderCache interface {
	Get(orderID int64) (*models.OrderView, bool)
	Set(orderID int64, order *models.OrderView)
	Delete(orderID int64)
}

type Service struct {
	repo  orderRepository
	cache orderCache
}

func New(repo orderRepository, cache orderCache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

func (s *Service) CreateOrder(ctx context.Context, req *models.OrderRequest) (*models.OrderView, error) {
	view, err := s.repo.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(view.ID, view)
	}

	return view, nil
}

func (s *Service) GetOrderByID(ctx context.Context, orderID int64) (*models.OrderView, error) {
	if s.cache != nil {
		if view, ok := s.cache.Get(orderID); ok {
			return view, nil
		}
	}

	view, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(view.ID, view)
	}

	return view, nil
}

func (s *Service) UpdateOrder(ctx context.Context, orderID int64, req *models.OrderRequest) (*models.OrderView, error) {
	if req.ID != nil && *req.ID != orderID {
		return nil, models.ErrOrderIDMismatch
	}

	view, err := s.repo.UpdateOrder(ctx, orderID, req)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(view.ID, view)
	}

	return view, nil
}

func (s *Service) DeleteOrder(ctx context.Context, orderID int64) error {
	if err := s.repo.DeleteOrder(ctx, orderID); err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.Delete(orderID)
	}

	return nil
}

func (s *Service) ListOrders(ctx context.Context) ([]models.OrderView, error) {
	return s.repo.ListOrders(ctx)
}

func (s *Service) ListItemList(ctx context.Context) ([]models.ItemListEntry, error) {
	return s.repo.ListItemList(ctx)
}
