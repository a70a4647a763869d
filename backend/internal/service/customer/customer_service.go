package customer

import (
	"context"

	"github.com/dosahouse/pos-order-service/backend/internal/models"
)

type customerRepository interface {
	CreateCustomer(ctx context.Context, name, phone string) (*models.Customer, error)
	GetCustomerByID(ctx context.Context, customerID int64) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, customerID int64, name, phone string) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
	ListCustomers(ctx context.Context) ([]models.Customer, error)
}

// orderCache is the shaped-order cache. Cached views embed customer name and
// phone, so customer mutations must drop them.
type orderCache interface {
	Flush()
}

type Service struct {
	repo  customerRepository
	cache orderCache
}

func New(repo customerRepository, cache orderCache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

func (s *Service) CreateCustomer(ctx context.Context, req *models.CustomerRequest) (*models.Customer, error) {
	return s.repo.CreateCustomer(ctx, req.Name, req.Phone)
}

func (s *Service) GetCustomerByID(ctx context.Context, customerID int64) (*models.Customer, error) {
	return s.repo.GetCustomerByID(ctx, customerID)
}

func (s *Service) UpdateCustomer(ctx context.Context, customerID int64, req *models.CustomerRequest) (*models.Customer, error) {
	if req.ID != nil && *req.ID != customerID {
		return nil, models.ErrCustomerIDMismatch
	}

	customer, err := s.repo.UpdateCustomer(ctx, customerID, req.Name, req.Phone)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Flush()
	}

	return customer, nil
}

func (s *Service) DeleteCustomer(ctx context.Context, customerID int64) error {
	return s.repo.DeleteCustomer(ctx, customerID)
}

func (s *Service) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.repo.ListCustomers(ctx)
}
