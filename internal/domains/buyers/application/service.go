package application

import (
	"context"
	"errors"

	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/domain"
	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/ports"
)

// Service exposes buyer bounded context use cases.
type Service struct {
	repo   ports.Repository
	orders ports.OrderCounter
}

func NewService(repo ports.Repository, orders ports.OrderCounter) *Service {
	if orders == nil {
		orders = ports.NoopOrderCounter
	}
	return &Service{repo: repo, orders: orders}
}

func (s *Service) CreateBuyer(ctx context.Context, buyer *domain.Buyer) (*domain.Buyer, error) {
	if buyer == nil {
		return nil, errors.New("buyer is nil")
	}
	if err := buyer.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, buyer)
}

func (s *Service) GetBuyer(ctx context.Context, id int64) (*domain.Buyer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListBuyers(ctx context.Context) ([]*domain.Buyer, error) {
	return s.repo.List(ctx)
}

// UpdateBuyer replaces all mutable fields of an existing buyer.
func (s *Service) UpdateBuyer(ctx context.Context, id int64, updated *domain.Buyer) (*domain.Buyer, error) {
	if updated == nil {
		return nil, errors.New("buyer is nil")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, updated)
}

// DeleteBuyer removes a buyer. Buyers that still have orders are
// protected; callers must delete the orders first.
func (s *Service) DeleteBuyer(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := s.orders.CountByBuyer(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ports.ErrHasOrders
	}
	return s.repo.Delete(ctx, id)
}

// Exists reports whether a buyer with the given id is stored.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

var _ ports.Service = (*Service)(nil)
