package application

import (
	"context"
	"errors"

	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/domain"
	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/ports"
)

// Service exposes product bounded context use cases.
type Service struct {
	repo   ports.Repository
	orders ports.OrderDetacher
}

func NewService(repo ports.Repository, orders ports.OrderDetacher) *Service {
	if orders == nil {
		orders = ports.NoopOrderDetacher
	}
	return &Service{repo: repo, orders: orders}
}

func (s *Service) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, product)
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

// ListByIDs resolves a set of product ids, preserving store order.
func (s *Service) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Product, error) {
	if len(ids) == 0 {
		return []*domain.Product{}, nil
	}
	return s.repo.ListByIDs(ctx, ids)
}

// UpdateProduct replaces both mutable fields of an existing product.
func (s *Service) UpdateProduct(ctx context.Context, id int64, updated *domain.Product) (*domain.Product, error) {
	if updated == nil {
		return nil, errors.New("product is nil")
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

// DeleteProduct removes a product and detaches it from every order, so
// association entries never outlive the product.
func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.orders.DetachProduct(ctx, id)
}

// Exists reports whether a product with the given id is stored.
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
