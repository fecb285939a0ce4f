package application

import (
	"context"
	"errors"

	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/domain"
	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/ports"
)

// Service exposes order bounded context use cases. Buyer and product
// existence is checked through directory ports so the memory adapters
// behave like the store's foreign keys.
type Service struct {
	repo     ports.Repository
	buyers   ports.BuyerDirectory
	products ports.ProductCatalog
}

func NewService(repo ports.Repository, buyers ports.BuyerDirectory, products ports.ProductCatalog) *Service {
	return &Service{repo: repo, buyers: buyers, products: products}
}

// CreateOrder validates the buyer reference and persists the order.
func (s *Service) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureBuyer(ctx, order.BuyerID); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, order)
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByBuyer returns a buyer's orders, failing when the buyer is unknown.
func (s *Service) ListByBuyer(ctx context.Context, buyerID int64) ([]*domain.Order, error) {
	if err := s.ensureBuyer(ctx, buyerID); err != nil {
		return nil, err
	}
	return s.repo.ListByBuyer(ctx, buyerID)
}

func (s *Service) CountByBuyer(ctx context.Context, buyerID int64) (int64, error) {
	return s.repo.CountByBuyer(ctx, buyerID)
}

// AddProduct links a product to an order. Linking the same product twice
// fails with ports.ErrProductLinked and leaves the association untouched.
func (s *Service) AddProduct(ctx context.Context, orderID, productID int64) error {
	if _, err := s.repo.GetByID(ctx, orderID); err != nil {
		return err
	}
	if err := s.ensureProduct(ctx, productID); err != nil {
		return err
	}
	return s.repo.AddProduct(ctx, orderID, productID)
}

// RemoveProduct unlinks a product from an order.
func (s *Service) RemoveProduct(ctx context.Context, orderID, productID int64) error {
	if _, err := s.repo.GetByID(ctx, orderID); err != nil {
		return err
	}
	if err := s.ensureProduct(ctx, productID); err != nil {
		return err
	}
	return s.repo.RemoveProduct(ctx, orderID, productID)
}

// ListProductIDs returns the ids of the products linked to an order.
func (s *Service) ListProductIDs(ctx context.Context, orderID int64) ([]int64, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return order.ProductIDs, nil
}

func (s *Service) ensureBuyer(ctx context.Context, buyerID int64) error {
	if s.buyers == nil {
		return nil
	}
	ok, err := s.buyers.Exists(ctx, buyerID)
	if err != nil {
		return err
	}
	if !ok {
		return ports.ErrBuyerNotFound
	}
	return nil
}

func (s *Service) ensureProduct(ctx context.Context, productID int64) error {
	if s.products == nil {
		return nil
	}
	ok, err := s.products.Exists(ctx, productID)
	if err != nil {
		return err
	}
	if !ok {
		return ports.ErrProductNotFound
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
