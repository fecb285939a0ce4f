package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/domain"
	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter. Association rows
// live inside each order's ProductIDs set.
type Repository struct {
	mu     sync.RWMutex
	orders map[int64]*domain.Order
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{orders: map[int64]*domain.Order{}}
}

func (r *Repository) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := cloneOrder(order)
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.orders[clone.ID] = clone
	return cloneOrder(clone), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneOrder(order), nil
}

func (r *Repository) ListByBuyer(_ context.Context, buyerID int64) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0)
	for _, order := range r.orders {
		if order.BuyerID == buyerID {
			list = append(list, cloneOrder(order))
		}
	}
	return list, nil
}

func (r *Repository) CountByBuyer(_ context.Context, buyerID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, order := range r.orders {
		if order.BuyerID == buyerID {
			count++
		}
	}
	return count, nil
}

func (r *Repository) AddProduct(_ context.Context, orderID, productID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return ports.ErrNotFound
	}
	if err := order.AddProduct(productID); err != nil {
		if errors.Is(err, domain.ErrProductIncluded) {
			return ports.ErrProductLinked
		}
		return err
	}
	return nil
}

func (r *Repository) RemoveProduct(_ context.Context, orderID, productID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return ports.ErrNotFound
	}
	if err := order.RemoveProduct(productID); err != nil {
		if errors.Is(err, domain.ErrProductNotLinked) {
			return ports.ErrProductNotLinked
		}
		return err
	}
	return nil
}

// DetachProduct drops the product from every order's set. Orders that
// never held the product are left alone.
func (r *Repository) DetachProduct(_ context.Context, productID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range r.orders {
		if order.HasProduct(productID) {
			_ = order.RemoveProduct(productID)
		}
	}
	return nil
}

func cloneOrder(order *domain.Order) *domain.Order {
	clone := *order
	clone.ProductIDs = append([]int64(nil), order.ProductIDs...)
	return &clone
}
