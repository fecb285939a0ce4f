package ports

import (
	"context"
	"errors"

	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/domain"
)

var (
	ErrNotFound = errors.New("order not found")
	// ErrProductLinked signals a duplicate (order_id, product_id) pair.
	ErrProductLinked = errors.New("product already included in the order")
	// ErrProductNotLinked signals an unlink of a pair that does not exist.
	ErrProductNotLinked = errors.New("product is not in the order")
)

type Repository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID int64) ([]*domain.Order, error)
	CountByBuyer(ctx context.Context, buyerID int64) (int64, error)
	AddProduct(ctx context.Context, orderID, productID int64) error
	RemoveProduct(ctx context.Context, orderID, productID int64) error
	DetachProduct(ctx context.Context, productID int64) error
}
