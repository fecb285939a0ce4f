package ports

import (
	"context"
	"errors"

	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/domain"
)

var (
	// ErrBuyerNotFound signals that the referenced buyer does not exist.
	ErrBuyerNotFound = errors.New("invalid buyer id")
	// ErrProductNotFound signals that the referenced product does not exist.
	ErrProductNotFound = errors.New("invalid product id")
)

// Service exposes order bounded context use cases to adapters.
type Service interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID int64) ([]*domain.Order, error)
	CountByBuyer(ctx context.Context, buyerID int64) (int64, error)
	AddProduct(ctx context.Context, orderID, productID int64) error
	RemoveProduct(ctx context.Context, orderID, productID int64) error
	ListProductIDs(ctx context.Context, orderID int64) ([]int64, error)
}

// BuyerDirectory reports buyer existence. Implemented by the buyers
// context; orders never reach into another context's storage directly.
type BuyerDirectory interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// ProductCatalog reports product existence for association checks.
type ProductCatalog interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
