package ports

import (
	"context"

	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/domain"
)

// Service exposes product bounded context use cases to adapters.
type Service interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, updated *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// OrderDetacher removes a product from every order that references it.
// Implemented by the orders context; keeps association entries from
// outliving the product, matching the store's ON DELETE CASCADE.
type OrderDetacher interface {
	DetachProduct(ctx context.Context, productID int64) error
}

type noopOrderDetacher struct{}

func (noopOrderDetacher) DetachProduct(context.Context, int64) error { return nil }

// NoopOrderDetacher leaves orders untouched. Used when the orders context
// is not wired, e.g. in isolated tests.
var NoopOrderDetacher OrderDetacher = noopOrderDetacher{}
