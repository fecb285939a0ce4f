package ports

import (
	"context"
	"errors"

	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/domain"
)

var ErrNotFound = errors.New("product not found")

type Repository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.Product, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*domain.Product, error)
}
