package ports

import (
	"context"
	"errors"

	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/domain"
)

var (
	ErrNotFound   = errors.New("buyer not found")
	ErrEmailTaken = errors.New("buyer email already in use")
	ErrHasOrders  = errors.New("buyer still has orders")
)

type Repository interface {
	Create(ctx context.Context, buyer *domain.Buyer) (*domain.Buyer, error)
	Update(ctx context.Context, buyer *domain.Buyer) (*domain.Buyer, error)
	GetByID(ctx context.Context, id int64) (*domain.Buyer, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.Buyer, error)
}
