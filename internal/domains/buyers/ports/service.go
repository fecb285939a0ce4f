package ports

import (
	"context"

	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/domain"
)

// Service exposes buyer bounded context use cases to adapters.
type Service interface {
	CreateBuyer(ctx context.Context, buyer *domain.Buyer) (*domain.Buyer, error)
	GetBuyer(ctx context.Context, id int64) (*domain.Buyer, error)
	ListBuyers(ctx context.Context) ([]*domain.Buyer, error)
	UpdateBuyer(ctx context.Context, id int64, updated *domain.Buyer) (*domain.Buyer, error)
	DeleteBuyer(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// OrderCounter reports how many orders reference a buyer. Implemented by
// the orders context; used to protect buyers from deletion while orders
// still point at them.
type OrderCounter interface {
	CountByBuyer(ctx context.Context, buyerID int64) (int64, error)
}

type noopOrderCounter struct{}

func (noopOrderCounter) CountByBuyer(context.Context, int64) (int64, error) { return 0, nil }

// NoopOrderCounter never reports orders. Used when the orders context is
// not wired, e.g. in isolated tests.
var NoopOrderCounter OrderCounter = noopOrderCounter{}
