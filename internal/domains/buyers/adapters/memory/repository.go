package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/domain"
	"github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory buyer persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	buyers map[int64]*domain.Buyer
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{buyers: map[int64]*domain.Buyer{}}
}

func (r *Repository) Create(_ context.Context, buyer *domain.Buyer) (*domain.Buyer, error) {
	if buyer == nil {
		return nil, errors.New("buyer is nil")
	}
	clone := *buyer
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.buyers {
		if existing.Email == clone.Email {
			return nil, ports.ErrEmailTaken
		}
	}
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.buyers[clone.ID] = &clone
	return &clone, nil
}

func (r *Repository) Update(_ context.Context, buyer *domain.Buyer) (*domain.Buyer, error) {
	if buyer == nil {
		return nil, errors.New("buyer is nil")
	}
	clone := *buyer
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.buyers[clone.ID]; !ok {
		return nil, ports.ErrNotFound
	}
	for id, existing := range r.buyers {
		if id != clone.ID && existing.Email == clone.Email {
			return nil, ports.ErrEmailTaken
		}
	}
	r.buyers[clone.ID] = &clone
	return &clone, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Buyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	buyer, ok := r.buyers[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *buyer
	return &clone, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.buyers[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.buyers, id)
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Buyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Buyer, 0, len(r.buyers))
	for _, buyer := range r.buyers {
		clone := *buyer
		list = append(list, &clone)
	}
	return list, nil
}
