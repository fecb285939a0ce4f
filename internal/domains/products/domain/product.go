package domain

import (
	"errors"
	"strings"
)

// MaxNameLength caps the product_name column.
const MaxNameLength = 100

var (
	ErrNameTooLong   = errors.New("product name must be at most 100 characters")
	ErrNegativePrice = errors.New("price must not be negative")
)

// Product represents a sellable item.
type Product struct {
	ID          int64
	ProductName string
	Price       float64
}

// NewProduct builds a product ensuring field invariants.
func NewProduct(id int64, name string, price float64) (*Product, error) {
	product := &Product{ID: id}
	if err := product.SetName(name); err != nil {
		return nil, err
	}
	if err := product.SetPrice(price); err != nil {
		return nil, err
	}
	return product, nil
}

// SetName trims and validates the product name. An empty name is allowed,
// only the length is constrained.
func (p *Product) SetName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	p.ProductName = name
	return nil
}

// SetPrice rejects negative prices.
func (p *Product) SetPrice(price float64) error {
	if price < 0 {
		return ErrNegativePrice
	}
	p.Price = price
	return nil
}

// Validate re-applies core invariants for persistence.
func (p *Product) Validate() error {
	if err := p.SetName(p.ProductName); err != nil {
		return err
	}
	return p.SetPrice(p.Price)
}
