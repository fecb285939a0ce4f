package domain

import (
	"errors"
	"time"
)

var (
	ErrMissingBuyer     = errors.New("buyer id is required")
	ErrProductIncluded  = errors.New("product is already included in the order")
	ErrProductNotLinked = errors.New("product is not in the order")
)

// Order is an order placed by a buyer. Products are held as a set of ids
// through the order_product association.
type Order struct {
	ID         int64
	OrderDate  time.Time
	BuyerID    int64
	ProductIDs []int64
}

// NewOrder builds an order for a buyer. A zero orderDate defaults to the
// current time, mirroring the order_date column default.
func NewOrder(id int64, orderDate time.Time, buyerID int64) (*Order, error) {
	if buyerID <= 0 {
		return nil, ErrMissingBuyer
	}
	if orderDate.IsZero() {
		orderDate = time.Now().UTC()
	}
	return &Order{ID: id, OrderDate: orderDate, BuyerID: buyerID}, nil
}

// HasProduct reports whether the product is in the order's set.
func (o *Order) HasProduct(productID int64) bool {
	for _, id := range o.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// AddProduct appends a product to the order's set. Adding a product twice
// fails without mutating the set.
func (o *Order) AddProduct(productID int64) error {
	if o.HasProduct(productID) {
		return ErrProductIncluded
	}
	o.ProductIDs = append(o.ProductIDs, productID)
	return nil
}

// RemoveProduct deletes a product from the order's set.
func (o *Order) RemoveProduct(productID int64) error {
	for i, id := range o.ProductIDs {
		if id == productID {
			o.ProductIDs = append(o.ProductIDs[:i], o.ProductIDs[i+1:]...)
			return nil
		}
	}
	return ErrProductNotLinked
}

// Validate re-applies core invariants for persistence.
func (o *Order) Validate() error {
	if o.BuyerID <= 0 {
		return ErrMissingBuyer
	}
	return nil
}
