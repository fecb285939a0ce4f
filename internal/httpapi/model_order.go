package httpapi

import (
	"time"

	orderdomain "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/domain"
)

// OrderRequest is the write payload for order creation. A missing
// order_date defaults to the time of creation.
type OrderRequest struct {
	OrderDate *time.Time `json:"order_date"`
	BuyerId   int64      `json:"buyer_id" binding:"required"`
}

// Order is the serialized order shape. Unlike the other resources it
// carries its foreign key, so clients can navigate back to the buyer.
type Order struct {
	Id        int64     `json:"id"`
	OrderDate time.Time `json:"order_date"`
	BuyerId   int64     `json:"buyer_id"`
}

func (r OrderRequest) toDomain() (*orderdomain.Order, error) {
	var orderDate time.Time
	if r.OrderDate != nil {
		orderDate = *r.OrderDate
	}
	return orderdomain.NewOrder(0, orderDate, r.BuyerId)
}

func fromDomainOrder(order *orderdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	return Order{
		Id:        order.ID,
		OrderDate: order.OrderDate,
		BuyerId:   order.BuyerID,
	}
}

func fromDomainOrders(orders []*orderdomain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, fromDomainOrder(order))
	}
	return result
}
