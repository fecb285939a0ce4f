package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	orderports "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/ports"
	productports "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/ports"
)

// OrderAPI implements the order resource and association endpoints. It
// composes the product service to serialize an order's product set.
type OrderAPI struct {
	orders   orderports.Service
	products productports.Service
}

// NewOrderAPI wires dependencies.
func NewOrderAPI(orders orderports.Service, products productports.Service) OrderAPI {
	return OrderAPI{orders: orders, products: products}
}

// Post /orders
// Place a new order for a buyer
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}
	order, err := payload.toDomain()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	created, err := api.orders.CreateOrder(c.Request.Context(), order)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "New order placed!",
		"order":   fromDomainOrder(created),
	})
}

// Put /orders/:order_id/add_product/:product_id
// Link a product to an order. Linking twice reports a conflict and leaves
// exactly one association row.
func (api *OrderAPI) AddProduct(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	productID, ok := pathID(c, "product_id")
	if !ok {
		return
	}
	if err := api.orders.AddProduct(c.Request.Context(), orderID, productID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product added to the order"})
}

// Delete /orders/:order_id/remove_product/:product_id
// Unlink a product from an order
func (api *OrderAPI) RemoveProduct(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	productID, ok := pathID(c, "product_id")
	if !ok {
		return
	}
	if err := api.orders.RemoveProduct(c.Request.Context(), orderID, productID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product removed from the order"})
}

// Get /buyers/my-orders/:buyer_id
// List all orders placed by a buyer
func (api *OrderAPI) ListBuyerOrders(c *gin.Context) {
	buyerID, ok := pathID(c, "buyer_id")
	if !ok {
		return
	}
	orders, err := api.orders.ListByBuyer(c.Request.Context(), buyerID)
	if err != nil {
		respondBuyerOrdersError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainOrders(orders))
}

// Get /orders/:order_id/products
// List the products linked to an order
func (api *OrderAPI) ListOrderProducts(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	productIDs, err := api.orders.ListProductIDs(c.Request.Context(), orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	products, err := api.products.ListByIDs(c.Request.Context(), productIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainProducts(products))
}
