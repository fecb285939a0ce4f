package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	productports "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/ports"
)

// ProductAPI implements the product resource endpoints.
type ProductAPI struct {
	service productports.Service
}

// NewProductAPI wires dependencies.
func NewProductAPI(service productports.Service) ProductAPI {
	return ProductAPI{service: service}
}

// Get /products
// List all products
func (api *ProductAPI) ListProducts(c *gin.Context) {
	products, err := api.service.ListProducts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainProducts(products))
}

// Get /products/:id
// Get one product
func (api *ProductAPI) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	product, err := api.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainProduct(product))
}

// Post /products
// Create product
func (api *ProductAPI) CreateProduct(c *gin.Context) {
	var payload ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}
	product, err := payload.toDomain()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	created, err := api.service.CreateProduct(c.Request.Context(), product)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromDomainProduct(created))
}

// Put /products/:id
// Replace both mutable fields of a product
func (api *ProductAPI) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}
	product, err := payload.toDomain()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	updated, err := api.service.UpdateProduct(c.Request.Context(), id, product)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainProduct(updated))
}

// Delete /products/:id
// Delete product
func (api *ProductAPI) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := api.service.DeleteProduct(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("product %d deleted", id)})
}
