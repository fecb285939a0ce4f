package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	buyerports "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/ports"
)

// BuyerAPI implements the buyer resource endpoints.
type BuyerAPI struct {
	service buyerports.Service
}

// NewBuyerAPI wires dependencies.
func NewBuyerAPI(service buyerports.Service) BuyerAPI {
	return BuyerAPI{service: service}
}

// Get /buyers
// List all buyers
func (api *BuyerAPI) ListBuyers(c *gin.Context) {
	buyers, err := api.service.ListBuyers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainBuyers(buyers))
}

// Get /buyers/:id
// Get one buyer
func (api *BuyerAPI) GetBuyer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	buyer, err := api.service.GetBuyer(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainBuyer(buyer))
}

// Post /buyers
// Create buyer
func (api *BuyerAPI) CreateBuyer(c *gin.Context) {
	var payload BuyerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}
	buyer, err := payload.toDomain()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	created, err := api.service.CreateBuyer(c.Request.Context(), buyer)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromDomainBuyer(created))
}

// Put /buyers/:id
// Replace all mutable fields of a buyer
func (api *BuyerAPI) UpdateBuyer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload BuyerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}
	buyer, err := payload.toDomain()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	updated, err := api.service.UpdateBuyer(c.Request.Context(), id, buyer)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainBuyer(updated))
}

// Delete /buyers/:id
// Delete buyer
func (api *BuyerAPI) DeleteBuyer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := api.service.DeleteBuyer(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("buyer %d deleted", id)})
}
