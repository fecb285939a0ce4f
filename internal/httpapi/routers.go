// Package httpapi exposes the e-commerce CRUD surface over gin.
package httpapi

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ApiHandleFunctions bundles the per-resource handler sets.
type ApiHandleFunctions struct {
	BuyerAPI   BuyerAPI
	ProductAPI ProductAPI
	OrderAPI   OrderAPI
}

// Route binds an HTTP method and path pattern to a handler.
type Route struct {
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// NewRouter returns a new gin engine with all API routes attached.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine attaches the API routes to an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	registerJSONTagNames()
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultHandler
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{http.MethodGet, "/buyers", handleFunctions.BuyerAPI.ListBuyers},
		{http.MethodGet, "/buyers/my-orders/:buyer_id", handleFunctions.OrderAPI.ListBuyerOrders},
		{http.MethodGet, "/buyers/:id", handleFunctions.BuyerAPI.GetBuyer},
		{http.MethodPost, "/buyers", handleFunctions.BuyerAPI.CreateBuyer},
		{http.MethodPut, "/buyers/:id", handleFunctions.BuyerAPI.UpdateBuyer},
		{http.MethodDelete, "/buyers/:id", handleFunctions.BuyerAPI.DeleteBuyer},

		{http.MethodGet, "/products", handleFunctions.ProductAPI.ListProducts},
		{http.MethodGet, "/products/:id", handleFunctions.ProductAPI.GetProduct},
		{http.MethodPost, "/products", handleFunctions.ProductAPI.CreateProduct},
		{http.MethodPut, "/products/:id", handleFunctions.ProductAPI.UpdateProduct},
		{http.MethodDelete, "/products/:id", handleFunctions.ProductAPI.DeleteProduct},

		{http.MethodPost, "/orders", handleFunctions.OrderAPI.CreateOrder},
		{http.MethodPut, "/orders/:order_id/add_product/:product_id", handleFunctions.OrderAPI.AddProduct},
		{http.MethodDelete, "/orders/:order_id/remove_product/:product_id", handleFunctions.OrderAPI.RemoveProduct},
		{http.MethodGet, "/orders/:order_id/products", handleFunctions.OrderAPI.ListOrderProducts},
	}
}

func defaultHandler(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{})
}

// registerJSONTagNames makes validator report json field names instead of
// Go struct field names in binding errors.
func registerJSONTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
