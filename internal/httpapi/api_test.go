package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	buyermemory "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/adapters/memory"
	buyersapp "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/application"
	ordermemory "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/adapters/memory"
	ordersapp "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/application"
	productmemory "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/adapters/memory"
	productsapp "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/application"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	buyerRepo := buyermemory.NewRepository()
	productRepo := productmemory.NewRepository()
	orderRepo := ordermemory.NewRepository()

	buyerService := buyersapp.NewService(buyerRepo, counterFunc(orderRepo.CountByBuyer))
	productService := productsapp.NewService(productRepo, detacherFunc(orderRepo.DetachProduct))
	orderService := ordersapp.NewService(orderRepo, buyerService, productService)

	handlers := ApiHandleFunctions{
		BuyerAPI:   NewBuyerAPI(buyerService),
		ProductAPI: NewProductAPI(productService),
		OrderAPI:   NewOrderAPI(orderService, productService),
	}
	return NewRouterWithGinEngine(gin.New(), handlers)
}

type counterFunc func(ctx context.Context, buyerID int64) (int64, error)

func (f counterFunc) CountByBuyer(ctx context.Context, buyerID int64) (int64, error) {
	return f(ctx, buyerID)
}

type detacherFunc func(ctx context.Context, productID int64) error

func (f detacherFunc) DetachProduct(ctx context.Context, productID int64) error {
	return f(ctx, productID)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func createBuyer(t *testing.T, router *gin.Engine, name, email string) Buyer {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/buyers", gin.H{
		"name": name, "address": "1 Main St", "email": email,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var buyer Buyer
	decode(t, rec, &buyer)
	return buyer
}

func createProduct(t *testing.T, router *gin.Engine, name string, price float64) Product {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/products", gin.H{
		"product_name": name, "price": price,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var product Product
	decode(t, rec, &product)
	return product
}

func createOrder(t *testing.T, router *gin.Engine, buyerID int64) Order {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/orders", gin.H{"buyer_id": buyerID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var payload struct {
		Message string `json:"message"`
		Order   Order  `json:"order"`
	}
	decode(t, rec, &payload)
	require.Equal(t, "New order placed!", payload.Message)
	return payload.Order
}

func TestBuyerLifecycle(t *testing.T) {
	router := newTestRouter(t)

	created := createBuyer(t, router, "Ada", "ada@example.com")
	require.NotZero(t, created.Id)

	rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/buyers/%d", created.Id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched Buyer
	decode(t, rec, &fetched)
	require.Equal(t, created, fetched)

	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/buyers/%d", created.Id), gin.H{
		"name": "Ada L.", "address": "2 Side St", "email": "ada.l@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &fetched)
	require.Equal(t, "Ada L.", fetched.Name)

	rec = doJSON(t, router, http.MethodGet, "/buyers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []Buyer
	decode(t, rec, &all)
	require.Len(t, all, 1)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/buyers/%d", created.Id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/buyers/%d", created.Id), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateBuyer_ValidationProblem(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/buyers", gin.H{"name": "Ada"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var problem struct {
		Status     int    `json:"status"`
		Title      string `json:"title"`
		Extensions struct {
			Fields map[string]string `json:"fields"`
		} `json:"extensions"`
	}
	decode(t, rec, &problem)
	require.Equal(t, http.StatusBadRequest, problem.Status)
	require.Contains(t, problem.Extensions.Fields, "address")
	require.Contains(t, problem.Extensions.Fields, "email")
}

func TestCreateBuyer_DuplicateEmailConflict(t *testing.T) {
	router := newTestRouter(t)
	createBuyer(t, router, "Ada", "ada@example.com")

	rec := doJSON(t, router, http.MethodPost, "/buyers", gin.H{
		"name": "Grace", "address": "1 Main St", "email": "ada@example.com",
	})
	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
}

func TestDeleteBuyer_WithOrdersConflict(t *testing.T) {
	router := newTestRouter(t)
	buyer := createBuyer(t, router, "Ada", "ada@example.com")
	createOrder(t, router, buyer.Id)

	rec := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/buyers/%d", buyer.Id), nil)
	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
}

func TestProductLifecycle(t *testing.T) {
	router := newTestRouter(t)

	created := createProduct(t, router, "Keyboard", 79.99)
	require.NotZero(t, created.Id)

	rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/products/%d", created.Id), gin.H{
		"product_name": "Keyboard Pro", "price": 99.5,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated Product
	decode(t, rec, &updated)
	require.Equal(t, "Keyboard Pro", updated.ProductName)
	require.Equal(t, 99.5, updated.Price)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/products/%d", created.Id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/products/%d", created.Id), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProduct_RejectsNegativePriceAndMissingPrice(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/products", gin.H{"product_name": "Keyboard", "price": -5})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/products", gin.H{"product_name": "Keyboard"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/products", gin.H{"product_name": "Free Sample", "price": 0})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestCreateOrder_UnknownBuyer(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/orders", gin.H{"buyer_id": 999})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var problem struct {
		Detail string `json:"detail"`
	}
	decode(t, rec, &problem)
	require.Equal(t, "invalid buyer id", problem.Detail)
}

func TestOrderProductAssociation(t *testing.T) {
	router := newTestRouter(t)
	buyer := createBuyer(t, router, "Ada", "ada@example.com")
	keyboard := createProduct(t, router, "Keyboard", 79.99)
	mouse := createProduct(t, router, "Mouse", 25)
	order := createOrder(t, router, buyer.Id)

	link := func(productID int64) *httptest.ResponseRecorder {
		return doJSON(t, router, http.MethodPut,
			fmt.Sprintf("/orders/%d/add_product/%d", order.Id, productID), nil)
	}

	require.Equal(t, http.StatusOK, link(keyboard.Id).Code)
	require.Equal(t, http.StatusOK, link(mouse.Id).Code)

	// second link of the same pair conflicts and stays single
	require.Equal(t, http.StatusConflict, link(keyboard.Id).Code)

	rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/orders/%d/products", order.Id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var products []Product
	decode(t, rec, &products)
	require.Len(t, products, 2)

	rec = doJSON(t, router, http.MethodDelete,
		fmt.Sprintf("/orders/%d/remove_product/%d", order.Id, mouse.Id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// unlinking a product that is not in the order is a bad request
	rec = doJSON(t, router, http.MethodDelete,
		fmt.Sprintf("/orders/%d/remove_product/%d", order.Id, mouse.Id), nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/orders/%d/products", order.Id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &products)
	require.Len(t, products, 1)
	require.Equal(t, keyboard.Id, products[0].Id)
}

func TestDeleteProduct_DetachesFromOrders(t *testing.T) {
	router := newTestRouter(t)
	buyer := createBuyer(t, router, "Ada", "ada@example.com")
	keyboard := createProduct(t, router, "Keyboard", 79.99)
	order := createOrder(t, router, buyer.Id)

	rec := doJSON(t, router, http.MethodPut,
		fmt.Sprintf("/orders/%d/add_product/%d", order.Id, keyboard.Id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/products/%d", keyboard.Id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// the deleted product leaves no trace in the order
	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/orders/%d/products", order.Id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var products []Product
	decode(t, rec, &products)
	require.Empty(t, products)

	rec = doJSON(t, router, http.MethodDelete,
		fmt.Sprintf("/orders/%d/remove_product/%d", order.Id, keyboard.Id), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddProduct_UnknownOrderAndProduct(t *testing.T) {
	router := newTestRouter(t)
	buyer := createBuyer(t, router, "Ada", "ada@example.com")
	product := createProduct(t, router, "Keyboard", 79.99)
	order := createOrder(t, router, buyer.Id)

	rec := doJSON(t, router, http.MethodPut,
		fmt.Sprintf("/orders/%d/add_product/%d", order.Id+100, product.Id), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPut,
		fmt.Sprintf("/orders/%d/add_product/%d", order.Id, product.Id+100), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListBuyerOrders(t *testing.T) {
	router := newTestRouter(t)
	buyer := createBuyer(t, router, "Ada", "ada@example.com")
	other := createBuyer(t, router, "Grace", "grace@example.com")
	createOrder(t, router, buyer.Id)
	createOrder(t, router, buyer.Id)
	createOrder(t, router, other.Id)

	rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/buyers/my-orders/%d", buyer.Id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []Order
	decode(t, rec, &orders)
	require.Len(t, orders, 2)
	for _, order := range orders {
		require.Equal(t, buyer.Id, order.BuyerId)
	}

	rec = doJSON(t, router, http.MethodGet, "/buyers/my-orders/999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPathID_MalformedIdentifiers(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/buyers/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/products/-3", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/orders/abc/add_product/1", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
