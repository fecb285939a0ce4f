//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	pacttest "github.com/88-AL3Xtx/go-ecommerce-api/test/pact"

	buyermemory "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/adapters/memory"
	buyersobs "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/adapters/observability"
	buyersapp "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/application"
	buyerdomain "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/domain"
	ordermemory "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/adapters/observability"
	ordersapp "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/application"
	productmemory "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/adapters/memory"
	productsobs "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/adapters/observability"
	productsapp "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/application"
	productdomain "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/domain"
	"github.com/88-AL3Xtx/go-ecommerce-api/internal/httpapi"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestEcommerceProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateBuyersBaseline: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
		pacttest.StateBuyerExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.seedBuyer(t, pacttest.ExistingBuyerID)
			}
			return nil, nil
		},
		pacttest.StateBuyerMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
		pacttest.StateOrderReady: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.seedBuyer(t, pacttest.ExistingBuyerID)
				app.seedProduct(t, pacttest.ExistingProductID)
			}
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.reset(t)
			return nil
		},
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	buyers   *buyermemory.Repository
	products *productmemory.Repository
	server   *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	buyerRepo := buyermemory.NewRepository()
	productRepo := productmemory.NewRepository()
	orderRepo := ordermemory.NewRepository()

	coreBuyerSvc := buyersapp.NewService(buyerRepo, nil)
	coreProductSvc := productsapp.NewService(productRepo, nil)
	buyerService := buyersobs.New(coreBuyerSvc)
	productService := productsobs.New(coreProductSvc)
	orderService := ordersobs.New(ordersapp.NewService(orderRepo, coreBuyerSvc, coreProductSvc))

	handlers := httpapi.ApiHandleFunctions{
		BuyerAPI:   httpapi.NewBuyerAPI(buyerService),
		ProductAPI: httpapi.NewProductAPI(productService),
		OrderAPI:   httpapi.NewOrderAPI(orderService, productService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router = httpapi.NewRouterWithGinEngine(router, handlers)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{
		buyers:   buyerRepo,
		products: productRepo,
		server:   server,
	}
}

func (a *contractProviderApp) reset(t testing.TB) {
	t.Helper()
	buyers, err := a.buyers.List(context.Background())
	require.NoError(t, err)
	for _, buyer := range buyers {
		_ = a.buyers.Delete(context.Background(), buyer.ID)
	}
	products, err := a.products.List(context.Background())
	require.NoError(t, err)
	for _, product := range products {
		_ = a.products.Delete(context.Background(), product.ID)
	}
}

func (a *contractProviderApp) seedBuyer(t testing.TB, id int64) {
	t.Helper()
	buyer, err := buyerdomain.NewBuyer(id, "Pact Buyer", "1 Contract Lane", "pact.buyer@example.com")
	require.NoError(t, err)
	_, err = a.buyers.Create(context.Background(), buyer)
	require.NoError(t, err)
}

func (a *contractProviderApp) seedProduct(t testing.TB, id int64) {
	t.Helper()
	product, err := productdomain.NewProduct(id, "Pact Keyboard", 79.99)
	require.NoError(t, err)
	_, err = a.products.Create(context.Background(), product)
	require.NoError(t, err)
}
