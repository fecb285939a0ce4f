package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	buyersmemory "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/adapters/memory"
	buyersobs "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/adapters/observability"
	buyerspostgres "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/adapters/persistence/postgres"
	buyersapp "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/application"
	buyersports "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/ports"

	productsmemory "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/adapters/memory"
	productsobs "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/adapters/observability"
	productspostgres "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/adapters/persistence/postgres"
	productsapp "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/application"
	productsports "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/ports"

	ordersmemory "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/application"
	ordersports "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/ports"

	"github.com/88-AL3Xtx/go-ecommerce-api/internal/httpapi"
	"github.com/88-AL3Xtx/go-ecommerce-api/internal/platform/migrations"
	platformobservability "github.com/88-AL3Xtx/go-ecommerce-api/internal/platform/observability"
	platformpostgres "github.com/88-AL3Xtx/go-ecommerce-api/internal/platform/postgres"
)

// Run boots the e-commerce HTTP API with observability and repositories wired.
func Run(ctx context.Context) error {
	const serviceName = "ecommerce-api"
	cfg := LoadConfig()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.ConnectOrFallback(ctx, cfg.PostgresDSN, logger)
	defer cleanupDB()
	if db != nil {
		if err := migrations.Run(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	buyerRepo, productRepo, orderRepo := buildRepositories(db, logger)

	coreBuyerSvc := buyersapp.NewService(buyerRepo, orderCounterFunc(func(ctx context.Context, buyerID int64) (int64, error) {
		return orderRepo.CountByBuyer(ctx, buyerID)
	}))
	buyerService := buyersobs.New(
		coreBuyerSvc,
		buyersobs.WithLogger(logger),
		buyersobs.WithTracer(instruments.Tracer("internal.domains.buyers.application")),
		buyersobs.WithMeter(instruments.Meter("internal.domains.buyers.application")),
	)

	coreProductSvc := productsapp.NewService(productRepo, orderDetacherFunc(orderRepo.DetachProduct))
	productService := productsobs.New(
		coreProductSvc,
		productsobs.WithLogger(logger),
		productsobs.WithTracer(instruments.Tracer("internal.domains.products.application")),
		productsobs.WithMeter(instruments.Meter("internal.domains.products.application")),
	)

	orderService := ordersobs.New(
		ordersapp.NewService(orderRepo, coreBuyerSvc, coreProductSvc),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.domains.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.domains.orders.application")),
	)

	handlers := httpapi.ApiHandleFunctions{
		BuyerAPI:   httpapi.NewBuyerAPI(buyerService),
		ProductAPI: httpapi.NewProductAPI(productService),
		OrderAPI:   httpapi.NewOrderAPI(orderService, productService),
	}

	router := httpapi.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("ecommerce API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("ecommerce API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildRepositories(db *gorm.DB, logger *slog.Logger) (buyersports.Repository, productsports.Repository, ordersports.Repository) {
	if db == nil {
		logger.Warn("running with in-memory repositories, data will not survive restarts")
		return buyersmemory.NewRepository(), productsmemory.NewRepository(), ordersmemory.NewRepository()
	}
	logger.Info("repositories configured with postgres")
	return buyerspostgres.NewRepository(db), productspostgres.NewRepository(db), orderspostgres.NewRepository(db)
}

// orderCounterFunc adapts a closure to the buyers OrderCounter port.
type orderCounterFunc func(ctx context.Context, buyerID int64) (int64, error)

func (f orderCounterFunc) CountByBuyer(ctx context.Context, buyerID int64) (int64, error) {
	return f(ctx, buyerID)
}

// orderDetacherFunc adapts a closure to the products OrderDetacher port.
type orderDetacherFunc func(ctx context.Context, productID int64) error

func (f orderDetacherFunc) DetachProduct(ctx context.Context, productID int64) error {
	return f(ctx, productID)
}
