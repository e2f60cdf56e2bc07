package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hasthaat/storefront/internal/catalog"
	"github.com/hasthaat/storefront/internal/config"
	"github.com/hasthaat/storefront/internal/delivery/events"
	httpDelivery "github.com/hasthaat/storefront/internal/delivery/http"
	"github.com/hasthaat/storefront/internal/delivery/http/handler"
	"github.com/hasthaat/storefront/internal/domain"
	"github.com/hasthaat/storefront/internal/pkg/cache"
	"github.com/hasthaat/storefront/internal/pkg/database"
	"github.com/hasthaat/storefront/internal/pkg/logger"
	memoryRepo "github.com/hasthaat/storefront/internal/repository/memory"
	postgresRepo "github.com/hasthaat/storefront/internal/repository/postgres"
	redisRepo "github.com/hasthaat/storefront/internal/repository/redis"
	cartUsecase "github.com/hasthaat/storefront/internal/usecase/cart"
	catalogUsecase "github.com/hasthaat/storefront/internal/usecase/catalog"
	"github.com/hasthaat/storefront/internal/usecase/checkout"
	"github.com/hasthaat/storefront/internal/usecase/seller"

	_ "github.com/hasthaat/storefront/docs"
)

// @title Handcraft Storefront API
// @version 1.0
// @description Storefront backend for a handcrafted-goods marketplace: catalog browsing with filter/sort, session carts, checkout and seller onboarding.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @tag.name Catalog
// @tag.description Product, category and artisan browsing

// @tag.name Cart
// @tag.description Session cart operations

// @tag.name Checkout
// @tag.description Order placement

// @tag.name Sellers
// @tag.description Seller onboarding

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	appLogger.Info("Starting Handcraft Storefront API...")

	catalogStore, err := buildCatalogStore(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to load catalog", err)
	}

	cartStore, err := buildCartStore(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize cart store", err)
	}

	appLogger.Info("Connecting to NATS...")
	publisher, err := events.NewPublisher(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create NATS publisher", err)
	}
	defer publisher.Close()

	if err := events.NewStreamConfig(publisher.JetStream(), appLogger).EnsureStream(); err != nil {
		appLogger.Fatal("Failed to ensure event stream", err)
	}

	catalogService := catalogUsecase.NewService(catalogStore, catalogStore, appLogger)
	cartService := cartUsecase.NewService(cartStore, catalogStore, appLogger)
	checkoutService := checkout.NewService(cartStore, publisher, appLogger)
	sellerService := seller.NewService(publisher, appLogger)

	catalogHandler := handler.NewCatalogHandler(catalogService, appLogger)
	cartHandler := handler.NewCartHandler(cartService, appLogger)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, appLogger)
	sellerHandler := handler.NewSellerHandler(sellerService, appLogger)

	router := httpDelivery.NewRouter(catalogHandler, cartHandler, checkoutHandler, sellerHandler, cfg, appLogger)
	httpHandler := router.Setup()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Infof("HTTP server listening on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("HTTP server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server stopped gracefully")
}

// buildCatalogStore loads the catalog into memory from the configured
// source. Either way the running API serves reads from the in-memory store.
func buildCatalogStore(cfg *config.Config, appLogger *logger.Logger) (*catalog.Store, error) {
	if cfg.Catalog.Source == "postgres" {
		appLogger.Info("Loading catalog from PostgreSQL...")
		db, err := database.WaitForDB(cfg, 10, 2*time.Second)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		loader := postgresRepo.NewCatalogLoader(db)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		products, err := loader.LoadProducts(ctx)
		if err != nil {
			return nil, err
		}
		categories, err := loader.LoadCategories(ctx)
		if err != nil {
			return nil, err
		}
		artisans, err := loader.LoadArtisans(ctx)
		if err != nil {
			return nil, err
		}

		appLogger.Infof("Catalog loaded: %d products, %d categories, %d artisans",
			len(products), len(categories), len(artisans))
		return catalog.NewStore(products, categories, artisans), nil
	}

	appLogger.Info("Loading embedded catalog seed...")
	return catalog.NewStoreFromSeed()
}

// buildCartStore selects the session cart backend
func buildCartStore(cfg *config.Config, appLogger *logger.Logger) (domain.CartRepository, error) {
	if cfg.Cart.Backend == "redis" {
		appLogger.Info("Connecting to Redis for session carts...")
		client, err := cache.WaitForRedis(cfg, 10, 2*time.Second)
		if err != nil {
			return nil, err
		}
		return redisRepo.NewCartStore(client, cfg.Cart.SessionTTL), nil
	}

	appLogger.Info("Using in-memory session carts")
	return memoryRepo.NewCartStore(), nil
}
