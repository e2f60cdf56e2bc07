package main

import (
	"context"
	"log"
	"time"

	"github.com/hasthaat/storefront/internal/catalog"
	"github.com/hasthaat/storefront/internal/config"
	"github.com/hasthaat/storefront/internal/pkg/database"
	"github.com/hasthaat/storefront/internal/pkg/logger"
	"github.com/hasthaat/storefront/internal/repository/postgres"
)

// Provisions the catalog tables and upserts the embedded seed, for
// deployments that run the API with CATALOG_SOURCE=postgres.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	appLogger.Info("Starting catalog seeder...")

	seed, err := catalog.LoadSeed()
	if err != nil {
		appLogger.Fatal("Failed to load embedded seed", err)
	}

	db, err := database.WaitForDB(cfg, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := postgres.NewSeeder(db).Run(ctx, seed); err != nil {
		appLogger.Fatal("Failed to seed catalog", err)
	}

	appLogger.Infof("Catalog seeded: %d products, %d categories, %d artisans",
		len(seed.Products), len(seed.Categories), len(seed.Artisans))
}
