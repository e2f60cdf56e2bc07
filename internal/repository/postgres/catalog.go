package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hasthaat/storefront/internal/domain"
)

// CatalogLoader reads the catalog tables once at startup. The rows are
// handed to the in-memory store; nothing reads the database after boot.
type CatalogLoader struct {
	db *sqlx.DB
}

// NewCatalogLoader creates a new catalog loader
func NewCatalogLoader(db *sqlx.DB) *CatalogLoader {
	return &CatalogLoader{db: db}
}

// LoadProducts reads every product in id order
func (l *CatalogLoader) LoadProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, name_hi, category, price, original_price,
		       rating, reviews, image, is_best_seller, is_new,
		       artisan_id, artisan_name
		FROM products
		ORDER BY id
	`

	var products []domain.Product
	if err := l.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	return products, nil
}

// LoadCategories reads every category in id order
func (l *CatalogLoader) LoadCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, name_hi, slug, image, product_count
		FROM categories
		ORDER BY id
	`

	var categories []domain.Category
	if err := l.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	return categories, nil
}

// LoadArtisans reads every artisan in id order
func (l *CatalogLoader) LoadArtisans(ctx context.Context) ([]domain.Artisan, error) {
	query := `
		SELECT id, name, name_hi, location, location_hi, craft,
		       bio, bio_hi, avatar, rating, products_count,
		       followers, joined_year, is_verified
		FROM artisans
		ORDER BY id
	`

	var artisans []domain.Artisan
	if err := l.db.SelectContext(ctx, &artisans, query); err != nil {
		return nil, fmt.Errorf("failed to load artisans: %w", err)
	}

	return artisans, nil
}
