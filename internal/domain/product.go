package domain

import "context"

// Product represents a single handcrafted item in the catalog.
// Catalog records are loaded once at startup and are immutable for the
// lifetime of the process. Prices are whole rupees.
type Product struct {
	ID            int64  `json:"id" db:"id"`
	Name          string `json:"name" db:"name" validate:"required,min=1,max=255"`
	NameHi        string `json:"name_hi" db:"name_hi"`
	Category      string `json:"category" db:"category" validate:"required"`
	Price         int64  `json:"price" db:"price" validate:"gte=0"`
	OriginalPrice *int64 `json:"original_price,omitempty" db:"original_price"`

	Rating  float64 `json:"rating" db:"rating" validate:"gte=0,lte=5"`
	Reviews int     `json:"reviews" db:"reviews" validate:"gte=0"`

	Image        string `json:"image" db:"image"`
	IsBestSeller bool   `json:"is_best_seller" db:"is_best_seller"`
	IsNew        bool   `json:"is_new" db:"is_new"`

	ArtisanID   int64  `json:"artisan_id" db:"artisan_id"`
	ArtisanName string `json:"artisan_name" db:"artisan_name"`
}

// Category groups products under a URL-safe slug. Products reference a
// category by its display Name, not its slug, so display names must stay
// unique and stable.
type Category struct {
	ID     int64  `json:"id" db:"id"`
	Name   string `json:"name" db:"name" validate:"required"`
	NameHi string `json:"name_hi" db:"name_hi"`
	Slug   string `json:"slug" db:"slug" validate:"required"`
	Image  string `json:"image" db:"image"`

	// ProductCount is informational marketing copy and is not kept in
	// sync with the number of products actually in the catalog.
	ProductCount int `json:"product_count" db:"product_count"`
}

// CatalogRepository defines read-only access to the product catalog
type CatalogRepository interface {
	// Products returns every product in catalog order
	Products(ctx context.Context) ([]Product, error)

	// ProductByID retrieves a single product
	ProductByID(ctx context.Context, id int64) (*Product, error)

	// ProductsByArtisan returns the products owned by an artisan
	ProductsByArtisan(ctx context.Context, artisanID int64) ([]Product, error)

	// Categories returns every category
	Categories(ctx context.Context) ([]Category, error)

	// CategoryBySlug retrieves a category by its slug
	CategoryBySlug(ctx context.Context, slug string) (*Category, error)

	// MaxPrice returns the highest product price in the catalog, used as
	// the default upper bound of the price filter
	MaxPrice(ctx context.Context) (int64, error)
}
