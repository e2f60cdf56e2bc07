package catalog

import (
	"context"
	"errors"
	"sort"

	"github.com/hasthaat/storefront/internal/domain"
	"github.com/hasthaat/storefront/internal/pkg/logger"
)

// SortKey selects the ordering of a derived catalog view
type SortKey string

const (
	// SortNewest partitions new arrivals ahead of the rest, keeping the
	// catalog order within each group. It is not a recency sort.
	SortNewest SortKey = "newest"

	// SortPriceLow orders ascending by price
	SortPriceLow SortKey = "priceLow"

	// SortPriceHigh orders descending by price
	SortPriceHigh SortKey = "priceHigh"
)

// FilterConfig describes one derived view of the catalog. The zero value
// means "everything, newest first" once normalized against the catalog's
// price span.
type FilterConfig struct {
	// Category is a category slug. Empty or unknown slugs disable
	// category filtering.
	Category string

	// MinPrice and MaxPrice bound the price filter, both inclusive.
	// A MaxPrice of zero or less is replaced by the catalog's highest
	// observed price.
	MinPrice int64
	MaxPrice int64

	// MinRating is an inclusive lower bound; zero disables the filter
	MinRating float64

	Sort SortKey
}

// Service derives filtered, ordered catalog views
type Service struct {
	repo     domain.CatalogRepository
	artisans domain.ArtisanRepository
	logger   *logger.Logger
}

// NewService creates a new catalog service
func NewService(repo domain.CatalogRepository, artisans domain.ArtisanRepository, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		artisans: artisans,
		logger:   log,
	}
}

// DeriveView filters and orders products according to the config. It is a
// pure function: the input slice is never mutated and identical inputs
// yield identical output, including order. The category argument is the
// resolved category for cfg.Category, or nil for no category filter.
func DeriveView(products []domain.Product, category *domain.Category, cfg FilterConfig) []domain.Product {
	view := make([]domain.Product, 0, len(products))

	for _, p := range products {
		// Products reference categories by display name
		if category != nil && p.Category != category.Name {
			continue
		}
		if p.Price < cfg.MinPrice || p.Price > cfg.MaxPrice {
			continue
		}
		if cfg.MinRating > 0 && p.Rating < cfg.MinRating {
			continue
		}
		view = append(view, p)
	}

	switch cfg.Sort {
	case SortPriceLow:
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].Price < view[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].Price > view[j].Price
		})
	default:
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].IsNew && !view[j].IsNew
		})
	}

	return view
}

// Browse returns the derived view for a filter config along with the
// result count. An empty result is a normal outcome, never an error; the
// caller presents the empty state and a filter reset.
func (s *Service) Browse(ctx context.Context, cfg FilterConfig) ([]domain.Product, int, error) {
	products, err := s.repo.Products(ctx)
	if err != nil {
		s.logger.Error("Failed to load products", err)
		return nil, 0, err
	}

	if cfg.MinPrice < 0 {
		cfg.MinPrice = 0
	}
	if cfg.MaxPrice <= 0 {
		maxPrice, err := s.repo.MaxPrice(ctx)
		if err != nil {
			s.logger.Error("Failed to resolve catalog price span", err)
			return nil, 0, err
		}
		cfg.MaxPrice = maxPrice
	}

	// Unknown slugs mean no category filter, not an error
	var category *domain.Category
	if cfg.Category != "" {
		category, err = s.repo.CategoryBySlug(ctx, cfg.Category)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to resolve category", err)
			return nil, 0, err
		}
	}

	view := DeriveView(products, category, cfg)
	return view, len(view), nil
}

// ProductByID retrieves a single product
func (s *Service) ProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.repo.ProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debugf("Product not found: %d", id)
		} else {
			s.logger.Error("Failed to get product", err)
		}
		return nil, err
	}

	return product, nil
}

// Categories returns every category
func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		s.logger.Error("Failed to list categories", err)
		return nil, err
	}
	return categories, nil
}

// Artisans returns every artisan profile
func (s *Service) Artisans(ctx context.Context) ([]domain.Artisan, error) {
	artisans, err := s.artisans.Artisans(ctx)
	if err != nil {
		s.logger.Error("Failed to list artisans", err)
		return nil, err
	}
	return artisans, nil
}

// ArtisanByID retrieves a single artisan
func (s *Service) ArtisanByID(ctx context.Context, id int64) (*domain.Artisan, error) {
	artisan, err := s.artisans.ArtisanByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debugf("Artisan not found: %d", id)
		} else {
			s.logger.Error("Failed to get artisan", err)
		}
		return nil, err
	}
	return artisan, nil
}

// ArtisanProducts returns the products owned by an artisan
func (s *Service) ArtisanProducts(ctx context.Context, artisanID int64) ([]domain.Product, error) {
	if _, err := s.artisans.ArtisanByID(ctx, artisanID); err != nil {
		return nil, err
	}

	products, err := s.repo.ProductsByArtisan(ctx, artisanID)
	if err != nil {
		s.logger.Error("Failed to list artisan products", err)
		return nil, err
	}
	return products, nil
}
