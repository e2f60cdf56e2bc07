package catalog

import (
	"context"

	"github.com/hasthaat/storefront/internal/domain"
)

// Store is the in-memory catalog. Records are loaded once at construction
// and never mutated afterwards, so reads need no locking and the backing
// slices may be aliased freely across derivations.
type Store struct {
	products   []domain.Product
	categories []domain.Category
	artisans   []domain.Artisan

	productsByID    map[int64]*domain.Product
	categoryBySlug  map[string]*domain.Category
	artisansByID    map[int64]*domain.Artisan
	maxProductPrice int64
}

// NewStore builds the in-memory catalog from loaded records
func NewStore(products []domain.Product, categories []domain.Category, artisans []domain.Artisan) *Store {
	s := &Store{
		products:       products,
		categories:     categories,
		artisans:       artisans,
		productsByID:   make(map[int64]*domain.Product, len(products)),
		categoryBySlug: make(map[string]*domain.Category, len(categories)),
		artisansByID:   make(map[int64]*domain.Artisan, len(artisans)),
	}

	for i := range s.products {
		p := &s.products[i]
		s.productsByID[p.ID] = p
		if p.Price > s.maxProductPrice {
			s.maxProductPrice = p.Price
		}
	}
	for i := range s.categories {
		s.categoryBySlug[s.categories[i].Slug] = &s.categories[i]
	}
	for i := range s.artisans {
		s.artisansByID[s.artisans[i].ID] = &s.artisans[i]
	}

	return s
}

// NewStoreFromSeed builds the catalog from the embedded seed data
func NewStoreFromSeed() (*Store, error) {
	seed, err := LoadSeed()
	if err != nil {
		return nil, err
	}
	return NewStore(seed.Products, seed.Categories, seed.Artisans), nil
}

// Products returns every product in catalog order
func (s *Store) Products(ctx context.Context) ([]domain.Product, error) {
	return s.products, nil
}

// ProductByID retrieves a single product
func (s *Store) ProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, ok := s.productsByID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// ProductsByArtisan returns the products owned by an artisan
func (s *Store) ProductsByArtisan(ctx context.Context, artisanID int64) ([]domain.Product, error) {
	var products []domain.Product
	for _, p := range s.products {
		if p.ArtisanID == artisanID {
			products = append(products, p)
		}
	}
	return products, nil
}

// Categories returns every category
func (s *Store) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categories, nil
}

// CategoryBySlug retrieves a category by its slug
func (s *Store) CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	c, ok := s.categoryBySlug[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// MaxPrice returns the highest product price in the catalog
func (s *Store) MaxPrice(ctx context.Context) (int64, error) {
	return s.maxProductPrice, nil
}

// Artisans returns every artisan profile
func (s *Store) Artisans(ctx context.Context) ([]domain.Artisan, error) {
	return s.artisans, nil
}

// ArtisanByID retrieves a single artisan
func (s *Store) ArtisanByID(ctx context.Context, id int64) (*domain.Artisan, error) {
	a, ok := s.artisansByID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a, nil
}
