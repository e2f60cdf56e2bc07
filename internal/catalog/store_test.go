package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasthaat/storefront/internal/domain"
)

func TestLoadSeed(t *testing.T) {
	seed, err := LoadSeed()

	require.NoError(t, err)
	assert.Len(t, seed.Categories, 8)
	assert.Len(t, seed.Artisans, 6)
	assert.Len(t, seed.Products, 12)
}

func TestLoadSeed_ProductCategoriesResolve(t *testing.T) {
	seed, err := LoadSeed()
	require.NoError(t, err)

	names := make(map[string]bool, len(seed.Categories))
	for _, c := range seed.Categories {
		names[c.Name] = true
	}

	// Every product must carry a category display name the catalog knows,
	// otherwise category filtering would silently drop it
	for _, p := range seed.Products {
		assert.Truef(t, names[p.Category], "product %d has unknown category %q", p.ID, p.Category)
	}
}

func TestNewStoreFromSeed(t *testing.T) {
	store, err := NewStoreFromSeed()
	require.NoError(t, err)

	products, err := store.Products(context.Background())
	assert.NoError(t, err)
	assert.Len(t, products, 12)

	categories, err := store.Categories(context.Background())
	assert.NoError(t, err)
	assert.Len(t, categories, 8)

	artisans, err := store.Artisans(context.Background())
	assert.NoError(t, err)
	assert.Len(t, artisans, 6)
}

func TestStore_ProductByID(t *testing.T) {
	store, err := NewStoreFromSeed()
	require.NoError(t, err)

	product, err := store.ProductByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), product.ID)
	assert.NotEmpty(t, product.Name)

	_, err = store.ProductByID(context.Background(), 9999)
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestStore_CategoryBySlug(t *testing.T) {
	store, err := NewStoreFromSeed()
	require.NoError(t, err)

	category, err := store.CategoryBySlug(context.Background(), "pottery")
	assert.NoError(t, err)
	assert.Equal(t, "Pottery & Ceramics", category.Name)

	_, err = store.CategoryBySlug(context.Background(), "no-such-slug")
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestStore_MaxPrice(t *testing.T) {
	store, err := NewStoreFromSeed()
	require.NoError(t, err)

	max, err := store.MaxPrice(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(8999), max)
}

func TestStore_ProductsByArtisan(t *testing.T) {
	store, err := NewStoreFromSeed()
	require.NoError(t, err)

	products, err := store.ProductsByArtisan(context.Background(), 1)
	assert.NoError(t, err)
	assert.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, int64(1), p.ArtisanID)
	}

	none, err := store.ProductsByArtisan(context.Background(), 9999)
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_ArtisanByID(t *testing.T) {
	store, err := NewStoreFromSeed()
	require.NoError(t, err)

	artisan, err := store.ArtisanByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "Ramesh Kumar", artisan.Name)

	_, err = store.ArtisanByID(context.Background(), 9999)
	assert.Equal(t, domain.ErrNotFound, err)
}
