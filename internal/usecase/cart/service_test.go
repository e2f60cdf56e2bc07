package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hasthaat/storefront/internal/domain"
	"github.com/hasthaat/storefront/internal/pkg/logger"
	"github.com/hasthaat/storefront/internal/repository/memory"
)

// MockCatalogRepository is a mock implementation of domain.CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) Products(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogRepository) ProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCatalogRepository) ProductsByArtisan(ctx context.Context, artisanID int64) ([]domain.Product, error) {
	args := m.Called(ctx, artisanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogRepository) Categories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCatalogRepository) CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCatalogRepository) MaxPrice(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService() (*Service, *MockCatalogRepository) {
	mockCatalog := new(MockCatalogRepository)
	log := logger.New("test")
	service := NewService(memory.NewCartStore(), mockCatalog, log)
	return service, mockCatalog
}

func TestService_Get_MissingCartIsEmpty(t *testing.T) {
	service, _ := newTestService()

	cart, err := service.Get(context.Background(), "session-1")

	assert.NoError(t, err)
	assert.Empty(t, cart.Lines)
	assert.Equal(t, 0, cart.TotalItemCount())
}

func TestService_AddItem_Success(t *testing.T) {
	service, mockCatalog := newTestService()

	product := &domain.Product{ID: 1, Name: "Blue Pottery Vase", Price: 1299, ArtisanName: "Ramesh Kumar"}
	mockCatalog.On("ProductByID", mock.Anything, int64(1)).Return(product, nil)

	cart, err := service.AddItem(context.Background(), "session-1", 1, 2)

	assert.NoError(t, err)
	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.TotalItemCount())
	assert.Equal(t, int64(2598), cart.TotalPrice())
	mockCatalog.AssertExpectations(t)
}

func TestService_AddItem_MergesAcrossCalls(t *testing.T) {
	service, mockCatalog := newTestService()

	product := &domain.Product{ID: 1, Name: "Blue Pottery Vase", Price: 500}
	mockCatalog.On("ProductByID", mock.Anything, int64(1)).Return(product, nil)

	_, err := service.AddItem(context.Background(), "session-1", 1, 2)
	assert.NoError(t, err)

	cart, err := service.AddItem(context.Background(), "session-1", 1, 3)
	assert.NoError(t, err)

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
}

func TestService_AddItem_UnknownProduct(t *testing.T) {
	service, mockCatalog := newTestService()

	mockCatalog.On("ProductByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	cart, err := service.AddItem(context.Background(), "session-1", 99, 1)

	assert.Error(t, err)
	assert.Equal(t, domain.ErrNotFound, err)
	assert.Nil(t, cart)
}

func TestService_AddItem_SessionsAreIsolated(t *testing.T) {
	service, mockCatalog := newTestService()

	product := &domain.Product{ID: 1, Name: "Blue Pottery Vase", Price: 500}
	mockCatalog.On("ProductByID", mock.Anything, int64(1)).Return(product, nil)

	_, err := service.AddItem(context.Background(), "session-1", 1, 1)
	assert.NoError(t, err)

	other, err := service.Get(context.Background(), "session-2")
	assert.NoError(t, err)
	assert.Empty(t, other.Lines)
}

func TestService_SetQuantity_ZeroRemovesLine(t *testing.T) {
	service, mockCatalog := newTestService()

	product := &domain.Product{ID: 1, Name: "Blue Pottery Vase", Price: 500}
	mockCatalog.On("ProductByID", mock.Anything, int64(1)).Return(product, nil)

	_, err := service.AddItem(context.Background(), "session-1", 1, 2)
	assert.NoError(t, err)

	cart, err := service.SetQuantity(context.Background(), "session-1", 1, 0)
	assert.NoError(t, err)
	assert.Empty(t, cart.Lines)
	assert.Equal(t, 0, cart.TotalItemCount())
}

func TestService_SetQuantity_UnknownProductIsNoop(t *testing.T) {
	service, _ := newTestService()

	cart, err := service.SetQuantity(context.Background(), "session-1", 99, 5)

	assert.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestService_RemoveItem(t *testing.T) {
	service, mockCatalog := newTestService()

	mockCatalog.On("ProductByID", mock.Anything, int64(1)).
		Return(&domain.Product{ID: 1, Price: 500}, nil)
	mockCatalog.On("ProductByID", mock.Anything, int64(2)).
		Return(&domain.Product{ID: 2, Price: 1500}, nil)

	_, err := service.AddItem(context.Background(), "session-1", 1, 1)
	assert.NoError(t, err)
	_, err = service.AddItem(context.Background(), "session-1", 2, 1)
	assert.NoError(t, err)

	cart, err := service.RemoveItem(context.Background(), "session-1", 1)
	assert.NoError(t, err)
	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(2), cart.Lines[0].ProductID)
}

func TestService_Clear(t *testing.T) {
	service, mockCatalog := newTestService()

	mockCatalog.On("ProductByID", mock.Anything, int64(1)).
		Return(&domain.Product{ID: 1, Price: 500}, nil)

	_, err := service.AddItem(context.Background(), "session-1", 1, 3)
	assert.NoError(t, err)

	err = service.Clear(context.Background(), "session-1")
	assert.NoError(t, err)

	cart, err := service.Get(context.Background(), "session-1")
	assert.NoError(t, err)
	assert.Equal(t, 0, cart.TotalItemCount())
	assert.Equal(t, int64(0), cart.TotalPrice())
}
