package checkout

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hasthaat/storefront/internal/domain"
	"github.com/hasthaat/storefront/internal/pkg/logger"
	"github.com/hasthaat/storefront/internal/repository/memory"
)

// MockPublisher is a mock implementation of EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, subject string, data []byte) error {
	args := m.Called(ctx, subject, data)
	return args.Error(0)
}

func validShipping() domain.ShippingDetails {
	return domain.ShippingDetails{
		FirstName: "Asha",
		LastName:  "Verma",
		Address:   "12 MG Road",
		City:      "Jaipur",
		State:     "Rajasthan",
		Pincode:   "302001",
		Phone:     "9876543210",
	}
}

func seedCart(t *testing.T, carts domain.CartRepository, sessionID string) *domain.Cart {
	t.Helper()

	cart := domain.NewCart(sessionID)
	cart.AddItem(domain.Product{ID: 1, Name: "Blue Pottery Vase", Price: 1299}, 2)
	cart.AddItem(domain.Product{ID: 7, Name: "Brass Diya Lamp Set", Price: 1599}, 1)
	require.NoError(t, carts.Save(context.Background(), cart))
	return cart
}

func TestService_PlaceOrder_Success(t *testing.T) {
	carts := memory.NewCartStore()
	publisher := new(MockPublisher)
	log := logger.New("test")
	service := NewService(carts, publisher, log)

	seedCart(t, carts, "session-1")
	publisher.On("Publish", mock.Anything, "orders.events", mock.Anything).Return(nil)

	order, err := service.PlaceOrder(context.Background(), "session-1", validShipping(), domain.PaymentCashOnDelivery)

	assert.NoError(t, err)
	assert.Len(t, order.Lines, 2)
	assert.Equal(t, int64(1299*2+1599), order.TotalPrice)
	assert.Equal(t, domain.PaymentCashOnDelivery, order.PaymentMethod)

	// Cart is cleared after placement
	_, err = carts.Get(context.Background(), "session-1")
	assert.Equal(t, domain.ErrNotFound, err)

	publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestService_PlaceOrder_PublishesOrderEvent(t *testing.T) {
	carts := memory.NewCartStore()
	publisher := new(MockPublisher)
	log := logger.New("test")
	service := NewService(carts, publisher, log)

	seedCart(t, carts, "session-1")

	var published []byte
	publisher.On("Publish", mock.Anything, "orders.events", mock.Anything).
		Run(func(args mock.Arguments) {
			published = args.Get(2).([]byte)
		}).
		Return(nil)

	order, err := service.PlaceOrder(context.Background(), "session-1", validShipping(), domain.PaymentUPI)
	require.NoError(t, err)

	var event OrderEvent
	require.NoError(t, json.Unmarshal(published, &event))
	assert.Equal(t, "order.placed", event.EventType)
	require.NotNil(t, event.Order)
	assert.Equal(t, order.Number, event.Order.Number)
	assert.Equal(t, order.TotalPrice, event.Order.TotalPrice)
}

func TestService_PlaceOrder_OrderNumberFromTimestamp(t *testing.T) {
	carts := memory.NewCartStore()
	publisher := new(MockPublisher)
	log := logger.New("test")
	service := NewService(carts, publisher, log)
	service.now = func() time.Time {
		return time.UnixMilli(1712345678901)
	}

	seedCart(t, carts, "session-1")
	publisher.On("Publish", mock.Anything, "orders.events", mock.Anything).Return(nil)

	order, err := service.PlaceOrder(context.Background(), "session-1", validShipping(), "")

	assert.NoError(t, err)
	assert.Equal(t, "HH45678901", order.Number)
	// Empty payment method falls back to cash on delivery
	assert.Equal(t, domain.PaymentCashOnDelivery, order.PaymentMethod)
}

func TestService_PlaceOrder_EmptyCart(t *testing.T) {
	carts := memory.NewCartStore()
	publisher := new(MockPublisher)
	log := logger.New("test")
	service := NewService(carts, publisher, log)

	order, err := service.PlaceOrder(context.Background(), "session-1", validShipping(), domain.PaymentCashOnDelivery)

	assert.Error(t, err)
	assert.Equal(t, domain.ErrEmptyCart, err)
	assert.Nil(t, order)
	publisher.AssertNotCalled(t, "Publish")
}

func TestService_PlaceOrder_MissingRequiredFields(t *testing.T) {
	carts := memory.NewCartStore()
	publisher := new(MockPublisher)
	log := logger.New("test")
	service := NewService(carts, publisher, log)

	seedCart(t, carts, "session-1")

	shipping := validShipping()
	shipping.Pincode = ""

	order, err := service.PlaceOrder(context.Background(), "session-1", shipping, domain.PaymentCashOnDelivery)

	assert.Error(t, err)
	assert.Equal(t, domain.ErrInvalidInput, err)
	assert.Nil(t, order)

	// Cart survives a failed submission
	cart, err := carts.Get(context.Background(), "session-1")
	assert.NoError(t, err)
	assert.Len(t, cart.Lines, 2)
}

func TestService_PlaceOrder_UnknownPaymentMethod(t *testing.T) {
	carts := memory.NewCartStore()
	publisher := new(MockPublisher)
	log := logger.New("test")
	service := NewService(carts, publisher, log)

	seedCart(t, carts, "session-1")

	order, err := service.PlaceOrder(context.Background(), "session-1", validShipping(), "barter")

	assert.Error(t, err)
	assert.Equal(t, domain.ErrInvalidInput, err)
	assert.Nil(t, order)
}

func TestService_PlaceOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	carts := memory.NewCartStore()
	publisher := new(MockPublisher)
	log := logger.New("test")
	service := NewService(carts, publisher, log)

	seedCart(t, carts, "session-1")
	publisher.On("Publish", mock.Anything, "orders.events", mock.Anything).
		Return(assert.AnError)

	order, err := service.PlaceOrder(context.Background(), "session-1", validShipping(), domain.PaymentCard)

	assert.NoError(t, err)
	assert.NotNil(t, order)
}
