package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hasthaat/storefront/internal/domain"
	"github.com/hasthaat/storefront/internal/pkg/logger"
)

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// OrderEvent is published when an order is placed
type OrderEvent struct {
	EventType string        `json:"event_type"`
	Timestamp time.Time     `json:"timestamp"`
	Order     *domain.Order `json:"order"`
}

// Service walks a session cart through order placement
type Service struct {
	carts     domain.CartRepository
	publisher EventPublisher
	validate  *validator.Validate
	logger    *logger.Logger

	// now is swapped out in tests
	now func() time.Time
}

// NewService creates a new checkout service
func NewService(carts domain.CartRepository, publisher EventPublisher, log *logger.Logger) *Service {
	return &Service{
		carts:     carts,
		publisher: publisher,
		validate:  validator.New(),
		logger:    log,
		now:       time.Now,
	}
}

// orderNumber derives the presentational order number from the placement
// time: "HH" plus the last eight digits of the unix-milli timestamp. It
// carries no uniqueness guarantee across restarts.
func orderNumber(placedAt time.Time) string {
	millis := fmt.Sprintf("%d", placedAt.UnixMilli())
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}
	return "HH" + millis
}

// PlaceOrder snapshots the session's cart into an order confirmation,
// clears the cart and publishes an order event. Placement never fails for
// a valid, non-empty cart; the order itself is not persisted.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, shipping domain.ShippingDetails, payment domain.PaymentMethod) (*domain.Order, error) {
	if err := s.validate.Struct(shipping); err != nil {
		s.logger.Error("Shipping details validation failed", err)
		return nil, domain.ErrInvalidInput
	}

	switch payment {
	case domain.PaymentCashOnDelivery, domain.PaymentUPI, domain.PaymentCard:
	case "":
		payment = domain.PaymentCashOnDelivery
	default:
		return nil, domain.ErrInvalidInput
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrEmptyCart
		}
		s.logger.Error("Failed to load cart for checkout", err)
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	placedAt := s.now()
	order := &domain.Order{
		Number:        orderNumber(placedAt),
		Lines:         append([]domain.CartLine(nil), cart.Lines...),
		TotalPrice:    cart.TotalPrice(),
		Shipping:      shipping,
		PaymentMethod: payment,
		PlacedAt:      placedAt,
	}

	if err := s.carts.Delete(ctx, sessionID); err != nil {
		s.logger.Error("Failed to clear cart after order", err)
		return nil, err
	}

	s.publishEvent(ctx, "order.placed", order)

	s.logger.WithFields(map[string]interface{}{
		"order_number": order.Number,
		"session_id":   sessionID,
		"total_price":  order.TotalPrice,
		"item_count":   len(order.Lines),
	}).Info("Order placed")

	return order, nil
}

// publishEvent publishes an order event; failures are logged, never
// surfaced, so the shopping flow stays uninterruptable
func (s *Service) publishEvent(ctx context.Context, eventType string, order *domain.Order) {
	event := OrderEvent{
		EventType: eventType,
		Timestamp: s.now(),
		Order:     order,
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("Failed to marshal order event", err)
		return
	}

	if err := s.publisher.Publish(ctx, "orders.events", data); err != nil {
		s.logger.Warnf("Failed to publish order event for %s: %v", order.Number, err)
	}
}
