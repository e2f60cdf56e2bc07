package worker

import (
	"encoding/json"
	"fmt"

	"github.com/hasthaat/storefront/internal/pkg/logger"
	"github.com/hasthaat/storefront/internal/usecase/checkout"
)

// Notifier turns order events into shopper-facing confirmations. There is
// no mail transport wired up; confirmations are rendered to the log, which
// keeps the worker honest about the event contract.
type Notifier struct {
	logger *logger.Logger
}

// NewNotifier creates a new order notifier
func NewNotifier(log *logger.Logger) *Notifier {
	return &Notifier{logger: log}
}

// HandleOrderEvent processes a single order event
func (n *Notifier) HandleOrderEvent(data []byte) error {
	var event checkout.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		n.logger.Error("Failed to unmarshal order event", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.Order == nil {
		return fmt.Errorf("order event %s carries no order", event.EventType)
	}

	order := event.Order
	n.logger.WithFields(map[string]interface{}{
		"event_type":   event.EventType,
		"order_number": order.Number,
		"item_count":   len(order.Lines),
		"total_price":  order.TotalPrice,
		"city":         order.Shipping.City,
	}).Info("Order confirmation")

	n.logger.Infof("Dear %s %s, your order %s for ₹%d has been placed and will ship to %s, %s %s.",
		order.Shipping.FirstName, order.Shipping.LastName,
		order.Number, order.TotalPrice,
		order.Shipping.City, order.Shipping.State, order.Shipping.Pincode)

	return nil
}
