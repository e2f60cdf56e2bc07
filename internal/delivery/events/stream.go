package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/hasthaat/storefront/internal/pkg/logger"
)

const (
	// StreamName is the JetStream stream for storefront events
	StreamName = "STOREFRONT"

	// OrdersSubject carries order placement events
	OrdersSubject = "orders.events"

	// SellersSubject carries seller application events
	SellersSubject = "sellers.events"

	// NotifierConsumer is the durable consumer for the notifier worker
	NotifierConsumer = "order-notifier"

	// MaxDeliveryAttempts is the max number of delivery attempts before a
	// message is discarded. Notifications are best effort.
	MaxDeliveryAttempts = 3

	// AckWait is how long to wait for acknowledgment before redelivery
	AckWait = 30 * time.Second

	// MaxAge bounds how long undelivered events are kept. Stale order
	// confirmations are not worth sending.
	MaxAge = 24 * time.Hour
)

// StreamConfig holds the JetStream stream configuration
type StreamConfig struct {
	js     nats.JetStreamContext
	logger *logger.Logger
}

// NewStreamConfig creates a new stream configuration helper
func NewStreamConfig(js nats.JetStreamContext, log *logger.Logger) *StreamConfig {
	return &StreamConfig{
		js:     js,
		logger: log,
	}
}

// EnsureStream creates the storefront event stream if it does not exist
func (s *StreamConfig) EnsureStream() error {
	_, err := s.js.StreamInfo(StreamName)

	if errors.Is(err, nats.ErrStreamNotFound) {
		s.logger.WithFields(map[string]interface{}{
			"stream":   StreamName,
			"subjects": []string{OrdersSubject, SellersSubject},
		}).Info("Creating JetStream stream")

		_, err = s.js.AddStream(&nats.StreamConfig{
			Name:      StreamName,
			Subjects:  []string{OrdersSubject, SellersSubject},
			Retention: nats.LimitsPolicy,
			Storage:   nats.FileStorage,
			Replicas:  1,
			MaxAge:    MaxAge,
		})
		if err != nil {
			return fmt.Errorf("failed to create stream %s: %w", StreamName, err)
		}

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to query stream %s: %w", StreamName, err)
	}

	s.logger.Debugf("JetStream stream %s already exists", StreamName)
	return nil
}
