package events

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/hasthaat/storefront/internal/config"
	"github.com/hasthaat/storefront/internal/pkg/logger"
)

// Consumer handles consuming events from NATS JetStream
type Consumer struct {
	nc     *nats.Conn
	js     nats.JetStreamContext
	logger *logger.Logger
	subs   []*nats.Subscription
}

// NewConsumer creates a new NATS JetStream consumer
func NewConsumer(cfg *config.Config, log *logger.Logger) (*Consumer, error) {
	nc, err := nats.Connect(cfg.NATS.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	log.Infof("Connected to NATS at %s", cfg.NATS.URL)

	return &Consumer{
		nc:     nc,
		js:     js,
		logger: log,
	}, nil
}

// JetStream exposes the JetStream context for stream provisioning
func (c *Consumer) JetStream() nats.JetStreamContext {
	return c.js
}

// Subscribe creates a durable JetStream subscription on a subject.
// Messages are acked only after the handler succeeds; failed messages are
// redelivered up to MaxDeliveryAttempts times.
func (c *Consumer) Subscribe(subject, durable string, handler func(data []byte) error) error {
	sub, err := c.js.Subscribe(subject, func(msg *nats.Msg) {
		c.logger.Debugf("Received message on subject %s", subject)

		if err := handler(msg.Data); err != nil {
			c.logger.Errorf(err, "Failed to handle message on subject %s", subject)
			return
		}

		if err := msg.Ack(); err != nil {
			c.logger.Warnf("Failed to ack message on subject %s: %v", subject, err)
		}
	},
		nats.Durable(durable),
		nats.ManualAck(),
		nats.AckWait(AckWait),
		nats.MaxDeliver(MaxDeliveryAttempts),
	)
	if err != nil {
		return fmt.Errorf("failed to subscribe to subject %s: %w", subject, err)
	}

	c.subs = append(c.subs, sub)
	c.logger.Infof("Subscribed to NATS subject: %s", subject)
	return nil
}

// Close closes the NATS connection
func (c *Consumer) Close() {
	for _, sub := range c.subs {
		if err := sub.Unsubscribe(); err != nil {
			c.logger.Warnf("Failed to unsubscribe from NATS: %v", err)
		}
	}
	if c.nc != nil {
		c.nc.Close()
		c.logger.Info("NATS consumer connection closed")
	}
}

// LoggingHandler creates a simple handler that logs all events
func LoggingHandler(log *logger.Logger) func(data []byte) error {
	return func(data []byte) error {
		var event map[string]interface{}
		if err := json.Unmarshal(data, &event); err != nil {
			log.Error("Failed to unmarshal event", err)
			return err
		}

		prettyJSON, err := json.MarshalIndent(event, "", "  ")
		if err != nil {
			log.Error("Failed to marshal pretty JSON", err)
			return err
		}

		log.Infof("Received event:\n%s", string(prettyJSON))
		return nil
	}
}
