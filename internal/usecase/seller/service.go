package seller

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/hasthaat/storefront/internal/domain"
	"github.com/hasthaat/storefront/internal/pkg/logger"
)

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// ApplicationEvent is published when a seller application is submitted
type ApplicationEvent struct {
	EventType   string                    `json:"event_type"`
	Timestamp   time.Time                 `json:"timestamp"`
	Application *domain.SellerApplication `json:"application"`
}

// Service accepts seller-onboarding applications. Applications are not
// persisted; the event stream is the only record of a submission.
type Service struct {
	publisher EventPublisher
	validate  *validator.Validate
	logger    *logger.Logger
}

// NewService creates a new seller service
func NewService(publisher EventPublisher, log *logger.Logger) *Service {
	return &Service{
		publisher: publisher,
		validate:  validator.New(),
		logger:    log,
	}
}

// Apply validates and accepts a seller application, assigning it an id.
// Only field presence is checked; a valid application always succeeds.
func (s *Service) Apply(ctx context.Context, app *domain.SellerApplication) error {
	app.ID = uuid.NewString()
	app.SubmittedAt = time.Now()

	if err := s.validate.Struct(app); err != nil {
		s.logger.Error("Seller application validation failed", err)
		return domain.ErrInvalidInput
	}

	event := ApplicationEvent{
		EventType:   "seller.applied",
		Timestamp:   app.SubmittedAt,
		Application: app,
	}

	if data, err := json.Marshal(event); err != nil {
		s.logger.Error("Failed to marshal seller application event", err)
	} else if err := s.publisher.Publish(ctx, "sellers.events", data); err != nil {
		s.logger.Warnf("Failed to publish seller application %s: %v", app.ID, err)
	}

	s.logger.WithFields(map[string]interface{}{
		"application_id": app.ID,
		"shop_name":      app.ShopName,
		"city":           app.City,
	}).Info("Seller application received")

	return nil
}
