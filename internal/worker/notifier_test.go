package worker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasthaat/storefront/internal/domain"
	"github.com/hasthaat/storefront/internal/pkg/logger"
	"github.com/hasthaat/storefront/internal/usecase/checkout"
)

func TestNotifier_HandleOrderEvent_Success(t *testing.T) {
	log := logger.New("test")
	notifier := NewNotifier(log)

	event := checkout.OrderEvent{
		EventType: "order.placed",
		Timestamp: time.Now(),
		Order: &domain.Order{
			Number:     "HH45678901",
			TotalPrice: 4197,
			Lines: []domain.CartLine{
				{ProductID: 1, Name: "Blue Pottery Vase", Price: 1299, Quantity: 2},
				{ProductID: 7, Name: "Brass Diya Lamp Set", Price: 1599, Quantity: 1},
			},
			Shipping: domain.ShippingDetails{
				FirstName: "Asha",
				LastName:  "Verma",
				City:      "Jaipur",
				State:     "Rajasthan",
				Pincode:   "302001",
			},
			PaymentMethod: domain.PaymentCashOnDelivery,
			PlacedAt:      time.Now(),
		},
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	assert.NoError(t, notifier.HandleOrderEvent(data))
}

func TestNotifier_HandleOrderEvent_MalformedPayload(t *testing.T) {
	log := logger.New("test")
	notifier := NewNotifier(log)

	err := notifier.HandleOrderEvent([]byte("not json"))

	assert.Error(t, err)
}

func TestNotifier_HandleOrderEvent_MissingOrder(t *testing.T) {
	log := logger.New("test")
	notifier := NewNotifier(log)

	data, err := json.Marshal(checkout.OrderEvent{EventType: "order.placed"})
	require.NoError(t, err)

	assert.Error(t, notifier.HandleOrderEvent(data))
}
