package seller

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hasthaat/storefront/internal/domain"
	"github.com/hasthaat/storefront/internal/pkg/logger"
)

// MockPublisher is a mock implementation of EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, subject string, data []byte) error {
	args := m.Called(ctx, subject, data)
	return args.Error(0)
}

func validApplication() *domain.SellerApplication {
	return &domain.SellerApplication{
		FullName:           "Meera Devi",
		Email:              "meera@example.com",
		Phone:              "9812345670",
		City:               "Bhuj",
		ShopName:           "Kutch Mirror Works",
		ShopDescription:    "Hand-embroidered mirror work textiles",
		ProductName:        "Mirror Work Cushion Cover",
		ProductPrice:       1299,
		ProductDescription: "Cotton cushion cover with traditional kutchi embroidery",
	}
}

func TestService_Apply_Success(t *testing.T) {
	publisher := new(MockPublisher)
	log := logger.New("test")
	service := NewService(publisher, log)

	publisher.On("Publish", mock.Anything, "sellers.events", mock.Anything).Return(nil)

	app := validApplication()
	err := service.Apply(context.Background(), app)

	assert.NoError(t, err)
	assert.NotEmpty(t, app.ID)
	assert.False(t, app.SubmittedAt.IsZero())
	_, parseErr := uuid.Parse(app.ID)
	assert.NoError(t, parseErr)
	publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestService_Apply_PublishesApplicationEvent(t *testing.T) {
	publisher := new(MockPublisher)
	log := logger.New("test")
	service := NewService(publisher, log)

	var published []byte
	publisher.On("Publish", mock.Anything, "sellers.events", mock.Anything).
		Run(func(args mock.Arguments) {
			published = args.Get(2).([]byte)
		}).
		Return(nil)

	app := validApplication()
	require.NoError(t, service.Apply(context.Background(), app))

	var event ApplicationEvent
	require.NoError(t, json.Unmarshal(published, &event))
	assert.Equal(t, "seller.applied", event.EventType)
	require.NotNil(t, event.Application)
	assert.Equal(t, app.ID, event.Application.ID)
	assert.Equal(t, "Kutch Mirror Works", event.Application.ShopName)
}

func TestService_Apply_MissingRequiredField(t *testing.T) {
	publisher := new(MockPublisher)
	log := logger.New("test")
	service := NewService(publisher, log)

	app := validApplication()
	app.ShopName = ""

	err := service.Apply(context.Background(), app)

	assert.Error(t, err)
	assert.Equal(t, domain.ErrInvalidInput, err)
	publisher.AssertNotCalled(t, "Publish")
}

func TestService_Apply_InvalidEmail(t *testing.T) {
	publisher := new(MockPublisher)
	log := logger.New("test")
	service := NewService(publisher, log)

	app := validApplication()
	app.Email = "not-an-email"

	err := service.Apply(context.Background(), app)

	assert.Error(t, err)
	assert.Equal(t, domain.ErrInvalidInput, err)
}

func TestService_Apply_PublishFailureDoesNotFailSubmission(t *testing.T) {
	publisher := new(MockPublisher)
	log := logger.New("test")
	service := NewService(publisher, log)

	publisher.On("Publish", mock.Anything, "sellers.events", mock.Anything).
		Return(assert.AnError)

	err := service.Apply(context.Background(), validApplication())

	assert.NoError(t, err)
}
