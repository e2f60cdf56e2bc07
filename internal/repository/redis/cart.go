package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hasthaat/storefront/internal/domain"
)

// CartStore keeps session carts in Redis with a session TTL. The TTL is
// refreshed on every save so an active session never loses its cart, while
// abandoned carts expire on their own.
type CartStore struct {
	client     *redis.Client
	sessionTTL time.Duration
}

// NewCartStore creates a Redis-backed cart store
func NewCartStore(client *redis.Client, sessionTTL time.Duration) *CartStore {
	return &CartStore{
		client:     client,
		sessionTTL: sessionTTL,
	}
}

func (s *CartStore) cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

// Get retrieves the cart for a session, or ErrNotFound
func (s *CartStore) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	val, err := s.client.Get(ctx, s.cartKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(val), &cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}

	return &cart, nil
}

// Save stores the cart under its session id and refreshes the session TTL
func (s *CartStore) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	return s.client.Set(ctx, s.cartKey(cart.SessionID), data, s.sessionTTL).Err()
}

// Delete discards the cart for a session; unknown sessions are a no-op
func (s *CartStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.cartKey(sessionID)).Err()
}
