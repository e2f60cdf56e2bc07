package memory

import (
	"context"
	"sync"

	"github.com/hasthaat/storefront/internal/domain"
)

// CartStore keeps session carts in process memory. Carts live only as long
// as the process; this is the default backend for a single instance.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

// NewCartStore creates an empty in-memory cart store
func NewCartStore() *CartStore {
	return &CartStore{
		carts: make(map[string]*domain.Cart),
	}
}

// Get retrieves the cart for a session, or ErrNotFound
func (s *CartStore) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}

	// Copy so callers never mutate the stored cart without a Save
	clone := &domain.Cart{
		SessionID: cart.SessionID,
		Lines:     append([]domain.CartLine(nil), cart.Lines...),
	}
	return clone, nil
}

// Save stores the cart under its session id
func (s *CartStore) Save(ctx context.Context, cart *domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[cart.SessionID] = &domain.Cart{
		SessionID: cart.SessionID,
		Lines:     append([]domain.CartLine(nil), cart.Lines...),
	}
	return nil
}

// Delete discards the cart for a session; unknown sessions are a no-op
func (s *CartStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}
