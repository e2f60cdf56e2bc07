package cart

import (
	"context"
	"errors"

	"github.com/hasthaat/storefront/internal/domain"
	"github.com/hasthaat/storefront/internal/pkg/logger"
)

// Service handles session cart operations. Every operation loads the
// session's cart, applies the aggregate mutation and saves the result; the
// store serializes concurrent saves for a session.
type Service struct {
	carts   domain.CartRepository
	catalog domain.CatalogRepository
	logger  *logger.Logger
}

// NewService creates a new cart service
func NewService(carts domain.CartRepository, catalog domain.CatalogRepository, log *logger.Logger) *Service {
	return &Service{
		carts:   carts,
		catalog: catalog,
		logger:  log,
	}
}

// Get returns the cart for a session. A session without a cart gets an
// empty one; missing carts are never an error.
func (s *Service) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewCart(sessionID), nil
		}
		s.logger.Error("Failed to load cart", err)
		return nil, err
	}
	return cart, nil
}

// AddItem adds a product to the session's cart, merging quantities when the
// product is already present. The product snapshot is taken from the
// catalog at add time.
func (s *Service) AddItem(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.Cart, error) {
	product, err := s.catalog.ProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debugf("Add to cart for unknown product: %d", productID)
		} else {
			s.logger.Error("Failed to resolve product for cart", err)
		}
		return nil, err
	}

	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.AddItem(*product, quantity)

	if err := s.carts.Save(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", err)
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"session_id": sessionID,
		"product_id": productID,
		"quantity":   quantity,
	}).Info("Item added to cart")

	return cart, nil
}

// SetQuantity sets a line's quantity to an exact value; zero or less
// removes the line. Unknown product ids are a no-op.
func (s *Service) SetQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.Cart, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.SetQuantity(productID, quantity)

	if err := s.carts.Save(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", err)
		return nil, err
	}

	return cart, nil
}

// RemoveItem removes a line from the session's cart; unknown product ids
// are a no-op
func (s *Service) RemoveItem(ctx context.Context, sessionID string, productID int64) (*domain.Cart, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(productID)

	if err := s.carts.Save(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", err)
		return nil, err
	}

	return cart, nil
}

// Clear discards the session's cart entirely
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := s.carts.Delete(ctx, sessionID); err != nil {
		s.logger.Error("Failed to clear cart", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"session_id": sessionID,
	}).Info("Cart cleared")

	return nil
}
