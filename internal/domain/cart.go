package domain

import "context"

// CartLine is one entry in a cart: a product snapshot plus a quantity.
// Display fields are denormalized at add time so the cart renders without
// touching the catalog again.
type CartLine struct {
	ProductID   int64  `json:"product_id"`
	Name        string `json:"name"`
	NameHi      string `json:"name_hi"`
	Image       string `json:"image"`
	Price       int64  `json:"price"`
	ArtisanName string `json:"artisan_name"`
	Quantity    int    `json:"quantity"`
}

// Cart is the session-scoped shopping cart aggregate. Lines keep insertion
// order and hold at most one entry per product id.
type Cart struct {
	SessionID string     `json:"session_id"`
	Lines     []CartLine `json:"lines"`
}

// NewCart returns an empty cart for a session
func NewCart(sessionID string) *Cart {
	return &Cart{SessionID: sessionID}
}

// AddItem adds a product to the cart. If a line for the product already
// exists its quantity is incremented, otherwise a new line is appended.
// Quantities below 1 are normalized to 1 so the shopping flow never fails.
func (c *Cart) AddItem(p Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			c.Lines[i].Quantity += quantity
			return
		}
	}

	c.Lines = append(c.Lines, CartLine{
		ProductID:   p.ID,
		Name:        p.Name,
		NameHi:      p.NameHi,
		Image:       p.Image,
		Price:       p.Price,
		ArtisanName: p.ArtisanName,
		Quantity:    quantity,
	})
}

// SetQuantity sets a line's quantity to exactly the given value. A quantity
// of zero or less removes the line. Unknown product ids are a no-op.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem removes a line if present; unknown product ids are a no-op
func (c *Cart) RemoveItem(productID int64) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Clear removes every line, e.g. after an order is placed
func (c *Cart) Clear() {
	c.Lines = nil
}

// TotalItemCount returns the sum of quantities across all lines
func (c *Cart) TotalItemCount() int {
	var total int
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice returns the sum of price times quantity across all lines.
// Shipping is always free and coupons never feed back into this total.
func (c *Cart) TotalPrice() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.Price * int64(line.Quantity)
	}
	return total
}

// CartRepository defines storage for session carts. Implementations hold
// carts only for the lifetime of a session.
type CartRepository interface {
	// Get retrieves the cart for a session, or ErrNotFound
	Get(ctx context.Context, sessionID string) (*Cart, error)

	// Save stores the cart under its session id
	Save(ctx context.Context, cart *Cart) error

	// Delete discards the cart for a session
	Delete(ctx context.Context, sessionID string) error
}
