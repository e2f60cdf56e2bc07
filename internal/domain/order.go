package domain

import "time"

// PaymentMethod is the shopper's chosen way to pay
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentUPI            PaymentMethod = "upi"
	PaymentCard           PaymentMethod = "card"
)

// ShippingDetails captures the delivery address collected at checkout.
// Only field presence is validated; there is no address verification.
type ShippingDetails struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Pincode   string `json:"pincode" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
}

// Order is a confirmation snapshot of a placed order. Orders are not
// persisted; the number is presentational and derived from the placement
// timestamp, with no uniqueness guarantee across restarts.
type Order struct {
	Number        string          `json:"number"`
	Lines         []CartLine      `json:"lines"`
	TotalPrice    int64           `json:"total_price"`
	Shipping      ShippingDetails `json:"shipping"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	PlacedAt      time.Time       `json:"placed_at"`
}
