package domain

import "time"

// SellerApplication is a seller-onboarding submission. The wizard on the
// client collects it over three steps; the server receives it whole.
type SellerApplication struct {
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submitted_at"`

	// Step 1: personal details
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	City     string `json:"city" validate:"required"`

	// Step 2: shop details
	ShopName        string `json:"shop_name" validate:"required"`
	ShopDescription string `json:"shop_description" validate:"required"`

	// Step 3: first product
	ProductName        string `json:"product_name" validate:"required"`
	ProductPrice       int64  `json:"product_price" validate:"required,gte=0"`
	ProductDescription string `json:"product_description" validate:"required"`
}
