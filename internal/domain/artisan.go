package domain

import "context"

// Artisan represents a seller profile presented alongside their products
type Artisan struct {
	ID         int64   `json:"id" db:"id"`
	Name       string  `json:"name" db:"name" validate:"required"`
	NameHi     string  `json:"name_hi" db:"name_hi"`
	Location   string  `json:"location" db:"location"`
	LocationHi string  `json:"location_hi" db:"location_hi"`
	Craft      string  `json:"craft" db:"craft"`
	Bio        string  `json:"bio" db:"bio"`
	BioHi      string  `json:"bio_hi" db:"bio_hi"`
	Avatar     string  `json:"avatar" db:"avatar"`
	Rating     float64 `json:"rating" db:"rating"`

	ProductsCount int  `json:"products_count" db:"products_count"`
	Followers     int  `json:"followers" db:"followers"`
	JoinedYear    int  `json:"joined_year" db:"joined_year"`
	IsVerified    bool `json:"is_verified" db:"is_verified"`
}

// ArtisanRepository defines read-only access to artisan profiles
type ArtisanRepository interface {
	// Artisans returns every artisan profile
	Artisans(ctx context.Context) ([]Artisan, error)

	// ArtisanByID retrieves a single artisan
	ArtisanByID(ctx context.Context, id int64) (*Artisan, error)
}
