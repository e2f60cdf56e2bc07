package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hasthaat/storefront/internal/catalog"
)

// Seeder writes the embedded catalog seed into the catalog tables.
// Existing rows are upserted so the seeder is safe to re-run.
type Seeder struct {
	db *sqlx.DB
}

// NewSeeder creates a new catalog seeder
func NewSeeder(db *sqlx.DB) *Seeder {
	return &Seeder{db: db}
}

// Run provisions the schema and upserts every seed record
func (s *Seeder) Run(ctx context.Context, seed *catalog.Seed) error {
	if err := EnsureSchema(s.db); err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range seed.Categories {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO categories (id, name, name_hi, slug, image, product_count)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name, name_hi = EXCLUDED.name_hi,
				slug = EXCLUDED.slug, image = EXCLUDED.image,
				product_count = EXCLUDED.product_count`,
			c.ID, c.Name, c.NameHi, c.Slug, c.Image, c.ProductCount)
		if err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.Slug, err)
		}
	}

	for _, a := range seed.Artisans {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO artisans (id, name, name_hi, location, location_hi, craft,
				bio, bio_hi, avatar, rating, products_count, followers, joined_year, is_verified)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name, name_hi = EXCLUDED.name_hi,
				location = EXCLUDED.location, location_hi = EXCLUDED.location_hi,
				craft = EXCLUDED.craft, bio = EXCLUDED.bio, bio_hi = EXCLUDED.bio_hi,
				avatar = EXCLUDED.avatar, rating = EXCLUDED.rating,
				products_count = EXCLUDED.products_count, followers = EXCLUDED.followers,
				joined_year = EXCLUDED.joined_year, is_verified = EXCLUDED.is_verified`,
			a.ID, a.Name, a.NameHi, a.Location, a.LocationHi, a.Craft,
			a.Bio, a.BioHi, a.Avatar, a.Rating, a.ProductsCount,
			a.Followers, a.JoinedYear, a.IsVerified)
		if err != nil {
			return fmt.Errorf("failed to seed artisan %d: %w", a.ID, err)
		}
	}

	for _, p := range seed.Products {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO products (id, name, name_hi, category, price, original_price,
				rating, reviews, image, is_best_seller, is_new, artisan_id, artisan_name)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name, name_hi = EXCLUDED.name_hi,
				category = EXCLUDED.category, price = EXCLUDED.price,
				original_price = EXCLUDED.original_price, rating = EXCLUDED.rating,
				reviews = EXCLUDED.reviews, image = EXCLUDED.image,
				is_best_seller = EXCLUDED.is_best_seller, is_new = EXCLUDED.is_new,
				artisan_id = EXCLUDED.artisan_id, artisan_name = EXCLUDED.artisan_name`,
			p.ID, p.Name, p.NameHi, p.Category, p.Price, p.OriginalPrice,
			p.Rating, p.Reviews, p.Image, p.IsBestSeller, p.IsNew,
			p.ArtisanID, p.ArtisanName)
		if err != nil {
			return fmt.Errorf("failed to seed product %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
