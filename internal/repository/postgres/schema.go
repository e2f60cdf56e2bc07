package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema DDL for the catalog tables. The tables are read-only at runtime;
// the seeder provisions them and the API only ever selects from them.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id            BIGINT PRIMARY KEY,
		name          TEXT NOT NULL UNIQUE,
		name_hi       TEXT NOT NULL DEFAULT '',
		slug          TEXT NOT NULL UNIQUE,
		image         TEXT NOT NULL DEFAULT '',
		product_count INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS artisans (
		id             BIGINT PRIMARY KEY,
		name           TEXT NOT NULL,
		name_hi        TEXT NOT NULL DEFAULT '',
		location       TEXT NOT NULL DEFAULT '',
		location_hi    TEXT NOT NULL DEFAULT '',
		craft          TEXT NOT NULL DEFAULT '',
		bio            TEXT NOT NULL DEFAULT '',
		bio_hi         TEXT NOT NULL DEFAULT '',
		avatar         TEXT NOT NULL DEFAULT '',
		rating         DOUBLE PRECISION NOT NULL DEFAULT 0,
		products_count INT NOT NULL DEFAULT 0,
		followers      INT NOT NULL DEFAULT 0,
		joined_year    INT NOT NULL DEFAULT 0,
		is_verified    BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id             BIGINT PRIMARY KEY,
		name           TEXT NOT NULL,
		name_hi        TEXT NOT NULL DEFAULT '',
		category       TEXT NOT NULL REFERENCES categories(name),
		price          BIGINT NOT NULL CHECK (price >= 0),
		original_price BIGINT CHECK (original_price >= price),
		rating         DOUBLE PRECISION NOT NULL DEFAULT 0,
		reviews        INT NOT NULL DEFAULT 0,
		image          TEXT NOT NULL DEFAULT '',
		is_best_seller BOOLEAN NOT NULL DEFAULT FALSE,
		is_new         BOOLEAN NOT NULL DEFAULT FALSE,
		artisan_id     BIGINT NOT NULL REFERENCES artisans(id),
		artisan_name   TEXT NOT NULL DEFAULT ''
	)`,
}

// EnsureSchema creates the catalog tables if they do not exist
func EnsureSchema(db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if err := executeInTx(db, stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}
	return nil
}

func executeInTx(db *sqlx.DB, sql string) error {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(sql); err != nil {
		return fmt.Errorf("failed to execute SQL: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
