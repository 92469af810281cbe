package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema is applied at startup. Every statement is idempotent.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS transactions (
		id BIGSERIAL PRIMARY KEY,
		transaction_id TEXT NOT NULL,
		external_id TEXT,
		datetime TEXT,
		url TEXT,
		order_status TEXT,
		payment_methods TEXT NOT NULL DEFAULT '[]',
		price TEXT NOT NULL DEFAULT '{}',
		products TEXT NOT NULL DEFAULT '[]',
		merchant_id TEXT,
		merchant_name TEXT,
		raw_data TEXT NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS transactions_transaction_id_key ON transactions (transaction_id)`,
	`CREATE TABLE IF NOT EXISTS leaderboard (
		user_id TEXT PRIMARY KEY,
		total_score DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS purchases (
		id BIGSERIAL PRIMARY KEY,
		user_id TEXT NOT NULL,
		product_name TEXT NOT NULL,
		store TEXT,
		brand TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS store_emissions (
		name TEXT PRIMARY KEY,
		sustainability_score DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS brand_emissions (
		name TEXT PRIMARY KEY,
		sustainability_score DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
}

// Migrate applies Schema in order
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for i, stmt := range Schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement %d: %w", i, err)
		}
	}
	return nil
}
