package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id      BIGINT PRIMARY KEY,
		name    TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS pizzas (
		id    BIGSERIAL PRIMARY KEY,
		type  SMALLINT NOT NULL,
		size  SMALLINT NOT NULL,
		price NUMERIC(4,2) NOT NULL,
		UNIQUE (type, size)
	)`,
	`CREATE TABLE IF NOT EXISTS delivery_orders (
		id          BIGSERIAL PRIMARY KEY,
		customer_id BIGINT NOT NULL REFERENCES customers(id),
		ordered     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated     TIMESTAMPTZ,
		made        TIMESTAMPTZ,
		delivered   TIMESTAMPTZ,
		total       NUMERIC(12,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS pizza_links (
		id       BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES delivery_orders(id) ON DELETE CASCADE,
		pizza_id BIGINT NOT NULL REFERENCES pizzas(id),
		amount   INTEGER NOT NULL CHECK (amount > 0)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_delivery_orders_customer ON delivery_orders(customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_pizza_links_order ON pizza_links(order_id)`,
}

// Migrate applies the schema. Every statement is idempotent, so running it on
// every startup is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i, err)
		}
	}
	return nil
}
