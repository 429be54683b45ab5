package postgres

import (
	"context"
	"fmt"
)

// EnsureSchema crea las tablas e índices si no existen. Idempotente: se llama
// en cada arranque (api, console y migrate).
func EnsureSchema(ctx context.Context, q Querier) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id          BIGINT PRIMARY KEY,
			name        TEXT NOT NULL,
			price       NUMERIC(12,2) NOT NULL,
			quantity    INT NOT NULL,
			category    TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_name ON products (name)`,
		`CREATE TABLE IF NOT EXISTS customers (
			id            UUID PRIMARY KEY,
			name          TEXT NOT NULL,
			email         TEXT UNIQUE,
			phone         TEXT NOT NULL DEFAULT '',
			registered_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
