package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
)

func New(url string) (*sql.DB, error) {
	return sql.Open("postgres", url)
}

func NewPool(ctx context.Context, url string) (*pgxpool.Pool, error) {
	return pgxpool.New(ctx, url)
}

// EnsureSchema cria a tabela de produtos e os índices recomendados.
// Idempotente; roda no início da ingestão.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY,
			dedup_kind TEXT NOT NULL,
			dedup_key TEXT NOT NULL,
			category TEXT,
			title TEXT,
			brand TEXT,
			price DOUBLE PRECISION,
			original_price DOUBLE PRECISION,
			discount_pct DOUBLE PRECISION,
			rating DOUBLE PRECISION,
			reviews BIGINT,
			product_link TEXT,
			image TEXT,
			availability TEXT,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS products_dedup_idx ON products (dedup_kind, dedup_key)`,
		`CREATE INDEX IF NOT EXISTS products_category_idx ON products (category)`,
		`CREATE INDEX IF NOT EXISTS products_brand_idx ON products (brand)`,
		`CREATE INDEX IF NOT EXISTS products_price_idx ON products (price)`,
		`CREATE INDEX IF NOT EXISTS products_rating_idx ON products (rating DESC)`,
		`CREATE INDEX IF NOT EXISTS products_discount_idx ON products (discount_pct DESC)`,
		`CREATE INDEX IF NOT EXISTS products_deals_idx ON products (discount_pct DESC, rating DESC)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("schema bootstrap failed: %w", err)
		}
	}
	return nil
}
