package migration

import (
	"context"

	"github.com/fekuna/omnipos-pos-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS products (
        code          TEXT PRIMARY KEY,
        name          TEXT NOT NULL,
        price         NUMERIC(12,2) NOT NULL CHECK (price > 0),
        quantity      INTEGER NOT NULL CHECK (quantity >= 0),
        category      TEXT NOT NULL DEFAULT 'outros',
        description   TEXT,
        registered_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        image_ref     TEXT
    )`,
	`CREATE TABLE IF NOT EXISTS sales (
        id             BIGSERIAL PRIMARY KEY,
        sold_at        TIMESTAMPTZ NOT NULL,
        total          NUMERIC(12,2) NOT NULL,
        payment_method TEXT NOT NULL CHECK (payment_method IN ('cash', 'card', 'pix')),
        tendered       NUMERIC(12,2),
        change         NUMERIC(12,2)
    )`,
	`CREATE TABLE IF NOT EXISTS sale_line_items (
        id           BIGSERIAL PRIMARY KEY,
        sale_id      BIGINT NOT NULL REFERENCES sales(id),
        product_code TEXT NOT NULL REFERENCES products(code),
        name         TEXT NOT NULL,
        unit_price   NUMERIC(12,2) NOT NULL,
        quantity     INTEGER NOT NULL,
        subtotal     NUMERIC(12,2) NOT NULL
    )`,
	`CREATE INDEX IF NOT EXISTS idx_sale_line_items_sale_id ON sale_line_items (sale_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sale_line_items_product_code ON sale_line_items (product_code)`,
}

// EnsureSchema creates the tables when missing. Safe to run on every start.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	return postgres.WithTx(ctx, db, func(tx *sqlx.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}
