package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cantikstore/storefront/pkg/database"
)

// Catalog implements repository.Catalog against the remote PostgreSQL store.
// It performs no fallback of its own: connectivity errors surface to the
// caller, and the fallback decorator decides what to do with them.
type Catalog struct {
	pool database.DBTX
}

// NewCatalog creates a new PostgreSQL-backed catalog.
func NewCatalog(pool database.DBTX) *Catalog {
	return &Catalog{pool: pool}
}

// Ping issues the lightweight connectivity probe: list at most one product.
// Any error (network, auth, missing relation) means the remote store is not
// usable.
func (r *Catalog) Ping(ctx context.Context) error {
	if _, err := r.ListProducts(ctx, 1); err != nil {
		return fmt.Errorf("probe remote store: %w", err)
	}
	return nil
}

// EnsureSchema creates the three collection tables when they do not exist.
// Nested fields (sizes, images, order items) are stored as serialized JSON
// text, mirroring the document-store shape the catalog layer expects.
func (r *Catalog) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS products (
			id             TEXT PRIMARY KEY,
			name           TEXT NOT NULL,
			price          BIGINT NOT NULL,
			original_price BIGINT NOT NULL,
			category       TEXT NOT NULL DEFAULT '',
			image          TEXT NOT NULL DEFAULT '',
			images         TEXT NOT NULL DEFAULT '[]',
			description    TEXT NOT NULL DEFAULT '',
			sizes          TEXT NOT NULL DEFAULT '[]',
			bestseller     BOOLEAN NOT NULL DEFAULT FALSE,
			in_stock       BOOLEAN NOT NULL DEFAULT TRUE,
			new_arrival    BOOLEAN NOT NULL DEFAULT FALSE,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS categories (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL UNIQUE,
			image      TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS orders (
			id             TEXT PRIMARY KEY,
			items          TEXT NOT NULL DEFAULT '[]',
			subtotal       BIGINT NOT NULL DEFAULT 0,
			delivery_fee   BIGINT NOT NULL DEFAULT 0,
			total          BIGINT NOT NULL,
			status         TEXT NOT NULL DEFAULT 'pending',
			customer_phone TEXT NOT NULL DEFAULT '',
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		);`

	if _, err := r.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensure catalog schema: %w", err)
	}
	return nil
}

// isUniqueViolation checks whether the error is a PostgreSQL unique
// constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
