// Package catalog provides storage backends for the shoe catalog.
//
// It includes an in-memory store for tests and fixture-only deployments, plus
// SQLite and PostgreSQL implementations sharing one Store contract. Stores are
// populated once at startup and read-only thereafter for the core's purposes.
package catalog

import (
	"context"

	"github.com/kykylib/shoebot/internal/models"
)

// Store defines the catalog lookup contract shared by all backends.
type Store interface {
	// AddItem inserts a catalog item. Inserting a duplicate
	// (brand, model, size) combination is a silent no-op.
	AddItem(item models.CatalogItem) error

	// ListDistinctSizes returns available sizes ascending, without duplicates.
	ListDistinctSizes(ctx context.Context) ([]int, error)

	// FindOne returns the first item matching the given attributes in
	// insertion order, or nil when nothing matches.
	FindOne(ctx context.Context, size int, style models.Style, shoeType models.ShoeType) (*models.CatalogItem, error)

	// Count returns the number of items in the store.
	Count(ctx context.Context) (int, error)

	// Close releases any resources held by the store.
	Close() error
}

// Opts holds store configuration options.
type Opts struct {
	DSN string
}

// Option configures a store backend.
type Option func(*Opts)

// WithDSN sets the database DSN (file path for SQLite, connection string for
// Postgres).
func WithDSN(dsn string) Option {
	return func(o *Opts) {
		o.DSN = dsn
	}
}
