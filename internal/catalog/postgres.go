package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "embed"

	"github.com/kykylib/shoebot/internal/models"
	_ "github.com/lib/pq"
)

// Database connection pool configuration constants
const (
	// DefaultMaxOpenConns is the default maximum number of open connections to the database
	DefaultMaxOpenConns = 25
	// DefaultMaxIdleConns is the default maximum number of idle connections in the pool
	DefaultMaxIdleConns = 25
	// DefaultConnMaxLifetime is the default maximum amount of time a connection may be reused
	DefaultConnMaxLifetime = 5 * time.Minute
)

//go:embed migrations_postgres.sql
var postgresMigrations string

// PostgresStore is a catalog store backed by a PostgreSQL database.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new Postgres catalog store based on provided options.
func NewPostgresStore(opts ...Option) (*PostgresStore, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	slog.Debug("NewPostgresStore invoked", "DSN_set", cfg.DSN != "")

	dsn := cfg.DSN
	if dsn == "" {
		slog.Error("PostgresStore DSN not set")
		return nil, fmt.Errorf("database DSN not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		slog.Error("Failed to open Postgres connection", "error", err)
		return nil, err
	}

	db.SetMaxOpenConns(DefaultMaxOpenConns)
	db.SetMaxIdleConns(DefaultMaxIdleConns)
	db.SetConnMaxLifetime(DefaultConnMaxLifetime)

	if err := db.Ping(); err != nil {
		slog.Error("Postgres ping failed", "error", err)
		return nil, err
	}

	if _, err := db.Exec(postgresMigrations); err != nil {
		slog.Error("Failed to run Postgres migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Debug("Postgres migrations applied successfully")

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) AddItem(item models.CatalogItem) error {
	_, err := s.db.Exec(`INSERT INTO shoes (brand, model, size, style, type, price, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (brand, model, size) DO NOTHING`,
		item.Brand, item.Model, item.Size, string(item.Style), string(item.Type), item.Price, item.ImageURL)
	if err != nil {
		slog.Error("PostgresStore AddItem failed", "error", err, "brand", item.Brand, "model", item.Model)
		return fmt.Errorf("failed to insert catalog item %s %s: %w", item.Brand, item.Model, err)
	}
	return nil
}

func (s *PostgresStore) ListDistinctSizes(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT size FROM shoes ORDER BY size`)
	if err != nil {
		slog.Error("PostgresStore ListDistinctSizes query failed", "error", err)
		return nil, fmt.Errorf("failed to query distinct sizes: %w", err)
	}
	defer rows.Close()

	var sizes []int
	for rows.Next() {
		var size int
		if err := rows.Scan(&size); err != nil {
			slog.Error("PostgresStore ListDistinctSizes scan failed", "error", err)
			return nil, fmt.Errorf("failed to scan size row: %w", err)
		}
		sizes = append(sizes, size)
	}
	if err := rows.Err(); err != nil {
		slog.Error("PostgresStore ListDistinctSizes rows iteration failed", "error", err)
		return nil, fmt.Errorf("failed to iterate size rows: %w", err)
	}
	slog.Debug("PostgresStore ListDistinctSizes succeeded", "count", len(sizes))
	return sizes, nil
}

func (s *PostgresStore) FindOne(ctx context.Context, size int, style models.Style, shoeType models.ShoeType) (*models.CatalogItem, error) {
	var item models.CatalogItem
	var imageURL sql.NullString
	err := s.db.QueryRowContext(ctx, `SELECT brand, model, size, style, type, price, image_url
		FROM shoes WHERE size = $1 AND style = $2 AND type = $3 ORDER BY id LIMIT 1`,
		size, string(style), string(shoeType)).Scan(
		&item.Brand, &item.Model, &item.Size, &item.Style, &item.Type, &item.Price, &imageURL)
	if err == sql.ErrNoRows {
		slog.Debug("PostgresStore FindOne no match", "size", size, "style", style, "type", shoeType)
		return nil, nil
	}
	if err != nil {
		slog.Error("PostgresStore FindOne failed", "error", err, "size", size, "style", style, "type", shoeType)
		return nil, fmt.Errorf("failed to query catalog item: %w", err)
	}
	item.ImageURL = imageURL.String
	slog.Debug("PostgresStore FindOne matched", "brand", item.Brand, "model", item.Model)
	return &item, nil
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shoes`).Scan(&count); err != nil {
		slog.Error("PostgresStore Count failed", "error", err)
		return 0, fmt.Errorf("failed to count catalog items: %w", err)
	}
	return count, nil
}

// Close closes the Postgres database connection.
func (s *PostgresStore) Close() error {
	slog.Debug("Closing Postgres database connection")
	err := s.db.Close()
	if err != nil {
		slog.Error("Failed to close Postgres database", "error", err)
	}
	return err
}
