package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "embed"

	"github.com/kykylib/shoebot/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultDirPermissions defines the default permissions for database directories.
const DefaultDirPermissions = 0755

//go:embed migrations_sqlite.sql
var sqliteMigrations string

// SQLiteStore is a catalog store backed by an SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite catalog store with the given DSN.
// The DSN should be a file path to the SQLite database file; the directory is
// created if it does not exist. The special ":memory:" DSN is passed through.
func NewSQLiteStore(opts ...Option) (*SQLiteStore, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	slog.Debug("NewSQLiteStore invoked", "DSN_set", cfg.DSN != "")

	dsn := cfg.DSN
	if dsn == "" {
		slog.Error("SQLiteStore DSN not set")
		return nil, fmt.Errorf("database DSN not set")
	}

	if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
			slog.Error("Failed to create database directory", "error", err, "dir", dir)
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		slog.Error("Failed to open SQLite connection", "error", err)
		return nil, err
	}

	if err := db.Ping(); err != nil {
		slog.Error("SQLite ping failed", "error", err)
		return nil, err
	}

	if _, err := db.Exec(sqliteMigrations); err != nil {
		slog.Error("Failed to run SQLite migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Debug("SQLite migrations applied successfully")

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) AddItem(item models.CatalogItem) error {
	_, err := s.db.Exec(`INSERT OR IGNORE INTO shoes (brand, model, size, style, type, price, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.Brand, item.Model, item.Size, string(item.Style), string(item.Type), item.Price, item.ImageURL)
	if err != nil {
		slog.Error("SQLiteStore AddItem failed", "error", err, "brand", item.Brand, "model", item.Model)
		return fmt.Errorf("failed to insert catalog item %s %s: %w", item.Brand, item.Model, err)
	}
	return nil
}

func (s *SQLiteStore) ListDistinctSizes(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT size FROM shoes ORDER BY size`)
	if err != nil {
		slog.Error("SQLiteStore ListDistinctSizes query failed", "error", err)
		return nil, fmt.Errorf("failed to query distinct sizes: %w", err)
	}
	defer rows.Close()

	var sizes []int
	for rows.Next() {
		var size int
		if err := rows.Scan(&size); err != nil {
			slog.Error("SQLiteStore ListDistinctSizes scan failed", "error", err)
			return nil, fmt.Errorf("failed to scan size row: %w", err)
		}
		sizes = append(sizes, size)
	}
	if err := rows.Err(); err != nil {
		slog.Error("SQLiteStore ListDistinctSizes rows iteration failed", "error", err)
		return nil, fmt.Errorf("failed to iterate size rows: %w", err)
	}
	slog.Debug("SQLiteStore ListDistinctSizes succeeded", "count", len(sizes))
	return sizes, nil
}

func (s *SQLiteStore) FindOne(ctx context.Context, size int, style models.Style, shoeType models.ShoeType) (*models.CatalogItem, error) {
	var item models.CatalogItem
	var imageURL sql.NullString
	err := s.db.QueryRowContext(ctx, `SELECT brand, model, size, style, type, price, image_url
		FROM shoes WHERE size = ? AND style = ? AND type = ? ORDER BY id LIMIT 1`,
		size, string(style), string(shoeType)).Scan(
		&item.Brand, &item.Model, &item.Size, &item.Style, &item.Type, &item.Price, &imageURL)
	if err == sql.ErrNoRows {
		slog.Debug("SQLiteStore FindOne no match", "size", size, "style", style, "type", shoeType)
		return nil, nil
	}
	if err != nil {
		slog.Error("SQLiteStore FindOne failed", "error", err, "size", size, "style", style, "type", shoeType)
		return nil, fmt.Errorf("failed to query catalog item: %w", err)
	}
	item.ImageURL = imageURL.String
	slog.Debug("SQLiteStore FindOne matched", "brand", item.Brand, "model", item.Model)
	return &item, nil
}

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shoes`).Scan(&count); err != nil {
		slog.Error("SQLiteStore Count failed", "error", err)
		return 0, fmt.Errorf("failed to count catalog items: %w", err)
	}
	return count, nil
}

// Close closes the SQLite database connection.
func (s *SQLiteStore) Close() error {
	slog.Debug("Closing SQLite database connection")
	err := s.db.Close()
	if err != nil {
		slog.Error("Failed to close SQLite database", "error", err)
	}
	return err
}
