package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/kykylib/shoebot/internal/models"
	"resty.dev/v3"
)

// Fetcher configuration constants
const (
	// DefaultFetchTimeout bounds a single feed request.
	DefaultFetchTimeout = 30 * time.Second
	// DefaultRetryCount is the number of retries for a failed feed request.
	DefaultRetryCount = 3
	// DefaultRetryWaitTime is the initial backoff between feed retries.
	DefaultRetryWaitTime = 2 * time.Second
)

// rawItem is the wire shape of one feed entry.
type rawItem struct {
	Brand    string  `json:"brand"`
	Model    string  `json:"model"`
	Size     int     `json:"size"`
	Style    string  `json:"style"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}

// Fetcher pulls catalog items from a remote JSON feed.
type Fetcher struct {
	client  *resty.Client
	feedURL string
}

// NewFetcher creates a Fetcher for the given feed URL.
func NewFetcher(feedURL string) *Fetcher {
	client := resty.New().
		SetTimeout(DefaultFetchTimeout).
		SetRetryCount(DefaultRetryCount).
		SetRetryWaitTime(DefaultRetryWaitTime).
		SetHeader("Accept", "application/json")

	return &Fetcher{client: client, feedURL: feedURL}
}

// Fetch retrieves and decodes the catalog feed. Entries that fail validation
// are skipped with a warning rather than failing the whole feed.
func (f *Fetcher) Fetch(ctx context.Context) ([]models.CatalogItem, error) {
	slog.Debug("Fetcher retrieving catalog feed", "url", f.feedURL)

	resp, err := f.client.R().
		SetContext(ctx).
		Get(f.feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog feed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("catalog feed HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}

	var raw []rawItem
	if err := json.Unmarshal(resp.Bytes(), &raw); err != nil {
		return nil, fmt.Errorf("malformed catalog feed payload: %w", err)
	}

	items := make([]models.CatalogItem, 0, len(raw))
	for _, r := range raw {
		item := models.CatalogItem{
			Brand:    r.Brand,
			Model:    r.Model,
			Size:     r.Size,
			Style:    models.Style(r.Style),
			Type:     models.ShoeType(r.Type),
			Price:    r.Price,
			ImageURL: r.ImageURL,
		}
		if err := item.Validate(); err != nil {
			slog.Warn("Fetcher skipping invalid feed entry", "error", err, "brand", r.Brand, "model", r.Model)
			continue
		}
		items = append(items, item)
	}

	slog.Info("Fetcher retrieved catalog feed", "total", len(raw), "valid", len(items))
	return items, nil
}

// Close releases the underlying HTTP client resources.
func (f *Fetcher) Close() error {
	return f.client.Close()
}
