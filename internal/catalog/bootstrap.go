package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kykylib/shoebot/internal/models"
)

// Feeder supplies catalog items from an external data source.
type Feeder interface {
	Fetch(ctx context.Context) ([]models.CatalogItem, error)
}

// Bootstrap populates the store from the given feeder, falling back to the
// built-in fixture when the feed fails, returns nothing usable, or no feeder
// is configured. A store that already holds items is left untouched, so
// bootstrap is idempotent across restarts.
func Bootstrap(ctx context.Context, st Store, feeder Feeder) error {
	count, err := st.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect catalog store: %w", err)
	}
	if count > 0 {
		slog.Info("Catalog store already populated, skipping bootstrap", "items", count)
		return nil
	}

	var items []models.CatalogItem
	if feeder != nil {
		items, err = feeder.Fetch(ctx)
		if err != nil {
			slog.Error("Catalog feed unavailable, falling back to fixture data", "error", err)
			items = nil
		}
	}
	if len(items) == 0 {
		items = FixtureItems()
		slog.Info("Loading built-in catalog fixture", "items", len(items))
	}

	inserted := 0
	for _, item := range items {
		if err := st.AddItem(item); err != nil {
			return fmt.Errorf("failed to store catalog item: %w", err)
		}
		inserted++
	}

	slog.Info("Catalog bootstrap complete", "items", inserted)
	return nil
}
