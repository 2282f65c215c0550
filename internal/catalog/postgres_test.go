package catalog

import (
	"context"
	"os"
	"reflect"
	"testing"

	"github.com/kykylib/shoebot/internal/models"
)

// TestPostgresStoreRoundTrip needs a reachable Postgres instance; set
// SHOEBOT_TEST_POSTGRES_DSN to run it.
func TestPostgresStoreRoundTrip(t *testing.T) {
	dsn := os.Getenv("SHOEBOT_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("SHOEBOT_TEST_POSTGRES_DSN not set, skipping Postgres store test")
	}

	st, err := NewPostgresStore(WithDSN(dsn))
	if err != nil {
		t.Fatalf("NewPostgresStore failed: %v", err)
	}
	defer st.Close()

	ctx := context.Background()
	if _, err := st.db.ExecContext(ctx, "DELETE FROM shoes"); err != nil {
		t.Fatalf("failed to clear shoes table: %v", err)
	}

	for _, item := range FixtureItems() {
		if err := st.AddItem(item); err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}
	}
	// Duplicate inserts are a silent no-op.
	if err := st.AddItem(FixtureItems()[0]); err != nil {
		t.Fatalf("duplicate AddItem failed: %v", err)
	}

	count, err := st.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != len(FixtureItems()) {
		t.Errorf("count = %d, want %d", count, len(FixtureItems()))
	}

	sizes, err := st.ListDistinctSizes(ctx)
	if err != nil {
		t.Fatalf("ListDistinctSizes failed: %v", err)
	}
	if !reflect.DeepEqual(sizes, []int{39, 40, 41, 42, 43, 44}) {
		t.Errorf("sizes = %v", sizes)
	}

	item, err := st.FindOne(ctx, 43, models.StyleOutdoor, models.TypeBoots)
	if err != nil {
		t.Fatalf("FindOne failed: %v", err)
	}
	if item == nil || item.Brand != "Timberland" {
		t.Errorf("FindOne = %+v, want Timberland", item)
	}
}
