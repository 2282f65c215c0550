package catalog

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/kykylib/shoebot/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "catalog.db")
	st, err := NewSQLiteStore(WithDSN(dsn))
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSQLiteStoreRequiresDSN(t *testing.T) {
	if _, err := NewSQLiteStore(); err == nil {
		t.Fatal("expected error when DSN is not set")
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	for _, item := range FixtureItems() {
		if err := st.AddItem(item); err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}
	}

	// Duplicate (brand, model, size) inserts are silently ignored.
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
	want := []int{39, 40, 41, 42, 43, 44}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("sizes = %v, want %v", sizes, want)
	}

	item, err := st.FindOne(ctx, 42, models.StyleSport, models.TypeSneakers)
	if err != nil {
		t.Fatalf("FindOne failed: %v", err)
	}
	if item == nil || item.Brand != "Nike" || item.Model != "Air Max 270" {
		t.Errorf("FindOne = %+v, want Nike Air Max 270", item)
	}

	missing, err := st.FindOne(ctx, 38, models.StyleSport, models.TypeSneakers)
	if err != nil {
		t.Fatalf("FindOne failed: %v", err)
	}
	if missing != nil {
		t.Errorf("FindOne miss should return nil, got %+v", missing)
	}
}

func TestSQLiteStoreFindOneStableOrder(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	first := models.CatalogItem{Brand: "Puma", Model: "RS-X3", Size: 40,
		Style: models.StyleCasual, Type: models.TypeSneakers, Price: 2799}
	second := models.CatalogItem{Brand: "Vans", Model: "Old Skool", Size: 40,
		Style: models.StyleCasual, Type: models.TypeSneakers, Price: 2299}
	if err := st.AddItem(first); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if err := st.AddItem(second); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		got, err := st.FindOne(ctx, 40, models.StyleCasual, models.TypeSneakers)
		if err != nil {
			t.Fatalf("FindOne failed: %v", err)
		}
		if got == nil || got.Brand != "Puma" {
			t.Fatalf("FindOne should stably return the first inserted match, got %+v", got)
		}
	}
}
