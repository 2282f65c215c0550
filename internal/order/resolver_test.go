package order

import (
	"context"
	"errors"
	"testing"

	"github.com/kykylib/shoebot/internal/catalog"
	"github.com/kykylib/shoebot/internal/models"
)

func newSeededStore(t *testing.T) *catalog.InMemoryStore {
	t.Helper()
	st := catalog.NewInMemoryStore()
	items := []models.CatalogItem{
		{Brand: "Nike", Model: "Air Max 270", Size: 42, Style: models.StyleSport,
			Type: models.TypeSneakers, Price: 3499, ImageURL: "https://example.com/airmax.png"},
		{Brand: "Hugo", Model: "Derby", Size: 42, Style: models.StyleFormal,
			Type: models.TypeShoes, Price: 5100, ImageURL: "https://example.com/landing-page"},
	}
	for _, item := range items {
		if err := st.AddItem(item); err != nil {
			t.Fatalf("failed to seed store: %v", err)
		}
	}
	return st
}

func TestResolveMatch(t *testing.T) {
	r := NewResolver(newSeededStore(t))

	offer, err := r.Resolve(context.Background(), 42, models.StyleSport, models.TypeSneakers)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if offer == nil {
		t.Fatal("expected a match")
	}
	if offer.Brand != "Nike" || offer.Size != 42 || offer.Price != 3499 {
		t.Errorf("unexpected offer: %+v", offer)
	}
	if offer.ID == "" {
		t.Error("offer should carry an id")
	}
	if offer.ImageURL != "https://example.com/airmax.png" {
		t.Errorf("valid image URL should be kept, got %q", offer.ImageURL)
	}
}

func TestResolveMissIsNotAnError(t *testing.T) {
	r := NewResolver(newSeededStore(t))

	offer, err := r.Resolve(context.Background(), 36, models.StyleSport, models.TypeSneakers)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if offer != nil {
		t.Errorf("expected no match, got %+v", offer)
	}
}

func TestResolveDropsNonImageURL(t *testing.T) {
	r := NewResolver(newSeededStore(t))

	offer, err := r.Resolve(context.Background(), 42, models.StyleFormal, models.TypeShoes)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if offer == nil {
		t.Fatal("expected a match")
	}
	if offer.ImageURL != "" {
		t.Errorf("non-image URL should be treated as absent, got %q", offer.ImageURL)
	}
}

func TestFinalizeConfirmEchoesOffer(t *testing.T) {
	r := NewResolver(newSeededStore(t))

	offer, err := r.Resolve(context.Background(), 42, models.StyleSport, models.TypeSneakers)
	if err != nil || offer == nil {
		t.Fatalf("Resolve failed: offer=%v err=%v", offer, err)
	}

	outcome, err := r.Finalize(offer, "Alice", DecisionConfirm)
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if !outcome.Confirmed {
		t.Error("confirm should produce a confirmed outcome")
	}
	if outcome.Name != "Alice" {
		t.Errorf("outcome name = %q, want Alice", outcome.Name)
	}
	// The confirmed order echoes exactly the offer that was shown.
	if outcome.Offer != *offer {
		t.Errorf("outcome offer = %+v, want %+v", outcome.Offer, *offer)
	}
	if outcome.OrderID == "" {
		t.Error("outcome should carry an order id")
	}
}

func TestFinalizeCancel(t *testing.T) {
	r := NewResolver(newSeededStore(t))

	offer := &models.Offer{ID: "o1", Brand: "Nike", Size: 42,
		Style: models.StyleSport, Type: models.TypeSneakers, Price: 3499}
	outcome, err := r.Finalize(offer, "Bob", DecisionCancel)
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if outcome.Confirmed {
		t.Error("cancel must not produce a confirmed outcome")
	}
}

func TestFinalizeRequiresPendingOffer(t *testing.T) {
	r := NewResolver(newSeededStore(t))

	if _, err := r.Finalize(nil, "Alice", DecisionConfirm); !errors.Is(err, models.ErrNoPendingOffer) {
		t.Errorf("expected ErrNoPendingOffer, got %v", err)
	}
}
