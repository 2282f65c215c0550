// Package order resolves a completed attribute set against the catalog and
// finalizes confirmed or cancelled orders.
package order

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kykylib/shoebot/internal/catalog"
	"github.com/kykylib/shoebot/internal/models"
)

// Decision is the user's verdict on a pending offer.
type Decision string

const (
	DecisionConfirm Decision = "confirm"
	DecisionCancel  Decision = "cancel"
)

// Resolver matches collected attributes against the catalog store.
type Resolver struct {
	catalog catalog.Store
}

// NewResolver creates a Resolver over the given catalog store.
func NewResolver(cat catalog.Store) *Resolver {
	return &Resolver{catalog: cat}
}

// Resolve looks up a catalog item for the collected attributes and wraps it
// as an Offer. A miss is a normal outcome: (nil, nil). The offer's image is
// best-effort; anything other than a well-formed image URL is dropped so the
// presentation layer only ever sees usable attachments.
func (r *Resolver) Resolve(ctx context.Context, size int, style models.Style, shoeType models.ShoeType) (*models.Offer, error) {
	item, err := r.catalog.FindOne(ctx, size, style, shoeType)
	if err != nil {
		return nil, fmt.Errorf("catalog lookup failed: %w", err)
	}
	if item == nil {
		slog.Debug("Resolver no match", "size", size, "style", style, "type", shoeType)
		return nil, nil
	}

	offer := &models.Offer{
		ID:    uuid.NewString(),
		Brand: item.Brand,
		Model: item.Model,
		Size:  item.Size,
		Style: item.Style,
		Type:  item.Type,
		Price: item.Price,
	}
	if ValidImageURL(item.ImageURL) {
		offer.ImageURL = item.ImageURL
	}
	slog.Debug("Resolver matched offer", "offerID", offer.ID, "brand", offer.Brand, "model", offer.Model)
	return offer, nil
}

// Finalize concludes a pending offer with the user's decision. Confirm
// requires a pending offer; the outcome echoes the offer fields exactly as
// they were shown. Persistence is the caller's concern, not this package's.
func (r *Resolver) Finalize(offer *models.Offer, name string, decision Decision) (*models.OrderOutcome, error) {
	if offer == nil {
		return nil, models.ErrNoPendingOffer
	}

	outcome := &models.OrderOutcome{
		OrderID:   uuid.NewString(),
		Confirmed: decision == DecisionConfirm,
		Name:      name,
		Offer:     *offer,
		Time:      time.Now(),
	}
	slog.Info("Resolver finalized order", "orderID", outcome.OrderID, "confirmed", outcome.Confirmed)
	return outcome, nil
}
