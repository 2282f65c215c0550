// Package messaging provides the transport abstraction between the
// conversation core and whatever chat surface delivers user input.
package messaging

import (
	"context"
	"fmt"
	"strings"

	"github.com/kykylib/shoebot/internal/models"
)

// Service defines a pluggable message delivery abstraction. It supports
// sending the core's outbound shapes and provides a channel of inbound events.
type Service interface {
	// SendPrompt delivers a step prompt, rendering choices as a keyboard.
	SendPrompt(ctx context.Context, to string, p models.Prompt) error

	// SendOffer delivers an offer, as photo+caption when the offer carries a
	// usable image. Implementations may fail with a delivery error; callers
	// degrade to text-only via SendMessage.
	SendOffer(ctx context.Context, to string, offer models.Offer) error

	// SendOutcome delivers an order outcome notice.
	SendOutcome(ctx context.Context, to string, outcome models.OrderOutcome) error

	// SendMessage delivers a plain text message.
	SendMessage(ctx context.Context, to string, body string) error

	// Start begins any background processing (e.g. polling for input).
	Start(ctx context.Context) error

	// Stop stops background processing and cleans up resources.
	Stop() error

	// Events returns a channel of inbound user events.
	Events() <-chan models.Event
}

// FormatOffer renders the offer caption shown with or without the image.
func FormatOffer(offer models.Offer) string {
	return fmt.Sprintf("Found one for you:\n\n🏷 Brand: %s\n👟 Model: %s\n📏 Size: %d\n💵 Price: %.0f\n\nConfirm the order?",
		offer.Brand, offer.Model, offer.Size, offer.Price)
}

// FormatOutcome renders the order outcome notice.
func FormatOutcome(outcome models.OrderOutcome) string {
	if !outcome.Confirmed {
		return "❌ Order cancelled"
	}
	return fmt.Sprintf("✅ Order placed!\nThank you, %s!\nDelivery is on the way 🚚", outcome.Name)
}

// FormatPrompt renders a prompt and its keyboard choices as plain text, for
// transports without native keyboards.
func FormatPrompt(p models.Prompt) string {
	var sb strings.Builder
	sb.WriteString(p.Text)
	for _, choice := range p.Choices {
		sb.WriteString("\n  ")
		sb.WriteString(choice)
	}
	return sb.String()
}
