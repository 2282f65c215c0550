package messaging

import (
	"context"
	"sync"

	"github.com/kykylib/shoebot/internal/models"
)

// SentKind labels a recorded outbound message in the mock service.
type SentKind string

const (
	SentPrompt  SentKind = "prompt"
	SentOffer   SentKind = "offer"
	SentOutcome SentKind = "outcome"
	SentText    SentKind = "text"
)

// SentMessage records one outbound delivery through the MockService.
type SentMessage struct {
	Kind    SentKind
	To      string
	Prompt  models.Prompt
	Offer   models.Offer
	Outcome models.OrderOutcome
	Text    string
}

// MockService is an in-memory Service for tests. Inbound events are injected
// with Inject; outbound messages are recorded for assertions. OfferErr makes
// SendOffer fail to exercise the text-only degradation path.
type MockService struct {
	mu       sync.Mutex
	sent     []SentMessage
	events   chan models.Event
	OfferErr error
}

// NewMockService creates a mock service with a buffered event channel.
func NewMockService() *MockService {
	return &MockService{events: make(chan models.Event, 64)}
}

// Inject queues an inbound event as if the transport had delivered it.
func (m *MockService) Inject(ev models.Event) {
	m.events <- ev
}

// CloseEvents closes the inbound channel, ending dispatcher processing.
func (m *MockService) CloseEvents() {
	close(m.events)
}

// Sent returns a copy of all recorded outbound messages.
func (m *MockService) Sent() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMessage, len(m.sent))
	copy(out, m.sent)
	return out
}

func (m *MockService) record(msg SentMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
}

func (m *MockService) SendPrompt(ctx context.Context, to string, p models.Prompt) error {
	m.record(SentMessage{Kind: SentPrompt, To: to, Prompt: p})
	return nil
}

func (m *MockService) SendOffer(ctx context.Context, to string, offer models.Offer) error {
	if m.OfferErr != nil {
		return m.OfferErr
	}
	m.record(SentMessage{Kind: SentOffer, To: to, Offer: offer})
	return nil
}

func (m *MockService) SendOutcome(ctx context.Context, to string, outcome models.OrderOutcome) error {
	m.record(SentMessage{Kind: SentOutcome, To: to, Outcome: outcome})
	return nil
}

func (m *MockService) SendMessage(ctx context.Context, to string, body string) error {
	m.record(SentMessage{Kind: SentText, To: to, Text: body})
	return nil
}

func (m *MockService) Start(ctx context.Context) error { return nil }

func (m *MockService) Stop() error { return nil }

func (m *MockService) Events() <-chan models.Event { return m.events }
