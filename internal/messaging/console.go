package messaging

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/kykylib/shoebot/internal/models"
)

// ConsoleUserID is the fixed session id for the single console user.
const ConsoleUserID = "console"

// ConsoleService is a Service over stdin/stdout for trying the bot locally.
// Slash commands map to the non-text event kinds: /start resets the session,
// /confirm and /cancel deliver confirmation actions.
type ConsoleService struct {
	in     io.Reader
	out    io.Writer
	events chan models.Event

	mu      sync.Mutex
	started bool
}

// NewConsoleService creates a console transport over the given reader and
// writer (typically os.Stdin and os.Stdout).
func NewConsoleService(in io.Reader, out io.Writer) *ConsoleService {
	return &ConsoleService{
		in:     in,
		out:    out,
		events: make(chan models.Event),
	}
}

// Start begins reading lines from the input until EOF or context cancellation.
func (c *ConsoleService) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return fmt.Errorf("console service already started")
	}
	c.started = true
	c.mu.Unlock()

	go func() {
		defer close(c.events)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			ev, ok := parseConsoleLine(scanner.Text())
			if !ok {
				continue
			}
			select {
			case c.events <- ev:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			slog.Error("ConsoleService input read failed", "error", err)
		}
		slog.Info("ConsoleService input closed")
	}()
	return nil
}

// parseConsoleLine maps one input line to an inbound event.
func parseConsoleLine(line string) (models.Event, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return models.Event{}, false
	}
	now := time.Now().Unix()
	switch line {
	case "/start":
		return models.Event{Kind: models.EventReset, UserID: ConsoleUserID, Time: now}, true
	case "/confirm":
		return models.Event{Kind: models.EventAction, UserID: ConsoleUserID, Action: models.ActionConfirm, Time: now}, true
	case "/cancel":
		return models.Event{Kind: models.EventAction, UserID: ConsoleUserID, Action: models.ActionCancel, Time: now}, true
	default:
		return models.Event{Kind: models.EventText, UserID: ConsoleUserID, Text: line, Time: now}, true
	}
}

// Stop is a no-op; the reader goroutine ends with its input or context.
func (c *ConsoleService) Stop() error {
	return nil
}

// Events returns the channel of inbound console events.
func (c *ConsoleService) Events() <-chan models.Event {
	return c.events
}

func (c *ConsoleService) SendPrompt(ctx context.Context, to string, p models.Prompt) error {
	_, err := fmt.Fprintln(c.out, FormatPrompt(p))
	return err
}

func (c *ConsoleService) SendOffer(ctx context.Context, to string, offer models.Offer) error {
	body := FormatOffer(offer)
	if offer.ImageURL != "" {
		body = fmt.Sprintf("🖼 %s\n%s", offer.ImageURL, body)
	}
	_, err := fmt.Fprintln(c.out, body)
	return err
}

func (c *ConsoleService) SendOutcome(ctx context.Context, to string, outcome models.OrderOutcome) error {
	_, err := fmt.Fprintln(c.out, FormatOutcome(outcome))
	return err
}

func (c *ConsoleService) SendMessage(ctx context.Context, to string, body string) error {
	_, err := fmt.Fprintln(c.out, body)
	return err
}
