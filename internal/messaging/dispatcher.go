package messaging

import (
	"context"
	"log/slog"
	"sync"

	"github.com/kykylib/shoebot/internal/models"
)

// sessionQueueSize bounds the per-session inbound queue. A slow session backs
// up its own queue without blocking other sessions.
const sessionQueueSize = 16

// EventHandler processes one inbound event and produces outbound replies.
type EventHandler interface {
	HandleEvent(ctx context.Context, ev models.Event) ([]models.Reply, error)
}

// Dispatcher consumes events from a Service and hands them to an
// EventHandler. Events for the same session are processed in arrival order by
// a dedicated worker goroutine; distinct sessions proceed in parallel.
type Dispatcher struct {
	svc     Service
	handler EventHandler

	mu     sync.Mutex
	queues map[string]chan models.Event
	wg     sync.WaitGroup
}

// NewDispatcher creates a Dispatcher over the given service and handler.
func NewDispatcher(svc Service, handler EventHandler) *Dispatcher {
	return &Dispatcher{
		svc:     svc,
		handler: handler,
		queues:  make(map[string]chan models.Event),
	}
}

// Start begins consuming events until the context is cancelled or the
// service's event channel closes.
func (d *Dispatcher) Start(ctx context.Context) {
	slog.Info("Dispatcher starting event processing")
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer d.drain()
		for {
			select {
			case ev, ok := <-d.svc.Events():
				if !ok {
					slog.Debug("Dispatcher events channel closed")
					return
				}
				d.enqueue(ctx, ev)
			case <-ctx.Done():
				slog.Debug("Dispatcher stopping due to context cancellation")
				return
			}
		}
	}()
}

// Wait blocks until all workers have finished after Start's loop exits.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// enqueue places the event on its session's queue, spawning the session
// worker on first contact.
func (d *Dispatcher) enqueue(ctx context.Context, ev models.Event) {
	d.mu.Lock()
	queue, ok := d.queues[ev.UserID]
	if !ok {
		queue = make(chan models.Event, sessionQueueSize)
		d.queues[ev.UserID] = queue
		d.wg.Add(1)
		go d.worker(ctx, ev.UserID, queue)
	}
	d.mu.Unlock()

	select {
	case queue <- ev:
	default:
		// Queue full: the session is flooding; drop rather than stall others.
		slog.Warn("Dispatcher dropping event, session queue full", "userID", ev.UserID, "kind", ev.Kind)
	}
}

// worker processes one session's events strictly in arrival order.
func (d *Dispatcher) worker(ctx context.Context, userID string, queue <-chan models.Event) {
	defer d.wg.Done()
	for {
		select {
		case ev, ok := <-queue:
			if !ok {
				return
			}
			d.process(ctx, ev)
		case <-ctx.Done():
			return
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, ev models.Event) {
	replies, err := d.handler.HandleEvent(ctx, ev)
	if err != nil {
		slog.Error("Dispatcher handler failed", "error", err, "userID", ev.UserID, "kind", ev.Kind)
		return
	}
	d.deliver(ctx, ev.UserID, replies)
}

// deliver sends each reply through the service. An offer that fails to send
// (e.g. a broken image attachment) degrades to a text-only rendering of the
// same content instead of aborting the session.
func (d *Dispatcher) deliver(ctx context.Context, to string, replies []models.Reply) {
	for _, reply := range replies {
		var err error
		switch {
		case reply.Prompt != nil:
			err = d.svc.SendPrompt(ctx, to, *reply.Prompt)
		case reply.Offer != nil:
			if err = d.svc.SendOffer(ctx, to, *reply.Offer); err != nil {
				slog.Error("Dispatcher offer delivery failed, degrading to text", "error", err, "userID", to)
				err = d.svc.SendMessage(ctx, to, FormatOffer(*reply.Offer))
			}
		case reply.Outcome != nil:
			err = d.svc.SendOutcome(ctx, to, *reply.Outcome)
		case reply.Text != "":
			err = d.svc.SendMessage(ctx, to, reply.Text)
		}
		if err != nil {
			slog.Error("Dispatcher delivery failed", "error", err, "userID", to)
		}
	}
}

// drain closes all session queues and lets workers finish their backlog.
func (d *Dispatcher) drain() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for userID, queue := range d.queues {
		close(queue)
		delete(d.queues, userID)
	}
}
