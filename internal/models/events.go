package models

// EventKind distinguishes the inbound event variants delivered by a transport.
type EventKind string

const (
	// EventText carries free text or a button-label echo.
	EventText EventKind = "text"
	// EventAction carries a distinct confirm/cancel signal tied to a
	// previously presented offer.
	EventAction EventKind = "action"
	// EventReset is equivalent to the start command.
	EventReset EventKind = "reset"
)

// Action is a confirmation decision delivered while a session is awaiting one.
type Action string

const (
	ActionConfirm Action = "confirm"
	ActionCancel  Action = "cancel"
)

// IsValidAction checks if the given action is supported.
func IsValidAction(a Action) bool {
	return a == ActionConfirm || a == ActionCancel
}

// Event is one inbound user input routed to the conversation engine.
type Event struct {
	Kind   EventKind `json:"kind"`
	UserID string    `json:"user_id"`
	Text   string    `json:"text,omitempty"`
	Action Action    `json:"action,omitempty"`
	Time   int64     `json:"time,omitempty"`
}

// Validate performs basic validation on an inbound event.
func (e *Event) Validate() error {
	if e.UserID == "" {
		return ErrEmptyUserID
	}
	if e.Kind == EventAction && !IsValidAction(e.Action) {
		return ErrInvalidAction
	}
	return nil
}
