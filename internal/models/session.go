package models

import "time"

// Step represents one stage of the guided conversation.
type Step string

// Step constants for the ordering conversation, in traversal order.
// StepMoreShopping loops back to StepAskSize on an affirmative answer.
const (
	StepIdle         Step = ""
	StepAskName      Step = "ASK_NAME"
	StepWantToBuy    Step = "WANT_TO_BUY"
	StepAskSize      Step = "ASK_SIZE"
	StepAskStyle     Step = "ASK_STYLE"
	StepAskType      Step = "ASK_TYPE"
	StepConfirm      Step = "CONFIRM_ORDER"
	StepMoreShopping Step = "MORE_SHOPPING"
)

// Session holds one user's conversation state. Each answer field is set only
// by the step whose successful validation corresponds to it; a later step
// never observes an unset required predecessor field.
type Session struct {
	UserID    string    `json:"user_id"`
	Step      Step      `json:"step"`
	Name      string    `json:"name,omitempty"`
	Size      int       `json:"size,omitempty"` // 0 means unset; stored sizes are validated positive
	Style     Style     `json:"style,omitempty"`
	Type      ShoeType  `json:"type,omitempty"`
	Pending   *Offer    `json:"pending,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
