// Package models defines the core data structures for shoebot.
//
// It includes catalog items, conversation sessions, step and enum types, and
// the inbound/outbound event shapes shared across modules.
package models

import (
	"errors"
	"time"
)

// Style is the canonical catalog style value behind a user-facing label.
type Style string

const (
	StyleSport   Style = "sport"
	StyleCasual  Style = "casual"
	StyleFormal  Style = "formal"
	StyleOutdoor Style = "outdoor"
)

// IsValidStyle checks if the given style is a defined canonical value.
func IsValidStyle(s Style) bool {
	switch s {
	case StyleSport, StyleCasual, StyleFormal, StyleOutdoor:
		return true
	default:
		return false
	}
}

// ShoeType is the canonical catalog shoe type value behind a user-facing label.
type ShoeType string

const (
	TypeSneakers ShoeType = "sneakers"
	TypeBoots    ShoeType = "boots"
	TypeShoes    ShoeType = "shoes"
)

// IsValidShoeType checks if the given shoe type is a defined canonical value.
func IsValidShoeType(t ShoeType) bool {
	switch t {
	case TypeSneakers, TypeBoots, TypeShoes:
		return true
	default:
		return false
	}
}

// Error variables for better error handling and testability
var (
	ErrEmptyUserID    = errors.New("user id cannot be empty")
	ErrEmptyBrand     = errors.New("catalog item brand cannot be empty")
	ErrInvalidSize    = errors.New("catalog item size must be positive")
	ErrInvalidStyle   = errors.New("invalid style value")
	ErrInvalidType    = errors.New("invalid shoe type value")
	ErrNegativePrice  = errors.New("catalog item price cannot be negative")
	ErrNoPendingOffer = errors.New("no pending offer to finalize")
	ErrInvalidAction  = errors.New("invalid confirmation action")
)

// CatalogItem represents one purchasable catalog entry.
//
// The (brand, model, size) combination is unique within a store; duplicate
// inserts are silently ignored during bootstrap rather than treated as errors.
type CatalogItem struct {
	Brand    string   `json:"brand"`
	Model    string   `json:"model"`
	Size     int      `json:"size"`
	Style    Style    `json:"style"`
	Type     ShoeType `json:"type"`
	Price    float64  `json:"price"`
	ImageURL string   `json:"image_url,omitempty"`
}

// Validate performs validation on a CatalogItem before it enters a store.
func (c *CatalogItem) Validate() error {
	if c.Brand == "" {
		return ErrEmptyBrand
	}
	if c.Size <= 0 {
		return ErrInvalidSize
	}
	if !IsValidStyle(c.Style) {
		return ErrInvalidStyle
	}
	if !IsValidShoeType(c.Type) {
		return ErrInvalidType
	}
	if c.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// Offer is a catalog item packaged with presentation fields, pending user
// confirmation. ImageURL is best-effort: empty when the item has no usable
// image, which is not an error.
type Offer struct {
	ID       string   `json:"id"`
	Brand    string   `json:"brand"`
	Model    string   `json:"model"`
	Size     int      `json:"size"`
	Style    Style    `json:"style"`
	Type     ShoeType `json:"type"`
	Price    float64  `json:"price"`
	ImageURL string   `json:"image_url,omitempty"`
}

// OrderOutcome is the result of finalizing a pending offer. It echoes the
// offer fields shown to the user; persistence is the caller's concern.
type OrderOutcome struct {
	OrderID   string    `json:"order_id"`
	Confirmed bool      `json:"confirmed"`
	Name      string    `json:"name"`
	Offer     Offer     `json:"offer"`
	Time      time.Time `json:"time"`
}

// Prompt is an outbound question for the next step of the conversation.
// Choices define the keyboard options for the next reply; empty choices means
// free-text input is expected.
type Prompt struct {
	Text      string   `json:"text"`
	Choices   []string `json:"choices,omitempty"`
	AllowBack bool     `json:"allow_back,omitempty"`
	AllowHome bool     `json:"allow_home,omitempty"`
}

// Reply is one outbound message produced by the conversation engine. Exactly
// one of the fields is set.
type Reply struct {
	Prompt  *Prompt       `json:"prompt,omitempty"`
	Offer   *Offer        `json:"offer,omitempty"`
	Outcome *OrderOutcome `json:"outcome,omitempty"`
	Text    string        `json:"text,omitempty"`
}

// TextReply builds a plain text reply.
func TextReply(text string) Reply {
	return Reply{Text: text}
}

// PromptReply builds a prompt reply.
func PromptReply(p Prompt) Reply {
	return Reply{Prompt: &p}
}
