// Package testutil provides common test helpers for shoebot tests.
package testutil

import (
	"testing"

	"github.com/kykylib/shoebot/internal/catalog"
	"github.com/kykylib/shoebot/internal/flow"
	"github.com/kykylib/shoebot/internal/models"
	"github.com/kykylib/shoebot/internal/order"
)

// NewFixtureStore creates an in-memory catalog store seeded with the built-in
// fixture items.
func NewFixtureStore(t *testing.T) *catalog.InMemoryStore {
	t.Helper()
	st := catalog.NewInMemoryStore()
	for _, item := range catalog.FixtureItems() {
		if err := st.AddItem(item); err != nil {
			t.Fatalf("failed to seed fixture item: %v", err)
		}
	}
	return st
}

// NewTestEngine creates a conversation engine over a fixture-seeded store.
func NewTestEngine(t *testing.T) (*flow.Engine, *flow.SessionStore, *catalog.InMemoryStore) {
	t.Helper()
	st := NewFixtureStore(t)
	sessions := flow.NewSessionStore()
	engine := flow.NewEngine(sessions, st, order.NewResolver(st))
	return engine, sessions, st
}

// RequireStep fails the test unless the user's session is at the given step.
func RequireStep(t *testing.T, sessions *flow.SessionStore, userID string, want models.Step) {
	t.Helper()
	sess, ok := sessions.Get(userID)
	if !ok {
		t.Fatalf("expected session for %s at step %s, but none exists", userID, want)
	}
	if sess.Step != want {
		t.Fatalf("expected step %s, got %s", want, sess.Step)
	}
}

// LastPrompt returns the trailing prompt among the replies, failing the test
// when none exists.
func LastPrompt(t *testing.T, replies []models.Reply) models.Prompt {
	t.Helper()
	for i := len(replies) - 1; i >= 0; i-- {
		if replies[i].Prompt != nil {
			return *replies[i].Prompt
		}
	}
	t.Fatalf("expected a prompt reply, got %+v", replies)
	return models.Prompt{}
}
