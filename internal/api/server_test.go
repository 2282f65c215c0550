package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kykylib/shoebot/internal/flow"
	"github.com/kykylib/shoebot/internal/order"
	"github.com/kykylib/shoebot/internal/testutil"
)

func newTestServer(t *testing.T) (*Server, *flow.SessionStore) {
	t.Helper()
	st := testutil.NewFixtureStore(t)
	sessions := flow.NewSessionStore()
	return NewServer(":0", st, sessions), sessions
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return response
}

func TestHealthEndpoint(t *testing.T) {
	srv, sessions := newTestServer(t)
	sessions.GetOrCreate("u1")

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	response := decodeResponse(t, rr)
	if response["status"] != "ok" {
		t.Errorf("response status = %v, want ok", response["status"])
	}
	result, _ := response["result"].(map[string]interface{})
	if result["catalog_items"].(float64) != 6 {
		t.Errorf("catalog_items = %v, want 6", result["catalog_items"])
	}
	if result["active_sessions"].(float64) != 1 {
		t.Errorf("active_sessions = %v, want 1", result["active_sessions"])
	}
}

func TestSizesEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/sizes", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	response := decodeResponse(t, rr)
	sizes, _ := response["result"].([]interface{})
	if len(sizes) != 6 {
		t.Errorf("got %d sizes, want 6", len(sizes))
	}
}

func TestSessionEndpoint(t *testing.T) {
	srv, sessions := newTestServer(t)

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/ghost", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}

	sess := sessions.GetOrCreate("u1")
	sess.Name = "Alice"

	rr = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/u1", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	response := decodeResponse(t, rr)
	result, _ := response["result"].(map[string]interface{})
	if result["name"] != "Alice" {
		t.Errorf("session name = %v, want Alice", result["name"])
	}
}

// Session reads must stay safe while the engine is mutating the same session
// in another goroutine, as happens when a dispatcher worker is mid-step.
func TestSessionEndpointDuringActiveConversation(t *testing.T) {
	st := testutil.NewFixtureStore(t)
	sessions := flow.NewSessionStore()
	engine := flow.NewEngine(sessions, st, order.NewResolver(st))
	srv := NewServer(":0", st, sessions)

	done := make(chan struct{})
	go func() {
		defer close(done)
		ctx := context.Background()
		for i := 0; i < 50; i++ {
			engine.HandleText(ctx, "u1", "hi")
			engine.HandleText(ctx, "u1", "Alice")
			engine.HandleText(ctx, "u1", flow.LabelYes)
			engine.HandleText(ctx, "u1", "42")
			engine.HandleText(ctx, "u1", flow.LabelHome)
		}
	}()

	for i := 0; i < 200; i++ {
		rr := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/u1", nil))
		if rr.Code != http.StatusOK && rr.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 200 or 404", rr.Code)
		}
	}
	<-done
}
