package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kykylib/shoebot/internal/models"
)

func TestFetcherParsesFeed(t *testing.T) {
	payload := `[
		{"brand":"Nike","model":"Air Max 270","size":42,"style":"sport","type":"sneakers","price":3499,"image_url":"https://example.com/airmax.png"},
		{"brand":"Adidas","model":"Ultraboost 22","size":41,"style":"sport","type":"sneakers","price":3999}
	]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL)
	defer f.Close()

	items, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Brand != "Nike" || items[0].Style != models.StyleSport || items[0].ImageURL == "" {
		t.Errorf("unexpected first item: %+v", items[0])
	}
}

func TestFetcherSkipsInvalidEntries(t *testing.T) {
	payload := `[
		{"brand":"","model":"Nameless","size":42,"style":"sport","type":"sneakers","price":100},
		{"brand":"Bata","model":"Oxford","size":0,"style":"formal","type":"shoes","price":1500},
		{"brand":"Salomon","model":"X Ultra","size":43,"style":"outdoor","type":"boots","price":4800}
	]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL)
	defer f.Close()

	items, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(items) != 1 || items[0].Brand != "Salomon" {
		t.Errorf("expected only the valid entry, got %+v", items)
	}
}

func TestFetcherHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL)
	defer f.Close()

	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for HTTP 404")
	}
}

func TestFetcherMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL)
	defer f.Close()

	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
