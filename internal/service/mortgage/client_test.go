package mortgage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchFromAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"schema_version":1,"as_of":"2025-04-01","rates":[{"product":"15-year-fixed","rate_pct":6.10},{"product":"30-year-fixed","rate_pct":6.92}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "30-year-fixed", time.Second)
	got, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got != 6.92 {
		t.Fatalf("expected 6.92, got %v", got)
	}
}

func TestFetchRejectsUnknownSchema(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"schema_version":2,"rates":[{"product":"30-year-fixed","rate_pct":6.92}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "30-year-fixed", time.Second)
	if _, err := c.Fetch(context.Background()); err == nil {
		t.Fatalf("expected schema version error")
	}
}

func TestFetchMissingProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"schema_version":1,"rates":[{"product":"15-year-fixed","rate_pct":6.10}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "30-year-fixed", time.Second)
	if _, err := c.Fetch(context.Background()); err == nil {
		t.Fatalf("expected missing product error")
	}
}

func TestFetchFallsBackToScraper(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusInternalServerError)
	}))
	defer api.Close()

	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div><span>30-year fixed</span><span>6.92%</span></div></body></html>`))
	}))
	defer page.Close()

	c := New(api.URL, "30-year-fixed", time.Second,
		WithScraper(NewScraper(page.URL, "30-year fixed", "", time.Second)))
	got, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got != 6.92 {
		t.Fatalf("expected 6.92, got %v", got)
	}
}
