package treasury

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchLatestClose(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v8/finance/chart/^TNX" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"chart":{"result":[{"timestamp":[1735689600],"indicators":{"quote":[{"close":[4.43,null,4.50]}]}}],"error":null}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "^TNX", 1, time.Second)
	got, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	// last non-null close wins
	if got != 4.50 {
		t.Fatalf("expected 4.50, got %v", got)
	}
}

func TestFetchScale(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"chart":{"result":[{"indicators":{"quote":[{"close":[44.3]}]}}]}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "^TNX", 0.1, time.Second)
	got, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got != 4.43 {
		t.Fatalf("expected 4.43, got %v", got)
	}
}

func TestFetchEmptySeries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "^TNX", 1, time.Second)
	if _, err := c.Fetch(context.Background()); err == nil {
		t.Fatalf("expected error for empty series")
	}
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, "^TNX", 1, time.Second)
	if _, err := c.Fetch(context.Background()); err == nil {
		t.Fatalf("expected error for 502")
	}
}
