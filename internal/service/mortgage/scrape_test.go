package mortgage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestScraperFindsLabelledRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "Mozilla/5.0" {
			t.Errorf("expected browser user agent, got %q", r.Header.Get("User-Agent"))
		}
		_, _ = w.Write([]byte(`<html><body>
<table>
<tr><td><span>15-year fixed</span></td><td><span>6.10%</span></td></tr>
<tr><td><span>30-year fixed</span></td><td><span> 6.92% </span></td></tr>
</table>
</body></html>`))
	}))
	defer srv.Close()

	s := NewScraper(srv.URL, "30-year fixed", "", time.Second)
	got, err := s.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got != 6.92 {
		t.Fatalf("expected 6.92, got %v", got)
	}
}

func TestScraperLabelMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><span>5/1 ARM</span><span>6.30%</span></body></html>`))
	}))
	defer srv.Close()

	s := NewScraper(srv.URL, "30-year fixed", "", time.Second)
	if _, err := s.Fetch(context.Background()); err == nil {
		t.Fatalf("expected selector miss error")
	}
}

func TestScraperUnparseableRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><span>30-year fixed</span><span>n/a</span></body></html>`))
	}))
	defer srv.Close()

	s := NewScraper(srv.URL, "30-year fixed", "", time.Second)
	if _, err := s.Fetch(context.Background()); err == nil {
		t.Fatalf("expected parse error")
	}
}
