package repository

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

const sample = `Date,10Y_Treasury_Yield,Fed_Funds_Rate
2025-01-01,3.90,4.25
2025-02-01,4.20,4.25
2025-03-01,4.60,4.50
2025-04-01,5.50,4.50
`

func newStore(t *testing.T, content string) *CSVForecastStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "forecast.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := NewCSVForecastStore(path, "Date")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestLoadColumnsAndBounds(t *testing.T) {
	s := newStore(t, sample)

	want := []string{"10Y_Treasury_Yield", "Fed_Funds_Rate"}
	if !reflect.DeepEqual(s.Columns(), want) {
		t.Fatalf("columns: got %v", s.Columns())
	}

	from, to := s.Bounds()
	if !from.Equal(day(t, "2025-01-01")) || !to.Equal(day(t, "2025-04-01")) {
		t.Fatalf("bounds: got %v..%v", from, to)
	}
}

func TestRowsInclusiveRange(t *testing.T) {
	s := newStore(t, sample)

	rows := s.Rows(day(t, "2025-02-01"), day(t, "2025-03-01"))
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if !rows[0].Date.Equal(day(t, "2025-02-01")) || !rows[1].Date.Equal(day(t, "2025-03-01")) {
		t.Fatalf("range must be inclusive on both ends: %v", rows)
	}
}

func TestLatest(t *testing.T) {
	s := newStore(t, sample)

	row, err := s.Latest()
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if v, _ := row.Value("10Y_Treasury_Yield"); v != 5.50 {
		t.Fatalf("expected 5.50, got %v", v)
	}
}

func TestSeries(t *testing.T) {
	s := newStore(t, sample)

	series, err := s.Series("Fed_Funds_Rate", day(t, "2025-01-01"), day(t, "2025-04-01"))
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	if len(series.Points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(series.Points))
	}
	if series.Points[2].Value != 4.50 {
		t.Fatalf("unexpected value %v", series.Points[2].Value)
	}

	if _, err := s.Series("Nope", day(t, "2025-01-01"), day(t, "2025-04-01")); err == nil {
		t.Fatalf("expected error for unknown indicator")
	}
}

func TestExportRoundTrip(t *testing.T) {
	s := newStore(t, sample)

	from, to := day(t, "2025-02-01"), day(t, "2025-03-01")
	var buf bytes.Buffer
	if err := s.ExportCSV(&buf, from, to); err != nil {
		t.Fatalf("export: %v", err)
	}

	reparsed, err := parseCSV(&buf, "Date")
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if !reflect.DeepEqual(reparsed.rows, s.Rows(from, to)) {
		t.Fatalf("round trip mismatch:\n%v\n%v", reparsed.rows, s.Rows(from, to))
	}
}

func TestLoadRejectsBadDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("Date,X\nnot-a-date,1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewCSVForecastStore(path, "Date"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadSortsUnorderedRows(t *testing.T) {
	s := newStore(t, "Date,X\n2025-03-01,3\n2025-01-01,1\n2025-02-01,2\n")

	from, to := s.Bounds()
	if !from.Equal(day(t, "2025-01-01")) || !to.Equal(day(t, "2025-03-01")) {
		t.Fatalf("bounds: got %v..%v", from, to)
	}
	row, _ := s.Latest()
	if v, _ := row.Value("X"); v != 3 {
		t.Fatalf("latest should be the max date row, got %v", v)
	}
}
