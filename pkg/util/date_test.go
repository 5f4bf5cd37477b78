package util

import (
	"testing"
	"time"
)

func TestParseDateCalendar(t *testing.T) {
	got, ok := ParseDate("2024-10-10")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Format(DateLayout) != "2024-10-10" {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestParseDateRFC3339(t *testing.T) {
	s := "2024-10-10T10:10:10Z"
	got, ok := ParseDate(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.UTC().Format(time.RFC3339) != s {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseDateDefault(t *testing.T) {
	def := time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)
	got := ParseDateDefault("", def)
	if !got.Equal(def) {
		t.Fatalf("expected default")
	}
}

func TestParsePercent(t *testing.T) {
	v, err := ParsePercent(" 6.92% ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 6.92 {
		t.Fatalf("unexpected value %v", v)
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(6.925 - 4.505); got != 2.42 {
		t.Fatalf("unexpected round %v", got)
	}
}
