package usecase

import (
	"testing"

	"RateWatch/internal/domain/models"
)

func f64(v float64) *float64 { return &v }

func TestForecastGuidanceBands(t *testing.T) {
	e := NewGuidanceEngine(nil)

	cases := []struct {
		yield float64
		level string
	}{
		{5.01, models.LevelError},
		{7.5, models.LevelError},
		{5.0, models.LevelWarning}, // boundary: exactly 5.0 is stable
		{4.5, models.LevelWarning},
		{4.01, models.LevelWarning},
		{4.0, models.LevelSuccess}, // boundary: exactly 4.0 is lock-now
		{3.2, models.LevelSuccess},
	}
	for _, tc := range cases {
		got := e.ForecastGuidance(tc.yield)
		if got.Level != tc.level {
			t.Fatalf("yield %v: expected %s, got %s", tc.yield, tc.level, got.Level)
		}
		if got.Track != models.TrackForecast {
			t.Fatalf("yield %v: unexpected track %s", tc.yield, got.Track)
		}
	}
}

func TestSpreadGuidanceElevated(t *testing.T) {
	e := NewGuidanceEngine(nil)

	snap := models.RateSnapshot{TreasuryYield: f64(4.50), MortgageRate: f64(6.92)}
	spread := 6.92 - 4.50
	snap.Spread = &spread

	got := e.SpreadGuidance(snap)
	if got == nil {
		t.Fatalf("expected spread guidance")
	}
	if got.Level != models.LevelWarning {
		t.Fatalf("spread 2.42 should be elevated, got %s", got.Level)
	}
}

func TestSpreadGuidanceNormal(t *testing.T) {
	e := NewGuidanceEngine(nil)

	snap := models.RateSnapshot{TreasuryYield: f64(4.50), MortgageRate: f64(6.00)}
	spread := 1.50
	snap.Spread = &spread

	got := e.SpreadGuidance(snap)
	if got == nil {
		t.Fatalf("expected spread guidance")
	}
	if got.Level != models.LevelSuccess {
		t.Fatalf("spread 1.50 should be normal, got %s", got.Level)
	}
}

func TestSpreadGuidanceAbsentInput(t *testing.T) {
	e := NewGuidanceEngine(nil)

	if got := e.SpreadGuidance(models.RateSnapshot{MortgageRate: f64(6.92)}); got != nil {
		t.Fatalf("expected nil without treasury yield, got %+v", got)
	}
	if got := e.SpreadGuidance(models.RateSnapshot{TreasuryYield: f64(4.50)}); got != nil {
		t.Fatalf("expected nil without mortgage rate, got %+v", got)
	}
}

func TestHistoricalGuidanceBands(t *testing.T) {
	e := NewGuidanceEngine(nil)

	cases := []struct {
		yield float64
		level string
	}{
		{5.5, models.LevelWarning},
		{3.0, models.LevelSuccess},
		{4.0, models.LevelInfo},
		{5.0, models.LevelInfo}, // boundary: exactly 5.0 is neutral
		{3.5, models.LevelInfo}, // boundary: exactly 3.5 is neutral
	}
	for _, tc := range cases {
		got := e.HistoricalGuidance(tc.yield)
		if got.Level != tc.level {
			t.Fatalf("yield %v: expected %s, got %s", tc.yield, tc.level, got.Level)
		}
	}
}
