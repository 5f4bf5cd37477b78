package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"RateWatch/internal/domain/models"
	"RateWatch/internal/repository"
)

const yieldCol = "10Y_Treasury_Yield"

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "forecast.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func newTestDashboard(t *testing.T, csv string, treasury, mortgage *fakeSource) *Dashboard {
	t.Helper()
	store, err := repository.NewCSVForecastStore(writeDataset(t, csv), "Date")
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	fetcher := newTestFetcher(t, treasury, mortgage, nil)
	return NewDashboard(store, fetcher, NewGuidanceEngine(noopMetrics{}), yieldCol, testLogger(t))
}

const sampleCSV = `Date,10Y_Treasury_Yield,Fed_Funds_Rate
2025-01-01,3.90,4.25
2025-02-01,4.20,4.25
2025-03-01,4.60,4.50
2025-04-01,5.50,4.50
`

func TestReportAllTracks(t *testing.T) {
	ts := &fakeSource{name: "treasury", value: 4.50}
	ms := &fakeSource{name: "mortgage", value: 6.92}
	d := newTestDashboard(t, sampleCSV, ts, ms)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	report := d.Report(context.Background(), from, to)

	if report.Fallback != nil {
		t.Fatalf("unexpected fallback: %+v", report.Fallback)
	}
	// window ends 2025-03-01 whose yield is 4.60: stable band
	if report.Forecast == nil || report.Forecast.Level != models.LevelWarning {
		t.Fatalf("expected stable forecast guidance, got %+v", report.Forecast)
	}
	if report.ForecastedYield == nil || *report.ForecastedYield != 4.60 {
		t.Fatalf("expected forecasted yield 4.60, got %v", report.ForecastedYield)
	}
	// spread 2.42 is elevated
	if report.Spread == nil || report.Spread.Level != models.LevelWarning {
		t.Fatalf("expected elevated spread guidance, got %+v", report.Spread)
	}
	if report.Live == nil || report.Live.Spread == nil || *report.Live.Spread != 2.42 {
		t.Fatalf("expected live spread 2.42, got %+v", report.Live)
	}
	// latest dataset row is 5.50: historical warning, independent of window
	if report.Historical == nil || report.Historical.Level != models.LevelWarning {
		t.Fatalf("expected historical warning, got %+v", report.Historical)
	}
	if report.LastYield == nil || *report.LastYield != 5.50 {
		t.Fatalf("expected last yield 5.50, got %v", report.LastYield)
	}
}

func TestReportInsufficientLiveData(t *testing.T) {
	ts := &fakeSource{name: "treasury", err: fmt.Errorf("unreachable")}
	ms := &fakeSource{name: "mortgage", value: 6.92}
	d := newTestDashboard(t, sampleCSV, ts, ms)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	report := d.Report(context.Background(), from, to)

	if report.Fallback == nil {
		t.Fatalf("expected insufficient-data fallback")
	}
	if report.Forecast != nil || report.Spread != nil || report.Live != nil {
		t.Fatalf("no partial live output may be shown: %+v", report)
	}
	// historical track is independent of the live fetch
	if report.Historical == nil || report.Historical.Level != models.LevelWarning {
		t.Fatalf("expected historical warning, got %+v", report.Historical)
	}
}

func TestReportEmptyWindowFallback(t *testing.T) {
	ts := &fakeSource{name: "treasury", value: 4.50}
	ms := &fakeSource{name: "mortgage", value: 6.92}
	d := newTestDashboard(t, sampleCSV, ts, ms)

	from := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2030, 2, 1, 0, 0, 0, 0, time.UTC)
	report := d.Report(context.Background(), from, to)

	if report.Fallback == nil {
		t.Fatalf("expected computation fallback")
	}
	if report.Fallback.Detail == "" {
		t.Fatalf("fallback must carry the raw error text")
	}
	if report.Forecast != nil || report.Spread != nil {
		t.Fatalf("no partial output may be shown: %+v", report)
	}
}

func TestHeatmap(t *testing.T) {
	ts := &fakeSource{name: "treasury", value: 4.50}
	ms := &fakeSource{name: "mortgage", value: 6.92}
	d := newTestDashboard(t, sampleCSV, ts, ms)

	hm := d.Heatmap()
	if len(hm.Indicators) != 2 {
		t.Fatalf("expected 2 indicators, got %v", hm.Indicators)
	}
	for i := range hm.Cells {
		if hm.Cells[i][i] != 1 {
			t.Fatalf("diagonal must be 1, got %v", hm.Cells[i][i])
		}
	}
	if hm.Cells[0][1] != hm.Cells[1][0] {
		t.Fatalf("matrix must be symmetric")
	}
}
