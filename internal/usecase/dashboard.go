package usecase

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"RateWatch/internal/domain/models"
	drepo "RateWatch/internal/domain/repository"
	"RateWatch/internal/services/stats"
	xlogger "RateWatch/pkg/logger"
)

// Dashboard glues the forecast dataset, the live rate fetcher and the
// guidance engine together behind the API.
type Dashboard struct {
	store       drepo.ForecastStore
	fetcher     *RateFetcher
	engine      *GuidanceEngine
	yieldColumn string
	logger      *xlogger.Logger
}

func NewDashboard(store drepo.ForecastStore, fetcher *RateFetcher, engine *GuidanceEngine, yieldColumn string, logger *xlogger.Logger) *Dashboard {
	return &Dashboard{
		store:       store,
		fetcher:     fetcher,
		engine:      engine,
		yieldColumn: yieldColumn,
		logger:      logger,
	}
}

// IndicatorInfo describes the dataset: its columns and date bounds.
type IndicatorInfo struct {
	Indicators  []string  `json:"indicators"`
	YieldColumn string    `json:"yield_column"`
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`
}

func (d *Dashboard) Indicators() IndicatorInfo {
	from, to := d.store.Bounds()
	return IndicatorInfo{
		Indicators:  d.store.Columns(),
		YieldColumn: d.yieldColumn,
		From:        from,
		To:          to,
	}
}

func (d *Dashboard) Series(indicator string, from, to time.Time) (models.IndicatorSeries, error) {
	return d.store.Series(indicator, from, to)
}

// Heatmap computes the pairwise correlation matrix over the full dataset.
func (d *Dashboard) Heatmap() models.CorrelationMatrix {
	columns := d.store.Columns()
	fromBound, toBound := d.store.Bounds()
	rows := d.store.Rows(fromBound, toBound)

	values := make([]map[string]float64, len(rows))
	for i, r := range rows {
		values[i] = r.Values
	}

	cells := stats.CorrelationMatrix(columns, values)
	// JSON has no NaN; undefined correlations are rendered as zero
	for i := range cells {
		for j := range cells[i] {
			if math.IsNaN(cells[i][j]) {
				cells[i][j] = 0
			}
		}
	}
	return models.CorrelationMatrix{Indicators: columns, Cells: cells}
}

// Export writes the rows in [from, to] as CSV.
func (d *Dashboard) Export(w io.Writer, from, to time.Time) error {
	type exporter interface {
		ExportCSV(w io.Writer, from, to time.Time) error
	}
	e, ok := d.store.(exporter)
	if !ok {
		return fmt.Errorf("store does not support export")
	}
	return e.ExportCSV(w, from, to)
}

// LiveRates returns the current live snapshot.
func (d *Dashboard) LiveRates(ctx context.Context) models.RateSnapshot {
	return d.fetcher.Snapshot(ctx)
}

// Report evaluates all three guidance tracks over the [from, to] forecast
// window. The historical track fails independently of the forecast and
// spread tracks; any failure inside the latter replaces both with a single
// fallback message carrying the raw error text.
func (d *Dashboard) Report(ctx context.Context, from, to time.Time) models.GuidanceReport {
	report := models.GuidanceReport{}

	// Historical track: most recent dataset row, independent of the window
	// and of the live fetch.
	if lastYield, err := d.latestYield(); err != nil {
		d.logger.Warn("historical guidance unavailable", xlogger.Error(err))
		report.Historical = &models.GuidanceMessage{
			Track:    models.TrackHistorical,
			Level:    models.LevelInfo,
			Headline: "Forecast alerts will appear here once the benchmark yield is loaded.",
		}
	} else {
		msg := d.engine.HistoricalGuidance(lastYield)
		report.Historical = &msg
		report.LastYield = &lastYield
	}

	// Forecast and spread tracks share the original's catch-all: any
	// failure replaces both with the static fallback plus the error text.
	if err := d.liveReport(ctx, from, to, &report); err != nil {
		d.logger.Warn("guidance computation failed", xlogger.Error(err))
		report.Forecast = nil
		report.Spread = nil
		report.Live = nil
		report.ForecastedYield = nil
		report.Fallback = &models.GuidanceMessage{
			Track:    models.TrackForecast,
			Level:    models.LevelWarning,
			Headline: "Could not generate investment guidance.",
			Detail:   err.Error(),
		}
	}

	return report
}

func (d *Dashboard) liveReport(ctx context.Context, from, to time.Time, report *models.GuidanceReport) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("guidance: %v", r)
		}
	}()

	// Both live values must be present before any of this portion renders;
	// otherwise the single insufficient-data fallback stands in for all of it.
	snap := d.fetcher.Snapshot(ctx)
	if !snap.Complete() {
		fallback := d.engine.InsufficientData()
		fallback.Detail = appendWarnings(fallback.Detail, snap.Warnings)
		report.Fallback = &fallback
		return nil
	}

	rows := d.store.Rows(from, to)
	if len(rows) == 0 {
		return fmt.Errorf("no forecast rows in selected range")
	}
	forecastedYield, ok := rows[len(rows)-1].Value(d.yieldColumn)
	if !ok {
		return fmt.Errorf("column %q missing from latest row in range", d.yieldColumn)
	}

	msg := d.engine.ForecastGuidance(forecastedYield)
	report.Forecast = &msg
	report.ForecastedYield = &forecastedYield

	report.Spread = d.engine.SpreadGuidance(snap)
	report.Live = &snap

	return nil
}

func (d *Dashboard) latestYield() (float64, error) {
	row, err := d.store.Latest()
	if err != nil {
		return 0, err
	}
	v, ok := row.Value(d.yieldColumn)
	if !ok {
		return 0, fmt.Errorf("column %q missing from latest row", d.yieldColumn)
	}
	return v, nil
}

func appendWarnings(detail string, warnings []string) string {
	for _, w := range warnings {
		detail += " " + w + "."
	}
	return detail
}
