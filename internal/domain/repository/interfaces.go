package repository

import (
	"context"
	"time"

	"RateWatch/internal/domain/models"
)

// ForecastStore provides read access to the loaded forecast dataset.
// Date-range selections are inclusive on both ends.
type ForecastStore interface {
	// Columns returns indicator column names, Date excluded, in file order.
	Columns() []string
	// Bounds returns the minimum and maximum dataset dates.
	Bounds() (time.Time, time.Time)
	// Rows returns rows with Date in [from, to].
	Rows(from, to time.Time) []models.ForecastRow
	// Latest returns the most recent row.
	Latest() (models.ForecastRow, error)
	// Series returns the (date, value) points of one indicator in [from, to].
	Series(indicator string, from, to time.Time) (models.IndicatorSeries, error)
}

// RateSource fetches one live rate value, in percent. Implementations
// return an error on any failure; callers degrade the result to absent.
type RateSource interface {
	Name() string
	Fetch(ctx context.Context) (float64, error)
}

// Metrics abstracts the service's observability counters.
type Metrics interface {
	RecordFetch(source string)
	RecordError(kind string)
	RecordLastRate(source string, pct float64)
	RecordLatency(op string, seconds float64)
	RecordGuidance(track, level string)
}
