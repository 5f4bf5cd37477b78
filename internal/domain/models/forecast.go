package models

import "time"

// ForecastRow is one time-indexed record of indicator values from the
// forecast dataset. Values are keyed by column name; the Date column is
// carried separately.
type ForecastRow struct {
	Date   time.Time
	Values map[string]float64
}

// Value returns the named indicator value and whether it was present.
func (r ForecastRow) Value(indicator string) (float64, bool) {
	v, ok := r.Values[indicator]
	return v, ok
}

// SeriesPoint is one (date, value) observation of a single indicator.
type SeriesPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// IndicatorSeries is a date-ordered slice of points for one indicator.
type IndicatorSeries struct {
	Indicator string        `json:"indicator"`
	Points    []SeriesPoint `json:"points"`
}

// CorrelationMatrix holds pairwise Pearson correlations between indicator
// columns. Cells follows the order of Indicators on both axes.
type CorrelationMatrix struct {
	Indicators []string    `json:"indicators"`
	Cells      [][]float64 `json:"cells"`
}
