package models

// Guidance levels mirror the severity of the rendered message.
const (
	LevelError   = "error"
	LevelWarning = "warning"
	LevelSuccess = "success"
	LevelInfo    = "info"
)

// Guidance tracks.
const (
	TrackForecast   = "forecast"
	TrackSpread     = "spread"
	TrackHistorical = "historical"
)

// GuidanceMessage is one classified piece of display text.
type GuidanceMessage struct {
	Track    string `json:"track"`
	Level    string `json:"level"`
	Headline string `json:"headline"`
	Detail   string `json:"detail,omitempty"`
}

// GuidanceReport is the full output of a guidance evaluation. The three
// tracks are independent; Live carries the snapshot the spread track was
// computed from, and Fallback is set instead of Spread/Live when the live
// data was insufficient or the computation failed.
type GuidanceReport struct {
	Forecast   *GuidanceMessage `json:"forecast,omitempty"`
	Spread     *GuidanceMessage `json:"spread,omitempty"`
	Historical *GuidanceMessage `json:"historical,omitempty"`
	Live       *RateSnapshot    `json:"live,omitempty"`
	Fallback   *GuidanceMessage `json:"fallback,omitempty"`

	ForecastedYield *float64 `json:"forecasted_yield,omitempty"`
	LastYield       *float64 `json:"last_yield,omitempty"`
}
