package models

// SeriesRequest selects one indicator over an inclusive date range.
type SeriesRequest struct {
	Indicator string `query:"indicator" validate:"required"`
	From      string `query:"from"`
	To        string `query:"to"`
}

// RangeRequest selects an inclusive date range.
type RangeRequest struct {
	From string `query:"from"`
	To   string `query:"to"`
}

// ChartRequest renders one indicator as a PNG line chart.
type ChartRequest struct {
	Indicator string `query:"indicator" validate:"required"`
	From      string `query:"from"`
	To        string `query:"to"`
	Width     int    `query:"width" default:"1024" validate:"gte=0,lte=4096"`
	Height    int    `query:"height" default:"512" validate:"gte=0,lte=4096"`
}
