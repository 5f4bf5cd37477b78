package http

import (
	"time"

	xutil "RateWatch/pkg/util"
)

// ParseDateDefault parses a query date or returns default if empty/invalid.
func ParseDateDefault(s string, def time.Time) time.Time { return xutil.ParseDateDefault(s, def) }
