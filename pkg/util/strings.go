package util

import (
	"strconv"
	"strings"
)

// ParsePercent parses a percentage string such as "6.92%" into its float value.
func ParsePercent(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	return strconv.ParseFloat(s, 64)
}
