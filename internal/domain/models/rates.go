package models

import "time"

// RateSnapshot is the live comparison between the benchmark treasury yield
// and the retail mortgage rate. Either value may be absent when its source
// failed; Spread is present only when both inputs are.
type RateSnapshot struct {
	TreasuryYield *float64  `json:"treasury_yield,omitempty"`
	MortgageRate  *float64  `json:"mortgage_rate,omitempty"`
	Spread        *float64  `json:"spread,omitempty"`
	FetchedAt     time.Time `json:"fetched_at"`
	Warnings      []string  `json:"warnings,omitempty"`
}

// Complete reports whether both live values were fetched.
func (s RateSnapshot) Complete() bool {
	return s.TreasuryYield != nil && s.MortgageRate != nil
}
