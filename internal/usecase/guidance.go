package usecase

import (
	"RateWatch/internal/domain/models"
	drepo "RateWatch/internal/domain/repository"
)

// GuidanceEngine classifies yields and spreads into display text. The
// three tracks are independent: forecast and spread use 5.0/4.0 and 2.0
// boundaries, the historical track uses 5.0/3.5. The threshold divergence
// between the forecast and historical tracks is intentional.
type GuidanceEngine struct {
	metrics drepo.Metrics
}

func NewGuidanceEngine(metrics drepo.Metrics) *GuidanceEngine {
	return &GuidanceEngine{metrics: metrics}
}

// ForecastGuidance classifies the forecasted benchmark yield into one of
// three ordered bands. Boundaries: exactly 5.0 falls in the stable band,
// exactly 4.0 in the lock-now band.
func (e *GuidanceEngine) ForecastGuidance(forecastedYield float64) models.GuidanceMessage {
	var msg models.GuidanceMessage
	switch {
	case forecastedYield > 5.0:
		msg = models.GuidanceMessage{
			Track:    models.TrackForecast,
			Level:    models.LevelError,
			Headline: "Forecasted 10Y Yield is above 5%.",
			Detail:   "Mortgage rates may increase. Consider delaying unless urgent.",
		}
	case forecastedYield > 4.0:
		msg = models.GuidanceMessage{
			Track:    models.TrackForecast,
			Level:    models.LevelWarning,
			Headline: "Forecasted 10Y Yield is between 4% and 5%.",
			Detail:   "Rates are stable. Lock only if timing matters.",
		}
	default:
		msg = models.GuidanceMessage{
			Track:    models.TrackForecast,
			Level:    models.LevelSuccess,
			Headline: "Forecasted 10Y Yield is below 4%.",
			Detail:   "Consider locking or refinancing now to capture lower rates.",
		}
	}
	e.record(msg)
	return msg
}

// SpreadGuidance classifies the live snapshot's spread. Returns nil when
// either live value is absent; the caller substitutes the insufficient-data
// fallback in that case.
func (e *GuidanceEngine) SpreadGuidance(snap models.RateSnapshot) *models.GuidanceMessage {
	if !snap.Complete() || snap.Spread == nil {
		return nil
	}

	var msg models.GuidanceMessage
	if *snap.Spread > 2.0 {
		msg = models.GuidanceMessage{
			Track:    models.TrackSpread,
			Level:    models.LevelWarning,
			Headline: "Mortgage rates are elevated due to a higher-than-normal spread.",
			Detail:   "This suggests lenders are pricing in risk premiums; rates may come down even if Treasury yields stay flat.",
		}
	} else {
		msg = models.GuidanceMessage{
			Track:    models.TrackSpread,
			Level:    models.LevelSuccess,
			Headline: "Spread is within normal range.",
			Detail:   "Mortgage pricing aligns with historical expectations.",
		}
	}
	e.record(msg)
	return &msg
}

// HistoricalGuidance classifies the dataset's most recent benchmark yield.
// Exactly 5.0 and exactly 3.5 both resolve to the neutral band.
func (e *GuidanceEngine) HistoricalGuidance(lastYield float64) models.GuidanceMessage {
	var msg models.GuidanceMessage
	switch {
	case lastYield > 5.0:
		msg = models.GuidanceMessage{
			Track:    models.TrackHistorical,
			Level:    models.LevelWarning,
			Headline: "10Y Yield is projected above 5%.",
			Detail:   "Mortgage rates may rise and refinancing could become less favorable.",
		}
	case lastYield < 3.5:
		msg = models.GuidanceMessage{
			Track:    models.TrackHistorical,
			Level:    models.LevelSuccess,
			Headline: "10Y Yield is projected below 3.5%.",
			Detail:   "Mortgage rates may drop; consider locking in refinancing.",
		}
	default:
		msg = models.GuidanceMessage{
			Track:    models.TrackHistorical,
			Level:    models.LevelInfo,
			Headline: "Mortgage rates are expected to remain stable in the near term.",
		}
	}
	e.record(msg)
	return msg
}

// InsufficientData is the single fallback shown when either live value is
// missing: nothing partial is rendered for the live portion.
func (e *GuidanceEngine) InsufficientData() models.GuidanceMessage {
	msg := models.GuidanceMessage{
		Track:    models.TrackSpread,
		Level:    models.LevelWarning,
		Headline: "Live rate data is unavailable.",
		Detail:   "Spread guidance needs both the current Treasury yield and the current mortgage rate.",
	}
	e.record(msg)
	return msg
}

func (e *GuidanceEngine) record(msg models.GuidanceMessage) {
	if e.metrics != nil {
		e.metrics.RecordGuidance(msg.Track, msg.Level)
	}
}
