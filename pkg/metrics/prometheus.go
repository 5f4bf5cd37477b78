package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetchesTotal  *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	lastRate      *prometheus.GaugeVec
	latency       *prometheus.HistogramVec
	guidanceTotal *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ratewatch_fetches_total",
				Help: "Total number of live-rate fetch attempts per source",
			},
			[]string{"source"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ratewatch_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastRate: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ratewatch_last_rate_percent",
				Help: "Last fetched rate for a source, in percent",
			},
			[]string{"source"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ratewatch_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		guidanceTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ratewatch_guidance_total",
				Help: "Guidance classifications emitted per track and level",
			},
			[]string{"track", "level"},
		),
	}
}

// RecordFetch records a fetch attempt against a rate source.
func (r *Recorder) RecordFetch(source string) {
	r.fetchesTotal.WithLabelValues(source).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLastRate records the last fetched rate for a source.
func (r *Recorder) RecordLastRate(source string, pct float64) {
	r.lastRate.WithLabelValues(source).Set(pct)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordGuidance records an emitted guidance classification.
func (r *Recorder) RecordGuidance(track, level string) {
	r.guidanceTotal.WithLabelValues(track, level).Inc()
}
