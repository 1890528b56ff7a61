// Package metrics provides Prometheus metrics for the conversion service
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tsawler/dstv/core"
)

// Metrics holds the service collectors, registered on one registry.
type Metrics struct {
	// Conversions counts requests by operation and outcome. The outcome is
	// "ok" or an error kind such as "missing_field".
	Conversions *prometheus.CounterVec

	Duration *prometheus.HistogramVec

	InputBytes prometheus.Histogram

	// Warnings counts parse warnings by block code
	Warnings *prometheus.CounterVec

	// Records counts parsed records by kind
	Records *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Conversions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dstv_conversions_total",
				Help: "Total number of conversion requests",
			},
			[]string{"operation", "outcome"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dstv_conversion_duration_seconds",
				Help:    "Time taken to parse and render a document",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"operation"},
		),
		InputBytes: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dstv_input_bytes",
				Help:    "Size of submitted NC documents",
				Buckets: prometheus.ExponentialBuckets(512, 4, 8),
			},
		),
		Warnings: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dstv_parse_warnings_total",
				Help: "Total number of non-fatal parse warnings",
			},
			[]string{"code"},
		),
		Records: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dstv_records_parsed_total",
				Help: "Total number of records parsed",
			},
			[]string{"kind"},
		),
	}
}

// RecordConversion records the outcome of one request. A nil err counts as
// "ok".
func (m *Metrics) RecordConversion(operation string, err error, duration time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = core.Kind(err)
	}
	m.Conversions.WithLabelValues(operation, outcome).Inc()
	m.Duration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordInput records the size of a submitted document.
func (m *Metrics) RecordInput(n int) {
	m.InputBytes.Observe(float64(n))
}

// RecordWarnings counts warnings. Header warnings carry no code and are
// labelled "header".
func (m *Metrics) RecordWarnings(warnings []core.Warning) {
	for _, w := range warnings {
		code := w.Code
		if code == "" {
			code = "header"
		}
		m.Warnings.WithLabelValues(code).Inc()
	}
}

// RecordRecords adds per-kind record counts.
func (m *Metrics) RecordRecords(counts map[string]int) {
	for kind, n := range counts {
		m.Records.WithLabelValues(kind).Add(float64(n))
	}
}

// Timer is a helper for measuring duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Duration returns the elapsed time since the timer was created
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
