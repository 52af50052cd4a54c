// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// IngestDuration tracks webhook fetch duration per outcome.
	IngestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ingest_duration_seconds",
			Help:    "Webhook ingestion cycle duration",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15, 30},
		},
		[]string{"status"},
	)

	// IngestFailures tracks failed ingestion cycles.
	IngestFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ingest_failures_total",
			Help: "Total failed webhook ingestion cycles",
		},
	)

	// StaleResponsesDiscarded tracks fetch results dropped by the
	// sequence guard.
	StaleResponsesDiscarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ingest_stale_responses_total",
			Help: "Webhook responses discarded for arriving out of order",
		},
	)

	// RecordsCurrent tracks raw records in the live snapshot.
	RecordsCurrent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "snapshot_records",
			Help: "Raw interaction records in the current snapshot",
		},
	)

	// ConversationsCurrent tracks conversations in the live snapshot.
	ConversationsCurrent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "snapshot_conversations",
			Help: "Conversations in the current snapshot",
		},
	)

	// LoginAttempts tracks login attempts by result.
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Total login attempts",
		},
		[]string{"result"},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordIngest records metrics for one ingestion cycle.
func RecordIngest(status string, duration float64) {
	IngestDuration.WithLabelValues(status).Observe(duration)
}

// RecordSnapshot records the size of an applied snapshot.
func RecordSnapshot(records, conversations int) {
	RecordsCurrent.Set(float64(records))
	ConversationsCurrent.Set(float64(conversations))
}

// RecordLogin records a login attempt outcome.
func RecordLogin(result string) {
	LoginAttempts.WithLabelValues(result).Inc()
}
