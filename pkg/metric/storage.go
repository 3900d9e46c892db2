package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Storage = (*storageMetrics)(nil)

type storageMetrics struct {
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

func newStorageMetrics(registry *promRegistry) *storageMetrics {
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Duration of database queries in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0},
		},
		[]string{"operation"},
	)

	failures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_query_failures_total",
			Help: "Total number of failed database queries",
		},
		[]string{"operation"},
	)

	registry.registry.MustRegister(duration, failures)

	return &storageMetrics{
		duration: duration,
		failures: failures,
	}
}

func (m *storageMetrics) ObserveQuery(operation string, duration time.Duration) {
	m.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *storageMetrics) IncrementFailures(operation string) {
	m.failures.WithLabelValues(operation).Add(1)
}
