package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Import pipeline metrics
	ImportsProcessed *prometheus.CounterVec
	ImportDuration   prometheus.Histogram
	SweepReclaimed   prometheus.Counter

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

var metrics *Metrics

// Init initializes all Prometheus metrics
func Init() *Metrics {
	if metrics != nil {
		return metrics
	}

	metrics = &Metrics{
		ImportsProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "policy_imports_processed_total",
				Help: "Total processed policy document imports by terminal status",
			},
			[]string{"status"},
		),
		ImportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "policy_import_duration_seconds",
				Help:    "Wall-clock time of one import processing attempt",
				Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
			},
		),
		SweepReclaimed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "policy_imports_sweep_reclaimed_total",
				Help: "Imports reclassified to failed by the stuck-import sweep",
			},
		),
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
	return metrics
}

// Get returns the initialized metrics, initializing them on first use.
func Get() *Metrics {
	return Init()
}
