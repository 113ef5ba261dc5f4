// Package metrics exposes the server's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds the server metrics. One instance per process;
// promauto registers everything on the default registry.
type Collector struct {
	PageRequestsTotal *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
	DatasetLoadErrors prometheus.Counter
	RecordsLoaded     prometheus.Gauge
}

// NewCollector creates the collector under the given namespace.
func NewCollector(namespace string) *Collector {
	return &Collector{
		PageRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "page_requests_total",
				Help:      "Total number of HTTP requests by path and status",
			},
			[]string{"path", "status"},
		),

		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds by path",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"path"},
		),

		DatasetLoadErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dataset_load_errors_total",
				Help:      "Total number of failed dataset loads",
			},
		),

		RecordsLoaded: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "records_loaded",
				Help:      "Number of day records in the currently served dataset",
			},
		),
	}
}
