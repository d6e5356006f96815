package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the service prometheus registry and every collector the
// billing service exposes.
type Metrics struct {
	registry *prometheus.Registry

	BillsIssued     *prometheus.CounterVec
	SequenceResets  prometheus.Counter
	ComputeDuration prometheus.Histogram
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	// Go and process collectors come from the default registry, which the
	// handler also gathers.
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		BillsIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vgbilling",
			Name:      "bills_issued_total",
			Help:      "Bills issued, by bill type code.",
		}, []string{"bill_type"}),
		SequenceResets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vgbilling",
			Name:      "sequence_resets_total",
			Help:      "Administrative bill-sequence resets.",
		}),
		ComputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "vgbilling",
			Name:      "billing_compute_seconds",
			Help:      "Latency of a single billing computation.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vgbilling",
			Name:      "http_requests_total",
			Help:      "HTTP requests, by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vgbilling",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	registry.MustRegister(
		m.BillsIssued,
		m.SequenceResets,
		m.ComputeDuration,
		m.HTTPRequests,
		m.HTTPDuration,
	)

	return m
}

// Handler serves the /metrics endpoint. The default gatherer is included
// because the gorm prometheus plugin registers its collectors there.
func (m *Metrics) Handler() http.Handler {
	gatherers := prometheus.Gatherers{m.registry, prometheus.DefaultGatherer}
	return promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{})
}
