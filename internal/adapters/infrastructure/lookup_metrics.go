package infrastructure

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "weathrly"

// LookupMetrics implements the LookupMetrics port with Prometheus collectors
type LookupMetrics struct {
	Lookups          *prometheus.CounterVec   // labels: source={live,partial,fallback}
	LookupNotFound   prometheus.Counter
	UpstreamRequests *prometheus.CounterVec   // labels: endpoint={weather,forecast}, outcome
	UpstreamDuration *prometheus.HistogramVec // labels: endpoint={weather,forecast}
}

// NewLookupMetrics creates the collectors and registers them with reg
func NewLookupMetrics(reg prometheus.Registerer) *LookupMetrics {
	m := newLookupMetrics()
	reg.MustRegister(
		m.Lookups,
		m.LookupNotFound,
		m.UpstreamRequests,
		m.UpstreamDuration,
	)
	return m
}

// NewLookupMetricsForTesting creates unregistered collectors, avoiding
// "already registered" panics when called from multiple tests.
func NewLookupMetricsForTesting() *LookupMetrics {
	return newLookupMetrics()
}

func newLookupMetrics() *LookupMetrics {
	return &LookupMetrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "lookups_total",
			Help:      "Weather lookups by data source.",
		}, []string{"source"}),
		LookupNotFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "lookup_not_found_total",
			Help:      "Lookups for cities the provider does not know.",
		}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "upstream_requests_total",
			Help:      "OpenWeatherMap requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "OpenWeatherMap request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
	}
}

func (m *LookupMetrics) RecordLookup(source string) {
	m.Lookups.WithLabelValues(source).Inc()
}

func (m *LookupMetrics) RecordNotFound() {
	m.LookupNotFound.Inc()
}

func (m *LookupMetrics) RecordUpstreamCall(endpoint, outcome string, duration time.Duration) {
	m.UpstreamRequests.WithLabelValues(endpoint, outcome).Inc()
	m.UpstreamDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}
