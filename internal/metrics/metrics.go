// Package metrics exposes the gateway's Prometheus instrumentation,
// following the same promauto-registered CounterVec/HistogramVec/Gauge
// shape this codebase uses for its own HTTP handler metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every metric the gateway records. Pass to components that
// need to observe request outcomes.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ActiveSessions  prometheus.Gauge
	CacheSize       prometheus.Gauge
	UpstreamCalls   *prometheus.CounterVec
	RateLimitWaits  prometheus.Counter
}

// New creates and registers every metric with reg.
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RequestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rescuegate",
				Name:      "requests_total",
				Help:      "Total number of MCP requests processed, by method and outcome.",
			},
			[]string{"method", "status"},
		),
		RequestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "rescuegate",
				Name:      "request_duration_seconds",
				Help:      "MCP request duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		ActiveSessions: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Namespace: "rescuegate",
				Name:      "active_sessions",
				Help:      "Number of active HTTP/SSE sessions.",
			},
		),
		CacheSize: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Namespace: "rescuegate",
				Name:      "cache_entries",
				Help:      "Number of live response cache entries.",
			},
		),
		UpstreamCalls: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rescuegate",
				Name:      "upstream_calls_total",
				Help:      "Total upstream RescueGroups API calls, by outcome.",
			},
			[]string{"outcome"},
		),
		RateLimitWaits: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Namespace: "rescuegate",
				Name:      "rate_limit_waits_total",
				Help:      "Total requests that had to wait on the upstream limiter.",
			},
		),
	}
}
