// Package metrics provides Prometheus metrics for the dashboard backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheResultTotal counts cache outcomes per endpoint by freshness.
	CacheResultTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "commonwealth",
			Name:      "cache_result_total",
			Help:      "Total number of cache lookups by endpoint and freshness",
		},
		[]string{"endpoint", "freshness"},
	)

	// UpstreamRequestsTotal counts calls to external APIs by outcome.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "commonwealth",
			Name:      "upstream_requests_total",
			Help:      "Total number of upstream API requests",
		},
		[]string{"upstream", "status"},
	)

	// UpstreamRequestDuration measures upstream call latency.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "commonwealth",
			Name:      "upstream_request_duration_seconds",
			Help:      "Duration of upstream API requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"upstream"},
	)

	// AnalyzeItemsTotal counts per-article summarization outcomes.
	AnalyzeItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "commonwealth",
			Name:      "analyze_items_total",
			Help:      "Total number of analyzed articles by outcome",
		},
		[]string{"status"},
	)
)

// RecordCacheResult records a cache lookup outcome.
func RecordCacheResult(endpoint, freshness string) {
	CacheResultTotal.WithLabelValues(endpoint, freshness).Inc()
}

// RecordUpstreamRequest records one upstream call with its latency.
func RecordUpstreamRequest(upstream, status string, duration float64) {
	UpstreamRequestsTotal.WithLabelValues(upstream, status).Inc()
	UpstreamRequestDuration.WithLabelValues(upstream).Observe(duration)
}

// RecordAnalyzeItem records the outcome of a single article analysis.
func RecordAnalyzeItem(status string) {
	AnalyzeItemsTotal.WithLabelValues(status).Inc()
}
