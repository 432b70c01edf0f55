package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketplace_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// CacheLookups counts cache-aside lookups by outcome (hit, miss, error).
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketplace_cache_lookups_total",
		Help: "Cache-aside lookups by outcome",
	}, []string{"outcome"})

	// ServiceOperationLatency records data service latency by method.
	ServiceOperationLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "marketplace_service_operation_latency_seconds",
		Help:    "Data service operation latency in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, []string{"method"})

	// CollectionSize is the number of records held per collection.
	CollectionSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "marketplace_collection_size",
		Help: "Number of records per in-memory collection",
	}, []string{"collection"})

	// NormalizationFallbacks counts free-text values that could not be parsed.
	NormalizationFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketplace_normalization_fallbacks_total",
		Help: "Values replaced by a default because they could not be parsed",
	}, []string{"field"})
)

// TrackOperation returns a function that records the method's latency when called (e.g. defer).
func TrackOperation(method string) func() {
	start := time.Now()
	return func() {
		ServiceOperationLatency.WithLabelValues(method).Observe(time.Since(start).Seconds())
	}
}
