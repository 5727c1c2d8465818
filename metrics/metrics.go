package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// VFSOperations metric for VFS operations (lstat, open)
	VFSOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dagmap_vfs_operations_total",
			Help: "The number of VFS operations",
		},
		[]string{"vfs_name", "operation", "success"},
	)

	// ServedFileSize is the size of the files served from the web root
	ServedFileSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dagmap_served_file_size_bytes",
		Help:    "The size in bytes of the files served from the web root",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
	})

	// RejectedPaths counts requests whose path resolved outside the web root
	RejectedPaths = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dagmap_rejected_paths_total",
		Help: "The number of requests rejected because the path escaped the web root",
	})

	// GraphRequests counts task map conversions by outcome
	GraphRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dagmap_graph_requests_total",
			Help: "The number of task map conversions to Sankey graphs",
		},
		[]string{"outcome"},
	)

	// RateLimitSourceIPBlockedCount counts task maps refused because their
	// source IP sent too many
	RateLimitSourceIPBlockedCount = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dagmap_rate_limit_source_ip_blocked_count",
		Help: "The number of task maps refused by the source IP rate limiter",
	})

	// RateLimitCachedEntries is the number of entries in the rate limiter caches
	RateLimitCachedEntries = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "dagmap_rate_limit_cached_entries",
		Help: "The number of entries in the rate limiter caches",
	}, []string{"op"})

	// RateLimitCacheRequests counts the rate limiter cache lookups by result
	RateLimitCacheRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dagmap_rate_limit_cache_requests",
		Help: "The number of rate limiter cache lookups",
	}, []string{"op", "cache"})

	// LimitListenerMaxConns is the maximum number of connections allowed
	LimitListenerMaxConns = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dagmap_limit_listener_max_conns",
		Help: "The maximum number of incoming connections allowed",
	})

	// LimitListenerConcurrentConns is the number of connections currently open
	LimitListenerConcurrentConns = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dagmap_limit_listener_concurrent_conns",
		Help: "The number of concurrent incoming connections",
	})

	// LimitListenerWaitingConns is the number of connections waiting for a slot
	LimitListenerWaitingConns = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dagmap_limit_listener_waiting_conns",
		Help: "The number of incoming connections waiting to be accepted",
	})
)

// MustRegister collectors with the Prometheus client
func MustRegister() {
	prometheus.MustRegister(
		VFSOperations,
		ServedFileSize,
		RejectedPaths,
		GraphRequests,
		RateLimitSourceIPBlockedCount,
		RateLimitCachedEntries,
		RateLimitCacheRequests,
		LimitListenerMaxConns,
		LimitListenerConcurrentConns,
		LimitListenerWaitingConns,
	)
}
