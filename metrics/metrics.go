package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iconhive_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "iconhive_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "iconhive_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iconhive_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// UpstreamRequestDuration measures calls to the spreadsheet, the store lookup and icon hosts
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "iconhive_upstream_request_duration_seconds",
			Help:    "Upstream request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source", "status"},
	)

	// PipelineRuns counts gallery pipeline runs by outcome
	PipelineRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iconhive_pipeline_runs_total",
			Help: "Total number of gallery pipeline runs",
		},
		[]string{"outcome"},
	)

	// PipelineDuration measures full pipeline runs
	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "iconhive_pipeline_duration_seconds",
			Help:    "Gallery pipeline duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
	)

	// ColorFallbacks counts icons that got the fallback gray
	ColorFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "iconhive_color_fallbacks_total",
			Help: "Total number of icons whose dominant color could not be extracted",
		},
	)

	// StaleRunsDropped counts pipeline results discarded because a newer run replaced them
	StaleRunsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "iconhive_stale_runs_dropped_total",
			Help: "Total number of superseded pipeline results dropped",
		},
	)

	// Exports counts image exports by kind (single, combined) and delivery mode
	Exports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iconhive_exports_total",
			Help: "Total number of image exports",
		},
		[]string{"kind", "mode"},
	)

	// SessionsActive tracks in-memory sessions
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "iconhive_sessions_active",
			Help: "Number of in-memory gallery sessions",
		},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "iconhive_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "iconhive_goroutine_count",
			Help: "Number of goroutines",
		},
	)

	// SystemCPUUsage tracks CPU usage percentage
	SystemCPUUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "iconhive_system_cpu_usage_percent",
			Help: "CPU usage percentage by core",
		},
		[]string{"core"},
	)

	// SystemLoadAverage tracks system load averages
	SystemLoadAverage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "iconhive_system_load_average",
			Help: "System load average",
		},
		[]string{"period"}, // "1min", "5min", "15min"
	)

	// WebsocketClients tracks clients listening to pipeline run events
	WebsocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "iconhive_websocket_clients",
			Help: "Number of connected pipeline event clients",
		},
	)
)
