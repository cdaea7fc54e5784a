package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code", "service"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "service"},
	)

	// Business metrics for the article store
	ArticleMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_mutations_total",
			Help: "Total number of article store mutations",
		},
		[]string{"operation", "status"},
	)

	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "articles_total",
			Help: "Number of articles currently in the store",
		},
	)

	TrendingPromotionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trending_promotions_total",
			Help: "Total number of trending article promotions",
		},
		[]string{"status"},
	)

	// Summary collaborator metrics
	SummaryRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summary_requests_total",
			Help: "Total number of summary generation requests",
		},
		[]string{"status"},
	)

	SummaryRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summary_request_duration_seconds",
			Help:    "Summary generation request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Persistence metrics
	KVOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kv_operations_total",
			Help: "Total number of key-value store operations",
		},
		[]string{"operation", "backend", "status"},
	)

	// NATS metrics
	NatsMessagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nats_messages_published_total",
			Help: "Total number of NATS messages published",
		},
		[]string{"subject", "status"},
	)

	// Application health metrics
	ApplicationInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "application_info",
			Help: "Application information",
		},
		[]string{"service", "version", "environment"},
	)
)

// Initialize metrics with default values
func Init(serviceName, version, environment string) {
	ApplicationInfo.WithLabelValues(serviceName, version, environment).Set(1)
}
