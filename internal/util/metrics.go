package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ContentFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "content_fetches_total",
		Help: "Total number of content provider fetches",
	}, []string{"document", "status"})

	ContentFetchLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "content_fetch_latency_seconds",
		Help:    "Latency of content provider fetches",
		Buckets: prometheus.DefBuckets,
	})

	ContentCacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "content_cache_hits_total",
		Help: "Total number of content cache hits",
	}, []string{"kind"})

	ContentCacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "content_cache_misses_total",
		Help: "Total number of content cache misses",
	}, []string{"kind"})

	ContentInvalidationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "content_invalidations_total",
		Help: "Total number of content cache invalidations",
	})

	VariantResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "variant_resolutions_total",
		Help: "Total number of variant resolutions served",
	}, []string{"outcome"})

	CartHandoffsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_handoffs_total",
		Help: "Total number of cart handoff payloads built",
	}, []string{"state"})

	OrderWebhooksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_webhooks_total",
		Help: "Total number of checkout-widget order webhooks received",
	}, []string{"result"})

	OrderRecordsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_records_created_total",
		Help: "Total number of order records persisted",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
