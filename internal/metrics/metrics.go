// Package metrics Prometheus 指标，由 API 与 worker 共用
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foodgram_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RecipeEventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_recipe_events_published_total",
			Help: "Recipe events handed to Kafka, by type and result",
		},
		[]string{"type", "result"},
	)

	SearchFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "foodgram_search_fallbacks_total",
			Help: "Searches served by the database because the index was unavailable",
		},
	)

	IndexSyncEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_index_sync_events_total",
			Help: "Recipe events applied to the search index, by type and result",
		},
		[]string{"type", "result"},
	)
)

// RecordHTTPRequest route 使用路由模板，未匹配的请求记为 "unmatched"
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Result 将 error 转为结果标签
func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
