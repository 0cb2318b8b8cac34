package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// routeUnmatched labels requests that matched no route, keeping the path
// label bounded to the registered route patterns.
const routeUnmatched = "unmatched"

var (
	httpReqs = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route pattern and status.",
	}, []string{"method", "path", "status"})

	httpLat = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by method and route pattern.",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path"})

	httpInflight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_requests_inflight",
		Help: "HTTP requests currently being served.",
	})

	httpRespSize = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_response_size_bytes",
		Help:    "HTTP response body size by method and route pattern.",
		Buckets: prometheus.ExponentialBuckets(128, 4, 8), // 128B .. 2MiB
	}, []string{"method", "path"})

	storeFaults = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "newsapi_store_faults_total",
		Help: "Store errors that were not mapped to a domain error, by kind.",
	}, []string{"kind"})

	idempotentReplays = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "newsapi_idempotent_replays_total",
		Help: "Keyed POSTs answered from an earlier create, by route pattern.",
	}, []string{"path"})
)

func init() {
	prometheus.MustRegister(httpReqs, httpLat, httpInflight, httpRespSize, storeFaults, idempotentReplays)
}

// ObserveStoreFault counts a store error of the given classified kind.
func ObserveStoreFault(kind string) {
	storeFaults.WithLabelValues(kind).Inc()
}

// Metrics records request count, latency, in-flight gauge and response size,
// labeled by route pattern rather than raw URL.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpInflight.Inc()
		defer httpInflight.Dec()

		c.Next()

		method, path := c.Request.Method, routeLabel(c)
		httpReqs.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpLat.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		if size := c.Writer.Size(); size >= 0 {
			httpRespSize.WithLabelValues(method, path).Observe(float64(size))
		}
	}
}

func routeLabel(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return routeUnmatched
}
