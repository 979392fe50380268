// Package metrics provides Prometheus instrumentation for the back office.
package metrics

import (
	"context"
	"database/sql"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "backoffice"

// Operation results.
const (
	ResultOK    = "ok"
	ResultError = "error"
	ResultNoop  = "noop"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, path pattern, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// EntitlementOperationsTotal counts grant, revoke and regenerate calls.
	EntitlementOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entitlement_operations_total",
			Help:      "Entitlement mutations by operation and result.",
		},
		[]string{"op", "result"},
	)

	EntitlementVerificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entitlement_verifications_total",
			Help:      "Entitlement verifications by outcome.",
		},
		[]string{"result"},
	)

	UsageRecordsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "usage_records_total",
			Help:      "Usage tracker invocations by result.",
		},
		[]string{"result"},
	)

	QuotationTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotation_transitions_total",
			Help:      "Successful quotation transitions by target status.",
		},
		[]string{"to"},
	)

	DBOpenConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "db_open_connections",
		Help: "Number of open database connections.",
	})
	DBInUseConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "db_in_use_connections",
		Help: "Number of in-use database connections.",
	})
	GoroutineCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "goroutines",
		Help: "Current number of goroutines.",
	})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		EntitlementOperationsTotal,
		EntitlementVerificationsTotal,
		UsageRecordsTotal,
		QuotationTransitionsTotal,
		DBOpenConnections,
		DBInUseConnections,
		GoroutineCount,
	)
}

func ObserveEntitlementOp(op string, err error) {
	EntitlementOperationsTotal.WithLabelValues(op, resultOf(err)).Inc()
}

func ObserveVerification(status string) {
	EntitlementVerificationsTotal.WithLabelValues(status).Inc()
}

func ObserveUsage(result string) {
	UsageRecordsTotal.WithLabelValues(result).Inc()
}

func ObserveQuotationTransition(to string) {
	QuotationTransitionsTotal.WithLabelValues(to).Inc()
}

func resultOf(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}

// StartDBStatsCollector samples pool stats until ctx is done.
func StartDBStatsCollector(ctx context.Context, db *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := db.Stats()
			DBOpenConnections.Set(float64(stats.OpenConnections))
			DBInUseConnections.Set(float64(stats.InUse))
			GoroutineCount.Set(float64(runtime.NumGoroutine()))
		}
	}
}

// Middleware records request count and latency per route pattern.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		timer := prometheus.NewTimer(HTTPRequestDuration.WithLabelValues(c.Request.Method, path))

		c.Next()

		timer.ObserveDuration()
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, statusBucket(c.Writer.Status())).Inc()
	}
}

func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

func statusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
