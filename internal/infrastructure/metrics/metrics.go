// Package metrics provides Prometheus instrumentation for the API and
// the live sync layer.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestDuration tracks how long each HTTP request takes,
	// broken down by method, route path, and status code.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jaybesin",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts all HTTP requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jaybesin",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// SnapshotTotal counts collection snapshots delivered by the sync
	// layer, per collection.
	SnapshotTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jaybesin",
			Subsystem: "sync",
			Name:      "snapshots_total",
			Help:      "Total number of collection snapshots received.",
		},
		[]string{"collection"},
	)

	// LiveClients gauges currently connected live-feed clients.
	LiveClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "jaybesin",
			Subsystem: "sync",
			Name:      "live_clients",
			Help:      "Number of connected live feed clients.",
		},
	)
)

func init() {
	prometheus.MustRegister(RequestDuration, RequestTotal, SnapshotTotal, LiveClients)
}

// Middleware records duration and count for every request.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			labels := []string{c.Request().Method, c.Path(), strconv.Itoa(status)}
			RequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			RequestTotal.WithLabelValues(labels...).Inc()

			return err
		}
	}
}

// Handler serves the Prometheus scrape endpoint.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
