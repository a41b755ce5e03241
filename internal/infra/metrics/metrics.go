// Package metrics holds the Prometheus collectors shared by both binaries.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Geofence registration outcomes.
const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "path"})

	RemindersSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reminders_saved_total",
		Help: "Reminders persisted after a successful geofence registration",
	})

	GeofenceRegistrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "geofence_registrations_total",
		Help: "Geofence registration attempts by outcome",
	}, []string{"result"})

	GeofenceTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "geofence_transitions_total",
		Help: "Geofence transitions detected or handled",
	}, []string{"transition"})

	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_sent_total",
		Help: "Push notifications by delivery status",
	}, []string{"status"})

	ActiveWebSockets = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "websocket_sessions_active",
		Help: "Current number of open WebSocket sessions",
	})

	dbPoolOpen = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_pool_conns_open",
		Help: "Connections open in the database pool",
	})

	dbPoolInUse = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_pool_conns_in_use",
		Help: "Connections currently in use",
	})

	dbPoolIdle = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_pool_conns_idle",
		Help: "Idle connections in the database pool",
	})
)

// Middleware records request count and latency per route pattern.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else if status < http.StatusBadRequest {
					status = http.StatusInternalServerError
				}
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			method := c.Request().Method

			httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Handler serves the Prometheus exposition format.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}

// ObserveDBPool copies database/sql pool stats into gauges.
func ObserveDBPool(stats sql.DBStats) {
	dbPoolOpen.Set(float64(stats.OpenConnections))
	dbPoolInUse.Set(float64(stats.InUse))
	dbPoolIdle.Set(float64(stats.Idle))
}
