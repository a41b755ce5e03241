package metrics

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RecordsRoutePattern(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/api/v1/reminders/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/boom", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/reminders/:id", "204"))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/reminders/abc", nil))
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/reminders/:id", "204"))
	assert.Equal(t, before+1, after)

	before = testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/boom", "418"))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/boom", "418")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	RemindersSaved.Inc()

	e := echo.New()
	e.GET("/metrics", Handler())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "reminders_saved_total")
}

func TestObserveDBPool(t *testing.T) {
	ObserveDBPool(sql.DBStats{OpenConnections: 3, InUse: 2, Idle: 1})

	assert.Equal(t, float64(3), testutil.ToFloat64(dbPoolOpen))
	assert.Equal(t, float64(2), testutil.ToFloat64(dbPoolInUse))
	assert.Equal(t, float64(1), testutil.ToFloat64(dbPoolIdle))
}
