package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"newsdesk/internal/observability/metrics"
)

func TestMetricsMiddleware_PathNormalization(t *testing.T) {
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/articles/:key", "200")
	before := testutil.ToFloat64(counter)

	for _, slug := range []string{"harga-bbm-naik", "pemilu-2024", "timnas-menang"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/articles/"+slug, nil))
	}

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
}

func TestMetricsMiddleware_RecordsStatus(t *testing.T) {
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodDelete, "/api/admin/comments/:id", "404")
	before := testutil.ToFloat64(counter)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/admin/comments/x", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestMetricsMiddleware_InFlight(t *testing.T) {
	var during float64
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		during = testutil.ToFloat64(httpRequestsInFlight)
	}))

	before := testutil.ToFloat64(httpRequestsInFlight)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/rss", nil))

	assert.Equal(t, before+1, during)
	assert.Equal(t, before, testutil.ToFloat64(httpRequestsInFlight))
}

func TestMetricsHandler(t *testing.T) {
	metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/health", "200").Inc()

	rr := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "http_requests_total"))
}
