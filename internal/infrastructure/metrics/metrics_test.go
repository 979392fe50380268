package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveEntitlementOp(t *testing.T) {
	EntitlementOperationsTotal.Reset()

	ObserveEntitlementOp("grant", nil)
	ObserveEntitlementOp("grant", nil)
	ObserveEntitlementOp("grant", errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(EntitlementOperationsTotal.WithLabelValues("grant", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(EntitlementOperationsTotal.WithLabelValues("grant", ResultError)))
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	HTTPRequestsTotal.Reset()

	r := gin.New()
	r.Use(Middleware())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", Handler())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, 1.0, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/health", "2xx")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "backoffice_http_requests_total"))
}

func TestStatusBucket(t *testing.T) {
	assert.Equal(t, "2xx", statusBucket(204))
	assert.Equal(t, "4xx", statusBucket(404))
	assert.Equal(t, "5xx", statusBucket(503))
}
