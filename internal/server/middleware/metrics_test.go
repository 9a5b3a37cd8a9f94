package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophotel/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	reg := prom.NewRegistry()
	recorder := metrics.NewHTTPRecorder(reg)

	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/v1/rooms/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := MetricsMiddleware(recorder)(mux)

	for _, id := range []string{"r-101", "r-102", "r-103"} {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/rooms/"+id, nil))
		require.Equal(t, http.StatusNoContent, w.Code)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	// ID номера не попадает в метки
	expected := `
# HELP gophotel_http_requests_total HTTP requests by route, method and status code
# TYPE gophotel_http_requests_total counter
gophotel_http_requests_total{code="204",method="DELETE",route="DELETE /api/v1/rooms/{id}"} 3
gophotel_http_requests_total{code="404",method="GET",route="unmatched"} 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "gophotel_http_requests_total")
	assert.NoError(t, err)

	inflight, err := testutil.GatherAndCount(reg, "gophotel_http_requests_in_flight")
	require.NoError(t, err)
	assert.Equal(t, 1, inflight)
}
