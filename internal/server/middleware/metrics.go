package middleware

import (
	"net/http"
	"time"

	"github.com/iudanet/gophotel/internal/metrics"
)

// MetricsMiddleware считает запросы по шаблону маршрута ServeMux.
// Должен оборачивать mux снаружи: шаблон известен только после маршрутизации.
func MetricsMiddleware(recorder *metrics.HTTPRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder.Started()
			defer recorder.Finished()

			start := time.Now()
			wrapped := wrapResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			recorder.Observe(routeOf(r), r.Method, wrapped.statusCode, time.Since(start))
		})
	}
}
