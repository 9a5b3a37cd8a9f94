package metrics

import (
	"net/http"
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPRecorder counts backend requests by route pattern
type HTTPRecorder struct {
	requests *prom.CounterVec
	duration *prom.HistogramVec
	inflight prom.Gauge
}

// NewHTTPRecorder constructs and registers the HTTP server metrics
func NewHTTPRecorder(reg *prom.Registry) *HTTPRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	hr := &HTTPRecorder{
		requests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code",
		}, []string{"route", "method", "code"}),
		duration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prom.DefBuckets,
		}, []string{"route", "method"}),
		inflight: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Requests currently being served",
		}),
	}
	reg.MustRegister(hr.requests, hr.duration, hr.inflight)
	return hr
}

// Observe records one finished request. route is the mux pattern, not the
// raw path, so ids do not blow up label cardinality.
func (h *HTTPRecorder) Observe(route, method string, code int, elapsed time.Duration) {
	if h == nil {
		return
	}
	h.requests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	h.duration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// Started and Finished track the in-flight gauge
func (h *HTTPRecorder) Started() {
	if h != nil {
		h.inflight.Inc()
	}
}

func (h *HTTPRecorder) Finished() {
	if h != nil {
		h.inflight.Dec()
	}
}

// Handler serves the registry in the Prometheus exposition format
func Handler(reg *prom.Registry) http.Handler {
	if reg == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
