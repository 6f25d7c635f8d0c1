// Package metrics collects and exposes Prometheus metrics for the proxy:
// inbound HTTP requests and outbound upstream calls.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "users_proxy"

// Upstream call outcomes used as the "outcome" label.
const (
	OutcomeOK            = "ok"
	OutcomeNotFound      = "not_found"
	OutcomeUpstreamError = "upstream_error"
	OutcomeBadShape      = "bad_shape"
	OutcomeTimeout       = "timeout"
	OutcomeUnavailable   = "unavailable"
	OutcomeInternal      = "internal"
)

// UpstreamRecorder records calls made to the upstream API.
type UpstreamRecorder interface {
	RecordUpstreamRequest(operation, outcome string, duration time.Duration)
}

// HTTPRecorder records requests served by the proxy.
type HTTPRecorder interface {
	RecordHTTPRequest(route, method string, statusCode int, duration time.Duration)
}

// Collector is the Prometheus implementation of [UpstreamRecorder] and
// [HTTPRecorder].
type Collector struct {
	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec
	httpRequests     *prometheus.CounterVec
	httpLatency      *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Upstream API requests by operation and outcome.",
		}, []string{"operation", "outcome"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream API request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served by route pattern, method and status code.",
		}, []string{"route", "method", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	reg.MustRegister(
		c.upstreamRequests,
		c.upstreamLatency,
		c.httpRequests,
		c.httpLatency,
	)

	return c
}

// RecordUpstreamRequest implements [UpstreamRecorder].
func (c *Collector) RecordUpstreamRequest(operation, outcome string, duration time.Duration) {
	c.upstreamRequests.WithLabelValues(operation, outcome).Inc()
	c.upstreamLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordHTTPRequest implements [HTTPRecorder]. route must be the route
// pattern (e.g. "/api/v1/users/{id}"), never the raw path.
func (c *Collector) RecordHTTPRequest(route, method string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(route, method, strconv.Itoa(statusCode)).Inc()
	c.httpLatency.WithLabelValues(route, method).Observe(duration.Seconds())
}

// Handler returns the HTTP handler serving the Prometheus scrape endpoint.
// Compression is left to the HTTP middleware.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{DisableCompression: true})
}

// Nop discards everything. Useful in tests.
type Nop struct{}

func (Nop) RecordUpstreamRequest(string, string, time.Duration) {}

func (Nop) RecordHTTPRequest(string, string, int, time.Duration) {}
