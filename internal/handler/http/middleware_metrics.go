package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/users-proxy/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that did not match any route, so that
// arbitrary paths never become label values.
const unmatchedRoute = "unmatched"

func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := newResponseWriter(w)

		next.ServeHTTP(mw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		h.recorder.RecordHTTPRequest(route, r.Method, mw.Status(), time.Since(start))
	})
}

// metricsHandler serves the Prometheus scrape endpoint.
func (h *Handler) metricsHandler() http.Handler {
	return metrics.Handler(h.gatherer)
}
