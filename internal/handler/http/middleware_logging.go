package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/users-proxy/internal/logger"
)

// withLogging writes one access-log line per request.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := newResponseWriter(w)

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		event := log.Info()
		if lw.Status() >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("uri", uri).
			Str("method", method).
			Str("remote_addr", r.RemoteAddr).
			Int("status", lw.Status()).
			Dur("duration", duration).
			Int("size", lw.size).
			Msg("request served")
	})
}
