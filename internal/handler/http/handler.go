package http

import (
	"net/http"

	"github.com/MKhiriev/users-proxy/internal/config"
	"github.com/MKhiriev/users-proxy/internal/logger"
	"github.com/MKhiriev/users-proxy/internal/metrics"
	"github.com/MKhiriev/users-proxy/internal/service"
	"github.com/MKhiriev/users-proxy/internal/utils"
	"github.com/MKhiriev/users-proxy/models"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	corsAllowedOrigins    []string
	flattenUpstreamErrors bool

	recorder metrics.HTTPRecorder
	gatherer prometheus.Gatherer

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. A nil recorder disables request
// metrics; a nil gatherer serves the default Prometheus registry.
func NewHandler(services *service.Services, cfg config.Server, recorder metrics.HTTPRecorder, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:              services,
		corsAllowedOrigins:    cfg.CORSAllowedOrigins,
		flattenUpstreamErrors: cfg.FlattenListingErrors(),
		recorder:              recorder,
		gatherer:              gatherer,
		logger:                logger,
	}
}

// handleError logs err with the request-scoped logger and writes the
// matching error response.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	h.respondError(w, r, err, false)
}

// handleListingError is handleError for the user listing. When flattening
// is configured, every server-side failure of the listing becomes a 500.
func (h *Handler) handleListingError(w http.ResponseWriter, r *http.Request, err error) {
	h.respondError(w, r, err, h.flattenUpstreamErrors)
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error, flatten bool) {
	status, message := statusFromError(err, flatten)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Str("uri", r.RequestURI).Msg("request failed")

	writeError(w, status, message)
}

func writeError(w http.ResponseWriter, status int, message string) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	}, status)
}
