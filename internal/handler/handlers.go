package handler

import (
	"github.com/MKhiriev/users-proxy/internal/config"
	"github.com/MKhiriev/users-proxy/internal/handler/http"
	"github.com/MKhiriev/users-proxy/internal/logger"
	"github.com/MKhiriev/users-proxy/internal/metrics"
	"github.com/MKhiriev/users-proxy/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, recorder metrics.HTTPRecorder, gatherer prometheus.Gatherer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, recorder, gatherer, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
