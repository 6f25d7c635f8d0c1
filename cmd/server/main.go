package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/users-proxy/internal/adapter"
	"github.com/MKhiriev/users-proxy/internal/config"
	"github.com/MKhiriev/users-proxy/internal/handler"
	"github.com/MKhiriev/users-proxy/internal/logger"
	"github.com/MKhiriev/users-proxy/internal/metrics"
	"github.com/MKhiriev/users-proxy/internal/server"
	"github.com/MKhiriev/users-proxy/internal/service"
	"github.com/MKhiriev/users-proxy/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("users-proxy-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	usersAdapter, err := adapter.NewHTTPUsersAdapter(cfg.Adapter, collector, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating upstream adapter")
	}

	services, err := service.NewServices(usersAdapter, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, collector, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().
		Str("address", cfg.Server.HTTPAddress).
		Str("upstream", cfg.Adapter.BaseURL).
		Msg("starting users proxy")
	srv.RunServer()
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())
}
