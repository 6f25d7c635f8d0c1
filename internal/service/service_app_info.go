package service

import (
	"context"

	"github.com/MKhiriev/users-proxy/internal/adapter"
	"github.com/MKhiriev/users-proxy/internal/config"
	"github.com/MKhiriev/users-proxy/internal/logger"
	"github.com/MKhiriev/users-proxy/models"
)

const (
	docsPath   = "/docs"
	healthPath = "/health"
)

type appInfoService struct {
	appName    string
	appVersion string
	buildInfo  models.AppBuildInfo

	upstream adapter.UsersAdapter

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, upstream adapter.UsersAdapter, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	appName := cfg.Name
	if appName == "" {
		appName = config.DefaultAppName
	}

	return &appInfoService{
		appName:    appName,
		appVersion: cfg.Version,
		buildInfo:  buildInfo,
		upstream:   upstream,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return models.AppInfo{
		Message: s.appName,
		Version: s.appVersion,
		Docs:    docsPath,
		Health:  healthPath,
		Build:   models.NewBuildInfo(s.buildInfo),
	}
}

func (s *appInfoService) IsUpstreamHealthy(ctx context.Context) bool {
	healthy := s.upstream.HealthCheck(ctx)
	if !healthy {
		s.logger.Warn().Msg("upstream is unhealthy")
	}
	return healthy
}
