package service

import (
	"fmt"

	"github.com/MKhiriev/users-proxy/internal/adapter"
	"github.com/MKhiriev/users-proxy/internal/config"
	"github.com/MKhiriev/users-proxy/internal/logger"
	"github.com/MKhiriev/users-proxy/models"
)

type Services struct {
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(users adapter.UsersAdapter, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, users, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		UserService:    NewUserService(users, logger),
		AppInfoService: appInfoService,
	}, nil
}
