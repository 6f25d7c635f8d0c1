package service

import (
	"context"

	"github.com/MKhiriev/users-proxy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// UserService projects upstream user records into the response shapes served
// by the proxy. Lookups of a single user return [ErrUserNotFound] (wrapped)
// when upstream does not know the id. Upstream failures are passed through
// wrapped, so callers can match the adapter sentinels with errors.Is.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.UserListItem, error)

	GetUserProfile(ctx context.Context, id int64) (models.UserProfile, error)
	GetUserContact(ctx context.Context, id int64) (models.UserContact, error)
	GetUserAddress(ctx context.Context, id int64) (models.UserAddress, error)

	// GetUserProfiles returns the full profile of every id that resolved.
	// Unknown ids are dropped.
	GetUserProfiles(ctx context.Context, ids []int64) ([]models.UserProfile, error)
}

// AppInfoService exposes service metadata and upstream liveness.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
	IsUpstreamHealthy(ctx context.Context) bool
}
