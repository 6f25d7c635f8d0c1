// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the upstream users API.
//
// The primary abstraction is [UsersAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// built on resty ([NewHTTPUsersAdapter]).
//
// Failures are classified into the sentinel values defined in errors.go so
// that callers can use [errors.Is] for transport-agnostic error handling
// (e.g. [ErrGatewayTimeout] for a timed-out request, [ErrUpstreamStatus] for a
// non-2xx response). An upstream 404 is not an error: lookups report it as
// "not found" through their boolean result.
package adapter

import (
	"context"

	"github.com/MKhiriev/users-proxy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/users_adapter_mock.go -package=mock

// UsersAdapter defines read-only access to the upstream users API.
type UsersAdapter interface {
	// GetAllUsers fetches the whole user collection. An absent collection
	// yields an empty slice. Returns [ErrBadUpstreamShape] (wrapped) if the
	// payload is not a list of objects.
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// GetUserByID fetches a single user. The boolean result is false when
	// upstream does not know the id. Non-positive ids are reported as not
	// found without contacting upstream. Returns [ErrBadUpstreamShape]
	// (wrapped) if the payload is not an object.
	GetUserByID(ctx context.Context, id int64) (models.User, bool, error)

	// GetUsersByIDs looks up every id concurrently and returns the users that
	// were found. Ids that are unknown upstream or whose lookup failed are
	// dropped. The order of the result is not guaranteed to match ids.
	GetUsersByIDs(ctx context.Context, ids []int64) ([]models.User, error)

	// HealthCheck reports whether upstream answers a lookup of a user that
	// is known to exist.
	HealthCheck(ctx context.Context) bool
}
