package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/users-proxy/internal/adapter"
	"github.com/MKhiriev/users-proxy/internal/config"
	"github.com/MKhiriev/users-proxy/internal/service"
	"github.com/MKhiriev/users-proxy/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func leanneContact() models.UserContact {
	return models.UserContact{
		Name:  raw("Leanne Graham"),
		Email: raw("Sincere@april.biz"),
		Phone: raw("1-770-736-8031 x56442"),
	}
}

// ─────────────────────────────────────────────
// GET /api/v1/users
// ─────────────────────────────────────────────

func TestListUsers(t *testing.T) {
	for _, target := range []string{"/api/v1/users", "/api/v1/users/"} {
		t.Run(target, func(t *testing.T) {
			env := newTestEnv(t, config.Server{})
			env.users.EXPECT().ListUsers(gomock.Any()).Return([]models.UserListItem{
				{ID: raw(1), Name: raw("Leanne Graham"), Email: raw("Sincere@april.biz")},
				{ID: raw(2), Name: raw("Ervin Howell")},
			}, nil)

			rr := env.do(http.MethodGet, target)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, `[
				{"id": 1, "name": "Leanne Graham", "email": "Sincere@april.biz"},
				{"id": 2, "name": "Ervin Howell", "email": null}
			]`, rr.Body.String())
		})
	}
}

func TestListUsers_EmptyIsArray(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.users.EXPECT().ListUsers(gomock.Any()).Return([]models.UserListItem{}, nil)

	rr := env.do(http.MethodGet, "/api/v1/users")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

// ─────────────────────────────────────────────
// GET /api/v1/users/{id}[/contact|/address]
// ─────────────────────────────────────────────

func TestGetUserContact_LeanneGraham(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.users.EXPECT().GetUserContact(gomock.Any(), int64(1)).Return(leanneContact(), nil)

	rr := env.do(http.MethodGet, "/api/v1/users/1/contact")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"name": "Leanne Graham", "email": "Sincere@april.biz", "phone": "1-770-736-8031 x56442"}`, rr.Body.String())
}

func TestGetUser_FullProfile(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	profile := models.NewUserProfile(models.User{ID: raw(3), Name: raw("Clementine Bauch")})
	env.users.EXPECT().GetUserProfile(gomock.Any(), int64(3)).Return(profile, nil)

	rr := env.do(http.MethodGet, "/api/v1/users/3/")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"id": 3, "name": "Clementine Bauch", "username": null, "email": null, "phone": null, "website": null,
		"address": {"street": null, "suite": null, "city": null, "zipcode": null, "geo": {"lat": null, "lng": null}},
		"company": {"name": null, "catchPhrase": null, "bs": null}
	}`, rr.Body.String())
}

func TestGetUserAddress(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	address := models.UserAddress{
		Street:  raw("Kulas Light"),
		City:    raw("Gwenborough"),
		Zipcode: raw("92998-3874"),
		Geo:     models.GeoPoint{Lat: raw("-37.3159"), Lng: raw("81.1496")},
	}
	env.users.EXPECT().GetUserAddress(gomock.Any(), int64(1)).Return(address, nil)

	rr := env.do(http.MethodGet, "/api/v1/users/1/address")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"street": "Kulas Light", "city": "Gwenborough", "zipcode": "92998-3874", "geo": {"lat": "-37.3159", "lng": "81.1496"}}`, rr.Body.String())
}

func TestGetUser_NotFound(t *testing.T) {
	notFound := fmt.Errorf("%w: id 999999", service.ErrUserNotFound)

	tests := []struct {
		target string
		expect func(env *testEnv)
	}{
		{"/api/v1/users/999999", func(env *testEnv) {
			env.users.EXPECT().GetUserProfile(gomock.Any(), int64(999999)).Return(models.UserProfile{}, notFound)
		}},
		{"/api/v1/users/999999/contact", func(env *testEnv) {
			env.users.EXPECT().GetUserContact(gomock.Any(), int64(999999)).Return(models.UserContact{}, notFound)
		}},
		{"/api/v1/users/999999/address", func(env *testEnv) {
			env.users.EXPECT().GetUserAddress(gomock.Any(), int64(999999)).Return(models.UserAddress{}, notFound)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			env := newTestEnv(t, config.Server{FlattenUpstreamErrors: boolPtr(true)})
			tt.expect(env)

			rr := env.do(http.MethodGet, tt.target)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, models.ErrorResponse{Error: "Not Found", Message: "User not found"}, decodeError(t, rr))
		})
	}
}

func TestGetUser_NegativeAndZeroIDsReachService(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.users.EXPECT().GetUserProfile(gomock.Any(), int64(-5)).Return(models.UserProfile{}, service.ErrUserNotFound)

	rr := env.do(http.MethodGet, "/api/v1/users/-5")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetUser_NonIntegerID(t *testing.T) {
	for _, target := range []string{"/api/v1/users/abc", "/api/v1/users/1.5/contact", "/api/v1/users/99999999999999999999/address"} {
		t.Run(target, func(t *testing.T) {
			env := newTestEnv(t, config.Server{})

			rr := env.do(http.MethodGet, target)

			assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
			body := decodeError(t, rr)
			assert.Equal(t, "Unprocessable Entity", body.Error)
			assert.Equal(t, ErrInvalidUserID.Error(), body.Message)
		})
	}
}

type upstreamFailure struct {
	name        string
	err         error
	wantPrecise int
}

func upstreamFailures() []upstreamFailure {
	return []upstreamFailure{
		{name: "timeout", err: adapter.ErrGatewayTimeout, wantPrecise: http.StatusGatewayTimeout},
		{name: "unreachable", err: adapter.ErrServiceUnavailable, wantPrecise: http.StatusServiceUnavailable},
		{name: "status", err: &adapter.UpstreamStatusError{StatusCode: 500}, wantPrecise: http.StatusBadGateway},
		{name: "bad shape", err: adapter.ErrBadUpstreamShape, wantPrecise: http.StatusBadGateway},
		{name: "internal", err: adapter.ErrInternal, wantPrecise: http.StatusInternalServerError},
	}
}

// Single-user routes keep the precise status whether or not listing errors
// are flattened.
func TestGetUser_UpstreamFailures(t *testing.T) {
	for _, tt := range upstreamFailures() {
		for _, flatten := range []bool{false, true} {
			t.Run(fmt.Sprintf("%s/flatten=%t", tt.name, flatten), func(t *testing.T) {
				env := newTestEnv(t, config.Server{FlattenUpstreamErrors: boolPtr(flatten)})
				wrapped := fmt.Errorf("error fetching user 1: %w", tt.err)
				env.users.EXPECT().GetUserContact(gomock.Any(), int64(1)).Return(models.UserContact{}, wrapped)
				env.users.EXPECT().GetUserProfile(gomock.Any(), int64(1)).Return(models.UserProfile{}, wrapped)
				env.users.EXPECT().GetUserAddress(gomock.Any(), int64(1)).Return(models.UserAddress{}, wrapped)

				for _, target := range []string{"/api/v1/users/1/contact", "/api/v1/users/1", "/api/v1/users/1/address"} {
					rr := env.do(http.MethodGet, target)

					assert.Equal(t, tt.wantPrecise, rr.Code, target)
					body := decodeError(t, rr)
					assert.Equal(t, http.StatusText(tt.wantPrecise), body.Error)
					assert.NotContains(t, body.Message, "error fetching user")
				}
			})
		}
	}
}

func TestListUsers_UpstreamFailures(t *testing.T) {
	for _, tt := range upstreamFailures() {
		for _, flatten := range []bool{false, true} {
			t.Run(fmt.Sprintf("%s/flatten=%t", tt.name, flatten), func(t *testing.T) {
				env := newTestEnv(t, config.Server{FlattenUpstreamErrors: boolPtr(flatten)})
				env.users.EXPECT().ListUsers(gomock.Any()).Return(nil, fmt.Errorf("error fetching users: %w", tt.err))

				rr := env.do(http.MethodGet, "/api/v1/users")

				want := tt.wantPrecise
				if flatten {
					want = http.StatusInternalServerError
				}
				assert.Equal(t, want, rr.Code)
				body := decodeError(t, rr)
				assert.Equal(t, http.StatusText(want), body.Error)
				if flatten {
					assert.Equal(t, "Internal server error", body.Message)
				}
			})
		}
	}
}

// Flattening applies to the listing only; the batch route keeps the
// precise status.
func TestGetUsersBatch_UpstreamFailureNotFlattened(t *testing.T) {
	env := newTestEnv(t, config.Server{FlattenUpstreamErrors: boolPtr(true)})
	env.users.EXPECT().GetUserProfiles(gomock.Any(), []int64{1}).Return(nil, adapter.ErrGatewayTimeout)

	rr := env.do(http.MethodGet, "/api/v1/users/batch?ids=1")

	assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
}

// ─────────────────────────────────────────────
// GET /api/v1/users/batch
// ─────────────────────────────────────────────

func TestGetUsersBatch(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	profiles := []models.UserProfile{
		models.NewUserProfile(models.User{ID: raw(1), Name: raw("Leanne Graham")}),
		models.NewUserProfile(models.User{ID: raw(3), Name: raw("Clementine Bauch")}),
	}
	env.users.EXPECT().GetUserProfiles(gomock.Any(), []int64{1, 42, 3}).Return(profiles, nil)

	rr := env.do(http.MethodGet, "/api/v1/users/batch?ids=1,42,3")

	require.Equal(t, http.StatusOK, rr.Code)
	var got []models.UserProfile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.JSONEq(t, `3`, string(got[1].ID))
}

func TestGetUsersBatch_RepeatedParameter(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.users.EXPECT().GetUserProfiles(gomock.Any(), []int64{1, 2, 3}).Return([]models.UserProfile{}, nil)

	rr := env.do(http.MethodGet, "/api/v1/users/batch?ids=1,+2&ids=3")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetUsersBatch_InvalidIDs(t *testing.T) {
	for _, target := range []string{
		"/api/v1/users/batch",
		"/api/v1/users/batch?ids=",
		"/api/v1/users/batch?ids=,,",
		"/api/v1/users/batch?ids=1,two,3",
	} {
		t.Run(target, func(t *testing.T) {
			env := newTestEnv(t, config.Server{})

			rr := env.do(http.MethodGet, target)

			assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
			assert.Equal(t, ErrInvalidUserIDs.Error(), decodeError(t, rr).Message)
		})
	}
}
