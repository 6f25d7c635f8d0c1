package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/users-proxy/internal/config"
	"github.com/MKhiriev/users-proxy/internal/logger"
	"github.com/MKhiriev/users-proxy/internal/metrics"
	"github.com/MKhiriev/users-proxy/internal/utils"
	"github.com/MKhiriev/users-proxy/models"
	"golang.org/x/sync/errgroup"
)

// Operation names used in logs and the upstream metrics.
const (
	opGetAllUsers = "get_all_users"
	opGetUserByID = "get_user_by_id"
	opHealthCheck = "health_check"
)

const usersPath = "/users"

type httpUsersAdapter struct {
	client *utils.HTTPClient

	healthCheckUserID int64

	recorder metrics.UpstreamRecorder
	logger   *logger.Logger
}

// NewHTTPUsersAdapter constructs an HTTP/REST implementation of [UsersAdapter].
// It normalises and validates the base URL from cfg.BaseURL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
// A nil recorder disables upstream metrics.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPUsersAdapter(cfg config.Adapter, recorder metrics.UpstreamRecorder, log *logger.Logger) (UsersAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	if recorder == nil {
		recorder = metrics.Nop{}
	}

	healthCheckUserID := cfg.HealthCheckUserID
	if healthCheckUserID <= 0 {
		healthCheckUserID = config.DefaultHealthCheckUserID
	}

	return &httpUsersAdapter{
		client:            client,
		healthCheckUserID: healthCheckUserID,
		recorder:          recorder,
		logger:            log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetAllUsers implements [UsersAdapter]. It issues GET /users and decodes the
// payload as a list of user objects. A 404 or a JSON null body yields an
// empty slice.
func (h *httpUsersAdapter) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	_, err := h.fetch(ctx, opGetAllUsers, usersPath, func(body []byte) (bool, error) {
		list, err := decodeUserList(body)
		if err != nil {
			return false, err
		}
		users = list
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// GetUserByID implements [UsersAdapter]. It issues GET /users/{id}. A 404, a
// JSON null body, an empty object or a non-positive id reports the user as
// not found. An object with only unknown keys is still a user.
func (h *httpUsersAdapter) GetUserByID(ctx context.Context, id int64) (models.User, bool, error) {
	return h.getUserByID(ctx, opGetUserByID, id)
}

func (h *httpUsersAdapter) getUserByID(ctx context.Context, op string, id int64) (models.User, bool, error) {
	if id <= 0 {
		return models.User{}, false, nil
	}

	var user models.User
	found, err := h.fetch(ctx, op, usersPath+"/"+strconv.FormatInt(id, 10), func(body []byte) (found bool, err error) {
		user, found, err = decodeUser(body)
		return found, err
	})
	if err != nil || !found {
		return models.User{}, false, err
	}

	return user, true, nil
}

// GetUsersByIDs implements [UsersAdapter]. Lookups run concurrently with no
// limit on parallelism. Unknown ids are skipped silently, failed lookups are
// logged at warn level and skipped. The result keeps the order of ids.
func (h *httpUsersAdapter) GetUsersByIDs(ctx context.Context, ids []int64) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}

	type lookup struct {
		user  models.User
		found bool
	}
	results := make([]lookup, len(ids))

	var g errgroup.Group
	for i, id := range ids {
		g.Go(func() error {
			user, found, err := h.GetUserByID(ctx, id)
			if err != nil {
				h.logger.Warn().Err(err).Int64("user_id", id).Msg("batch lookup failed, skipping user")
				return nil
			}
			results[i] = lookup{user: user, found: found}
			return nil
		})
	}
	_ = g.Wait()

	users := make([]models.User, 0, len(ids))
	for _, r := range results {
		if r.found {
			users = append(users, r.user)
		}
	}

	return users, nil
}

// HealthCheck implements [UsersAdapter]. Upstream is healthy when the
// configured health-check user can be fetched and decoded.
func (h *httpUsersAdapter) HealthCheck(ctx context.Context) bool {
	_, found, err := h.getUserByID(ctx, opHealthCheck, h.healthCheckUserID)
	if err != nil {
		h.logger.Warn().Err(err).Msg("upstream health check failed")
		return false
	}

	return found
}

// fetch performs a GET request and hands the body to decode. found is false
// when upstream answered 404 or the body is JSON null; decode is not called
// then. Otherwise decode reports whether the payload holds a record. The call
// is recorded in the upstream metrics once it completes.
func (h *httpUsersAdapter) fetch(ctx context.Context, op, path string, decode func([]byte) (bool, error)) (found bool, err error) {
	start := time.Now()
	defer func() {
		h.recorder.RecordUpstreamRequest(op, outcomeOf(found, err), time.Since(start))
	}()

	resp, err := h.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		err = mapTransportError(err)
		h.logger.Error().Err(err).Str("operation", op).Str("path", path).Msg("upstream request failed")
		return false, fmt.Errorf("%s request: %w", op, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		h.logger.Debug().Str("operation", op).Str("path", path).Msg("upstream reported not found")
		return false, nil
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Error().Err(err).Str("operation", op).Str("path", path).Msg("upstream returned an error status")
		return false, err
	}

	body := bytes.TrimSpace(resp.Body())
	if !json.Valid(body) {
		err = fmt.Errorf("%w: %s: body is not valid JSON", ErrBadUpstreamShape, op)
		h.logger.Error().Err(err).Str("operation", op).Str("path", path).Msg("upstream returned invalid JSON")
		return false, err
	}
	if bytes.Equal(body, []byte("null")) {
		return false, nil
	}

	if found, err = decode(body); err != nil {
		h.logger.Error().Err(err).Str("operation", op).Str("path", path).Msg("upstream payload has unexpected shape")
		return false, err
	}
	if !found {
		h.logger.Debug().Str("operation", op).Str("path", path).Msg("upstream returned an empty record")
		return false, nil
	}

	h.logger.Debug().Str("operation", op).Str("path", path).Dur("took", time.Since(start)).Msg("upstream request completed")

	return true, nil
}

func decodeUserList(body []byte) ([]models.User, error) {
	if body[0] != '[' {
		return nil, fmt.Errorf("%w: expected a list of users", ErrBadUpstreamShape)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadUpstreamShape, err)
	}

	users := make([]models.User, 0, len(raw))
	for i, item := range raw {
		user, _, err := decodeUser(item)
		if err != nil {
			return nil, fmt.Errorf("user at index %d: %w", i, err)
		}
		users = append(users, user)
	}

	return users, nil
}

// decodeUser decodes one user object. Leaf values are taken as they are;
// only the object levels (user, address, geo, company) are shape-checked.
// found is false for an object without any keys.
func decodeUser(body []byte) (user models.User, found bool, err error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return models.User{}, false, fmt.Errorf("%w: expected a user object", ErrBadUpstreamShape)
	}

	var fields map[string]json.RawMessage
	if err = json.Unmarshal(body, &fields); err != nil {
		return models.User{}, false, fmt.Errorf("%w: %w", ErrBadUpstreamShape, err)
	}
	if len(fields) == 0 {
		return models.User{}, false, nil
	}

	if err = json.Unmarshal(body, &user); err != nil {
		return models.User{}, false, fmt.Errorf("%w: %w", ErrBadUpstreamShape, err)
	}

	return user, true, nil
}
