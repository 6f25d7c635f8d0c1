package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/users-proxy/internal/adapter"
	"github.com/MKhiriev/users-proxy/internal/app"
	"github.com/MKhiriev/users-proxy/internal/service"
)

type errorStatus struct {
	status  int
	message string
}

// errorStatusMap is checked in order; the first matching target wins.
var errorStatusMap = []struct {
	target error
	errorStatus
}{
	{service.ErrUserNotFound, errorStatus{http.StatusNotFound, app.MsgUserNotFound}},
	{ErrInvalidUserID, errorStatus{http.StatusUnprocessableEntity, ErrInvalidUserID.Error()}},
	{ErrInvalidUserIDs, errorStatus{http.StatusUnprocessableEntity, ErrInvalidUserIDs.Error()}},
	{adapter.ErrBadUpstreamShape, errorStatus{http.StatusBadGateway, app.MsgInvalidUpstreamResponse}},
	{adapter.ErrUpstreamStatus, errorStatus{http.StatusBadGateway, app.MsgUpstreamError}},
	{adapter.ErrGatewayTimeout, errorStatus{http.StatusGatewayTimeout, app.MsgUpstreamTimeout}},
	{adapter.ErrServiceUnavailable, errorStatus{http.StatusServiceUnavailable, app.MsgUpstreamUnavailable}},
}

var internalErrorStatus = errorStatus{http.StatusInternalServerError, app.MsgInternalServerError}

// statusFromError translates err into the response status and a short
// message safe to show to clients. With flatten set, every error mapped to
// a 5xx status becomes a plain 500.
func statusFromError(err error, flatten bool) (int, string) {
	for _, entry := range errorStatusMap {
		if !errors.Is(err, entry.target) {
			continue
		}

		if flatten && entry.status >= http.StatusInternalServerError {
			return internalErrorStatus.status, internalErrorStatus.message
		}

		message := entry.message
		var statusErr *adapter.UpstreamStatusError
		if errors.As(err, &statusErr) {
			message = fmt.Sprintf("%s: %d", message, statusErr.StatusCode)
		}
		return entry.status, message
	}

	return internalErrorStatus.status, internalErrorStatus.message
}
