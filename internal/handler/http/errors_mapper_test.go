package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/users-proxy/internal/adapter"
	"github.com/MKhiriev/users-proxy/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantFlattened int
		wantMessage   string
	}{
		{name: "not found", err: service.ErrUserNotFound, wantStatus: http.StatusNotFound, wantFlattened: http.StatusNotFound, wantMessage: "User not found"},
		{name: "invalid id", err: ErrInvalidUserID, wantStatus: http.StatusUnprocessableEntity, wantFlattened: http.StatusUnprocessableEntity, wantMessage: ErrInvalidUserID.Error()},
		{name: "invalid ids", err: ErrInvalidUserIDs, wantStatus: http.StatusUnprocessableEntity, wantFlattened: http.StatusUnprocessableEntity, wantMessage: ErrInvalidUserIDs.Error()},
		{name: "bad shape", err: adapter.ErrBadUpstreamShape, wantStatus: http.StatusBadGateway, wantFlattened: http.StatusInternalServerError, wantMessage: "Invalid response from upstream API"},
		{name: "upstream status", err: &adapter.UpstreamStatusError{StatusCode: 503}, wantStatus: http.StatusBadGateway, wantFlattened: http.StatusInternalServerError, wantMessage: "Upstream API error: 503"},
		{name: "timeout", err: adapter.ErrGatewayTimeout, wantStatus: http.StatusGatewayTimeout, wantFlattened: http.StatusInternalServerError, wantMessage: "Upstream API timed out"},
		{name: "unavailable", err: adapter.ErrServiceUnavailable, wantStatus: http.StatusServiceUnavailable, wantFlattened: http.StatusInternalServerError, wantMessage: "Could not connect to upstream API"},
		{name: "internal", err: adapter.ErrInternal, wantStatus: http.StatusInternalServerError, wantFlattened: http.StatusInternalServerError, wantMessage: "Internal server error"},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantFlattened: http.StatusInternalServerError, wantMessage: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("handler: %w", tt.err)

			status, message := statusFromError(wrapped, false)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)

			flattened, _ := statusFromError(wrapped, true)
			assert.Equal(t, tt.wantFlattened, flattened)
		})
	}
}
