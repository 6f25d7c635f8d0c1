package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/users-proxy/internal/config"
	"github.com/MKhiriev/users-proxy/internal/handler"
	"github.com/MKhiriev/users-proxy/internal/logger"
	"github.com/MKhiriev/users-proxy/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:        "127.0.0.1:0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		ShutdownTimeout:    time.Second,
		CORSAllowedOrigins: []string{"*"},
	}
}

func newTestServer(t *testing.T) *server {
	t.Helper()
	cfg := testServerConfig()

	handlers, err := handler.NewHandlers(&service.Services{}, cfg, nil, nil, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return s.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, testServerConfig(), logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NoAddress(t *testing.T) {
	handlers, err := handler.NewHandlers(&service.Services{}, testServerConfig(), nil, nil, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, config.Server{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_ServesUntilContextDone(t *testing.T) {
	s := newTestServer(t)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.serve(ctx, listener)
	}()

	client := &http.Client{Timeout: time.Second}
	resp, err := client.Get("http://" + listener.Addr().String() + "/health")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	client.CloseIdleConnections()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status": "ok"}`, string(body))

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunFailsOnBusyAddress(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	s := newTestServer(t)
	s.address = busy.Addr().String()

	err = s.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
}
