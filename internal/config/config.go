// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// users-proxy application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file, and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the service name,
	// version and log level.
	App App `envPrefix:"APP_"`

	// Server holds the inbound HTTP server settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings of the upstream API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name is the human-readable service name published at the root
	// endpoint.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running application
	// (e.g. "1.0.0"). Published at the root endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level to emit (e.g. "debug", "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ReadTimeout bounds reading an inbound request, headers included.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`

	// WriteTimeout bounds writing a response. It must exceed the upstream
	// request timeout, otherwise slow upstream calls are cut off.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// ShutdownTimeout is how long in-flight requests may run after a
	// shutdown signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// CORSAllowedOrigins is the list of origins allowed by the CORS
	// middleware. "*" allows any origin.
	// Env: SERVER_CORS_ALLOWED_ORIGINS (comma-separated)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// FlattenUpstreamErrors makes the user listing answer every server-side
	// failure with HTTP 500 instead of the precise 502/503/504 mapping.
	// Single-user routes always keep the precise mapping. A pointer so that
	// an explicit false overrides true from a lower-priority source.
	// Env: SERVER_FLATTEN_UPSTREAM_ERRORS
	FlattenUpstreamErrors *bool `env:"FLATTEN_UPSTREAM_ERRORS"`
}

// FlattenListingErrors reports whether listing failures are flattened to
// HTTP 500. An unset value means false.
func (s Server) FlattenListingErrors() bool {
	return s.FlattenUpstreamErrors != nil && *s.FlattenUpstreamErrors
}

// Adapter holds configuration of the upstream users API client.
type Adapter struct {
	// BaseURL is the root URL of the upstream API. The client appends
	// "/users" and "/users/{id}" to it.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration of a single upstream request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HealthCheckUserID is the id of a user known to exist upstream. The
	// upstream health probe looks it up.
	// Env: ADAPTER_HEALTH_CHECK_USER_ID
	HealthCheckUserID int64 `env:"HEALTH_CHECK_USER_ID"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. args are the command-line arguments without the program
// name (usually os.Args[1:]).
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
