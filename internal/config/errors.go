// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Sentinel errors returned by validation. They are wrapped with details
// about the offending field; match them with [errors.Is].
var (
	// ErrInvalidAppConfigs is returned when the App section is unusable,
	// e.g. the log level cannot be parsed.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidServerConfigs is returned when the Server section is
	// unusable, e.g. a timeout is not positive.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidAdapterConfigs is returned when the upstream client cannot be
	// configured, e.g. the base URL lacks a scheme or host.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
