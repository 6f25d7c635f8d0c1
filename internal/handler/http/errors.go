// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned while parsing request parameters. Both are
// answered with 422 Unprocessable Entity.
var (
	// ErrInvalidUserID is returned when the {id} path parameter is not an
	// integer.
	ErrInvalidUserID = errors.New("user id must be an integer")

	// ErrInvalidUserIDs is returned when the ids query parameter of the batch
	// endpoint is missing or holds a value that is not an integer.
	ErrInvalidUserIDs = errors.New("ids must be a comma-separated list of integers")
)
