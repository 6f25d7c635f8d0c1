// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// users-proxy handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of a request. Keeping them in
// one place ensures consistent wording throughout the API.
package app

const (
	// MsgUserNotFound is returned when upstream has no user with the
	// requested id.
	MsgUserNotFound = "User not found"

	// MsgNotFound is returned for paths that match no route.
	MsgNotFound = "Not found"

	// MsgMethodNotAllowed is returned when a route exists but does not
	// accept the request method.
	MsgMethodNotAllowed = "Method not allowed"

	// MsgInvalidUpstreamResponse is returned when upstream answered with a
	// payload that is not valid JSON or has an unexpected structure.
	MsgInvalidUpstreamResponse = "Invalid response from upstream API"

	// MsgUpstreamError is returned when upstream answered with a non-2xx
	// status. The status code is appended.
	MsgUpstreamError = "Upstream API error"

	// MsgUpstreamTimeout is returned when upstream did not answer in time.
	MsgUpstreamTimeout = "Upstream API timed out"

	// MsgUpstreamUnavailable is returned when upstream cannot be reached.
	MsgUpstreamUnavailable = "Could not connect to upstream API"

	// MsgInternalServerError is returned when an unexpected failure occurs
	// that the client cannot resolve. It is also the "error" field of the
	// panic response.
	MsgInternalServerError = "Internal server error"

	// MsgSomethingWentWrong is the "message" field of the panic response.
	MsgSomethingWentWrong = "Something went wrong"
)
