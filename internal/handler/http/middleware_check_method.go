// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/users-proxy/internal/app"
)

// allowedMethods is the Allow header sent with 405 responses. Every endpoint
// of the proxy is read-only.
const allowedMethods = "GET, HEAD"

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It replaces chi's plain-text 405 with the JSON error body used by every
// other endpoint, and sets the Allow header.
func CheckHTTPMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allowedMethods)
		writeError(w, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed)
	}
}

// notFound answers requests for unknown paths.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, app.MsgNotFound)
}
