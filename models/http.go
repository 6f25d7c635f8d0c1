package models

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	// Error is the short status text (e.g. "Not Found").
	Error string `json:"error"`

	// Message is a human-readable description safe to show to clients.
	// It never contains stack traces or upstream response bodies.
	Message string `json:"message"`
}

// StatusResponse is the body of the liveness endpoints.
type StatusResponse struct {
	Status string `json:"status"`

	// Upstream is only set by the upstream health probe.
	Upstream string `json:"upstream,omitempty"`
}
