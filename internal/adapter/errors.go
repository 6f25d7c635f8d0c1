package adapter

import (
	"errors"
	"fmt"
)

// Failure categories of an upstream call. Every error returned by this
// package wraps exactly one of them.
var (
	// ErrUpstreamStatus is returned when upstream answers with a non-2xx
	// status other than 404. The concrete error is an [*UpstreamStatusError].
	ErrUpstreamStatus = errors.New("upstream returned an error status")

	// ErrBadUpstreamShape is returned when the payload is not valid JSON or
	// does not have the expected structure.
	ErrBadUpstreamShape = errors.New("invalid response from upstream")

	// ErrGatewayTimeout is returned when upstream did not answer in time.
	ErrGatewayTimeout = errors.New("upstream request timed out")

	// ErrServiceUnavailable is returned when upstream cannot be reached
	// (DNS failure, connection refused or reset).
	ErrServiceUnavailable = errors.New("upstream is unavailable")

	// ErrInternal is returned for any other unexpected failure.
	ErrInternal = errors.New("internal upstream client error")
)

// UpstreamStatusError carries the status code of a failed upstream response.
type UpstreamStatusError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: %d", ErrUpstreamStatus, e.StatusCode)
	}
	return fmt.Sprintf("%s: %d: %s", ErrUpstreamStatus, e.StatusCode, e.Body)
}

func (e *UpstreamStatusError) Unwrap() error {
	return ErrUpstreamStatus
}
