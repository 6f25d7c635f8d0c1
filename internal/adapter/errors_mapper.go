package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/users-proxy/internal/metrics"
	"github.com/go-resty/resty/v2"
)

// maxErrorBodyLen bounds how much of an upstream error body is kept in the
// error message.
const maxErrorBodyLen = 256

// mapHTTPError classifies a completed upstream response. It returns nil for
// 2xx responses. 404 is handled by the caller before this is reached.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBodyLen {
		body = body[:maxErrorBodyLen]
	}

	return &UpstreamStatusError{StatusCode: resp.StatusCode(), Body: body}
}

// mapTransportError classifies an error returned before any response was
// received.
func mapTransportError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrGatewayTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", ErrGatewayTimeout, err)
	}

	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	var urlErr *url.Error
	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) || errors.As(err, &opErr) || errors.As(err, &urlErr) {
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return fmt.Errorf("%w: %w", ErrInternal, err)
}

// outcomeOf converts the result of an upstream call into a metrics label.
func outcomeOf(found bool, err error) string {
	switch {
	case err == nil && found:
		return metrics.OutcomeOK
	case err == nil:
		return metrics.OutcomeNotFound
	case errors.Is(err, ErrUpstreamStatus):
		return metrics.OutcomeUpstreamError
	case errors.Is(err, ErrBadUpstreamShape):
		return metrics.OutcomeBadShape
	case errors.Is(err, ErrGatewayTimeout):
		return metrics.OutcomeTimeout
	case errors.Is(err, ErrServiceUnavailable):
		return metrics.OutcomeUnavailable
	default:
		return metrics.OutcomeInternal
	}
}
