package utils

import (
	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent identifies the proxy to upstream services.
const DefaultUserAgent = "users-proxy"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetContext(ctx).Get("/users/1")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance with a
// resty.Client configured for talking to a JSON API:
//
//   - the User-Agent header is set to [DefaultUserAgent];
//   - retries are disabled, so one call is exactly one upstream request;
//   - redirects are limited to 5 hops.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. The client is safe for
// concurrent use once configured.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", DefaultUserAgent).
		SetRetryCount(0).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5))

	return &HTTPClient{Client: client}
}
