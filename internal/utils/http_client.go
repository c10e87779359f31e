package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithTimeout(2 * time.Second))
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption customizes the client built by [NewHTTPClient].
type HTTPClientOption func(*resty.Client)

// WithTimeout bounds every request made by the client.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithoutRedirects makes the client return 3xx responses as they are.
func WithoutRedirects() HTTPClientOption {
	return func(c *resty.Client) {
		c.SetRedirectPolicy(resty.NoRedirectPolicy())
	}
}

// WithResponseBodyLimit makes reads of larger bodies fail with
// resty.ErrResponseBodyTooLarge.
func WithResponseBodyLimit(limit int) HTTPClientOption {
	return func(c *resty.Client) {
		if limit > 0 {
			c.SetResponseBodyLimit(limit)
		}
	}
}

// WithHeader sets a header sent with every request.
func WithHeader(name, value string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetHeader(name, value)
	}
}

// NewHTTPClient creates and returns a new HTTPClient instance. Retries are
// disabled: every request is sent exactly once.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	c := resty.New().SetRetryCount(0)
	for _, opt := range opts {
		opt(c)
	}
	return &HTTPClient{Client: c}
}
