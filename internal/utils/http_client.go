package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-ledger-keeper"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with its own resty.Client. Every request
// carries the project User-Agent and accepts JSON.
//
// Example usage:
//
//	client := utils.NewHTTPClient().SetBaseURL("http://localhost:8080")
//	resp, err := client.R().Get("/api/health")
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}

// SetBaseURL sets the base URL and returns the receiver for chaining.
func (c *HTTPClient) SetBaseURL(url string) *HTTPClient {
	c.Client.SetBaseURL(url)
	return c
}

// SetTimeout sets the per-request timeout. Non-positive values leave the
// client without a timeout.
func (c *HTTPClient) SetTimeout(timeout time.Duration) *HTTPClient {
	if timeout > 0 {
		c.Client.SetTimeout(timeout)
	}
	return c
}
