package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultRetryCount  = 2
	defaultRetryWait   = 200 * time.Millisecond
	defaultUserAgent   = "court-fund-client"
	defaultContentType = "application/json"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("/api/version")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty-backed client that sends JSON, identifies
// itself with the client user agent and retries transport failures twice.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Content-Type", defaultContentType).
		SetHeader("Accept", defaultContentType).
		SetHeader("User-Agent", defaultUserAgent).
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(defaultRetryWait)

	return &HTTPClient{Client: client}
}
