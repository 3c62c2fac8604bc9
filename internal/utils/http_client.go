package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client used by the
// gateway API adapter. It embeds *resty.Client to expose all of its methods.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client that sends and expects JSON by default.
//
// Each call returns an independent client with its own configuration,
// connection pool and state.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
