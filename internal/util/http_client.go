package util

import (
	"context"
)

// HTTPClient abstracts the single request/response cycle behind every shaping call.
type HTTPClient interface {
	Execute(ctx context.Context, config HTTPConfig) (*RawResponse, error)
}

// HTTPConfig represents the configuration for HTTP requests.
type HTTPConfig struct {
	URL     string
	Method  string
	Headers map[string]string
	Query   map[string]string
	// Body is sent verbatim when it is a string or []byte, JSON-encoded otherwise.
	Body       interface{}
	AuthType   string
	AuthConfig map[string]string
	// Insecure skips TLS certificate verification.
	Insecure bool
}

// RawResponse is what came back over the wire, before any JSON is looked at.
type RawResponse struct {
	StatusCode int
	// StatusLine is the protocol plus status, e.g. "HTTP/1.1 200 OK".
	StatusLine string
	Body       []byte
	RequestID  string
}
