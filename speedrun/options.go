package speedrun

import (
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the speedrun.com REST API root
const DefaultBaseURL = "https://www.speedrun.com/api/v1/"

// Option configures a Client. Invalid values are ignored and the default is kept.
type Option func(*clientOptions)

type clientOptions struct {
	baseURL    string
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	transport  Transport
	metrics    *Metrics
}

func newClientOptions() *clientOptions {
	return &clientOptions{
		baseURL:   DefaultBaseURL,
		timeout:   30 * time.Second,
		userAgent: "srcapi/dev",
	}
}

// WithBaseURL sets the API root, e.g. a mirror or a test server
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the HTTP timeout of the default transport.
// It has no effect together with WithHTTPClient or WithTransport.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header of the default transport
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent = strings.TrimSpace(userAgent); userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithHTTPClient makes the default transport use a custom http.Client
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithTransport replaces the default transport entirely
func WithTransport(transport Transport) Option {
	return func(o *clientOptions) {
		if transport != nil {
			o.transport = transport
		}
	}
}

// WithMetrics records request counts and latencies
func WithMetrics(metrics *Metrics) Option {
	return func(o *clientOptions) {
		if metrics != nil {
			o.metrics = metrics
		}
	}
}
