package vault

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Option configures the client.
type Option func(*options)

type options struct {
	timeout    time.Duration
	httpClient *http.Client
	logger     hclog.Logger
}

// WithTimeout sets the HTTP request timeout. Default: 10s.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithHTTPClient provides a fully custom *http.Client. When set,
// WithTimeout is ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets a logger for debug-level request logging. Default is
// a no-op logger.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
