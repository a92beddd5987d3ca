package vault

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/vcodx/automizor/internal/config"
	"github.com/vcodx/automizor/internal/request"
)

// httpClient is the concrete implementation of the Client interface.
type httpClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     hclog.Logger
}

// Compile-time check that httpClient implements Client.
var _ Client = (*httpClient)(nil)

// New creates a vault client for the given API host and token.
//
// host is the Automizor API host (e.g., "api.automizor.io"); a bare
// host is assumed to be https.
func New(host, token string, opts ...Option) (Client, error) {
	cfg := &options{}
	for _, opt := range opts {
		opt(cfg)
	}

	c := &httpClient{
		baseURL: request.BaseURL(host),
		token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: hclog.NewNullLogger(),
	}

	if cfg.httpClient != nil {
		c.httpClient = cfg.httpClient
	} else if cfg.timeout > 0 {
		c.httpClient.Timeout = cfg.timeout
	}
	if cfg.logger != nil {
		c.logger = cfg.logger
	}

	return c, nil
}

// NewFromEnv creates a vault client configured from the
// AUTOMIZOR_API_HOST and AUTOMIZOR_API_TOKEN environment variables.
func NewFromEnv(opts ...Option) (Client, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	return New(cfg.APIHost, cfg.APIToken, opts...)
}

func secretPath(name string) string {
	return "/api/v1/vault/secret/" + url.PathEscape(name) + "/"
}

// Get retrieves a secret by name.
func (c *httpClient) Get(ctx context.Context, name string) (*Secret, error) {
	return c.doSecret(ctx, http.MethodGet, secretPath(name), name, nil)
}

// Set updates an existing secret.
func (c *httpClient) Set(ctx context.Context, secret *Secret) (*Secret, error) {
	return c.doSecret(ctx, http.MethodPut, secretPath(secret.Name), secret.Name, secret)
}

// Create stores a secret, updating it when the name already exists. The
// update is attempted first; only a not-found outcome routes to the
// create endpoint.
func (c *httpClient) Create(ctx context.Context, secret *Secret) (*Secret, error) {
	updated, err := c.Set(ctx, secret)
	if err == nil {
		return updated, nil
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		return nil, err
	}
	return c.doSecret(ctx, http.MethodPost, "/api/v1/vault/secret/", "", secret)
}

// doSecret executes a single request against a secret endpoint and
// decodes the response into a Secret. A 404 maps to *NotFoundError when
// notFoundName is set (name-addressed lookups and updates); every other
// failure maps to *APIError.
func (c *httpClient) doSecret(ctx context.Context, method, path, notFoundName string, body *Secret) (*Secret, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &APIError{Detail: "encode secret: " + err.Error()}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header = request.Headers(c.token)
	req.Header.Set("X-Request-Id", request.NewID())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Detail: err.Error()}
	}
	defer resp.Body.Close()
	c.logger.Debug("vault request", "method", method, "path", path, "status", resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Detail: "read response body: " + err.Error()}
	}

	if resp.StatusCode == http.StatusNotFound && notFoundName != "" {
		return nil, &NotFoundError{Name: notFoundName}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Detail:     request.ErrorDetail(resp.StatusCode, data),
		}
	}

	var secret Secret
	if err := json.Unmarshal(data, &secret); err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Detail: "decode secret: " + err.Error()}
	}
	return &secret, nil
}
