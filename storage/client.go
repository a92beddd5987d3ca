package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/vcodx/automizor/internal/config"
	"github.com/vcodx/automizor/internal/request"
)

const defaultContentType = "application/octet-stream"

// httpClient is the concrete implementation of the Client interface.
type httpClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     hclog.Logger
}

// Compile-time check that httpClient implements Client.
var _ Client = (*httpClient)(nil)

// New creates a storage client for the given API host and token.
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

// NewFromEnv creates a storage client configured from the
// AUTOMIZOR_API_HOST and AUTOMIZOR_API_TOKEN environment variables.
func NewFromEnv(opts ...Option) (Client, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	return New(cfg.APIHost, cfg.APIToken, opts...)
}

func assetPath(name string) string {
	return "/api/v1/storage/asset/" + url.PathEscape(name) + "/"
}

// List returns the names of all assets.
func (c *httpClient) List(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, "/api/v1/storage/asset/")
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Results []struct {
			Name string `json:"name"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &APIError{Detail: "decode asset list: " + err.Error()}
	}
	names := make([]string, 0, len(envelope.Results))
	for _, r := range envelope.Results {
		names = append(names, r.Name)
	}
	return names, nil
}

// Delete removes the named asset.
func (c *httpClient) Delete(ctx context.Context, name string) error {
	resp, err := c.do(ctx, http.MethodDelete, assetPath(name), nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return c.checkResponse(resp)
}

// GetBytes retrieves the named asset as raw bytes.
func (c *httpClient) GetBytes(ctx context.Context, name string) ([]byte, error) {
	return c.get(ctx, assetPath(name))
}

// GetText retrieves the named asset as a UTF-8 string.
func (c *httpClient) GetText(ctx context.Context, name string) (string, error) {
	data, err := c.GetBytes(ctx, name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetJSON retrieves the named asset and decodes it as JSON into v.
func (c *httpClient) GetJSON(ctx context.Context, name string, v any) error {
	data, err := c.GetBytes(ctx, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "decode asset %q", name)
	}
	return nil
}

// GetFile retrieves the named asset and writes it to path.
func (c *httpClient) GetFile(ctx context.Context, name, path string) (string, error) {
	data, err := c.GetBytes(ctx, name)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrapf(err, "write asset %q", name)
	}
	return path, nil
}

// SetBytes uploads raw bytes as the named asset.
func (c *httpClient) SetBytes(ctx context.Context, name string, data []byte, contentType string) error {
	if contentType == "" {
		contentType = defaultContentType
	}
	resp, err := c.do(ctx, http.MethodPut, assetPath(name), bytes.NewReader(data), contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return c.checkResponse(resp)
}

// SetText uploads text as the named asset.
func (c *httpClient) SetText(ctx context.Context, name, text string) error {
	return c.SetBytes(ctx, name, []byte(text), "text/plain")
}

// SetJSON marshals v and uploads it as the named asset.
func (c *httpClient) SetJSON(ctx context.Context, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode asset %q", name)
	}
	return c.SetBytes(ctx, name, data, "application/json")
}

// SetJSONIndent is SetJSON with indented output.
func (c *httpClient) SetJSONIndent(ctx context.Context, name string, v any, prefix, indent string) error {
	data, err := json.MarshalIndent(v, prefix, indent)
	if err != nil {
		return errors.Wrapf(err, "encode asset %q", name)
	}
	return c.SetBytes(ctx, name, data, "application/json")
}

// SetFile uploads the file at path as the named asset, inferring the
// content type from the path extension when none is given.
func (c *httpClient) SetFile(ctx context.Context, name, path, contentType string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read file for asset %q", name)
	}
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(path))
		if contentType == "" {
			contentType = defaultContentType
		}
	}
	return c.SetBytes(ctx, name, data, contentType)
}

// get fetches a path and returns the response body on 2xx.
func (c *httpClient) get(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := c.checkResponse(resp); err != nil {
		return nil, err
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Detail: "read response body: " + err.Error()}
	}
	return body, nil
}

// do executes a single HTTP request with the common headers. Transport
// failures are returned as *APIError.
func (c *httpClient) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header = request.Headers(c.token)
	req.Header.Set("X-Request-Id", request.NewID())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Detail: err.Error()}
	}
	c.logger.Debug("storage request", "method", method, "path", path, "status", resp.StatusCode)
	return resp, nil
}

// checkResponse maps a non-2xx response to an *APIError. The body is
// consumed for its error detail; callers read the body only after a
// successful check.
func (c *httpClient) checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	return &APIError{
		StatusCode: resp.StatusCode,
		Detail:     request.ErrorDetail(resp.StatusCode, body),
	}
}
