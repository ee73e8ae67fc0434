package wordpress

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/darktribe/wordpress-post/internal/logging"
	"github.com/darktribe/wordpress-post/pkg/interfaces"
)

// Config carries the remote endpoint and basic-auth credentials for one
// publish. The base URL keeps no trailing slash; credentials are read-only
// after construction.
type Config struct {
	BaseURL  string
	User     string
	Password string
}

// Client talks to a WordPress-compatible REST API. Every request carries the
// configured basic-auth header. The client deliberately sets no timeout; a
// publish is a single user action that either completes or is cancelled via
// the context.
type Client struct {
	http   *http.Client
	routes *urlkit.RouteManager
	auth   string
	logger interfaces.Logger
}

// Option customises client construction.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client, mainly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// WithLogger injects the request logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New validates the config and constructs a client. All three settings must
// be non-empty; the error names the first missing one.
func New(cfg Config, opts ...Option) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	switch {
	case baseURL == "":
		return nil, fmt.Errorf("wordpress: API base URL is required")
	case strings.TrimSpace(cfg.User) == "":
		return nil, fmt.Errorf("wordpress: auth user is required")
	case cfg.Password == "":
		return nil, fmt.Errorf("wordpress: auth password is required")
	}

	credentials := base64.StdEncoding.EncodeToString([]byte(cfg.User + ":" + cfg.Password))

	client := &Client{
		http:   &http.Client{},
		routes: newRouteManager(baseURL),
		auth:   "Basic " + credentials,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// buildURL renders a route with optional :id param and query values. Empty
// query values are skipped so unscoped calls stay clean.
func (c *Client) buildURL(route string, params map[string]any, query map[string]string) (string, error) {
	builder := c.routes.Group(routeGroup).Builder(route)
	for key, value := range params {
		builder.WithParam(key, value)
	}
	for key, value := range query {
		if value == "" {
			continue
		}
		builder.WithQuery(key, value)
	}
	url, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("wordpress: build %s url: %w", route, err)
	}
	return url, nil
}

func (c *Client) do(ctx context.Context, method, url string, contentType string, body io.Reader, extra http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("wordpress: new request: %w", err)
	}
	req.Header.Set("Authorization", c.auth)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for key, values := range extra {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	c.logger.Debug("wordpress.request", "method", method, "url", url)
	return c.http.Do(req)
}

// doJSON issues a request with an optional JSON body and decodes a 2xx JSON
// response into out. Non-2xx responses become *APIError with the body text.
func (c *Client) doJSON(ctx context.Context, method, url string, in any, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("wordpress: encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, method, url, contentType, body, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, url); err != nil {
		return err
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return decodeJSON(resp, out, url)
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	return c.doJSON(ctx, http.MethodGet, url, nil, out)
}

func decodeJSON(resp *http.Response, out any, url string) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("wordpress: decode response from %s: %w", url, err)
	}
	return nil
}

func checkStatus(resp *http.Response, url string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	payload, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	return &APIError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       strings.TrimSpace(string(payload)),
		URL:        url,
	}
}
