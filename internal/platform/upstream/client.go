package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/phrazzld/photos-gateway/internal/domain"
	"github.com/phrazzld/photos-gateway/internal/redact"
)

// DefaultBaseURL is the public JSONPlaceholder API.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com/"

// DefaultTimeout bounds every upstream call.
const DefaultTimeout = 30 * time.Second

// Dispatcher runs best-effort work off the request path.
// task.Runner satisfies it.
type Dispatcher interface {
	Dispatch(taskType string, fn func(ctx context.Context) error) error
}

// Config holds the connection settings for the upstream data source.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its Timeout is left
// untouched.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithDispatcher makes Push hand mirrored writes to d instead of sending
// them inline.
func WithDispatcher(d Dispatcher) Option {
	return func(c *Client) {
		c.dispatcher = d
	}
}

// StatusError reports a non-success upstream response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s %s returned status %d", e.Method, e.Path, e.StatusCode)
}

// Unwrap allows errors.Is(err, domain.ErrUpstreamUnavailable).
func (e *StatusError) Unwrap() error {
	return domain.ErrUpstreamUnavailable
}

// Client issues JSON requests against the upstream base URL.
type Client struct {
	http       *http.Client
	baseURL    *url.URL
	dispatcher Dispatcher
	logger     *slog.Logger
}

// NewClient creates a Client for cfg. An empty BaseURL selects
// DefaultBaseURL and a non-positive Timeout selects DefaultTimeout.
func NewClient(cfg Config, logger *slog.Logger, opts ...Option) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	raw := cfg.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid upstream base URL: unsupported scheme %q", base.Scheme)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL: base,
		logger:  logger.With(slog.String("component", "upstream_client")),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Get fetches path and returns the raw response body.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrUpstreamUnavailable, path, err)
	}
	return body, nil
}

// Send issues method against path with payload JSON-encoded as the body
// (no body when payload is nil). The response body is discarded.
func (c *Client) Send(ctx context.Context, method, path string, payload any) error {
	resp, err := c.do(ctx, method, path, payload)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}

// Push is Send without a result: failures are logged and swallowed. With a
// dispatcher attached the request runs asynchronously under a context
// detached from the caller's cancellation.
func (c *Client) Push(ctx context.Context, method, path string, payload any) {
	send := func(ctx context.Context) error {
		if err := c.Send(ctx, method, path, payload); err != nil {
			c.logger.WarnContext(ctx, "could not mirror write to upstream, record kept in overlay",
				slog.String("method", method),
				slog.String("path", path),
				slog.String("error", redact.Error(err)))
			return err
		}
		c.logger.DebugContext(ctx, "mirrored write to upstream",
			slog.String("method", method),
			slog.String("path", path))
		return nil
	}

	if c.dispatcher != nil {
		detached := context.WithoutCancel(ctx)
		err := c.dispatcher.Dispatch("upstream_mirror", func(context.Context) error {
			return send(detached)
		})
		if err == nil {
			return
		}
		c.logger.WarnContext(ctx, "mirror dispatch rejected, sending inline",
			slog.String("error", err.Error()))
	}

	_ = send(ctx)
}

func (c *Client) do(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode upstream request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	target := c.resolve(path)
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrUpstreamUnavailable, method, path, err)
	}

	c.logger.DebugContext(ctx, "upstream response",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		return nil, &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
	}

	return resp, nil
}

func (c *Client) resolve(path string) string {
	return c.baseURL.ResolveReference(&url.URL{Path: strings.TrimPrefix(path, "/")}).String()
}
