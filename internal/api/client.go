// Package api is the HTTP client of the UGC analytics backend.
// It is the only package that talks to the network.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the backend address used when none is configured
const DefaultBaseURL = "http://localhost:8000/api"

// DefaultTimeout bounds a single request when the caller sets none
const DefaultTimeout = 15 * time.Second

// DefaultLegacyToken is the token the legacy /projects/all endpoint expects
const DefaultLegacyToken = "entropy"

// Options configures a Client
type Options struct {
	BaseURL     string
	Token       string
	LegacyToken string
	Timeout     time.Duration
	HTTPClient  *http.Client
	UserAgent   string
}

// Client talks to the backend REST API
type Client struct {
	base        *url.URL
	token       string
	legacyToken string
	timeout     time.Duration
	http        *http.Client
	userAgent   string
}

// New creates a Client. An empty BaseURL falls back to DefaultBaseURL.
func New(opts Options) (*Client, error) {
	raw := strings.TrimSpace(opts.BaseURL)
	if raw == "" {
		raw = DefaultBaseURL
	}

	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", raw)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: missing host", raw)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	legacy := opts.LegacyToken
	if legacy == "" {
		legacy = DefaultLegacyToken
	}

	ua := opts.UserAgent
	if ua == "" {
		ua = "ugcctl"
	}

	return &Client{
		base:        base,
		token:       opts.Token,
		legacyToken: legacy,
		timeout:     timeout,
		http:        httpClient,
		userAgent:   ua,
	}, nil
}

// BaseURL returns the configured API root
func (c *Client) BaseURL() string {
	return c.base.String()
}

// endpoint resolves a path below the API root
func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.base
	u.Path = c.base.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// rootEndpoint resolves a path at the server root, outside the API prefix
func (c *Client) rootEndpoint(path string) string {
	u := url.URL{Scheme: c.base.Scheme, Host: c.base.Host, Path: path}
	return u.String()
}

// send performs a request and returns the response when the status is 2xx.
// The caller owns the body. The returned cancel func releases the request
// timeout and must be called once the body is consumed.
func (c *Client) send(ctx context.Context, method, target string) (*http.Response, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		cancel()
		slog.Warn("api request failed", "method", method, "url", req.URL.Redacted(), "request_id", requestID, "error", err)
		return nil, nil, &TransportError{Method: method, Path: req.URL.Path, Err: err}
	}

	slog.Debug("api request",
		"method", method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer cancel()
		defer closeBody(resp.Body)
		return nil, nil, newStatusError(method, req.URL.Path, resp)
	}

	return resp, cancel, nil
}

// doJSON issues a request and decodes the JSON answer into out
func (c *Client) doJSON(ctx context.Context, method, target string, out any) error {
	resp, cancel, err := c.send(ctx, method, target)
	if err != nil {
		return err
	}
	defer cancel()
	defer closeBody(resp.Body)

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, resp.Request.URL.Path, err)
	}
	return nil
}

func closeBody(body io.ReadCloser) {
	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 64<<10))
	if err := body.Close(); err != nil {
		slog.Debug("failed to close response body", "error", err)
	}
}
