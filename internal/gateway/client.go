// Package gateway talks to the WordPress-compatible REST API that publishes
// the exhibitor directory.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultTimeout is the default timeout for HTTP requests
	DefaultTimeout = 15 * time.Second

	// MaxResponseSize is the maximum allowed response size (16MB)
	MaxResponseSize = 16 * 1024 * 1024

	// UserAgent is the default user agent string for HTTP requests
	UserAgent = "expodir/1.0"

	// HeaderTotal carries the total number of matching records
	HeaderTotal = "X-WP-Total"
	// HeaderTotalPages carries the total number of pages
	HeaderTotalPages = "X-WP-TotalPages"

	apiVersion = "v2"
)

// Options configures a Client
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
}

// Response is a raw listing response with its pagination totals
type Response struct {
	Body       []byte
	Total      int
	TotalPages int
}

// Client issues GET requests against {BaseURL}/v2/{resource}
type Client struct {
	baseURL   *url.URL
	client    *http.Client
	userAgent string
}

// NewClient creates a client for the given base URL. If Timeout is 0,
// DefaultTimeout is used.
func NewClient(opts Options) (*Client, error) {
	raw := strings.TrimSpace(opts.BaseURL)
	if raw == "" {
		return nil, errors.New("base URL is required")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL must be absolute: %q", raw)
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = UserAgent
	}

	return &Client{
		baseURL:   base,
		client:    httpClient,
		userAgent: ua,
	}, nil
}

// Endpoint returns the URL for resource with params applied
func (c *Client) Endpoint(resource string, params url.Values) string {
	u := c.baseURL.JoinPath(apiVersion, resource)
	u.RawQuery = params.Encode()
	return u.String()
}

// Get performs one GET request. It does not retry.
func (c *Client) Get(ctx context.Context, resource string, params url.Values) (*Response, error) {
	endpoint := c.Endpoint(resource, params)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &TransportError{Resource: resource, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Resource: resource, Err: fmt.Errorf("failed to execute request: %w", err)}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	zap.S().Debugf("GET %s -> %d in %s", endpoint, resp.StatusCode, time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Resource: resource, Err: NewHTTPError(resp.StatusCode, endpoint, resp.Status)}
	}

	if resp.ContentLength > MaxResponseSize {
		return nil, &TransportError{Resource: resource, Err: fmt.Errorf("response size %d bytes exceeds maximum allowed size of %d bytes",
			resp.ContentLength, MaxResponseSize)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, &TransportError{Resource: resource, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	if int64(len(body)) > MaxResponseSize {
		return nil, &TransportError{Resource: resource, Err: fmt.Errorf("response size exceeds maximum allowed size of %d bytes", MaxResponseSize)}
	}

	return &Response{
		Body:       body,
		Total:      headerInt(resp.Header, HeaderTotal),
		TotalPages: headerInt(resp.Header, HeaderTotalPages),
	}, nil
}

// headerInt reads a non-negative integer header; absent or malformed is 0
func headerInt(h http.Header, name string) int {
	v := strings.TrimSpace(h.Get(name))
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
