package xwordinfo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Fetcher retrieves the puzzle for a canonical date.
// It is implemented by *Client and can be replaced in tests.
type Fetcher interface {
	Fetch(ctx context.Context, date string) (*Response, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

const (
	defaultUserAgent   = "xwpuz/1.0"
	defaultTimeout     = 30 * time.Second
	defaultMaxBodySize = 2 * 1024 * 1024
)

// Client talks to the XWord Info JSON endpoint.
type Client struct {
	endpoint *url.URL
	http     *http.Client

	userAgent   string
	referer     string
	headers     map[string]string
	maxBodySize int64
	logger      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the overall request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithReferer sets the Referer header. The API rejects requests that do
// not appear to come from its own JSON page.
func WithReferer(referer string) Option {
	return func(c *Client) {
		c.referer = referer
	}
}

// WithHeaders adds extra request headers, such as a subscriber cookie.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithMaxBodySize limits how many bytes of the response are read.
func WithMaxBodySize(size int64) Option {
	return func(c *Client) {
		c.maxBodySize = size
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient builds a Client for the given endpoint URL.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported endpoint scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("endpoint %q has no host", endpoint)
	}

	c := &Client{
		endpoint:    u,
		http:        &http.Client{Timeout: defaultTimeout},
		userAgent:   defaultUserAgent,
		headers:     make(map[string]string),
		maxBodySize: defaultMaxBodySize,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Fetch requests the puzzle for date (month/day/yyyy) and returns the
// decoded, validated response.
func (c *Client) Fetch(ctx context.Context, date string) (*Response, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}

	u := *c.endpoint
	q := u.Query()
	q.Set("date", date)
	q.Set("format", "text")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.referer != "" {
		req.Header.Set("Referer", c.referer)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	c.logger.Debug("requesting puzzle", "url", u.String(), "date", date)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request puzzle for %s: %w", date, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("read puzzle response: %w", err)
	}
	if int64(len(data)) > c.maxBodySize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, c.maxBodySize)
	}

	c.logger.Debug("puzzle response received", "status", resp.StatusCode, "bytes", len(data))

	puzzle, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if err := puzzle.Validate(); err != nil {
		return nil, err
	}
	return puzzle, nil
}
