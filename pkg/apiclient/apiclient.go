// Package apiclient is the HTTP plumbing shared by the identity and marketplace clients.
package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	loggerpkg "github.com/minhyannv/auction-finder-go/pkg/logger"
)

const (
	DefaultUserAgent = "auction-finder-go"
	// maxBodyBytes caps how much of a response body is read into memory.
	maxBodyBytes int64 = 16 * 1024 * 1024
)

// Response is a fully read HTTP response.
type Response struct {
	Status int
	Body   []byte
}

// OK reports whether the status is 2xx.
func (r Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Client issues throttled GET requests and reads the whole body.
type Client struct {
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
	logger    loggerpkg.Logger
	verbose   bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithRateLimit caps outgoing requests to perSecond with the given burst.
// A non-positive perSecond disables throttling.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger injects a logger; debug output is emitted only when verbose is set.
func WithLogger(l loggerpkg.Logger, verbose bool) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
		c.verbose = verbose
	}
}

// New builds a Client. timeout applies to each request; zero means no timeout.
func New(timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: DefaultUserAgent,
		logger:    loggerpkg.NopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Get waits for the rate limiter, then fetches rawURL with query appended.
// Non-2xx statuses are returned in Response, not as an error.
func (c *Client) Get(ctx context.Context, rawURL string, query url.Values) (Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return Response{}, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	target := rawURL
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Response{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Response{}, fmt.Errorf("read body: %w", err)
	}

	loggerpkg.Debug(c.verbose, c.logger, "http get", map[string]any{
		"url":         redact(rawURL),
		"status":      resp.StatusCode,
		"bytes":       len(body),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return Response{Status: resp.StatusCode, Body: body}, nil
}

// redact drops any query string so credentials never reach the logs.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}
	u.RawQuery = ""
	return u.String()
}
