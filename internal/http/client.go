// Package http is the JSON-over-POST transport used by the API client.
package http

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

// Request is a single API call.
type Request struct {
	Method string
	// BaseURL overrides the client's base URL for this request only.
	BaseURL string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// Response is the raw result of an API call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Cached     bool
}

// Logger receives request and response logs.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client sends requests to one base URL.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
	logger     Logger
	debug      bool
	userAgent  string
	cache      canny.Cache
	cacheTTL   time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithRetryConfig enables retries of 5xx, 429 and connection failures.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithCache serves read-only paths from cache and clears it after any mutation.
func WithCache(cache canny.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// NewClient creates a client for baseURL. Requests are not retried unless WithRetryConfig is given.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = 0
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.CheckRetry = retryablehttp.DefaultRetryPolicy
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Post sends body as JSON to path under the client's base URL.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// PostURL sends body as JSON to path under baseURL instead of the client's base URL.
func (c *Client) PostURL(ctx context.Context, baseURL, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, BaseURL: baseURL, Path: path, Body: body})
}

// Do executes req. A non-2xx status yields the response together with a *canny.APIError;
// a connection failure yields a *canny.TransportError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.buildURL(req)

	var payload []byte

	if req.Body != nil {
		var err error

		payload, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	cacheKey := ""
	if c.cacheEnabled() && IsReadOnlyPath(req.Path) {
		cacheKey = CacheKey(fullURL, payload)

		if cached := c.lookup(ctx, cacheKey); cached != nil {
			return cached, nil
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, payload)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	requestID := uuid.NewString()

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("X-Request-ID", requestID)

	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":     req.Method,
			"url":        fullURL,
			"request_id": requestID,
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &canny.TransportError{Op: req.Method, URL: fullURL, Err: err}
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &canny.TransportError{Op: req.Method, URL: fullURL, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":      httpResp.StatusCode,
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  requestID,
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return resp, &canny.APIError{StatusCode: httpResp.StatusCode, Body: string(body)}
	}

	if c.cacheEnabled() {
		if cacheKey != "" {
			c.store(ctx, cacheKey, body)
		} else {
			c.invalidate(ctx)
		}
	}

	return resp, nil
}

// IsReadOnlyPath reports whether the endpoint at path only reads data.
func IsReadOnlyPath(path string) bool {
	path = strings.Trim(path, "/")

	return strings.HasSuffix(path, "/list") ||
		strings.HasSuffix(path, "/retrieve") ||
		path == "users/find"
}

// CacheKey derives the cache key for a request.
func CacheKey(fullURL string, payload []byte) string {
	sum := sha256.New()
	sum.Write([]byte(fullURL))
	sum.Write([]byte{'\n'})
	sum.Write(payload)

	return hex.EncodeToString(sum.Sum(nil))
}

func (c *Client) buildURL(req *Request) string {
	base := c.baseURL
	if req.BaseURL != "" {
		base = strings.TrimRight(req.BaseURL, "/")
	}

	return base + "/" + strings.TrimLeft(req.Path, "/")
}

func (c *Client) cacheEnabled() bool {
	if c.cache == nil {
		return false
	}

	_, noop := c.cache.(*canny.NoOpCache)

	return !noop
}

func (c *Client) lookup(ctx context.Context, key string) *Response {
	entry, err := c.cache.Get(ctx, key)
	if err != nil {
		return nil
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("Cache hit", map[string]interface{}{"key": key})
	}

	return &Response{StatusCode: http.StatusOK, Body: entry.Data, Cached: true}
}

func (c *Client) store(ctx context.Context, key string, body []byte) {
	entry := &canny.CacheEntry{Data: body}
	if c.cacheTTL > 0 {
		entry.ExpiresAt = time.Now().Add(c.cacheTTL)
	}

	err := c.cache.Set(ctx, key, entry)
	if err != nil && c.logger != nil {
		c.logger.Warn("Cache store failed", map[string]interface{}{"error": err.Error()})
	}
}

func (c *Client) invalidate(ctx context.Context) {
	err := c.cache.Clear(ctx)
	if err != nil && c.logger != nil {
		c.logger.Warn("Cache clear failed", map[string]interface{}{"error": err.Error()})
	}
}
