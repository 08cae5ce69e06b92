package graphql

import (
	"log/slog"
	"net/http"
	"time"
)

const (
	DefaultTimeout      = 30 * time.Second
	DefaultMaxRetries   = 3
	DefaultRetryBackoff = time.Second
)

// Client executes queries against a subgraph endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger

	maxRetries   int
	retryBackoff time.Duration

	userAgent  string
	requestIDs bool
	queryHook  func(query string)
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new subgraph client.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger:       slog.Default(),
		maxRetries:   DefaultMaxRetries,
		retryBackoff: DefaultRetryBackoff,
		requestIDs:   true,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Endpoint returns the URL queries are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRetries sets the retry configuration.
func WithRetries(max int, backoff time.Duration) ClientOption {
	return func(c *Client) {
		c.maxRetries = max
		c.retryBackoff = backoff
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRequestIDs toggles the X-Request-Id header (on by default).
func WithRequestIDs(enabled bool) ClientOption {
	return func(c *Client) {
		c.requestIDs = enabled
	}
}

// WithQueryHook registers a function called with every query before it is sent.
func WithQueryHook(fn func(query string)) ClientOption {
	return func(c *Client) {
		c.queryHook = fn
	}
}
