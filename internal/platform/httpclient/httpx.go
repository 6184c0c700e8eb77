// Package httpclient provides the small HTTP client used to probe the
// supervised target before capture. Capture traffic itself never goes
// through here: the browsing context owns it.
package httpclient

import (
	"context"
	"io"
	"net/http"
	"time"

	"docshot/internal/platform/errors"
	"docshot/internal/platform/logx"
)

// Config holds the configuration for the HTTP client.
type Config struct {
	// Timeout is the per-request timeout.
	// Default: 5 seconds
	Timeout time.Duration

	// UserAgent is the User-Agent header value.
	// Default: "docshot/1.0"
	UserAgent string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:   5 * time.Second,
		UserAgent: "docshot/1.0",
	}
}

// Client is a minimal HTTP client with timeout and logging.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     logx.Logger
}

// New creates a new HTTP client with the given configuration.
func New(config Config, logger logx.Logger) *Client {
	if config.Timeout == 0 {
		config.Timeout = 5 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = "docshot/1.0"
	}
	return &Client{
		httpClient: &http.Client{Timeout: config.Timeout},
		config:     config,
		logger:     logger.With("component", "httpclient"),
	}
}

// Status performs a GET against url and returns the response status code.
// The body is drained and discarded; only reachability matters here.
func (c *Client) Status(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, errors.Wrapf(err, "building request for %s", url)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrap(errors.ErrConnectionFailed, err.Error())
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	c.logger.Debug("probe response", "url", url, "status", resp.StatusCode)
	return resp.StatusCode, nil
}
