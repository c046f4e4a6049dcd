// Package statuspage fetches and parses public status-page endpoints.
package statuspage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/statuswatch/checker/internal/pkg/ctxlog"
	"github.com/statuswatch/checker/internal/version"
)

const (
	defaultTimeout = 10 * time.Second

	// Status documents are typically well under 100 KiB; anything
	// larger is treated as a broken endpoint.
	maxResponseBytes = 1 << 20
)

// Config holds client configuration.
type Config struct {
	Timeout time.Duration
}

// Client performs single best-effort GETs against status endpoints.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new status-page client.
func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		userAgent: "status-checker/" + version.Version,
	}
}

// NewClientWithTransport creates a client backed by a custom transport.
// Used in tests to stub the network.
func NewClientWithTransport(config Config, rt http.RoundTripper) *Client {
	c := NewClient(config)
	c.httpClient.Transport = rt
	return c
}

// Fetch issues one GET against url and returns the raw body. Connection
// failures, timeouts, non-2xx statuses and oversized bodies all surface
// as *NetworkError.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, application/xml")
	req.Header.Set("X-Request-ID", requestID)

	logger := ctxlog.FromContext(ctx)
	logger.Debug("fetching status page", "url", url, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{URL: url, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, &NetworkError{URL: url, Err: fmt.Errorf("read response: %w", err)}
	}
	if len(body) > maxResponseBytes {
		return nil, &NetworkError{URL: url, Err: fmt.Errorf("response exceeds %d bytes", maxResponseBytes)}
	}

	logger.Debug("status page fetched", "url", url, "bytes", len(body))

	return body, nil
}
