package gtp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/longevity-genie/pharmacology-mcp/internal/common"
)

// DefaultBaseURL is the Guide to Pharmacology web services root.
const DefaultBaseURL = "https://www.guidetopharmacology.org/services"

// maxResponseSize caps the response body to prevent OOM from unexpectedly
// large responses (the full ligand list runs to tens of MB).
const maxResponseSize = 50 << 20 // 50MB

// Client issues GET requests against the Guide to Pharmacology REST API.
// It owns its http.Client: created at startup, closed at shutdown. It performs
// no retries and keeps no per-request state, so a single Client is safe for
// concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a client targeting the given services base URL with a
// bounded per-request timeout covering connection and response read.
func NewClient(baseURL string, timeout time.Duration, logger *common.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// BaseURL returns the configured upstream base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases idle connections held by the underlying http.Client.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Get performs a single GET against <baseURL>/<path> with the supplied query
// parameters and returns the raw body. Failures map to the adapter error
// taxonomy: UpstreamUnavailableError on transport errors or cancellation,
// UpstreamHTTPError on non-2xx. The body is not parsed here; the normalizer
// owns JSON interpretation.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	c.logger.Debug().Str("method", "GET").Str("url", reqURL).Msg("upstream request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error().Str("url", reqURL).Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("upstream request failed")
		return nil, &UpstreamUnavailableError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &UpstreamUnavailableError{URL: reqURL, Err: err}
	}

	c.logger.Debug().Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Msg("upstream response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamHTTPError{StatusCode: resp.StatusCode, Body: body}
	}

	return body, nil
}

// IsNotFound reports whether err is an upstream 404. Single-ID lookups treat
// 404 as an explicit not-found result rather than a failure.
func IsNotFound(err error) bool {
	var httpErr *UpstreamHTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound
}
