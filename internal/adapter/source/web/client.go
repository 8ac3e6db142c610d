package web

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/mmcdole/godex/internal/domain"
)

// Client fetches catalog documents relative to a base URL.
// Requests bypass caches and carry no timeout; cancellation comes from ctx.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new document client rooted at baseURL
func NewClient(baseURL string, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog URL: %w", err)
	}
	// Treat the base as a directory so relative names resolve under it
	if u.Path == "" || u.Path[len(u.Path)-1] != '/' {
		u.Path += "/"
	}
	return &Client{
		baseURL:    u,
		httpClient: &http.Client{},
		logger:     logger,
	}, nil
}

// Describe returns the absolute URL a document name resolves to
func (c *Client) Describe(name string) string {
	return c.resolve(name)
}

func (c *Client) resolve(name string) string {
	ref, err := url.Parse(name)
	if err != nil {
		return c.baseURL.String() + name
	}
	return c.baseURL.ResolveReference(ref).String()
}

// Fetch retrieves a document. Non-2xx responses return an error wrapping
// domain.ErrUnexpectedStatus.
func (c *Client) Fetch(ctx context.Context, name string) ([]byte, error) {
	reqURL := c.resolve(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	c.logger.Debug("catalog request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "url", reqURL, "error", err)
		return nil, fmt.Errorf("request %s: %w", reqURL, err)
	}
	defer resp.Body.Close()

	c.logger.Info("catalog response", "url", reqURL, "status", resp.Status)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d from %s", domain.ErrUnexpectedStatus, resp.StatusCode, reqURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}
