package local

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Client reads catalog documents from a directory
type Client struct {
	dir    string
	logger *slog.Logger
}

// NewClient creates a new directory-backed document client
func NewClient(dir string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{dir: dir, logger: logger}
}

// Describe returns the file path a document name resolves to
func (c *Client) Describe(name string) string {
	return filepath.Join(c.dir, filepath.FromSlash(name))
}

// Fetch reads a document from disk
func (c *Client) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := c.Describe(name)
	c.logger.Debug("reading catalog document", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
