package source

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmcdole/godex/internal/adapter"
	"github.com/mmcdole/godex/internal/adapter/source/local"
	"github.com/mmcdole/godex/internal/adapter/source/web"
	"github.com/mmcdole/godex/internal/domain"
)

// NewSource creates a DocumentSource for a catalog location.
// http(s) URLs are fetched over the network, anything else is a directory.
func NewSource(location string, logger *slog.Logger) (domain.DocumentSource, error) {
	if location == "" {
		return nil, fmt.Errorf("catalog location is required")
	}

	lower := strings.ToLower(location)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		client, err := web.NewClient(location, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return local.NewClient(location, logger), nil
	}
}

// NewSourceFromConfig creates a DocumentSource from the application config
func NewSourceFromConfig(cfg *adapter.Config, logger *slog.Logger) (domain.DocumentSource, error) {
	return NewSource(cfg.Catalog.Location, logger)
}
