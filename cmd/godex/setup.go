package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/mmcdole/godex/internal/adapter"
	"github.com/mmcdole/godex/internal/adapter/source"
	"github.com/mmcdole/godex/internal/catalog"
	"github.com/mmcdole/godex/internal/domain"
	"github.com/mmcdole/godex/internal/service"
	"github.com/mmcdole/godex/internal/store"
	"github.com/mmcdole/godex/internal/tui/styles"
)

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                              \r"

// environment is everything a subcommand needs after startup
type environment struct {
	cfg     *adapter.Config
	logger  *slog.Logger
	history *store.HistoryStore
	viewer  *service.CatalogViewer
}

func (e *environment) Close() {
	if err := e.history.Close(); err != nil {
		e.logger.Warn("failed to close history", "error", err)
	}
}

// setup loads config, logging and history, then loads the catalog behind a
// spinner. A load failure is returned as a *domain.LoadError.
func setup(configFile string) (*environment, error) {
	cfg, err := adapter.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting godex", "version", Version, "location", cfg.Catalog.Location)

	history, err := openHistory(cfg, logger)
	if err != nil {
		return nil, err
	}

	src, err := source.NewSourceFromConfig(cfg, logger)
	if err != nil {
		history.Close()
		return nil, fmt.Errorf("failed to create catalog source: %w", err)
	}

	cat, err := loadWithSpinner(os.Stderr, src, catalog.LoadOptions{
		PackagesFile:     cfg.Catalog.PackagesFile,
		TranslationsFile: cfg.Catalog.TranslationsFile,
		Logger:           logger,
	})
	if err != nil {
		logger.Error("catalog load failed", "error", err)
		history.Close()
		return nil, err
	}

	link := catalog.DocLink{Host: cfg.Catalog.DocHost, Version: cfg.Catalog.GoVersion}
	viewer := service.NewCatalogViewer(cat, link, history, cfg.History.Limit, logger)

	return &environment{cfg: cfg, logger: logger, history: history, viewer: viewer}, nil
}

// openHistory opens the history store, falling back to memory-only when the
// database is unavailable (for example, locked by another godex)
func openHistory(cfg *adapter.Config, logger *slog.Logger) (*store.HistoryStore, error) {
	history, err := store.NewHistoryStore(cfg.HistoryPath())
	if err == nil {
		return history, nil
	}
	logger.Warn("history unavailable, keeping it in memory", "path", cfg.HistoryPath(), "error", err)
	return store.NewHistoryStore("")
}

// loadWithSpinner loads the catalog with a visual spinner on w when w is a terminal
func loadWithSpinner(w *os.File, src domain.DocumentSource, opts catalog.LoadOptions) (*catalog.Catalog, error) {
	type result struct {
		cat *catalog.Catalog
		err error
	}
	resultCh := make(chan result, 1)

	// Start loading in background
	go func() {
		cat, err := catalog.Load(context.Background(), src, opts)
		resultCh <- result{cat, err}
	}()

	if !term.IsTerminal(int(w.Fd())) {
		res := <-resultCh
		return res.cat, res.err
	}

	frame := 0
	fmt.Fprintf(w, "\r%s Loading package catalog...", styles.SpinnerFrames[frame])

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case res := <-resultCh:
			fmt.Fprint(w, clearSpinnerLine)
			return res.cat, res.err

		case <-ticker.C:
			frame++
			fmt.Fprintf(w, "\r%s Loading package catalog...", styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])
		}
	}
}

// printLoadReport prints the single blocking report for a failed startup load
func printLoadReport(w io.Writer, err *domain.LoadError) {
	cause := err.Err
	if cause == nil {
		cause = errors.New("unknown error")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.ErrorStyle.Render("✗ Could not load the package catalog"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Category: %s\n", err.Category)
	fmt.Fprintf(w, "  Resource: %s\n", err.Resource)
	fmt.Fprintf(w, "  Message:  %v\n", cause)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Please check:")
	fmt.Fprintln(w, "  1. The document exists at the configured location")
	fmt.Fprintln(w, "  2. catalog.location points at the right directory or URL")
	fmt.Fprintln(w, "  3. The document is valid JSON of the expected shape")
	fmt.Fprintln(w)
}

// outputWidth returns the terminal width for plain output
func outputWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 100
}
