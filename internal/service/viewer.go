package service

import (
	"errors"
	"log/slog"

	"github.com/mmcdole/godex/internal/catalog"
	"github.com/mmcdole/godex/internal/domain"
)

// NoMatchText is the single table row shown when nothing matches
const NoMatchText = "No matching packages"

// maxSuggestions caps the "did you mean" list on lookup failures
const maxSuggestions = 3

// Row is one rendered line of the package table
type Row struct {
	Name     string
	Synopsis string
	NoMatch  bool
}

// SearchResult is one filter pass, shared by the dropdown and the table
type SearchResult struct {
	Query    string
	Packages []domain.Package
	Rows     []Row
}

// Empty reports whether the filter matched nothing
func (r SearchResult) Empty() bool {
	return len(r.Packages) == 0
}

// CatalogViewer answers search and detail requests against a loaded catalog
// and records opened packages in the history store.
type CatalogViewer struct {
	catalog      *catalog.Catalog
	link         catalog.DocLink
	history      domain.HistoryStore
	historyLimit int
	logger       *slog.Logger
}

// NewCatalogViewer creates a new viewer. history may be nil.
func NewCatalogViewer(
	cat *catalog.Catalog,
	link catalog.DocLink,
	history domain.HistoryStore,
	historyLimit int,
	logger *slog.Logger,
) *CatalogViewer {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogViewer{
		catalog:      cat,
		link:         link,
		history:      history,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

// Catalog returns the underlying catalog
func (v *CatalogViewer) Catalog() *catalog.Catalog {
	return v.catalog
}

// Search filters the catalog and builds the table rows for the result
func (v *CatalogViewer) Search(query string) SearchResult {
	pkgs := v.catalog.Filter(query)
	return SearchResult{
		Query:    catalog.NormalizeQuery(query),
		Packages: pkgs,
		Rows:     v.Rows(pkgs),
	}
}

// Rows renders one row per package, or a single NoMatch row when empty
func (v *CatalogViewer) Rows(pkgs []domain.Package) []Row {
	if len(pkgs) == 0 {
		return []Row{{Synopsis: NoMatchText, NoMatch: true}}
	}
	rows := make([]Row, len(pkgs))
	for i, pkg := range pkgs {
		rows[i] = Row{Name: pkg.Name, Synopsis: v.catalog.ShortDescription(pkg.Name)}
	}
	return rows
}

// Open assembles the detail for name and records it in history.
// Unknown names return a *domain.LookupError with suggestions.
func (v *CatalogViewer) Open(name string) (catalog.PackageDetail, error) {
	detail, err := v.catalog.Detail(name, v.link)
	if err != nil {
		if errors.Is(err, domain.ErrPackageNotFound) {
			lookupErr := &domain.LookupError{
				Name:        name,
				Suggestions: v.catalog.Suggest(name, maxSuggestions),
			}
			v.logger.Warn("package not found", "name", name, "suggestions", lookupErr.Suggestions)
			return catalog.PackageDetail{}, lookupErr
		}
		return catalog.PackageDetail{}, err
	}

	if v.history != nil {
		if err := v.history.Record(name); err != nil {
			// History is best effort; the detail is still shown
			v.logger.Warn("failed to record history", "name", name, "error", err)
		}
	}

	v.logger.Debug("opened package", "name", name, "functions", len(detail.Functions))
	return detail, nil
}

// Recent returns recently viewed packages that still exist in the catalog
func (v *CatalogViewer) Recent() ([]domain.HistoryEntry, error) {
	if v.history == nil {
		return nil, nil
	}
	entries, err := v.history.Recent(0)
	if err != nil {
		return nil, err
	}

	recent := make([]domain.HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		if _, ok := v.catalog.Lookup(entry.Name); !ok {
			continue
		}
		recent = append(recent, entry)
		if v.historyLimit > 0 && len(recent) == v.historyLimit {
			break
		}
	}
	return recent, nil
}

// ClearHistory removes all recently viewed entries
func (v *CatalogViewer) ClearHistory() error {
	if v.history == nil {
		return nil
	}
	return v.history.Clear()
}
