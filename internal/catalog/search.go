package catalog

import (
	"slices"
	"strings"

	"github.com/mmcdole/godex/internal/domain"
)

// NormalizeQuery trims and case-folds a search query
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Filter returns the packages whose name contains query, ignoring case.
// Descriptions are not searched. An empty query returns every package in
// load order. The result is recomputed from the full set on every call and
// never shares storage with the catalog.
func (c *Catalog) Filter(query string) []domain.Package {
	q := NormalizeQuery(query)
	if q == "" {
		return slices.Clone(c.packages)
	}

	var matches []domain.Package
	for _, pkg := range c.packages {
		if strings.Contains(strings.ToLower(pkg.Name), q) {
			matches = append(matches, pkg)
		}
	}
	return matches
}

// MatchRange returns the rune range of the first case-insensitive occurrence
// of query in name, for highlighting. ok is false when there is no match.
func MatchRange(name, query string) (start, end int, ok bool) {
	q := NormalizeQuery(query)
	if q == "" {
		return 0, 0, false
	}
	lower := strings.ToLower(name)
	idx := strings.Index(lower, q)
	if idx < 0 {
		return 0, 0, false
	}
	start = len([]rune(lower[:idx]))
	return start, start + len([]rune(q)), true
}
