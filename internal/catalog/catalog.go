// Package catalog holds the loaded package catalog and the pure operations
// over it: filtering, translation resolution and detail assembly.
package catalog

import (
	"fmt"
	"slices"

	"github.com/mmcdole/godex/internal/domain"
)

// Catalog is the read-only application state built once at startup.
// It is safe for concurrent reads.
type Catalog struct {
	packages     []domain.Package
	byName       map[string]int
	translations domain.TranslationMap
}

// New builds a catalog from already-decoded documents.
// It fails when two records share a name.
func New(packages []domain.Package, translations domain.TranslationMap) (*Catalog, error) {
	byName := make(map[string]int, len(packages))
	for i, pkg := range packages {
		if _, dup := byName[pkg.Name]; dup {
			return nil, fmt.Errorf("duplicate package name %q at index %d", pkg.Name, i)
		}
		byName[pkg.Name] = i
	}
	if translations == nil {
		translations = domain.TranslationMap{}
	}
	return &Catalog{
		packages:     slices.Clone(packages),
		byName:       byName,
		translations: translations,
	}, nil
}

// Packages returns a copy of every record in load order
func (c *Catalog) Packages() []domain.Package {
	return slices.Clone(c.packages)
}

// Len returns the number of package records
func (c *Catalog) Len() int {
	return len(c.packages)
}

// TranslationCount returns the number of translation entries
func (c *Catalog) TranslationCount() int {
	return len(c.translations)
}

// Names returns all package names in load order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.packages))
	for i, pkg := range c.packages {
		names[i] = pkg.Name
	}
	return names
}

// Lookup finds a package by exact name
func (c *Catalog) Lookup(name string) (domain.Package, bool) {
	idx, ok := c.byName[name]
	if !ok {
		return domain.Package{}, false
	}
	return c.packages[idx], true
}
