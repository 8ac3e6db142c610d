package catalog

import (
	"fmt"
	"strings"

	"github.com/mmcdole/godex/internal/domain"
)

// Defaults for the external documentation link
const (
	DefaultDocHost   = "https://pkg.go.dev"
	DefaultGoVersion = "go1.25"
)

// Placeholders for the detail panel's list sections
const (
	NoExportedFunctions = "No exported functions"
	TypesPlaceholder    = "Type information not yet available"
)

// DocLink builds external documentation URLs for package names
type DocLink struct {
	Host    string
	Version string
}

// URL returns "<host>/<name>@<version>"
func (l DocLink) URL(name string) string {
	host := l.Host
	if host == "" {
		host = DefaultDocHost
	}
	version := l.Version
	if version == "" {
		version = DefaultGoVersion
	}
	return fmt.Sprintf("%s/%s@%s", strings.TrimRight(host, "/"), name, version)
}

// PackageDetail is everything the detail panel shows for one package
type PackageDetail struct {
	Name       string
	Title      string
	Synopsis   string
	Paragraphs []string
	Functions  []domain.Function
	Types      string
	DocURL     string
}

// HasFunctions reports whether any exported function survived filtering
func (d PackageDetail) HasFunctions() bool {
	return len(d.Functions) > 0
}

// Detail assembles the detail view for name. An unknown name returns an
// error wrapping domain.ErrPackageNotFound and an empty detail.
func (c *Catalog) Detail(name string, link DocLink) (PackageDetail, error) {
	pkg, ok := c.Lookup(name)
	if !ok {
		return PackageDetail{}, fmt.Errorf("%w: %s", domain.ErrPackageNotFound, name)
	}

	return PackageDetail{
		Name:       pkg.Name,
		Title:      "Package: " + pkg.Name,
		Synopsis:   c.ShortDescription(pkg.Name),
		Paragraphs: c.LongDescription(pkg.Name),
		Functions:  ExportedFunctions(pkg.Functions),
		Types:      TypesPlaceholder,
		DocURL:     link.URL(pkg.Name),
	}, nil
}

// ExportedFunctions drops unnamed and generated test/benchmark/fuzz entries
// and fills missing descriptions with NoDescription.
func ExportedFunctions(funcs []domain.Function) []domain.Function {
	var exported []domain.Function
	for _, fn := range funcs {
		if fn.Name == "" || fn.IsGenerated() {
			continue
		}
		if strings.TrimSpace(fn.Desc) == "" {
			fn.Desc = NoDescription
		}
		exported = append(exported, fn)
	}
	return exported
}
