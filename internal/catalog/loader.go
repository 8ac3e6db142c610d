package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmcdole/godex/internal/domain"
)

// Default document names, relative to the source location
const (
	DefaultPackagesFile     = "go1.25-full.json"
	DefaultTranslationsFile = "zh-cn.json"
)

// LoadOptions names the two documents to fetch
type LoadOptions struct {
	PackagesFile     string
	TranslationsFile string
	Logger           *slog.Logger
}

func (o LoadOptions) withDefaults() LoadOptions {
	if o.PackagesFile == "" {
		o.PackagesFile = DefaultPackagesFile
	}
	if o.TranslationsFile == "" {
		o.TranslationsFile = DefaultTranslationsFile
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Load fetches the package document and then the translation document,
// validates their shapes and builds the catalog. It is all-or-nothing: any
// failure returns a *domain.LoadError and no catalog.
func Load(ctx context.Context, src domain.DocumentSource, opts LoadOptions) (*Catalog, error) {
	opts = opts.withDefaults()
	logger := opts.Logger

	logger.Info("loading package catalog", "source", src.Describe(opts.PackagesFile))
	pkgData, err := fetchDocument(ctx, src, opts.PackagesFile)
	if err != nil {
		return nil, err
	}
	packages, err := decodePackages(opts.PackagesFile, pkgData)
	if err != nil {
		return nil, err
	}
	logger.Info("parsed package catalog", "packages", len(packages))
	if len(packages) > 0 {
		logger.Debug("sample package", "name", packages[0].Name)
	}

	logger.Info("loading translations", "source", src.Describe(opts.TranslationsFile))
	zhData, err := fetchDocument(ctx, src, opts.TranslationsFile)
	if err != nil {
		return nil, err
	}
	translations, err := decodeTranslations(opts.TranslationsFile, zhData)
	if err != nil {
		return nil, err
	}
	logger.Info("parsed translations", "entries", len(translations))
	logger.Debug("sample translation keys", "keys", sampleKeys(translations, 3))

	cat, err := New(packages, translations)
	if err != nil {
		return nil, &domain.LoadError{Category: domain.LoadCategoryShape, Resource: opts.PackagesFile, Err: err}
	}
	return cat, nil
}

func fetchDocument(ctx context.Context, src domain.DocumentSource, name string) ([]byte, error) {
	data, err := src.Fetch(ctx, name)
	if err == nil {
		return data, nil
	}
	category := domain.LoadCategoryFetch
	if errors.Is(err, domain.ErrUnexpectedStatus) {
		category = domain.LoadCategoryStatus
	}
	return nil, &domain.LoadError{Category: category, Resource: name, Err: err}
}

func decodePackages(name string, data []byte) ([]domain.Package, error) {
	if err := checkShape(name, data, '[', "an array"); err != nil {
		return nil, err
	}
	var packages []domain.Package
	if err := json.Unmarshal(data, &packages); err != nil {
		return nil, &domain.LoadError{Category: domain.LoadCategoryShape, Resource: name, Err: err}
	}
	return packages, nil
}

func decodeTranslations(name string, data []byte) (domain.TranslationMap, error) {
	if err := checkShape(name, data, '{', "an object"); err != nil {
		return nil, err
	}
	var translations domain.TranslationMap
	if err := json.Unmarshal(data, &translations); err != nil {
		return nil, &domain.LoadError{Category: domain.LoadCategoryShape, Resource: name, Err: err}
	}
	return translations, nil
}

// checkShape separates malformed JSON from well-formed JSON of the wrong kind
func checkShape(name string, data []byte, open byte, want string) error {
	trimmed := bytes.TrimSpace(data)
	if !json.Valid(trimmed) {
		return &domain.LoadError{Category: domain.LoadCategoryParse, Resource: name, Err: errors.New("invalid JSON")}
	}
	if trimmed[0] != open {
		return &domain.LoadError{
			Category: domain.LoadCategoryShape,
			Resource: name,
			Err:      fmt.Errorf("document is not %s", want),
		}
	}
	return nil
}

func sampleKeys(m domain.TranslationMap, n int) []string {
	keys := make([]string, 0, n)
	for k := range m {
		if len(keys) == n {
			break
		}
		keys = append(keys, k)
	}
	return keys
}
