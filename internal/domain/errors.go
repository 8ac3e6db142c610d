package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for catalog operations
var (
	// ErrPackageNotFound indicates the requested package is not in the catalog
	ErrPackageNotFound = errors.New("package not found")

	// ErrUnexpectedStatus indicates a document request returned a non-success status
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

// LoadCategory classifies why the startup load failed
type LoadCategory string

const (
	LoadCategoryFetch  LoadCategory = "fetch"  // document could not be retrieved
	LoadCategoryStatus LoadCategory = "status" // non-success response
	LoadCategoryParse  LoadCategory = "parse"  // malformed JSON
	LoadCategoryShape  LoadCategory = "shape"  // valid JSON of the wrong shape
)

// LoadError is the single failure reported when the catalog cannot be loaded
type LoadError struct {
	Category LoadCategory
	Resource string
	Err      error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %s: %v", e.Resource, e.Category, e.Err)
}

// Unwrap returns the underlying cause
func (e *LoadError) Unwrap() error {
	return e.Err
}

// LookupError reports a detail request for a package that is not loaded
type LookupError struct {
	Name        string
	Suggestions []string
}

// Error implements the error interface
func (e *LookupError) Error() string {
	msg := fmt.Sprintf("%v: %s", ErrPackageNotFound, e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// Unwrap lets errors.Is match ErrPackageNotFound
func (e *LookupError) Unwrap() error {
	return ErrPackageNotFound
}
