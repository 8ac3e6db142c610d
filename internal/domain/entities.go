package domain

import (
	"strings"
	"time"
)

// Function is one exported function listed in a package record
type Function struct {
	Name string `json:"name"`
	Desc string `json:"desc,omitempty"`
}

// Package is a single catalog entry: an import path, its English synopsis
// and the functions it exports.
type Package struct {
	Name      string     `json:"name"`
	Desc      string     `json:"desc,omitempty"`
	Functions []Function `json:"functions,omitempty"`
}

// TranslationMap maps a package name to its raw localized text.
// Values may carry TranslationMarker and hold newline-separated paragraphs.
type TranslationMap map[string]string

// TranslationMarker is the literal prefix some translation values start with
const TranslationMarker = "[zh]"

// Lookup returns the translation for name with the marker removed
func (t TranslationMap) Lookup(name string) (string, bool) {
	raw, ok := t[name]
	if !ok {
		return "", false
	}
	return strings.TrimPrefix(raw, TranslationMarker), true
}

// Generated entries that never belong in an exported-function listing
var generatedFuncPrefixes = []string{"Test", "Benchmark", "Fuzz"}

// IsGenerated reports whether the function is a test, benchmark or fuzz entry.
// The prefix match is case-sensitive.
func (f Function) IsGenerated() bool {
	for _, prefix := range generatedFuncPrefixes {
		if strings.HasPrefix(f.Name, prefix) {
			return true
		}
	}
	return false
}

// HistoryEntry records a package the user opened in the detail view
type HistoryEntry struct {
	Name     string    `json:"name"`
	ViewedAt time.Time `json:"viewed_at"`
	Views    int       `json:"views"`
}
