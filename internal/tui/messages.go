package tui

import (
	"github.com/mmcdole/godex/internal/catalog"
	"github.com/mmcdole/godex/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// StatusMsg shows a transient line in the footer
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the footer status
type ClearStatusMsg struct{}

// DetailLoadedMsg carries a package detail ready to show
type DetailLoadedMsg struct {
	Detail catalog.PackageDetail
}

// HistoryLoadedMsg carries recently viewed packages for the dropdown
type HistoryLoadedMsg struct {
	Entries []domain.HistoryEntry
}

// DocsOpenedMsg signals the documentation link was handed to a browser
type DocsOpenedMsg struct {
	URL string
}
