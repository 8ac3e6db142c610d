package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/godex/internal/service"
)

// Opener opens a documentation URL outside the terminal
type Opener interface {
	Open(url string) error
}

// OpenPackageCmd assembles the detail for name and records it in history
func OpenPackageCmd(viewer *service.CatalogViewer, name string) tea.Cmd {
	return func() tea.Msg {
		detail, err := viewer.Open(name)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return DetailLoadedMsg{Detail: detail}
	}
}

// LoadHistoryCmd reads recently viewed packages
func LoadHistoryCmd(viewer *service.CatalogViewer) tea.Cmd {
	return func() tea.Msg {
		entries, err := viewer.Recent()
		if err != nil {
			return ErrMsg{Err: err, Context: "history"}
		}
		return HistoryLoadedMsg{Entries: entries}
	}
}

// OpenDocsCmd hands url to the external browser
func OpenDocsCmd(opener Opener, url string) tea.Cmd {
	return func() tea.Msg {
		if opener == nil {
			return StatusMsg{Message: url}
		}
		if err := opener.Open(url); err != nil {
			return ErrMsg{Err: err, Context: "open documentation"}
		}
		return DocsOpenedMsg{URL: url}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
