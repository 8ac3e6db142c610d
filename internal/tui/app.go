package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/godex/internal/catalog"
	"github.com/mmcdole/godex/internal/service"
	"github.com/mmcdole/godex/internal/tui/components"
)

// ApplicationState is the visible view. The two states are exclusive.
type ApplicationState int

const (
	StateList ApplicationState = iota
	StateDetail
)

// focusArea is the list-view widget receiving keys
type focusArea int

const (
	focusSearch focusArea = iota
	focusTable
)

// Vertical layout: single footer line
const ChromeHeight = 1

// Status line durations
const (
	statusDuration = 3 * time.Second
	errorDuration  = 5 * time.Second
)

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State    ApplicationState
	Ready    bool
	ShowHelp bool

	// Services
	Viewer *service.CatalogViewer
	Opener Opener

	// UI Components
	Search components.SearchBar
	Table  *components.PackageTable
	Detail components.DetailPanel

	focus focusArea

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool

	logger *slog.Logger
}

// NewModel creates a new application model showing the full table with the
// search input focused
func NewModel(viewer *service.CatalogViewer, opener Opener, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	m := Model{
		State:  StateList,
		Viewer: viewer,
		Opener: opener,
		Search: components.NewSearchBar(),
		Table:  components.NewPackageTable("Packages"),
		Detail: components.NewDetailPanel(),
		logger: logger,
	}
	m.Search.Focus()
	m.applyQuery()
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case DetailLoadedMsg:
		m.showDetail(msg.Detail)
		return m, nil

	case HistoryLoadedMsg:
		if m.State != StateList {
			return m, nil
		}
		cmd := m.focusSearch()
		m.Search.SetHistory(msg.Entries)
		m.updateLayout()
		return m, cmd

	case DocsOpenedMsg:
		m.StatusMsg = "Opened " + msg.URL
		m.StatusIsErr = false
		return m, ClearStatusCmd(statusDuration)

	case ErrMsg:
		// Lookup failures leave the current view untouched
		m.logger.Warn("ui error", "error", msg.Error())
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		return m, ClearStatusCmd(errorDuration)

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(statusDuration)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Cursor blink and other component messages
	var cmd tea.Cmd
	if m.State == StateDetail {
		m.Detail, cmd = m.Detail.Update(msg)
	} else if m.focus == focusSearch {
		m.Search, cmd, _ = m.Search.Update(msg)
	}
	return m, cmd
}

// applyQuery re-filters the catalog from the search input and feeds the one
// result to both the table and the dropdown
func (m *Model) applyQuery() {
	res := m.Viewer.Search(m.Search.Query())
	m.Table.SetRows(res.Rows, res.Query)
	m.Search.SetMatches(res.Packages, res.Query)
	m.updateLayout()
}

// showDetail switches to the detail view
func (m *Model) showDetail(detail catalog.PackageDetail) {
	m.State = StateDetail
	m.Search.Hide()
	m.Detail.SetDetail(detail)
	m.updateLayout()
	m.logger.Debug("showing detail", "package", detail.Name)
}

// showList switches back to the table, keeping its filter
func (m *Model) showList() {
	m.State = StateList
	m.focusTable()
	m.updateLayout()
}

func (m *Model) focusSearch() tea.Cmd {
	m.focus = focusSearch
	m.Table.SetFocused(false)
	return m.Search.Focus()
}

func (m *Model) focusTable() {
	m.focus = focusTable
	m.Search.Blur()
	m.Table.SetFocused(true)
	m.updateLayout()
}

// selectPackage opens name from the dropdown: the input is cleared and the
// dropdown hidden before the detail is requested
func (m *Model) selectPackage(name string) tea.Cmd {
	m.Search.Clear()
	m.applyQuery()
	return OpenPackageCmd(m.Viewer, name)
}
