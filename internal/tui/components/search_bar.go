package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/godex/internal/catalog"
	"github.com/mmcdole/godex/internal/domain"
	"github.com/mmcdole/godex/internal/tui/styles"
)

// Dropdown placeholder texts
const (
	NoMatchingPackages = "No matching packages"
	NoRecentPackages   = "No recently viewed packages"
)

// maxDropdownEntries caps the visible dropdown rows
const maxDropdownEntries = 8

// DropdownMode says what the dropdown is listing
type DropdownMode int

const (
	DropdownMatches DropdownMode = iota
	DropdownHistory
)

// DropdownEntry is one row of the search dropdown
type DropdownEntry struct {
	Name        string
	Hint        string
	Placeholder bool // not selectable
}

// SearchBar is the search input with its live match dropdown
type SearchBar struct {
	input     textinput.Model
	entries   []DropdownEntry
	total     int // matches before truncation to maxDropdownEntries
	mode      DropdownMode
	cursor    int
	visible   bool
	width     int
	prevQuery string // Track query changes for real-time filtering
}

// NewSearchBar creates a new search bar
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search packages..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return SearchBar{input: ti}
}

// Focus focuses the input
func (s *SearchBar) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur removes focus from the input and hides the dropdown
func (s *SearchBar) Blur() {
	s.input.Blur()
	s.Hide()
}

// Focused reports whether the input has focus
func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

// Hide hides the dropdown, keeping the query
func (s *SearchBar) Hide() {
	s.visible = false
	s.cursor = 0
}

// Clear empties the query and hides the dropdown
func (s *SearchBar) Clear() {
	s.input.SetValue("")
	s.prevQuery = ""
	s.entries = nil
	s.Hide()
}

// DropdownVisible reports whether the dropdown is showing
func (s SearchBar) DropdownVisible() bool {
	return s.visible
}

// Mode returns what the dropdown is listing
func (s SearchBar) Mode() DropdownMode {
	return s.mode
}

// Entries returns the dropdown rows
func (s SearchBar) Entries() []DropdownEntry {
	return s.entries
}

// SetWidth updates the component width
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	s.input.Width = max(width-6, 10)
}

// Query returns the current search query
func (s SearchBar) Query() string {
	return s.input.Value()
}

// SetQuery replaces the query text
func (s *SearchBar) SetQuery(query string) {
	s.input.SetValue(query)
	s.input.CursorEnd()
}

// QueryChanged returns true if the query changed since last check and updates prevQuery
func (s *SearchBar) QueryChanged() bool {
	current := s.input.Value()
	if current != s.prevQuery {
		s.prevQuery = current
		return true
	}
	return false
}

// SetMatches fills the dropdown from a filter result. An empty query hides
// the dropdown; a query with no matches shows a placeholder entry.
func (s *SearchBar) SetMatches(pkgs []domain.Package, query string) {
	s.mode = DropdownMatches
	s.cursor = 0
	s.total = len(pkgs)

	if catalog.NormalizeQuery(query) == "" {
		s.entries = nil
		s.visible = false
		return
	}

	s.visible = true
	if len(pkgs) == 0 {
		s.entries = []DropdownEntry{{Name: NoMatchingPackages, Placeholder: true}}
		return
	}

	n := min(len(pkgs), maxDropdownEntries)
	s.entries = make([]DropdownEntry, n)
	for i := 0; i < n; i++ {
		s.entries[i] = DropdownEntry{Name: pkgs[i].Name}
	}
}

// SetHistory shows recently viewed packages in the dropdown
func (s *SearchBar) SetHistory(entries []domain.HistoryEntry) {
	s.mode = DropdownHistory
	s.cursor = 0
	s.total = len(entries)
	s.visible = true

	if len(entries) == 0 {
		s.entries = []DropdownEntry{{Name: NoRecentPackages, Placeholder: true}}
		return
	}

	n := min(len(entries), maxDropdownEntries)
	s.entries = make([]DropdownEntry, n)
	for i := 0; i < n; i++ {
		s.entries[i] = DropdownEntry{
			Name: entries[i].Name,
			Hint: entries[i].ViewedAt.Format("Jan 2 15:04"),
		}
	}
}

// Selected returns the name under the dropdown cursor
func (s SearchBar) Selected() (string, bool) {
	return s.entryName(s.cursor)
}

func (s SearchBar) entryName(i int) (string, bool) {
	if !s.visible || i < 0 || i >= len(s.entries) || s.entries[i].Placeholder {
		return "", false
	}
	return s.entries[i].Name, true
}

// Update handles messages. The bool result reports a dropdown selection.
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd, bool) {
	if !s.input.Focused() {
		return s, nil, false
	}

	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && s.visible {
		switch {
		case key.Matches(msg, SearchBarKeys.Escape):
			s.Hide()
			return s, nil, false

		case key.Matches(msg, SearchBarKeys.Enter):
			_, ok := s.Selected()
			return s, nil, ok

		case key.Matches(msg, SearchBarKeys.Down):
			if s.cursor < len(s.entries)-1 {
				s.cursor++
			}
			return s, nil, false

		case key.Matches(msg, SearchBarKeys.Up):
			if s.cursor > 0 {
				s.cursor--
			}
			return s, nil, false
		}
	}

	s.input, cmd = s.input.Update(msg)
	return s, cmd, false
}

// Height returns the number of lines View renders
func (s SearchBar) Height() int {
	return lipgloss.Height(s.View())
}

// Contains reports whether screen row y falls on the input or dropdown
func (s SearchBar) Contains(y int) bool {
	return y >= 0 && y < s.Height()
}

// EntryAt returns the selectable dropdown name rendered on screen row y
func (s SearchBar) EntryAt(y int) (string, bool) {
	// Row 0 is the input, then the dropdown rows
	return s.entryName(y - 1)
}

// View renders the component
func (s SearchBar) View() string {
	width := max(s.width, 20)
	inputLine := s.input.View()
	if !s.visible {
		return inputLine
	}

	itemWidth := width - 2
	var lines []string
	for i, entry := range s.entries {
		lines = append(lines, s.renderEntry(entry, i == s.cursor, itemWidth))
	}

	if s.total > len(s.entries) && s.mode == DropdownMatches {
		more := fmt.Sprintf("... and %d more", s.total-len(s.entries))
		lines = append(lines, styles.DimStyle.Render(" "+more))
	}

	dropdown := styles.DropdownStyle.
		Width(itemWidth).
		Render(strings.Join(lines, "\n"))

	return inputLine + "\n" + dropdown
}

func (s SearchBar) renderEntry(entry DropdownEntry, selected bool, width int) string {
	if entry.Placeholder {
		return styles.DimStyle.Render(" " + entry.Name)
	}

	var parts []styles.RowPart
	if s.mode == DropdownMatches {
		start, end, _ := catalog.MatchRange(entry.Name, s.input.Value())
		parts = styles.HighlightParts(styles.Truncate(entry.Name, width-4), start, end)
	} else {
		parts = []styles.RowPart{{Text: styles.Truncate(entry.Name, width-18)}}
	}

	if entry.Hint != "" {
		dim := styles.DimGray
		parts = append(parts, styles.RowPart{Text: "  " + entry.Hint, Foreground: &dim})
	}

	return styles.RenderListRow(parts, selected, width)
}
