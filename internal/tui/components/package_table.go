package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/godex/internal/catalog"
	"github.com/mmcdole/godex/internal/service"
	"github.com/mmcdole/godex/internal/tui/styles"
)

// Layout constants for the package table
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Title line, column header, and the two scroll indicator lines
	TableChromeLines = 4

	// Name column share of the row width
	NameColumnPercent = 35
)

// PackageTable is a scrollable two-column table of package rows
type PackageTable struct {
	rows  []service.Row
	query string // highlighted in the name column

	// Selection
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width   int
	height  int
	focused bool

	title string
}

// NewPackageTable creates an empty table
func NewPackageTable(title string) *PackageTable {
	return &PackageTable{title: title}
}

// SetRows replaces the rows and resets the selection to the top
func (t *PackageTable) SetRows(rows []service.Row, query string) {
	t.rows = rows
	t.query = query
	t.cursor = 0
	t.offset = 0
}

// Rows returns the rendered rows
func (t *PackageTable) Rows() []service.Row {
	return t.rows
}

// Update handles navigation keys when focused
func (t *PackageTable) Update(msg tea.Msg) (*PackageTable, tea.Cmd) {
	if !t.focused {
		return t, nil
	}

	count := len(t.rows)
	if count == 0 {
		return t, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch {
	case key.Matches(keyMsg, TableKeys.Down):
		if t.cursor < count-1 {
			t.cursor++
		}
	case key.Matches(keyMsg, TableKeys.Up):
		if t.cursor > 0 {
			t.cursor--
		}
	case key.Matches(keyMsg, TableKeys.Home):
		t.cursor = 0
	case key.Matches(keyMsg, TableKeys.End):
		t.cursor = count - 1
	case key.Matches(keyMsg, TableKeys.HalfDown):
		t.cursor = min(t.cursor+max(t.maxVisible/2, 1), count-1)
	case key.Matches(keyMsg, TableKeys.HalfUp):
		t.cursor = max(t.cursor-max(t.maxVisible/2, 1), 0)
	case key.Matches(keyMsg, TableKeys.PageDown):
		t.cursor = min(t.cursor+max(t.maxVisible, 1), count-1)
	case key.Matches(keyMsg, TableKeys.PageUp):
		t.cursor = max(t.cursor-max(t.maxVisible, 1), 0)
	}
	t.ensureVisible()

	return t, nil
}

// SetSize updates the table dimensions
func (t *PackageTable) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.recalcMaxVisible()
	t.ensureVisible() // Scroll to show selected row now that we know the size
}

// SetFocused sets keyboard focus
func (t *PackageTable) SetFocused(focused bool) {
	t.focused = focused
}

// IsFocused reports keyboard focus
func (t *PackageTable) IsFocused() bool {
	return t.focused
}

// SelectedIndex returns the cursor position
func (t *PackageTable) SelectedIndex() int {
	return t.cursor
}

// SelectedRow returns the row under the cursor, nil for the no-match row
func (t *PackageTable) SelectedRow() *service.Row {
	if t.cursor < 0 || t.cursor >= len(t.rows) || t.rows[t.cursor].NoMatch {
		return nil
	}
	return &t.rows[t.cursor]
}

// SelectAt moves the cursor to the row drawn on line y of the table's
// own view and returns it
func (t *PackageTable) SelectAt(y int) (*service.Row, bool) {
	// Border, title line, column header and the "more" indicator
	idx := y - 1 - 3 + t.offset
	if y < 4 || idx < t.offset || idx >= min(t.offset+t.maxVisible, len(t.rows)) {
		return nil, false
	}
	t.cursor = idx
	row := t.SelectedRow()
	return row, row != nil
}

// Internal methods

func (t *PackageTable) recalcMaxVisible() {
	t.maxVisible = max(t.height-BorderHeight-TableChromeLines, 1)
}

func (t *PackageTable) ensureVisible() {
	// Don't adjust offset if size hasn't been set yet
	if t.maxVisible <= 0 {
		return
	}
	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if t.cursor >= t.offset+t.maxVisible {
		t.offset = t.cursor - t.maxVisible + 1
	}
}

// View renders the table
func (t *PackageTable) View() string {
	style := styles.InactiveBorder
	if t.focused {
		style = styles.ActiveBorder
	}

	frameW, frameH := style.GetFrameSize()

	return style.
		Width(t.width - frameW).
		Height(t.height - frameH).
		Render(t.renderContent())
}

func (t *PackageTable) renderContent() string {
	itemWidth := max(t.width-BorderWidth, 20)
	nameWidth := itemWidth * NameColumnPercent / 100

	count := len(t.rows)
	packages := count
	if count == 1 && t.rows[0].NoMatch {
		packages = 0
	}
	titleText := fmt.Sprintf("%s (%d)", t.title, packages)
	titleLine := styles.AccentStyle.Render(styles.Truncate(titleText, itemWidth))

	header := " " + styles.HeaderRowStyle.Render(styles.Pad("Package", nameWidth)) +
		" " + styles.HeaderRowStyle.Render("Synopsis")

	end := min(t.offset+t.maxVisible, count)

	var lines []string
	for i := t.offset; i < end; i++ {
		lines = append(lines, t.renderRow(t.rows[i], i == t.cursor && t.focused, itemWidth, nameWidth))
	}

	// ALWAYS reserve space for the indicators to prevent layout shifts
	up := " "
	if t.offset > 0 {
		up = styles.DimStyle.Render("↑ more")
	}
	down := " "
	if end < count {
		down = styles.DimStyle.Render("↓ more")
	}

	return strings.Join([]string{titleLine, header, up, strings.Join(lines, "\n"), down}, "\n")
}

func (t *PackageTable) renderRow(row service.Row, selected bool, width, nameWidth int) string {
	if row.NoMatch {
		return styles.DimStyle.Render(" " + row.Synopsis)
	}

	name := styles.Truncate(row.Name, nameWidth)
	start, end, _ := catalog.MatchRange(name, t.query)
	parts := styles.HighlightParts(name, start, end)

	// Pad the name column so synopses line up
	if pad := nameWidth - lipgloss.Width(name); pad > 0 {
		parts = append(parts, styles.RowPart{Text: strings.Repeat(" ", pad)})
	}

	synopsisWidth := width - nameWidth - 3
	parts = append(parts, styles.RowPart{Text: " " + styles.Truncate(row.Synopsis, synopsisWidth)})

	return styles.RenderListRow(parts, selected, width)
}
