package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/godex/internal/catalog"
	"github.com/mmcdole/godex/internal/domain"
	"github.com/mmcdole/godex/internal/tui/styles"
)

// NoMatchingFunctions replaces the function list when the filter drops everything
const NoMatchingFunctions = "No matching functions"

// Layout constants for the detail panel
const (
	// Title line, blank line and footer line
	DetailChromeLines = 3
)

// DetailPanel shows one package: synopsis, description, functions, types
// placeholder and documentation link, in a scrollable viewport.
type DetailPanel struct {
	detail    catalog.PackageDetail
	functions []domain.Function // detail.Functions after the fuzzy filter
	viewport  viewport.Model
	width     int
	height    int

	// Function filter state
	filterActive bool
	filterInput  textinput.Model
}

// NewDetailPanel creates an empty detail panel
func NewDetailPanel() DetailPanel {
	ti := textinput.New()
	ti.Placeholder = "filter functions..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return DetailPanel{
		viewport:    viewport.New(0, 0),
		filterInput: ti,
	}
}

// SetDetail shows a package, clearing any function filter and scrolling to
// the top
func (d *DetailPanel) SetDetail(detail catalog.PackageDetail) {
	d.detail = detail
	d.clearFilter()
	d.refresh()
	d.viewport.GotoTop()
}

// Detail returns the package being shown
func (d DetailPanel) Detail() catalog.PackageDetail {
	return d.detail
}

// Functions returns the currently listed functions
func (d DetailPanel) Functions() []domain.Function {
	return d.functions
}

// ScrollOffset returns the viewport's vertical offset
func (d DetailPanel) ScrollOffset() int {
	return d.viewport.YOffset
}

// SetSize updates the component dimensions
func (d *DetailPanel) SetSize(width, height int) {
	d.width = width
	d.height = height

	frameW, frameH := styles.ActiveBorder.GetFrameSize()
	d.viewport.Width = max(width-frameW, 10)
	d.viewport.Height = max(height-frameH-DetailChromeLines, 1)
	d.refresh()
}

// IsFilterTyping returns true if the function filter input has focus
func (d DetailPanel) IsFilterTyping() bool {
	return d.filterActive && d.filterInput.Focused()
}

// IsFiltering returns true if a function filter is applied
func (d DetailPanel) IsFiltering() bool {
	return d.filterActive
}

// Update handles filter typing and viewport scrolling
func (d DetailPanel) Update(msg tea.Msg) (DetailPanel, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// Typing into the function filter
		if d.IsFilterTyping() {
			switch {
			case key.Matches(keyMsg, DetailKeys.Escape):
				d.clearFilter()
				d.refresh()
				return d, nil
			case key.Matches(keyMsg, DetailKeys.Accept):
				d.filterInput.Blur()
				return d, nil
			}
			d.filterInput, cmd = d.filterInput.Update(msg)
			d.applyFilter()
			return d, cmd
		}

		switch {
		case key.Matches(keyMsg, DetailKeys.Filter):
			d.filterActive = true
			d.refresh()
			cmd = d.filterInput.Focus()
			return d, cmd
		case d.filterActive && key.Matches(keyMsg, DetailKeys.Escape):
			d.clearFilter()
			d.refresh()
			return d, nil
		}
	}

	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// View renders the panel
func (d DetailPanel) View() string {
	style := styles.ActiveBorder
	frameW, frameH := style.GetFrameSize()
	innerWidth := max(d.width-frameW, 10)

	title := styles.TitleStyle.Render(styles.Truncate(d.detail.Title, innerWidth))

	var footer string
	if d.filterActive {
		footer = d.filterInput.View() + styles.DimStyle.Render(
			fmt.Sprintf(" [%d/%d]", len(d.functions), len(d.detail.Functions)))
	} else {
		footer = styles.DimStyle.Render(fmt.Sprintf("%3.0f%%", d.viewport.ScrollPercent()*100))
	}

	content := strings.Join([]string{title, "", d.viewport.View(), footer}, "\n")

	return style.
		Width(d.width - frameW).
		Height(d.height - frameH).
		Render(content)
}

// Internal methods

func (d *DetailPanel) clearFilter() {
	d.filterActive = false
	d.filterInput.SetValue("")
	d.filterInput.Blur()
	d.functions = d.detail.Functions
}

func (d *DetailPanel) applyFilter() {
	query := strings.ToLower(d.filterInput.Value())
	if query == "" {
		d.functions = d.detail.Functions
		d.refresh()
		return
	}

	names := make([]string, len(d.detail.Functions))
	for i, fn := range d.detail.Functions {
		names[i] = strings.ToLower(fn.Name)
	}

	matches := fuzzy.Find(query, names)
	d.functions = make([]domain.Function, len(matches))
	for i, match := range matches {
		d.functions[i] = d.detail.Functions[match.Index]
	}

	d.refresh()
	d.viewport.GotoTop()
}

func (d *DetailPanel) refresh() {
	d.viewport.SetContent(RenderDetailBody(d.detail, d.functions, d.filterActive, d.viewport.Width))
}

// RenderDetailBody renders everything below the title: synopsis, description
// paragraphs, the function list, the types placeholder and the doc link.
// filtered selects the empty-list text for a filtered function list.
func RenderDetailBody(detail catalog.PackageDetail, functions []domain.Function, filtered bool, width int) string {
	width = max(width, 20)
	wrap := lipgloss.NewStyle().Width(width - 2)
	indent := func(s string) string {
		return lipgloss.NewStyle().PaddingLeft(2).Render(wrap.Render(s))
	}

	var b strings.Builder

	b.WriteString(styles.SubtitleStyle.Render(wrap.Render(detail.Synopsis)))
	b.WriteString("\n\n")

	b.WriteString(styles.SectionStyle.Render("Description"))
	b.WriteString("\n")
	for _, p := range detail.Paragraphs {
		b.WriteString(indent(p))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.SectionStyle.Render(fmt.Sprintf("Functions (%d)", len(functions))))
	b.WriteString("\n")
	switch {
	case len(functions) > 0:
		descWrap := lipgloss.NewStyle().Width(width).PaddingLeft(6)
		for _, fn := range functions {
			b.WriteString("  ")
			b.WriteString(styles.AccentStyle.Render(fn.Name))
			b.WriteString("\n")
			b.WriteString(styles.DimStyle.Render(descWrap.Render(fn.Desc)))
			b.WriteString("\n")
		}
	case filtered && detail.HasFunctions():
		b.WriteString(styles.DimStyle.Render(indent(NoMatchingFunctions)))
		b.WriteString("\n")
	default:
		b.WriteString(styles.DimStyle.Render(indent(catalog.NoExportedFunctions)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.SectionStyle.Render("Types"))
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render(indent(detail.Types)))
	b.WriteString("\n\n")

	b.WriteString(styles.SectionStyle.Render("Documentation"))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(styles.LinkStyle.Render(detail.DocURL))

	return b.String()
}
