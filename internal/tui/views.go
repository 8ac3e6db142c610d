package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/godex/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.ShowHelp {
		return m.renderHelp()
	}

	var content string
	if m.State == StateDetail {
		content = m.Detail.View()
	} else {
		content = lipgloss.JoinVertical(lipgloss.Left, m.Search.View(), m.Table.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderFooter())
}

// renderFooter renders the status line: status on the left, context hints in
// the middle, the help hint on the right
func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.SuccessStyle.Render(m.StatusMsg)
		}
	}

	var hints []key.Binding
	if m.State == StateDetail {
		hints = []key.Binding{Keys.Back, Keys.OpenDocs, Keys.FilterFuncs}
	} else {
		hints = []key.Binding{Keys.Enter, Keys.History, Keys.Search}
	}
	center := renderHints(hints)

	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	if leftWidth+centerWidth+rightWidth >= m.Width {
		// Not enough space - just left + right
		left = styles.Truncate(left, max(m.Width-rightWidth-1, 0))
		gap := max(m.Width-lipgloss.Width(left)-rightWidth, 0)
		return left + strings.Repeat(" ", gap) + right
	}

	// Center the hints in available space
	available := m.Width - leftWidth - rightWidth
	leftPad := (available - centerWidth) / 2
	rightPad := available - centerWidth - leftPad

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

func renderHints(bindings []key.Binding) string {
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		h := b.Help()
		parts[i] = styles.HelpKeyStyle.Render(h.Key) + " " + styles.HelpDescStyle.Render(h.Desc)
	}
	return strings.Join(parts, styles.DimStyle.Render("  "))
}

// helpSection groups bindings on the help screen
type helpSection struct {
	title    string
	bindings []key.Binding
}

func helpSections() []helpSection {
	return []helpSection{
		{"PACKAGE LIST", []key.Binding{Keys.Search, Keys.FocusTable, Keys.Enter, Keys.History, Keys.Escape}},
		{"DETAIL", []key.Binding{Keys.Back, Keys.OpenDocs, Keys.FilterFuncs}},
		{"OTHER", []key.Binding{Keys.Help, Keys.Quit, Keys.ForceQuit}},
	}
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("godex keys"))
	b.WriteString("\n")

	for i, section := range helpSections() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.AccentStyle.Render(section.title))
		b.WriteString("\n")
		for _, binding := range section.bindings {
			h := binding.Help()
			fmt.Fprintf(&b, "  %s %s\n",
				styles.HelpKeyStyle.Render(styles.Pad(h.Key, 8)),
				styles.HelpDescStyle.Render(h.Desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("Press ? or esc to return..."))

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(b.String()))
}
