package styles

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	GopherBlue = lipgloss.Color("#00ADD8")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
)

// SpinnerFrames animate the startup load
var SpinnerFrames = spinner.MiniDot.Frames

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(GopherBlue)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(GopherBlue)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	SectionStyle = lipgloss.NewStyle().
			Foreground(GopherBlue).
			Bold(true).
			Underline(true)

	LinkStyle = lipgloss.NewStyle().
			Foreground(GopherBlue).
			Underline(true)
)

// List item styles
var (
	HeaderRowStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(GopherBlue).
			Padding(1, 2).
			Background(SlateDark)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(GopherBlue)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Filter styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(GopherBlue)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(GopherBlue).
				Bold(true)
)

// Dropdown styles
var (
	DropdownStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, true, true).
			BorderForeground(DimGray)
)

// Helper functions

// Truncate shortens s to the given display width with an ellipsis.
// Width is measured in terminal cells, so wide CJK runes count double.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 3 {
		return cut(s, width)
	}
	return cut(s, width-3) + "..."
}

// cut returns the longest prefix of s that fits in width cells
func cut(s string, width int) string {
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if used+w > width {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String()
}

// Pad pads s with spaces to the given display width
func Pad(s string, width int) string {
	s = Truncate(s, width)
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}

// RenderListRow renders a complete list row with uniform background when selected.
// Each part is styled explicitly to avoid ANSI reset code issues.
func RenderListRow(parts []RowPart, selected bool, width int) string {
	bg := SlateLight
	defaultFg := LightGray
	selectedFg := White

	var result string
	visibleLen := 0

	for _, part := range parts {
		style := lipgloss.NewStyle()
		if part.Foreground != nil {
			style = style.Foreground(*part.Foreground)
		} else if selected {
			style = style.Foreground(selectedFg)
		} else {
			style = style.Foreground(defaultFg)
		}
		if part.Bold {
			style = style.Bold(true)
		}
		if selected {
			style = style.Background(bg)
		}
		result += style.Render(part.Text)
		visibleLen += lipgloss.Width(part.Text)
	}

	// Add padding to fill width (subtract 2 for left/right margin)
	paddingNeeded := width - visibleLen - 2
	if paddingNeeded > 0 {
		padStyle := lipgloss.NewStyle()
		if selected {
			padStyle = padStyle.Background(bg)
		}
		result += padStyle.Render(strings.Repeat(" ", paddingNeeded))
	}

	marginStyle := lipgloss.NewStyle()
	if selected {
		marginStyle = marginStyle.Background(bg)
	}
	margin := marginStyle.Render(" ")

	return margin + result + margin
}

// RowPart represents a part of a row with optional foreground color
type RowPart struct {
	Text       string
	Foreground *lipgloss.Color
	Bold       bool
}

// HighlightParts splits text into row parts, marking runes [start,end) as a
// match. An empty range returns text as a single part.
func HighlightParts(text string, start, end int) []RowPart {
	runes := []rune(text)
	if start < 0 || end <= start || end > len(runes) {
		return []RowPart{{Text: text}}
	}

	accent := GopherBlue
	var parts []RowPart
	if start > 0 {
		parts = append(parts, RowPart{Text: string(runes[:start])})
	}
	parts = append(parts, RowPart{Text: string(runes[start:end]), Foreground: &accent, Bold: true})
	if end < len(runes) {
		parts = append(parts, RowPart{Text: string(runes[end:])})
	}
	return parts
}
