package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"net/http", 20, "net/http"},
		{"net/http/httptest", 10, "net/ht..."},
		{"fmt", 0, ""},
		{"encoding", 2, "en"},
		{"格式化输入输出", 7, "格式..."},
	}
	for _, tt := range tests {
		got := Truncate(tt.in, tt.width)
		assert.Equal(t, tt.want, got, "Truncate(%q, %d)", tt.in, tt.width)
		assert.LessOrEqual(t, lipgloss.Width(got), max(tt.width, 0))
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, "os    ", Pad("os", 6))
	assert.Equal(t, "str...", Pad("strings", 6))
}

func TestHighlightParts(t *testing.T) {
	parts := HighlightParts("net/http", 4, 8)
	if assert.Len(t, parts, 2) {
		assert.Equal(t, "net/", parts[0].Text)
		assert.Nil(t, parts[0].Foreground)
		assert.Equal(t, "http", parts[1].Text)
		assert.True(t, parts[1].Bold)
	}

	parts = HighlightParts("fmt", 1, 2)
	assert.Len(t, parts, 3)

	parts = HighlightParts("fmt", 0, 0)
	assert.Equal(t, []RowPart{{Text: "fmt"}}, parts)
}
