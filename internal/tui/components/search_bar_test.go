package components

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/godex/internal/domain"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func pkgs(names ...string) []domain.Package {
	out := make([]domain.Package, len(names))
	for i, n := range names {
		out[i] = domain.Package{Name: n}
	}
	return out
}

func focusedSearchBar() SearchBar {
	s := NewSearchBar()
	s.SetWidth(60)
	s.Focus()
	return s
}

func TestSearchBar_EmptyQueryHidesDropdown(t *testing.T) {
	s := focusedSearchBar()
	s.SetMatches(pkgs("fmt", "os"), "  ")
	assert.False(t, s.DropdownVisible())
	assert.Empty(t, s.Entries())
	assert.Equal(t, 1, s.Height())
}

func TestSearchBar_NoMatchesShowsPlaceholder(t *testing.T) {
	s := focusedSearchBar()
	s.SetMatches(nil, "zzz")
	require.True(t, s.DropdownVisible())
	require.Len(t, s.Entries(), 1)
	assert.True(t, s.Entries()[0].Placeholder)
	assert.Contains(t, s.View(), NoMatchingPackages)

	_, ok := s.Selected()
	assert.False(t, ok, "placeholder is not selectable")

	_, _, selected := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, selected)
}

func TestSearchBar_TruncatesDropdown(t *testing.T) {
	var names []string
	for i := 0; i < 10; i++ {
		names = append(names, fmt.Sprintf("pkg%d", i))
	}
	s := focusedSearchBar()
	s.SetMatches(pkgs(names...), "pkg")

	assert.Len(t, s.Entries(), maxDropdownEntries)
	assert.Contains(t, s.View(), "... and 2 more")
}

func TestSearchBar_TypingAndSelection(t *testing.T) {
	s := focusedSearchBar()

	s, _, _ = s.Update(runes("t"))
	assert.Equal(t, "t", s.Query())
	assert.True(t, s.QueryChanged())
	assert.False(t, s.QueryChanged())

	s.SetMatches(pkgs("fmt", "net/http"), s.Query())
	require.True(t, s.DropdownVisible())

	s, _, selected := s.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.False(t, selected)

	s, _, selected = s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, selected)
	name, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "net/http", name)

	s, _, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, s.DropdownVisible())
	assert.Equal(t, "t", s.Query(), "esc keeps the query")
}

func TestSearchBar_UnfocusedIgnoresInput(t *testing.T) {
	s := NewSearchBar()
	s, _, _ = s.Update(runes("x"))
	assert.Equal(t, "", s.Query())
}

func TestSearchBar_Clear(t *testing.T) {
	s := focusedSearchBar()
	s.SetQuery("net")
	s.SetMatches(pkgs("net", "net/http"), "net")
	s.Clear()

	assert.Equal(t, "", s.Query())
	assert.False(t, s.DropdownVisible())
	assert.False(t, s.QueryChanged())
}

func TestSearchBar_MouseHitTesting(t *testing.T) {
	s := focusedSearchBar()
	s.SetMatches(pkgs("fmt", "os"), "o")

	assert.True(t, s.Contains(0))
	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(s.Height()))

	_, ok := s.EntryAt(0)
	assert.False(t, ok, "row 0 is the input")

	name, ok := s.EntryAt(1)
	require.True(t, ok)
	assert.Equal(t, "fmt", name)

	name, ok = s.EntryAt(2)
	require.True(t, ok)
	assert.Equal(t, "os", name)
}

func TestSearchBar_History(t *testing.T) {
	s := focusedSearchBar()
	s.SetHistory(nil)
	require.True(t, s.DropdownVisible())
	assert.Equal(t, DropdownHistory, s.Mode())
	assert.Contains(t, s.View(), NoRecentPackages)

	viewed := time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC)
	s.SetHistory([]domain.HistoryEntry{{Name: "strings", ViewedAt: viewed, Views: 2}})
	name, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "strings", name)
	assert.Contains(t, s.View(), "Aug 1 09:30")
}
