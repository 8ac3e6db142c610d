package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/godex/internal/adapter"
	"github.com/mmcdole/godex/internal/catalog"
	"github.com/mmcdole/godex/internal/domain"
	"github.com/mmcdole/godex/internal/service"
	"github.com/mmcdole/godex/internal/store"
	"github.com/mmcdole/godex/internal/tui/components"
)

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) Open(url string) error {
	f.opened = append(f.opened, url)
	return f.err
}

func newTestModel(t *testing.T) (Model, *fakeOpener) {
	t.Helper()
	cat, err := catalog.New([]domain.Package{
		{Name: "fmt", Desc: "Package fmt implements formatted I/O", Functions: []domain.Function{
			{Name: "Println"}, {Name: "TestPrint"},
		}},
		{Name: "os"},
		{Name: "net/http"},
	}, domain.TranslationMap{"fmt": "[zh]包 fmt：格式化I/O\n更多内容"})
	require.NoError(t, err)

	history, err := store.NewHistoryStore("")
	require.NoError(t, err)

	viewer := service.NewCatalogViewer(cat, catalog.DocLink{}, history, 10, adapter.NullLogger())
	opener := &fakeOpener{}

	m := NewModel(viewer, opener, adapter.NullLogger())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model), opener
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// runCmd executes cmd and feeds its message back into the model
func runCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	return m
}

func rowNames(rows []service.Row) []string {
	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.Name
	}
	return names
}

func TestNewModel_ShowsEveryPackage(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, StateList, m.State)
	assert.Equal(t, []string{"fmt", "os", "net/http"}, rowNames(m.Table.Rows()))
	assert.False(t, m.Search.DropdownVisible())
	assert.Contains(t, m.View(), "格式化I/O")
}

func TestTyping_FiltersTableAndDropdown(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeText(t, m, "T")
	assert.Equal(t, []string{"fmt", "net/http"}, rowNames(m.Table.Rows()))
	require.True(t, m.Search.DropdownVisible())
	assert.Len(t, m.Search.Entries(), 2)

	m = typeText(t, m, "zz")
	rows := m.Table.Rows()
	require.Len(t, rows, 1)
	assert.True(t, rows[0].NoMatch)
	assert.True(t, m.Search.Entries()[0].Placeholder)
}

func TestTyping_QuitKeyIsText(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeText(t, m, "q?")
	assert.Equal(t, "q?", m.Search.Query())
	assert.False(t, m.ShowHelp)
}

func TestDropdownSelection_OpensDetailAndClearsInput(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeText(t, m, "net")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "", m.Search.Query())
	assert.False(t, m.Search.DropdownVisible())
	assert.Len(t, m.Table.Rows(), 3)

	m = runCmd(t, m, cmd)
	assert.Equal(t, StateDetail, m.State)
	assert.Equal(t, "Package: net/http", m.Detail.Detail().Title)
	assert.Contains(t, m.View(), "Package: net/http")
}

func TestOpenUnknownPackage_StaysOnList(t *testing.T) {
	m, _ := newTestModel(t)

	m = runCmd(t, m, OpenPackageCmd(m.Viewer, "nte/http"))
	assert.Equal(t, StateList, m.State)
	assert.True(t, m.StatusIsErr)
	assert.Contains(t, m.StatusMsg, "package not found: nte/http")
	assert.Contains(t, m.StatusMsg, "net/http")
	assert.Empty(t, m.Detail.Detail().Name, "nothing rendered")

	m, _ = update(t, m, ClearStatusMsg{})
	assert.Empty(t, m.StatusMsg)
}

func TestBackFromDetail_KeepsFilter(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeText(t, m, "t")

	// esc closes the dropdown, a second esc moves focus to the table
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, m.Table.IsFocused())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = runCmd(t, m, cmd)
	require.Equal(t, StateDetail, m.State)
	assert.Equal(t, "net/http", m.Detail.Detail().Name)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateList, m.State)
	assert.Equal(t, "t", m.Search.Query())
	assert.Equal(t, []string{"fmt", "net/http"}, rowNames(m.Table.Rows()))
}

func TestDetail_FiltersGeneratedFunctions(t *testing.T) {
	m, _ := newTestModel(t)
	m = runCmd(t, m, OpenPackageCmd(m.Viewer, "fmt"))

	funcs := m.Detail.Functions()
	require.Len(t, funcs, 1)
	assert.Equal(t, "Println", funcs[0].Name)
	assert.Equal(t, catalog.NoDescription, funcs[0].Desc)
}

func TestDetail_OpenDocs(t *testing.T) {
	m, opener := newTestModel(t)
	m = runCmd(t, m, OpenPackageCmd(m.Viewer, "os"))

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
	m = runCmd(t, m, cmd)
	assert.Equal(t, []string{"https://pkg.go.dev/os@go1.25"}, opener.opened)
	assert.Equal(t, "Opened https://pkg.go.dev/os@go1.25", m.StatusMsg)
	assert.False(t, m.StatusIsErr)
	assert.Contains(t, m.View(), "Opened https://pkg.go.dev/os@go1.25")

	opener.err = errors.New("no browser")
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
	m = runCmd(t, m, cmd)
	assert.True(t, m.StatusIsErr)
	assert.Contains(t, m.StatusMsg, "no browser")
}

func TestHistoryDropdown(t *testing.T) {
	m, _ := newTestModel(t)
	m = runCmd(t, m, OpenPackageCmd(m.Viewer, "os"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	next, _ := m.Update(findMsg[HistoryLoadedMsg](t, cmd))
	m = next.(Model)

	require.True(t, m.Search.DropdownVisible())
	assert.Equal(t, components.DropdownHistory, m.Search.Mode())
	name, ok := m.Search.Selected()
	require.True(t, ok)
	assert.Equal(t, "os", name)
}

func TestMouse_ClickOutsideHidesDropdown(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeText(t, m, "t")
	require.True(t, m.Search.DropdownVisible())

	m, cmd := update(t, m, tea.MouseMsg{X: 10, Y: 25, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
	assert.False(t, m.Search.DropdownVisible())
	assert.Equal(t, "t", m.Search.Query())
	assert.Equal(t, StateList, m.State)
}

func TestMouse_ClickDropdownEntry(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeText(t, m, "o")

	m, cmd := update(t, m, tea.MouseMsg{X: 4, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, "", m.Search.Query())

	m = runCmd(t, m, cmd)
	assert.Equal(t, StateDetail, m.State)
	assert.Equal(t, "os", m.Detail.Detail().Name)
}

func TestHelpOverlay(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.Table.IsFocused())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	require.True(t, m.ShowHelp)
	assert.Contains(t, m.View(), "recently viewed")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.ShowHelp)
}

func TestHelpOverlay_IgnoresMouse(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	require.True(t, m.ShowHelp)

	m, cmd := update(t, m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
	assert.True(t, m.ShowHelp)
	assert.Equal(t, StateList, m.State)
	assert.Equal(t, "", m.Detail.Detail().Name)
}

// findMsg runs cmd, unpacking batches, and returns the first message of type T
func findMsg[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	require.NotNil(t, cmd)
	switch msg := cmd().(type) {
	case T:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if found, ok := c().(T); ok {
				return found
			}
		}
	}
	var zero T
	t.Fatalf("no %T produced", zero)
	return zero
}
