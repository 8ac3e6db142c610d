package components

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/godex/internal/catalog"
	"github.com/mmcdole/godex/internal/domain"
)

func fmtDetail() catalog.PackageDetail {
	funcs := []domain.Function{
		{Name: "Errorf", Desc: "Errorf formats according to a format specifier."},
		{Name: "Printf", Desc: "Printf formats and writes to standard output."},
		{Name: "Println", Desc: "Println writes its operands to standard output."},
		{Name: "Sprintf", Desc: "Sprintf returns the resulting string."},
	}
	for i := 0; i < 20; i++ {
		funcs = append(funcs, domain.Function{Name: fmt.Sprintf("Extra%02d", i), Desc: "filler"})
	}
	return catalog.PackageDetail{
		Name:       "fmt",
		Title:      "Package: fmt",
		Synopsis:   "格式化I/O",
		Paragraphs: []string{"格式化I/O", "更多内容"},
		Functions:  funcs,
		Types:      catalog.TypesPlaceholder,
		DocURL:     "https://pkg.go.dev/fmt@go1.25",
	}
}

func TestDetailPanel_SetDetailScrollsToTop(t *testing.T) {
	d := NewDetailPanel()
	d.SetSize(60, 12)
	d.SetDetail(fmtDetail())

	for i := 0; i < 5; i++ {
		d, _ = d.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Greater(t, d.ScrollOffset(), 0)

	d.SetDetail(fmtDetail())
	assert.Equal(t, 0, d.ScrollOffset())
}

func TestDetailPanel_View(t *testing.T) {
	d := NewDetailPanel()
	d.SetSize(80, 60)
	d.SetDetail(fmtDetail())

	view := d.View()
	assert.Contains(t, view, "Package: fmt")
	assert.Contains(t, view, "更多内容")
	assert.Contains(t, view, "Printf")
	assert.Contains(t, view, "Functions (24)")
}

func TestDetailPanel_FunctionFilter(t *testing.T) {
	d := NewDetailPanel()
	d.SetSize(80, 40)
	d.SetDetail(fmtDetail())

	d, _ = d.Update(runes("/"))
	require.True(t, d.IsFilterTyping())

	d, _ = d.Update(runes("prf"))
	names := make([]string, len(d.Functions()))
	for i, fn := range d.Functions() {
		names[i] = fn.Name
	}
	assert.ElementsMatch(t, []string{"Printf", "Sprintf"}, names)

	// enter keeps the filter and returns keys to the viewport
	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, d.IsFilterTyping())
	assert.True(t, d.IsFiltering())
	assert.Len(t, d.Functions(), 2)

	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, d.IsFiltering())
	assert.Len(t, d.Functions(), 24)
}

func TestDetailPanel_SetDetailClearsFilter(t *testing.T) {
	d := NewDetailPanel()
	d.SetSize(80, 40)
	d.SetDetail(fmtDetail())
	d, _ = d.Update(runes("/"))
	d, _ = d.Update(runes("zzz"))
	assert.Empty(t, d.Functions())

	d.SetDetail(fmtDetail())
	assert.False(t, d.IsFiltering())
	assert.Len(t, d.Functions(), 24)
}

func TestRenderDetailBody(t *testing.T) {
	detail := fmtDetail()

	body := RenderDetailBody(detail, detail.Functions, false, 80)
	assert.Contains(t, body, "Description")
	assert.Contains(t, body, "Errorf formats according to a format specifier.")
	assert.Contains(t, body, catalog.TypesPlaceholder)
	assert.Contains(t, body, "https://pkg.go.dev/fmt@go1.25")

	body = RenderDetailBody(detail, nil, true, 80)
	assert.Contains(t, body, NoMatchingFunctions)

	detail.Functions = nil
	body = RenderDetailBody(detail, nil, false, 80)
	assert.Contains(t, body, catalog.NoExportedFunctions)
	assert.Contains(t, body, "Functions (0)")
}
