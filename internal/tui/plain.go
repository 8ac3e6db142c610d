package tui

import (
	"strings"

	"github.com/mmcdole/godex/internal/catalog"
	"github.com/mmcdole/godex/internal/service"
	"github.com/mmcdole/godex/internal/tui/components"
	"github.com/mmcdole/godex/internal/tui/styles"
)

// RenderPlainTable renders rows for non-interactive output, one per line
func RenderPlainTable(rows []service.Row, width int) string {
	width = max(width, 40)
	nameWidth := width * components.NameColumnPercent / 100

	var b strings.Builder
	for _, row := range rows {
		if row.NoMatch {
			b.WriteString(styles.DimStyle.Render(row.Synopsis))
			b.WriteString("\n")
			continue
		}
		b.WriteString(styles.AccentStyle.Render(styles.Pad(row.Name, nameWidth)))
		b.WriteString(" ")
		b.WriteString(styles.Truncate(row.Synopsis, width-nameWidth-1))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderPlainDetail renders a package detail for non-interactive output
func RenderPlainDetail(detail catalog.PackageDetail, width int) string {
	body := components.RenderDetailBody(detail, detail.Functions, false, max(width, 40))
	return styles.TitleStyle.Render(detail.Title) + "\n\n" + body + "\n"
}
