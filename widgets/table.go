package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	tableCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#89b4fa"))
	tableRowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
)

// Table renders aligned columns with an optional cursor row. Cursor < 0
// disables highlighting.
type Table struct {
	Headers []string
	Rows    [][]string
	Cursor  int
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(t.Headers) == 0 {
		return "No data"
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = ansi.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := ansi.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	render := func(row []string) string {
		cols := make([]string, len(t.Headers))
		for i := range t.Headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cols[i] = padRight(cell, widths[i])
		}
		return ansi.Truncate(strings.Join(cols, "  "), width, "")
	}

	lines := []string{tableHeaderStyle.Render(render(t.Headers))}
	for i, row := range t.Rows {
		line := render(row)
		if i == t.Cursor {
			line = tableCursorStyle.Render(line)
		} else {
			line = tableRowStyle.Render(line)
		}
		lines = append(lines, line)
		if len(lines) >= height {
			break
		}
	}
	return strings.Join(lines, "\n")
}
