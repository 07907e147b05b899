package widgets

import "github.com/charmbracelet/lipgloss"

var (
	boxBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#585b70")).
			Padding(0, 1)
	boxTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
)

// Box frames a pane with a rounded border and a bracketed title line.
type Box struct {
	Title   string
	Content string
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	body := b.Content
	if b.Title != "" {
		body = boxTitleStyle.Render("["+b.Title+"]") + "\n" + body
	}
	return boxBorderStyle.
		Width(width - 2).
		Height(max(1, height-2)).
		Render(body)
}
