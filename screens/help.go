package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rmorel/rentdesk/core"
)

var (
	helpKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
)

// HelpRow is one key/description pair on the shortcuts overlay.
type HelpRow struct {
	Key  string
	Desc string
}

// HelpScreen lists keyboard shortcuts and the jump targets behind the
// leader key. Content is localized by the caller at open time so a locale
// switch re-renders it on the next open.
type HelpScreen struct {
	title string
	hint  string
	rows  []HelpRow
}

func NewHelpScreen(title, hint string, rows []HelpRow) *HelpScreen {
	return &HelpScreen{title: title, hint: hint, rows: rows}
}

func (s *HelpScreen) Title() string { return s.title }
func (s *HelpScreen) Scope() string { return "screen:help" }

// InputFocused marks the overlay as a non-input context so global keys
// stay live while it is open.
func (s *HelpScreen) InputFocused() bool { return false }

func (s *HelpScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "?":
			return s, nil, true
		}
	}
	return s, nil, false
}

func (s *HelpScreen) View(width, height int) string {
	keyWidth := 0
	for _, r := range s.rows {
		if len(r.Key) > keyWidth {
			keyWidth = len(r.Key)
		}
	}
	lines := make([]string, 0, len(s.rows)+3)
	lines = append(lines, helpKeyStyle.Render(s.title), "")
	for _, r := range s.rows {
		pad := strings.Repeat(" ", keyWidth-len(r.Key))
		lines = append(lines, helpKeyStyle.Render(r.Key)+pad+"  "+helpDescStyle.Render(r.Desc))
	}
	lines = append(lines, "", helpDescStyle.Render(s.hint))
	for i := range lines {
		lines[i] = core.TrimToWidth(lines[i], core.MaxInt(20, width))
	}
	return core.ClipHeight(strings.Join(lines, "\n"), core.MaxInt(6, height))
}
