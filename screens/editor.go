package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmorel/rentdesk/core"
)

// Field describes one text entry on a form.
type Field struct {
	Name        string
	Label       string
	Placeholder string
	Initial     string
}

// FormScreen is a vertical stack of text inputs used for creating and
// editing records. Tab/shift+tab move focus, enter submits, esc cancels.
type FormScreen struct {
	title    string
	fields   []Field
	inputs   []textinput.Model
	focused  int
	onSubmit func(values map[string]string) tea.Msg
}

func NewFormScreen(title string, fields []Field, onSubmit func(values map[string]string) tea.Msg) *FormScreen {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		inp := textinput.New()
		inp.Placeholder = f.Placeholder
		inp.Prompt = ""
		inp.SetValue(f.Initial)
		inp.CharLimit = 128
		if i == 0 {
			inp.Focus()
		}
		inputs[i] = inp
	}
	return &FormScreen{title: title, fields: fields, inputs: inputs, onSubmit: onSubmit}
}

func (s *FormScreen) Title() string { return s.title }
func (s *FormScreen) Scope() string { return "screen:form" }

func (s *FormScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, nil, true
		case "tab", "down":
			s.setFocus((s.focused + 1) % len(s.inputs))
			return s, nil, false
		case "shift+tab", "up":
			s.setFocus((s.focused - 1 + len(s.inputs)) % len(s.inputs))
			return s, nil, false
		case "enter":
			if s.focused < len(s.inputs)-1 {
				s.setFocus(s.focused + 1)
				return s, nil, false
			}
			values := make(map[string]string, len(s.fields))
			for i, f := range s.fields {
				values[f.Name] = strings.TrimSpace(s.inputs[i].Value())
			}
			if s.onSubmit != nil {
				return s, func() tea.Msg { return s.onSubmit(values) }, true
			}
			return s, nil, true
		}
	}
	var cmd tea.Cmd
	s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
	return s, cmd, false
}

func (s *FormScreen) setFocus(index int) {
	s.inputs[s.focused].Blur()
	s.focused = index
	s.inputs[s.focused].Focus()
}

func (s *FormScreen) View(width, height int) string {
	lines := make([]string, 0, len(s.fields)*2+2)
	lines = append(lines, s.title, "")
	for i, f := range s.fields {
		marker := "  "
		if i == s.focused {
			marker = "> "
		}
		lines = append(lines, marker+f.Label+": "+s.inputs[i].View())
	}
	lines = append(lines, "", "enter save · esc cancel")
	return strings.Join(lines, "\n")
}
