package tabs

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmorel/rentdesk/core"
	"github.com/rmorel/rentdesk/internal/config"
	"github.com/rmorel/rentdesk/widgets"
)

type localeOption struct {
	Payload string
	Label   string
}

// SettingsTab switches the UI language. Selecting an option emits the
// locale-change event; an empty payload asks the store to re-resolve
// from its mirrors instead of forcing a language.
type SettingsTab struct {
	options []localeOption
	cur     cursor
	cfg     config.Config
}

func NewSettingsTab(cfg config.Config) *SettingsTab {
	return &SettingsTab{
		cfg: cfg,
		options: []localeOption{
			{Payload: "en", Label: "English"},
			{Payload: "es", Label: "Español"},
			{Payload: "", Label: "System default"},
		},
	}
}

func (t *SettingsTab) ID() string       { return "settings" }
func (t *SettingsTab) Path() string     { return "/settings" }
func (t *SettingsTab) TitleKey() string { return "tab.settings" }
func (t *SettingsTab) Scope() string    { return "tab:settings" }

func (t *SettingsTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if t.cur.handle(key.String(), len(t.options)) {
		return nil
	}
	switch key.String() {
	case "enter":
		payload := t.options[t.cur.pos].Payload
		return func() tea.Msg { return core.LocaleEventMsg{Payload: payload} }
	case "w":
		// persist the active language as the config-file default
		cfg := t.cfg
		cfg.UI.Locale = m.Locale().String()
		saved := m.T("status.settings.saved")
		return func() tea.Msg {
			if err := config.Save(cfg); err != nil {
				return core.ErrorCmd(err)()
			}
			t.cfg = cfg
			return core.StatusMsg{Text: saved}
		}
	}
	return nil
}

func (t *SettingsTab) Build(m *core.Model) widgets.Widget {
	current := m.Locale().String()
	lines := make([]string, 0, len(t.options)+2)
	lines = append(lines, "Language: "+current, "")
	for i, opt := range t.options {
		marker := "  "
		if i == t.cur.pos {
			marker = "> "
		}
		active := ""
		if opt.Payload == current {
			active = " •"
		}
		lines = append(lines, marker+opt.Label+active)
	}
	lines = append(lines, "", "enter apply  w save as default")
	return widgets.Box{Title: m.T("tab.settings"), Content: strings.Join(lines, "\n")}
}
