package core

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case DataLoadedMsg:
		if msg.Err != nil {
			m.SetError(msg.Err)
			return m, nil
		}
		// every tab filters by Key, so fan out
		cmds := make([]tea.Cmd, 0, len(m.tabs))
		for _, t := range m.tabs {
			if cmd := t.Update(&m, msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case NavigateMsg:
		return m, m.Navigate(msg.Path)
	case LocaleEventMsg:
		m.locales.Apply(msg.Payload)
		m.locale = m.locales.Current()
		return m, StatusCmd(m.T("status.locale.set"))
	case LocaleStorageMsg:
		m.locales.StorageChanged(msg.Key)
		m.locale = m.locales.Current()
		return m, nil
	case LocaleAppliedMsg:
		m.locale = msg.Tag
		return m, nil
	case ShowHelpMsg:
		if m.OpenHelpModal != nil {
			m.screens.Push(m.OpenHelpModal(&m))
		}
		return m, nil
	case chordExpiredMsg:
		if m.chord.Expire(msg.Seq) {
			m.SetStatus(m.T("status.ready"))
		}
		return m, nil
	case tea.KeyMsg:
		return m.routeKey(msg)
	}

	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop()
			return m, cmd
		}
		m.screens.ReplaceTop(next)
		return m, cmd
	}
	if len(m.tabs) > 0 {
		return m, m.tabs[m.activeTab].Update(&m, msg)
	}
	return m, nil
}

func (m Model) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	scope := m.ActiveScope()

	// ctrl+k is unconditional: it works mid-chord and over any overlay
	// except the palette itself, and never touches chord state.
	if m.keys.IsAction(msg, "open-command-palette", scope) {
		if !m.screens.HasScope("screen:command") && m.OpenCommandModal != nil {
			m.screens.Push(m.OpenCommandModal(&m, scope))
		}
		return m, nil
	}

	// overlay screens capture everything else while open
	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop()
			return m, cmd
		}
		m.screens.ReplaceTop(next)
		return m, cmd
	}

	// guard state is re-read on every key-down, never cached
	inputFocused := m.inputFocused()
	modified := msg.Alt || strings.HasPrefix(msg.String(), "ctrl+")

	switch d := m.chord.HandleKey(msg.String(), modified, inputFocused); {
	case d.Armed:
		m.SetStatus(m.T("status.chord.armed"))
		seq := d.Seq
		return m, tea.Tick(ChordTimeout, func(time.Time) tea.Msg {
			return chordExpiredMsg{Seq: seq}
		})
	case d.Path != "":
		// mapped follow-up: consume the key outright
		return m, m.Navigate(d.Path)
	case d.Consumed:
		// unmapped follow-up: un-arm and do nothing further
		m.SetStatus(m.T("status.chord.nomap"))
		return m, nil
	}

	if !inputFocused {
		if m.keys.IsAction(msg, "help", scope) {
			return m, func() tea.Msg { return ShowHelpMsg{} }
		}
		if m.keys.IsAction(msg, "escape", scope) {
			if len(m.tabs) > 0 {
				if esc, ok := m.tabs[m.activeTab].(GlobalEscaper); ok {
					return m, esc.OnGlobalEscape(&m)
				}
			}
			return m, nil
		}
		if m.keys.IsAction(msg, "quit", scope) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	if len(m.tabs) > 0 {
		return m, m.tabs[m.activeTab].Update(&m, msg)
	}
	return m, nil
}
