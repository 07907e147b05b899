package core

import (
	"database/sql"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/rmorel/rentdesk/internal/i18n"
	"github.com/rmorel/rentdesk/widgets"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

type Tab interface {
	ID() string
	Path() string
	TitleKey() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

type TabInitializer interface {
	InitTab(m *Model) tea.Cmd
}

// InputCapturer reports whether a text entry currently has focus. The
// root model asks fresh on every key-down; nothing is cached.
type InputCapturer interface {
	InputFocused() bool
}

// GlobalEscaper lets a tab react to the global escape binding (clear a
// transient filter, drop an in-progress edit).
type GlobalEscaper interface {
	OnGlobalEscape(m *Model) tea.Cmd
}

type Model struct {
	width     int
	height    int
	tabs      []Tab
	activeTab int
	screens   ScreenStack
	keys      *KeyRegistry
	commands  *CommandRegistry
	chord     *Chord
	locales   *i18n.Store
	locale    language.Tag
	status    string
	statusErr bool
	quitting  bool

	DB               *sql.DB
	OpenCommandModal func(m *Model, scope string) Screen
	OpenHelpModal    func(m *Model) Screen
}

func NewModel(tabs []Tab, keys *KeyRegistry, commands *CommandRegistry, chord *Chord, locales *i18n.Store, db *sql.DB) Model {
	m := Model{
		tabs:     tabs,
		keys:     keys,
		commands: commands,
		chord:    chord,
		locales:  locales,
		locale:   locales.Current(),
		DB:       db,
		width:    100,
		height:   32,
	}
	m.status = m.T("status.ready")
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		if initTab, ok := t.(TabInitializer); ok {
			if cmd := initTab.InitTab(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

// Locale returns the rendering locale snapshot.
func (m Model) Locale() language.Tag { return m.locale }

// T renders a catalog message in the active locale.
func (m Model) T(key string) string { return i18n.T(m.locale, key) }

// ChordArmed exposes the in-progress chord state for UI feedback.
func (m Model) ChordArmed() bool { return m.chord.Armed() }

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if len(m.tabs) == 0 {
		return "app"
	}
	return m.tabs[m.activeTab].Scope()
}

func (m *Model) SwitchTab(index int) {
	if index < 0 || index >= len(m.tabs) {
		return
	}
	m.activeTab = index
}

// Navigate switches to the tab owning path. Unknown paths do nothing.
func (m *Model) Navigate(path string) tea.Cmd {
	for i, t := range m.tabs {
		if t.Path() == path {
			m.SwitchTab(i)
			return StatusCmd(m.T(t.TitleKey()))
		}
	}
	return nil
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

// inputFocused reports whether the pressed key belongs to a focused text
// entry. Overlay screens count as input contexts unless they say
// otherwise; tabs opt in via InputCapturer.
func (m *Model) inputFocused() bool {
	if top := m.screens.Top(); top != nil {
		if ic, ok := top.(InputCapturer); ok {
			return ic.InputFocused()
		}
		return true
	}
	if len(m.tabs) > 0 {
		if ic, ok := m.tabs[m.activeTab].(InputCapturer); ok {
			return ic.InputFocused()
		}
	}
	return false
}
