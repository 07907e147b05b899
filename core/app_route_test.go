package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmorel/rentdesk/internal/i18n"
	"github.com/rmorel/rentdesk/widgets"
)

type stubTab struct {
	id       string
	path     string
	received []string
	focused  bool
	escaped  int
}

func (t *stubTab) ID() string       { return t.id }
func (t *stubTab) Path() string     { return t.path }
func (t *stubTab) TitleKey() string { return "tab." + t.id }
func (t *stubTab) Scope() string    { return "tab:" + t.id }
func (t *stubTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		t.received = append(t.received, k.String())
	}
	return nil
}
func (t *stubTab) Build(m *Model) widgets.Widget {
	return widgets.Box{Title: t.id, Content: t.id}
}
func (t *stubTab) InputFocused() bool { return t.focused }
func (t *stubTab) OnGlobalEscape(m *Model) tea.Cmd {
	t.escaped++
	return nil
}

type stubScreen struct {
	scope string
}

func (s *stubScreen) Title() string        { return s.scope }
func (s *stubScreen) Scope() string        { return s.scope }
func (s *stubScreen) View(int, int) string { return s.scope }
func (s *stubScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return s, nil, true
	}
	return s, nil, false
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "ctrl+k":
		return tea.KeyMsg{Type: tea.KeyCtrlK}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func newRouteModel(t *testing.T) (Model, *stubTab, *stubTab, *Chord) {
	t.Helper()
	overview := &stubTab{id: "overview", path: "/overview"}
	properties := &stubTab{id: "properties", path: "/properties"}
	chord := NewChord(map[string]string{"o": "/overview", "p": "/properties"})
	store := i18n.New(i18n.Default(), nil, nil)
	m := NewModel([]Tab{overview, properties}, NewKeyRegistry(DefaultKeyBindings()), NewCommandRegistry(nil), chord, store, nil)
	m.OpenCommandModal = func(m *Model, scope string) Screen {
		return &stubScreen{scope: "screen:command"}
	}
	m.OpenHelpModal = func(m *Model) Screen {
		return &stubScreen{scope: "screen:help"}
	}
	return m, overview, properties, chord
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestChordNavigatesToMappedTab(t *testing.T) {
	m, _, properties, chord := newRouteModel(t)

	m, cmd := update(t, m, keyMsg("g"))
	if !chord.Armed() {
		t.Fatal("leader should arm the chord")
	}
	if cmd == nil {
		t.Fatal("arming must schedule an expiry")
	}

	m, _ = update(t, m, keyMsg("p"))
	if chord.Armed() {
		t.Fatal("completed chord should disarm")
	}
	if m.activeTab != 1 {
		t.Fatalf("expected properties tab active, got index %d", m.activeTab)
	}
	if len(properties.received) != 0 {
		t.Fatalf("chord follow-up must not reach the tab, tab saw %v", properties.received)
	}
}

func TestChordUnmappedKeyIsSwallowed(t *testing.T) {
	m, overview, _, chord := newRouteModel(t)

	m, _ = update(t, m, keyMsg("g"))
	m, _ = update(t, m, keyMsg("q"))
	if m.quitting {
		t.Fatal("unmapped follow-up must not fall through to the quit binding")
	}
	if chord.Armed() {
		t.Fatal("unmapped follow-up should disarm")
	}
	if len(overview.received) != 0 {
		t.Fatalf("swallowed key must not reach the tab, tab saw %v", overview.received)
	}

	// with the chord idle again, q quits normally
	m, _ = update(t, m, keyMsg("q"))
	if !m.quitting {
		t.Fatal("quit should work once the chord is idle")
	}
}

func TestLeaderThenLeaderCancelsWithoutSideEffects(t *testing.T) {
	m, overview, _, chord := newRouteModel(t)

	m, _ = update(t, m, keyMsg("g"))
	m, _ = update(t, m, keyMsg("g"))
	if chord.Armed() {
		t.Fatal("second leader should cancel the chord")
	}
	if len(overview.received) != 0 {
		t.Fatalf("cancelling leader must not reach the tab, tab saw %v", overview.received)
	}

	// afterwards a plain p is an ordinary tab key, not a navigation
	m, _ = update(t, m, keyMsg("p"))
	if m.activeTab != 0 {
		t.Fatal("p after a cancelled chord must not navigate")
	}
}

func TestCtrlKOpensPaletteWithoutTouchingChord(t *testing.T) {
	m, _, _, chord := newRouteModel(t)

	m, _ = update(t, m, keyMsg("g"))
	m, _ = update(t, m, keyMsg("ctrl+k"))
	if m.screens.Len() != 1 || m.screens.Top().Scope() != "screen:command" {
		t.Fatalf("ctrl+k should push the palette, stack len %d", m.screens.Len())
	}
	if !chord.Armed() {
		t.Fatal("ctrl+k must leave the armed chord untouched")
	}

	// a second ctrl+k over the open palette is a no-op
	m, _ = update(t, m, keyMsg("ctrl+k"))
	if m.screens.Len() != 1 {
		t.Fatalf("ctrl+k must not stack palettes, stack len %d", m.screens.Len())
	}
}

func TestInputFocusSuppressesGlobalKeys(t *testing.T) {
	m, overview, _, chord := newRouteModel(t)
	overview.focused = true

	m, _ = update(t, m, keyMsg("g"))
	if chord.Armed() {
		t.Fatal("leader must not arm while an input is focused")
	}
	m, _ = update(t, m, keyMsg("?"))
	if m.screens.Len() != 0 {
		t.Fatal("help must not open while an input is focused")
	}
	m, _ = update(t, m, keyMsg("q"))
	if m.quitting {
		t.Fatal("quit must not fire while an input is focused")
	}
	if len(overview.received) != 3 {
		t.Fatalf("focused input should receive every key, tab saw %v", overview.received)
	}
}

func TestHelpKeyOpensOverlayWhenIdle(t *testing.T) {
	m, _, _, _ := newRouteModel(t)

	m, cmd := update(t, m, keyMsg("?"))
	if cmd == nil {
		t.Fatal("? should produce a help command")
	}
	m, _ = update(t, m, cmd())
	if m.screens.Len() != 1 || m.screens.Top().Scope() != "screen:help" {
		t.Fatal("help overlay should be on top")
	}

	// esc closes it again
	m, _ = update(t, m, keyMsg("esc"))
	if m.screens.Len() != 0 {
		t.Fatal("esc should close the help overlay")
	}
}

func TestEscapeReachesTabWhenNoOverlay(t *testing.T) {
	m, overview, _, _ := newRouteModel(t)

	m, _ = update(t, m, keyMsg("esc"))
	if overview.escaped != 1 {
		t.Fatalf("tab should see one global escape, got %d", overview.escaped)
	}
	_ = m
}

func TestStaleChordExpiryIsIgnored(t *testing.T) {
	m, _, _, chord := newRouteModel(t)

	m, _ = update(t, m, keyMsg("g"))
	m, _ = update(t, m, keyMsg("p")) // completes the chord, seq moves on

	m, _ = update(t, m, chordExpiredMsg{Seq: 1})
	if chord.Armed() {
		t.Fatal("chord should stay disarmed")
	}
	if m.status == m.T("status.ready") {
		t.Fatal("stale expiry must not reset the status line")
	}

	// a live expiry does reset it
	m, _ = update(t, m, keyMsg("g"))
	m, _ = update(t, m, chordExpiredMsg{Seq: 3})
	if chord.Armed() {
		t.Fatal("live expiry should disarm the chord")
	}
	if m.status != m.T("status.ready") {
		t.Fatalf("live expiry should reset the status, got %q", m.status)
	}
}

func TestLocaleEventSwitchesRenderLocale(t *testing.T) {
	m, _, _, _ := newRouteModel(t)

	before := m.T("tab.overview")
	m, _ = update(t, m, LocaleEventMsg{Payload: "es"})
	after := m.T("tab.overview")
	if before == after {
		t.Fatalf("locale event should change rendered labels, still %q", after)
	}

	// invalid payload re-resolves to the default
	m, _ = update(t, m, LocaleEventMsg{Payload: "zz-bogus"})
	if got := m.T("tab.overview"); got != before {
		t.Fatalf("invalid payload should fall back to the default locale, got %q", got)
	}
}
