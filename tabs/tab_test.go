package tabs

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmorel/rentdesk/core"
	"github.com/rmorel/rentdesk/internal/config"
	"github.com/rmorel/rentdesk/internal/i18n"
)

func TestCursorHandleAndClamp(t *testing.T) {
	var c cursor
	if !c.handle("j", 3) || c.pos != 1 {
		t.Fatalf("j should move down, pos=%d", c.pos)
	}
	c.handle("j", 3)
	c.handle("j", 3)
	if c.pos != 2 {
		t.Fatalf("cursor must stop at the last row, pos=%d", c.pos)
	}
	if !c.handle("k", 3) || c.pos != 1 {
		t.Fatalf("k should move up, pos=%d", c.pos)
	}
	if c.handle("x", 3) {
		t.Fatal("unrelated keys are not cursor moves")
	}
	c.clamp(1)
	if c.pos != 0 {
		t.Fatalf("clamp after shrink should pull the cursor in, pos=%d", c.pos)
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := fmtMoney(185000); got != "$1850.00" {
		t.Fatalf("fmtMoney: %q", got)
	}
	if got := fmtMoney(-505); got != "-$5.05" {
		t.Fatalf("fmtMoney negative: %q", got)
	}
	if got := shortID("0f8fad5b-d9cb-469f-a165-70867728950e"); got != "0f8fad5b" {
		t.Fatalf("shortID: %q", got)
	}
	if got := fmtDatePtr(nil); got != "-" {
		t.Fatalf("fmtDatePtr nil: %q", got)
	}
}

func TestSettingsTabEmitsLocaleEvent(t *testing.T) {
	tab := NewSettingsTab(config.Config{})
	m := core.NewModel([]core.Tab{tab}, core.NewKeyRegistry(nil), core.NewCommandRegistry(nil), core.NewChord(nil), i18n.New(i18n.Default(), nil, nil), nil)

	tab.Update(&m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	cmd := tab.Update(&m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on a locale option must emit a command")
	}
	ev, ok := cmd().(core.LocaleEventMsg)
	if !ok {
		t.Fatalf("expected LocaleEventMsg, got %T", cmd())
	}
	if ev.Payload != "es" {
		t.Fatalf("second option should carry the es payload, got %q", ev.Payload)
	}
}

func TestSettingsTabSystemDefaultSendsEmptyPayload(t *testing.T) {
	tab := NewSettingsTab(config.Config{})
	m := core.NewModel([]core.Tab{tab}, core.NewKeyRegistry(nil), core.NewCommandRegistry(nil), core.NewChord(nil), i18n.New(i18n.Default(), nil, nil), nil)

	for i := 0; i < 2; i++ {
		tab.Update(&m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	}
	cmd := tab.Update(&m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter must emit a command")
	}
	ev, ok := cmd().(core.LocaleEventMsg)
	if !ok || ev.Payload != "" {
		t.Fatalf("system default should re-resolve via an empty payload, got %#v", cmd())
	}
}
