package core

import (
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

type DataLoadedMsg struct {
	Key  string
	Data any
	Err  error
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

// NavigateMsg asks the root model to switch to the tab owning Path.
type NavigateMsg struct {
	Path string
}

// LocaleEventMsg is the in-page locale-change event. Payload may carry an
// explicit locale; an empty or invalid payload makes the store re-resolve
// from its mirror channels.
type LocaleEventMsg struct {
	Payload string
}

// LocaleStorageMsg is the cross-process storage-change notification,
// carrying the key (file path) that changed.
type LocaleStorageMsg struct {
	Key string
}

// LocaleAppliedMsg reports the locale the store settled on, so tabs can
// re-render.
type LocaleAppliedMsg struct {
	Tag language.Tag
}

// ShowHelpMsg signals the shortcuts-help overlay with no payload.
type ShowHelpMsg struct{}

// chordExpiredMsg un-arms the chord whose arming scheduled it.
type chordExpiredMsg struct {
	Seq int
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
