package prefs

import (
	"os"
	"path/filepath"
	"strings"
)

const localeFile = "locale"

// LocaleSlot persists the active locale as a plain string in the user
// config dir. It satisfies i18n.Slot.
type LocaleSlot struct {
	path string
}

// NewLocaleSlot resolves the slot path under the user config dir,
// creating the directory if needed.
func NewLocaleSlot() (*LocaleSlot, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	dir = filepath.Join(dir, "rentdesk")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocaleSlot{path: filepath.Join(dir, localeFile)}, nil
}

// NewLocaleSlotAt uses an explicit file path. Used by tests and by the
// watcher wiring, which needs the same path the slot writes to.
func NewLocaleSlotAt(path string) *LocaleSlot {
	return &LocaleSlot{path: path}
}

func (s *LocaleSlot) Key() string { return s.path }

func (s *LocaleSlot) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *LocaleSlot) Save(value string) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value+"\n"), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
