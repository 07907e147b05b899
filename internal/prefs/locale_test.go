package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLocaleSlotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locale")
	slot := NewLocaleSlotAt(path)

	if _, err := slot.Load(); err == nil {
		t.Fatal("loading a missing slot should error")
	}

	if err := slot.Save("es"); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := slot.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "es" {
		t.Fatalf("expected es, got %q", got)
	}
	if slot.Key() != path {
		t.Fatalf("key should be the slot path, got %q", slot.Key())
	}
}

func TestSaveReplacesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locale")
	slot := NewLocaleSlotAt(path)

	if err := slot.Save("en"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := slot.Save("es"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ := slot.Load()
	if got != "es" {
		t.Fatalf("expected es after overwrite, got %q", got)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatal("tmp file should not survive a save")
	}
}
