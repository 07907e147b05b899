package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RENTDESK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI.Locale != "en" {
		t.Fatalf("default locale should be en, got %q", cfg.UI.Locale)
	}
	if cfg.Database.Path == "" {
		t.Fatal("default db path must not be empty")
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[database]\npath = \"/tmp/custom.db\"\n\n[ui]\nlocale = \"es\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("RENTDESK_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.Path != "/tmp/custom.db" {
		t.Fatalf("db path not read, got %q", cfg.Database.Path)
	}
	if cfg.UI.Locale != "es" {
		t.Fatalf("locale not read, got %q", cfg.UI.Locale)
	}
	if cfg.UI.DateFormat != "02 Jan 2006" {
		t.Fatalf("unset keys keep their defaults, got %q", cfg.UI.DateFormat)
	}
}

func TestSaveRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("RENTDESK_CONFIG", path)

	want := Config{
		Database: DatabaseConfig{Path: "/tmp/rt.db"},
		UI:       UIConfig{Locale: "es", DateFormat: "2006-01-02", CurrencySymbol: "€"},
	}
	if err := Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}
