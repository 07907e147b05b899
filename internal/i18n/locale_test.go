package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseResolvesSupportedLocales(t *testing.T) {
	cases := []struct {
		in   string
		want language.Tag
		ok   bool
	}{
		{"en", language.English, true},
		{"es", language.Spanish, true},
		{"es-MX", language.Spanish, true},
		{"EN", language.English, true},
		{" en ", language.English, true},
		{"", language.Tag{}, false},
		{"not a tag", language.Tag{}, false},
		{"zz", language.Tag{}, false},
	}
	for _, tc := range cases {
		got, ok := Parse(tc.in)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("Parse(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAttrNilSafety(t *testing.T) {
	var a *Attr
	a.Set(language.English) // must not panic
	if a.Get() != "" {
		t.Fatal("nil attr reads as empty")
	}
}

func TestCatalogFallsBackToEnglishAndKey(t *testing.T) {
	if got := T(language.Spanish, "tab.overview"); got != "Resumen" {
		t.Fatalf("expected Spanish label, got %q", got)
	}
	if got := T(language.Spanish, "status.ready"); got != "Listo" {
		t.Fatalf("expected Spanish status, got %q", got)
	}
	// unknown locale falls back to English
	if got := T(language.French, "tab.overview"); got != "Overview" {
		t.Fatalf("expected English fallback, got %q", got)
	}
	// unknown key echoes the key
	if got := T(language.English, "no.such.key"); got != "no.such.key" {
		t.Fatalf("expected key echo, got %q", got)
	}
}
