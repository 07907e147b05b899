package i18n

import (
	"errors"
	"testing"

	"golang.org/x/text/language"
)

type fakeSlot struct {
	key     string
	value   string
	loadErr error
	saveErr error
	saves   []string
}

func (s *fakeSlot) Key() string { return s.key }
func (s *fakeSlot) Load() (string, error) {
	if s.loadErr != nil {
		return "", s.loadErr
	}
	return s.value, nil
}
func (s *fakeSlot) Save(v string) error {
	s.saves = append(s.saves, v)
	if s.saveErr != nil {
		return s.saveErr
	}
	s.value = v
	return nil
}

func TestNewMirrorsSeed(t *testing.T) {
	slot := &fakeSlot{key: "k"}
	attr := &Attr{}
	s := New(language.Spanish, slot, attr)

	if s.Current() != language.Spanish {
		t.Fatalf("seed should be current, got %v", s.Current())
	}
	if attr.Get() != "es" {
		t.Fatalf("seed should mirror to the attribute, got %q", attr.Get())
	}
	if slot.value != "es" {
		t.Fatalf("seed should mirror to the slot, got %q", slot.value)
	}
}

func TestApplyValidPayloadWins(t *testing.T) {
	slot := &fakeSlot{key: "k", value: "en"}
	attr := &Attr{}
	attr.Set(language.English)
	s := New(language.English, slot, attr)

	s.Apply("es")
	if s.Current() != language.Spanish {
		t.Fatalf("explicit payload should win over every mirror, got %v", s.Current())
	}
	if attr.Get() != "es" || slot.value != "es" {
		t.Fatal("new locale should mirror back out")
	}
}

func TestApplyInvalidPayloadFallsBackToAttr(t *testing.T) {
	slot := &fakeSlot{key: "k", value: "en"}
	attr := &Attr{}
	s := New(language.English, slot, attr)
	attr.Set(language.Spanish)

	s.Apply("not-a-locale")
	if s.Current() != language.Spanish {
		t.Fatalf("invalid payload should resolve from the attribute, got %v", s.Current())
	}
}

func TestApplyEmptyPayloadFallsBackToSlot(t *testing.T) {
	attr := &Attr{}
	slot := &fakeSlot{key: "k"}
	s := New(language.English, slot, attr)

	// attribute holds garbage, slot holds a valid saved preference
	attr.v.Store("zz-bogus")
	slot.value = "es"
	s.Apply("")
	if s.Current() != language.Spanish {
		t.Fatalf("empty payload should resolve from the slot, got %v", s.Current())
	}
}

func TestApplyFallsBackToDefaultWhenAllMirrorsInvalid(t *testing.T) {
	attr := &Attr{}
	slot := &fakeSlot{key: "k", loadErr: errors.New("storage gone")}
	s := New(language.Spanish, slot, attr)

	attr.v.Store("")
	s.Apply("")
	if s.Current() != Default() {
		t.Fatalf("everything invalid should land on the default, got %v", s.Current())
	}
}

func TestSaveFailureIsSilentlyIgnored(t *testing.T) {
	slot := &fakeSlot{key: "k", saveErr: errors.New("disk full")}
	s := New(language.English, slot, &Attr{})

	s.Apply("es")
	if s.Current() != language.Spanish {
		t.Fatalf("in-memory locale must change even when the slot write fails, got %v", s.Current())
	}
}

func TestStorageChangedIgnoresForeignKeys(t *testing.T) {
	slot := &fakeSlot{key: "mine"}
	s := New(language.English, slot, nil)
	slot.value = "es"

	s.StorageChanged("theirs")
	if s.Current() != language.English {
		t.Fatalf("a foreign key must never alter the locale, got %v", s.Current())
	}

	s.StorageChanged("mine")
	if s.Current() != language.Spanish {
		t.Fatalf("own-key change should re-resolve, got %v", s.Current())
	}
}

func TestStorageChangedWithInvalidValueFallsBack(t *testing.T) {
	slot := &fakeSlot{key: "mine"}
	s := New(language.Spanish, slot, nil)
	slot.value = "???"

	s.StorageChanged("mine")
	if s.Current() != Default() {
		t.Fatalf("invalid stored value is treated as absent, got %v", s.Current())
	}
}

func TestReinitRepeatIsNoOp(t *testing.T) {
	s := New(language.English, nil, nil)
	notified := 0
	s.Subscribe(func(language.Tag) { notified++ })

	s.Reinit(language.English)
	if notified != 0 {
		t.Fatal("re-seeding the same value must not notify")
	}

	s.Reinit(language.Spanish)
	if notified != 1 || s.Current() != language.Spanish {
		t.Fatalf("changed seed should apply and notify once, notified=%d", notified)
	}
}

func TestSubscribeAndCancel(t *testing.T) {
	s := New(language.English, nil, nil)
	var got []language.Tag
	cancel := s.Subscribe(func(tag language.Tag) { got = append(got, tag) })

	s.Apply("es")
	s.Apply("es") // same value, no second notification
	if len(got) != 1 || got[0] != language.Spanish {
		t.Fatalf("expected a single notification for one replacement, got %v", got)
	}

	cancel()
	s.Apply("en")
	if len(got) != 1 {
		t.Fatal("cancelled subscriber must not be notified")
	}
}
