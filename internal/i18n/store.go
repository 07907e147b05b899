package i18n

import (
	"sync"

	"golang.org/x/text/language"
)

// Slot is the durable storage channel for the active locale. Absence and
// read/write failures are treated as "no value"; the store keeps working
// purely in memory.
type Slot interface {
	Key() string
	Load() (string, error)
	Save(string) error
}

// Store owns the process-wide current locale. It is seeded from the
// startup-supplied value and thereafter changed only through Apply
// (explicit change event), StorageChanged (cross-process notification for
// its own slot key) or Reinit (startup value changed across reloads).
// The value is always replaced whole, never partially updated.
type Store struct {
	mu      sync.Mutex
	current language.Tag
	initial language.Tag
	slot    Slot
	attr    *Attr
	subs    map[int]func(language.Tag)
	nextSub int
}

// New seeds the store with the startup-supplied locale, so the first read
// matches what the caller rendered with. The seed is mirrored out to the
// attribute and slot immediately.
func New(initial language.Tag, slot Slot, attr *Attr) *Store {
	s := &Store{
		current: initial,
		initial: initial,
		slot:    slot,
		attr:    attr,
		subs:    make(map[int]func(language.Tag)),
	}
	s.mirror(initial)
	return s
}

// Current returns the active locale.
func (s *Store) Current() language.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Reinit applies a changed startup-supplied value synchronously. A repeat
// of the value already seeded is a no-op, so observers are not re-notified
// on every reload.
func (s *Store) Reinit(tag language.Tag) {
	s.mu.Lock()
	if tag == s.initial {
		s.mu.Unlock()
		return
	}
	s.initial = tag
	subs := s.replaceLocked(tag)
	s.mu.Unlock()
	s.notify(subs, tag)
}

// Apply handles an explicit locale-change event. A valid payload wins
// outright; an invalid or empty payload falls through the precedence
// chain: display attribute, then slot, then default.
func (s *Store) Apply(payload string) {
	if tag, ok := Parse(payload); ok {
		s.set(tag)
		return
	}
	s.set(s.resolve())
}

// StorageChanged handles a cross-process change notification. Keys other
// than the store's own slot key never alter the locale.
func (s *Store) StorageChanged(key string) {
	if s.slot == nil || key != s.slot.Key() {
		return
	}
	s.set(s.resolve())
}

// Subscribe registers an observer for locale replacements. The returned
// cancel removes it. Observers run outside the store lock.
func (s *Store) Subscribe(fn func(language.Tag)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// resolve re-derives the locale from the mirror channels in precedence
// order: attribute, slot, compiled-in default.
func (s *Store) resolve() language.Tag {
	if s.attr != nil {
		if tag, ok := Parse(s.attr.Get()); ok {
			return tag
		}
	}
	if s.slot != nil {
		if raw, err := s.slot.Load(); err == nil {
			if tag, ok := Parse(raw); ok {
				return tag
			}
		}
	}
	return Default()
}

func (s *Store) set(tag language.Tag) {
	s.mu.Lock()
	if tag == s.current {
		s.mu.Unlock()
		return
	}
	subs := s.replaceLocked(tag)
	s.mu.Unlock()
	s.notify(subs, tag)
}

func (s *Store) replaceLocked(tag language.Tag) []func(language.Tag) {
	s.current = tag
	s.mirror(tag)
	subs := make([]func(language.Tag), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}

func (s *Store) mirror(tag language.Tag) {
	if s.attr != nil {
		s.attr.Set(tag)
	}
	if s.slot != nil {
		// storage may be unavailable; in-memory state is unaffected
		_ = s.slot.Save(tag.String())
	}
}

func (s *Store) notify(subs []func(language.Tag), tag language.Tag) {
	for _, fn := range subs {
		fn(tag)
	}
}
