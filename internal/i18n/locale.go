package i18n

import (
	"strings"
	"sync/atomic"

	"golang.org/x/text/language"
)

// Supported locales. English is the compiled-in default.
var supported = []language.Tag{
	language.English,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

// Default returns the compiled-in fallback locale.
func Default() language.Tag { return supported[0] }

// Supported returns the fixed set of locales the app ships messages for.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Parse resolves value to a supported locale. Unrecognized, malformed or
// empty values report ok=false and are treated as absent by callers.
func Parse(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Tag{}, false
	}
	return supported[idx], true
}

// Attr is a process-wide display-language attribute. It mirrors whatever
// locale the Store last applied so that renderers can read it without
// holding a reference to the store.
type Attr struct {
	v atomic.Value // string
}

func (a *Attr) Set(tag language.Tag) {
	if a == nil {
		return
	}
	a.v.Store(tag.String())
}

func (a *Attr) Get() string {
	if a == nil {
		return ""
	}
	s, _ := a.v.Load().(string)
	return s
}
