// Package i18n resolves user-visible strings for a locale.
//
// The locale is always an explicit value; nothing here reads the
// environment or keeps mutable global state.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale selects the output language.
type Locale uint8

const (
	English Locale = iota
	Japanese
)

var supported = []language.Tag{language.English, language.Japanese}

var matcher = language.NewMatcher(supported)

// Locales lists every supported locale.
func Locales() []Locale {
	return []Locale{English, Japanese}
}

// Tag returns the BCP 47 tag of the locale.
func (l Locale) Tag() language.Tag {
	if int(l) < len(supported) {
		return supported[l]
	}
	return language.English
}

func (l Locale) String() string {
	switch l {
	case Japanese:
		return "ja"
	default:
		return "en"
	}
}

// ParseLocale accepts "en", "ja" and regional or POSIX-style variants such
// as "ja-JP" or "en_US.UTF-8".
func ParseLocale(s string) (Locale, error) {
	raw := strings.TrimSpace(s)
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.ReplaceAll(raw, "_", "-")

	tag, err := language.Parse(raw)
	if err != nil {
		return English, fmt.Errorf("unsupported language %q (use en or ja)", s)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return English, fmt.Errorf("unsupported language %q (use en or ja)", s)
	}
	return Locale(idx), nil
}
