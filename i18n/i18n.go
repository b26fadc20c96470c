// Package i18n holds the site's two static locale tables and the rules for
// picking one per request.
package i18n

import (
	"strconv"
	"strings"
	"time"
)

type Locale string

const (
	English Locale = "en"
	Spanish Locale = "es"

	Default = English

	// CookieName is where the visitor's explicit choice is persisted.
	CookieName = "language"

	yearPlaceholder = "{year}"
)

// Supported reports whether s names one of the bundled locales.
func Supported(s string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, true
	case Spanish:
		return Spanish, true
	}
	return "", false
}

// Resolve picks the locale for a request: a persisted choice wins, then a
// browser language starting with "es", then English.
func Resolve(persisted, acceptLanguage string) Locale {
	if locale, ok := Supported(persisted); ok {
		return locale
	}
	if strings.HasPrefix(primaryLanguage(acceptLanguage), "es") {
		return Spanish
	}
	return Default
}

// primaryLanguage returns the first tag of an Accept-Language header, lowercased.
func primaryLanguage(header string) string {
	first, _, _ := strings.Cut(header, ",")
	first, _, _ = strings.Cut(first, ";")
	return strings.ToLower(strings.TrimSpace(first))
}

// Translator looks keys up in one locale's table.
type Translator struct {
	locale Locale
	now    func() time.Time
}

func New(locale Locale) Translator {
	if _, ok := tables[locale]; !ok {
		locale = Default
	}
	return Translator{locale: locale, now: time.Now}
}

// WithClock returns a copy of t that reads the current year from now.
func (t Translator) WithClock(now func() time.Time) Translator {
	t.now = now
	return t
}

func (t Translator) Locale() Locale {
	return t.locale
}

// T returns the translation for key, or key itself when there is none.
func (t Translator) T(key string) string {
	value, ok := tables[t.locale][key]
	if !ok || value == "" {
		return key
	}
	if strings.Contains(value, yearPlaceholder) {
		value = strings.ReplaceAll(value, yearPlaceholder, strconv.Itoa(t.now().Year()))
	}
	return value
}

// Keys lists the keys of key's numbered family, e.g. Keys("caseStudy.defaultInsight", 4).
func Keys(prefix string, n int) []string {
	keys := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		keys = append(keys, prefix+strconv.Itoa(i))
	}
	return keys
}
