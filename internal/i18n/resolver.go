package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Store persists the preferred locale between runs
type Store interface {
	Load() (Locale, bool)
	Save(locale Locale) error
}

// Resolver picks the active locale: stored preference, then the system
// language, then DefaultLocale.
type Resolver struct {
	Store  Store
	Getenv func(string) string
}

// NewResolver creates a Resolver reading the process environment
func NewResolver(store Store) *Resolver {
	return &Resolver{Store: store, Getenv: os.Getenv}
}

// Current returns the locale to use right now
func (r *Resolver) Current() Locale {
	if r.Store != nil {
		if locale, ok := r.Store.Load(); ok {
			return locale
		}
	}
	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	return DetectSystemLocale(getenv)
}

// Set stores locale as the preference
func (r *Resolver) Set(locale Locale) error {
	if r.Store == nil {
		return nil
	}
	return r.Store.Save(locale)
}

// Toggle flips the current locale and stores the result
func (r *Resolver) Toggle() (Locale, error) {
	next := Toggle(r.Current())
	return next, r.Set(next)
}

var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG", "LANGUAGE"}

// DetectSystemLocale maps the first usable locale environment variable to a
// supported locale, or returns DefaultLocale.
func DetectSystemLocale(getenv func(string) string) Locale {
	for _, name := range localeEnvVars {
		value := getenv(name)
		if value == "" {
			continue
		}
		if locale, ok := FromLanguageTag(value); ok {
			return locale
		}
	}
	return DefaultLocale
}

// FromLanguageTag maps a language tag ("en", "pt_BR.UTF-8", "en-GB") to a
// supported locale by its base language.
func FromLanguageTag(value string) (Locale, bool) {
	value = normalizeTag(value)
	if value == "" {
		return "", false
	}

	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return EnUS, true
	case "pt":
		return PtBR, true
	}
	return "", false
}

// normalizeTag turns POSIX locale strings into BCP 47 form
func normalizeTag(value string) string {
	value = strings.TrimSpace(value)
	// LANGUAGE may carry a colon-separated priority list
	if idx := strings.Index(value, ":"); idx >= 0 {
		value = value[:idx]
	}
	for _, sep := range []string{".", "@"} {
		if idx := strings.Index(value, sep); idx >= 0 {
			value = value[:idx]
		}
	}
	if value == "C" || value == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(value, "_", "-")
}
