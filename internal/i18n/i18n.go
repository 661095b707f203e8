package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Locale is one of the two supported language/region tags
type Locale string

const (
	PtBR Locale = "pt-BR"
	EnUS Locale = "en-US"
)

// DefaultLocale is used when neither a stored preference nor the system
// language resolves to a supported locale.
const DefaultLocale = PtBR

// Locales lists the supported locales, default first
var Locales = []Locale{PtBR, EnUS}

func (l Locale) String() string {
	return string(l)
}

// IsEnglish reports whether l is the en-US locale
func (l Locale) IsEnglish() bool {
	return l == EnUS
}

// ParseLocale accepts only the exact tags "pt-BR" and "en-US"
func ParseLocale(s string) (Locale, bool) {
	switch Locale(s) {
	case PtBR, EnUS:
		return Locale(s), true
	}
	return "", false
}

// Toggle flips between the two supported locales: pt-BR -> en-US,
// anything else -> pt-BR.
func Toggle(current Locale) Locale {
	if current == PtBR {
		return EnUS
	}
	return PtBR
}

// Translations maps each locale to a flat key -> text table
type Translations map[Locale]map[string]string

//go:embed locales/*.yaml
var localeFS embed.FS

var defaultTranslations = mustLoad(localeFS)

// Default returns the embedded translation tables
func Default() Translations {
	return defaultTranslations
}

// Load reads one <locale>.yaml file per supported locale from fsys
func Load(fsys fs.FS) (Translations, error) {
	tr := make(Translations, len(Locales))
	for _, locale := range Locales {
		path := "locales/" + string(locale) + ".yaml"
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		var table map[string]string
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if table == nil {
			table = map[string]string{}
		}
		tr[locale] = table
	}
	return tr, nil
}

func mustLoad(fsys fs.FS) Translations {
	tr, err := Load(fsys)
	if err != nil {
		panic(err)
	}
	return tr
}

// T looks up key for locale, falling back to the default locale and then to
// the key itself. Each {name} placeholder is replaced by params[name].
func (tr Translations) T(key string, locale Locale, params map[string]string) string {
	text, ok := tr[locale][key]
	if !ok || text == "" {
		text, ok = tr[DefaultLocale][key]
	}
	if !ok || text == "" {
		text = key
	}
	return interpolate(text, params)
}

// Has reports whether locale itself defines key (no fallback)
func (tr Translations) Has(key string, locale Locale) bool {
	_, ok := tr[locale][key]
	return ok
}

// T translates key using the embedded tables
func T(key string, locale Locale, params map[string]string) string {
	return defaultTranslations.T(key, locale, params)
}

// P builds a params map from alternating name/value pairs
func P(pairs ...string) map[string]string {
	params := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		params[pairs[i]] = pairs[i+1]
	}
	return params
}

// interpolate replaces the first occurrence of each {name} placeholder,
// visiting names in sorted order
func interpolate(text string, params map[string]string) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		text = strings.Replace(text, "{"+name+"}", params[name], 1)
	}
	return text
}
