package content

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ExcerptLength is the rune cap for generated excerpts
const ExcerptLength = 200

var stripRules = []struct {
	pattern *regexp.Regexp
	replace string
}{
	{regexp.MustCompile(`#{1,6}\s+`), ""},
	{regexp.MustCompile(`\*\*(.+?)\*\*`), "$1"},
	{regexp.MustCompile(`\*(.+?)\*`), "$1"},
	{regexp.MustCompile(`\[(.+?)\]\(.+?\)`), "$1"},
	{regexp.MustCompile("`{1,3}(.+?)`{1,3}"), "$1"},
	{regexp.MustCompile(`(?m)^[-*+]\s+`), ""},
	{regexp.MustCompile(`(?m)^>\s+`), ""},
	{regexp.MustCompile(`\n{2,}`), " "},
	{regexp.MustCompile(`\n`), " "},
}

// StripMarkdown removes headers, emphasis, links, code markers, list and
// blockquote markers, and folds newlines into spaces. The rules are applied
// until the text stops changing, so stripping stripped text is a no-op.
func StripMarkdown(text string) string {
	for {
		next := stripOnce(text)
		if next == text {
			return text
		}
		text = next
	}
}

func stripOnce(text string) string {
	for _, rule := range stripRules {
		text = rule.pattern.ReplaceAllString(text, rule.replace)
	}
	return strings.TrimSpace(text)
}

// Excerpt truncates stripped text to ExcerptLength runes, appending "..."
// only when something was cut.
func Excerpt(stripped string) string {
	if utf8.RuneCountInString(stripped) <= ExcerptLength {
		return stripped
	}
	runes := []rune(stripped)
	return string(runes[:ExcerptLength]) + "..."
}

// CapitalizeTitle upper-cases the first rune and leaves the rest unchanged
func CapitalizeTitle(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return text
	}
	return string(unicode.ToUpper(r)) + text[size:]
}

// TitleFromSlug replaces the slug separators with spaces
func TitleFromSlug(slug string) string {
	title := strings.ReplaceAll(slug, "-", " ")
	return strings.ReplaceAll(title, "_", " ")
}
