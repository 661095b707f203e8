package dates

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"committolearn/internal/i18n"
)

// Day is the length used for every day-based computation (no DST awareness)
const Day = 24 * time.Hour

var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse accepts the date formats used in front matter and the catalog.
// Times without a zone are UTC.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var shortMonths = map[i18n.Locale][12]string{
	i18n.EnUS: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	i18n.PtBR: {"jan.", "fev.", "mar.", "abr.", "mai.", "jun.", "jul.", "ago.", "set.", "out.", "nov.", "dez."},
}

func monthName(t time.Time, locale i18n.Locale) string {
	names, ok := shortMonths[locale]
	if !ok {
		names = shortMonths[i18n.DefaultLocale]
	}
	return names[t.Month()-1]
}

// Format renders the long preset: two-digit day, short month, year.
// en-US: "Oct 14, 2026"; pt-BR: "14 de out. de 2026".
func Format(t time.Time, locale i18n.Locale) string {
	if locale == i18n.EnUS {
		return fmt.Sprintf("%s %02d, %d", monthName(t, locale), t.Day(), t.Year())
	}
	return fmt.Sprintf("%02d de %s de %d", t.Day(), monthName(t, locale), t.Year())
}

// FormatShort renders day and short month only
func FormatShort(t time.Time, locale i18n.Locale) string {
	if locale == i18n.EnUS {
		return fmt.Sprintf("%s %02d", monthName(t, locale), t.Day())
	}
	return fmt.Sprintf("%02d de %s", t.Day(), monthName(t, locale))
}

// DaysSince returns ceil(|now - start| / 24h)
func DaysSince(start, now time.Time) int {
	diff := now.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(float64(diff) / float64(Day)))
}

// IsWithinDays reports whether t is at most days away from now
func IsWithinDays(t, now time.Time, days int) bool {
	return DaysSince(t, now) <= days
}

// RelativeTime buckets the elapsed time into years (365 days), months
// (30 days), days, hours and minutes. Future times read as "just now".
func RelativeTime(t, now time.Time, locale i18n.Locale) string {
	diff := now.Sub(t)
	minutes := int(diff / time.Minute)
	hours := minutes / 60
	days := hours / 24
	months := days / 30
	years := days / 365

	switch {
	case years > 0:
		return plural("time.years", years, locale)
	case months > 0:
		return plural("time.months", months, locale)
	case days > 0:
		return plural("time.days", days, locale)
	case hours > 0:
		return plural("time.hours", hours, locale)
	case minutes > 0:
		return plural("time.minutes", minutes, locale)
	}
	return i18n.T("time.justNow", locale, nil)
}

func plural(key string, n int, locale i18n.Locale) string {
	form := ".other"
	if n == 1 {
		form = ".one"
	}
	return i18n.T(key+form, locale, i18n.P("count", strconv.Itoa(n)))
}

// SortByDate returns a copy of items ordered newest first. Equal dates keep
// their input order.
func SortByDate[T any](items []T, date func(T) time.Time) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return date(sorted[i]).After(date(sorted[j]))
	})
	return sorted
}

// MostRecent returns the latest date among items
func MostRecent[T any](items []T, date func(T) time.Time) (time.Time, bool) {
	if len(items) == 0 {
		return time.Time{}, false
	}
	latest := date(items[0])
	for _, item := range items[1:] {
		if d := date(item); d.After(latest) {
			latest = d
		}
	}
	return latest, true
}

// Earliest returns the oldest date among items
func Earliest[T any](items []T, date func(T) time.Time) (time.Time, bool) {
	if len(items) == 0 {
		return time.Time{}, false
	}
	earliest := date(items[0])
	for _, item := range items[1:] {
		if d := date(item); d.Before(earliest) {
			earliest = d
		}
	}
	return earliest, true
}
