package catalog

import (
	"sort"
	"strings"

	"committolearn/internal/i18n"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOrder selects how the studies list is ordered
type SortOrder string

const (
	SortByNotes  SortOrder = "notes"
	SortAZ       SortOrder = "az"
	SortByRecent SortOrder = "recent"
)

// SortOrders lists the orders in the sequence the UI cycles through them
var SortOrders = []SortOrder{SortByNotes, SortAZ, SortByRecent}

// ParseSortOrder accepts "notes", "az" and "recent"
func ParseSortOrder(s string) (SortOrder, bool) {
	switch order := SortOrder(strings.ToLower(strings.TrimSpace(s))); order {
	case SortByNotes, SortAZ, SortByRecent:
		return order, true
	}
	return "", false
}

// Next returns the order after o in SortOrders, wrapping around
func (o SortOrder) Next() SortOrder {
	for i, order := range SortOrders {
		if order == o {
			return SortOrders[(i+1)%len(SortOrders)]
		}
	}
	return SortByNotes
}

// LabelKey is the translation key of the order's label
func (o SortOrder) LabelKey() string {
	switch o {
	case SortAZ:
		return "studies.sortAZ"
	case SortByRecent:
		return "studies.sortRecent"
	}
	return "studies.sortMostNotes"
}

// Filter keeps the languages whose name or any note title contains query,
// case-insensitively. A blank query keeps everything.
func Filter(langs []Language, query string) []Language {
	query = strings.ToLower(strings.TrimSpace(query))
	result := make([]Language, 0, len(langs))
	for _, l := range langs {
		if query == "" || matches(l, query) {
			result = append(result, l)
		}
	}
	return result
}

func matches(l Language, query string) bool {
	if strings.Contains(strings.ToLower(l.Name), query) {
		return true
	}
	for _, n := range l.Notes {
		if strings.Contains(strings.ToLower(n.Title), query) {
			return true
		}
	}
	return false
}

// Sort returns a sorted copy of langs. Ties keep their catalog order.
func Sort(langs []Language, order SortOrder, locale i18n.Locale) []Language {
	sorted := make([]Language, len(langs))
	copy(sorted, langs)

	switch order {
	case SortAZ:
		c := collate.New(language.Make(string(locale)), collate.IgnoreCase)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case SortByRecent:
		sort.SliceStable(sorted, func(i, j int) bool {
			a, aok := sorted[i].LastUpdate()
			b, bok := sorted[j].LastUpdate()
			if aok != bok {
				return aok
			}
			return a.After(b)
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return len(sorted[i].Notes) > len(sorted[j].Notes)
		})
	}

	return sorted
}

// Query filters then sorts, the way the studies view presents the catalog
func Query(langs []Language, query string, order SortOrder, locale i18n.Locale) []Language {
	return Sort(Filter(langs, query), order, locale)
}

// MaxNotes is the largest note count among langs, never below 1
func MaxNotes(langs []Language) int {
	most := 1
	for _, l := range langs {
		if len(l.Notes) > most {
			most = len(l.Notes)
		}
	}
	return most
}
