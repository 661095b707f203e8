package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"committolearn/internal/dates"
	"committolearn/internal/i18n"
)

// NoteRef is a catalog entry pointing at a published note
type NoteRef struct {
	Title string `json:"title"`
	Date  string `json:"date,omitempty"`
	Slug  string `json:"slug"`
}

// ParsedDate returns the note date when present and parseable
func (n NoteRef) ParsedDate() (time.Time, bool) {
	return dates.Parse(n.Date)
}

// Language groups the notes of one study area
type Language struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Icon  string    `json:"icon"`
	Notes []NoteRef `json:"notes"`
	Tags  []string  `json:"tags,omitempty"`
}

// LastUpdate returns the most recent dated note
func (l Language) LastUpdate() (time.Time, bool) {
	var latest time.Time
	found := false
	for _, n := range l.Notes {
		d, ok := n.ParsedDate()
		if !ok {
			continue
		}
		if !found || d.After(latest) {
			latest = d
			found = true
		}
	}
	return latest, found
}

// Progress is the note count as a rounded percentage of maxNotes
func (l Language) Progress(maxNotes int) int {
	if maxNotes <= 0 {
		return 0
	}
	return (len(l.Notes)*100 + maxNotes/2) / maxNotes
}

// URL is the site path of the language's notes page
func (l Language) URL(locale i18n.Locale) string {
	if locale == i18n.EnUS {
		return "/en/studies/" + l.ID
	}
	return "/estudos/" + l.ID
}

// Catalog is the structured notes data set
type Catalog struct {
	Languages []Language `json:"languages"`
}

// NoteCount returns the number of notes across every language
func (c Catalog) NoteCount() int {
	total := 0
	for _, l := range c.Languages {
		total += len(l.Notes)
	}
	return total
}

// Source provides the catalog to its consumers
type Source interface {
	Catalog() (Catalog, error)
}

// Static is a Source over an in-memory catalog
type Static Catalog

func (s Static) Catalog() (Catalog, error) {
	return Catalog(s), nil
}

// File is a Source reading a languages.json file on every call
type File struct {
	Path string
}

func (f File) Catalog() (Catalog, error) {
	return Load(f.Path)
}

// Load decodes a catalog file. A missing file is an empty catalog.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Catalog{}, nil
		}
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return c, nil
}
