package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"committolearn/internal/i18n"
)

func sampleLanguages() []Language {
	return []Language{
		{ID: "go", Name: "Go", Icon: "🐹", Notes: []NoteRef{
			{Title: "Goroutines", Date: "2024-05-01", Slug: "goroutines"},
			{Title: "Channels", Date: "2024-06-10", Slug: "channels"},
		}},
		{ID: "java", Name: "Java", Icon: "☕", Notes: []NoteRef{
			{Title: "Streams API", Date: "2025-01-02", Slug: "streams"},
			{Title: "Records", Date: "2023-03-01", Slug: "records"},
			{Title: "Draft", Slug: "draft"},
		}},
		{ID: "elixir", Name: "élixir", Icon: "💧"},
		{ID: "docker", Name: "Docker", Icon: "🐳", Notes: []NoteRef{
			{Title: "Multi-stage builds", Date: "2024-02-01", Slug: "multi-stage"},
		}},
	}
}

func ids(langs []Language) []string {
	out := make([]string, len(langs))
	for i, l := range langs {
		out[i] = l.ID
	}
	return out
}

func assertIDs(t *testing.T, got []Language, expected ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, gotIDs)
	}
	for i := range expected {
		if gotIDs[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, gotIDs)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "languages.json")
	data := `{"languages":[{"id":"go","name":"Go","icon":"🐹","notes":[{"title":"Intro","date":"2024-01-01","slug":"intro"}],"tags":["backend"]}]}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Languages) != 1 {
		t.Fatalf("expected 1 language, got %d", len(c.Languages))
	}
	lang := c.Languages[0]
	if lang.Name != "Go" || lang.Notes[0].Slug != "intro" || lang.Tags[0] != "backend" {
		t.Errorf("unexpected language: %+v", lang)
	}

	fromFile, err := File{Path: path}.Catalog()
	if err != nil || len(fromFile.Languages) != 1 {
		t.Errorf("expected File source to load catalog, got %v, %v", fromFile, err)
	}
}

func TestLoad_MissingAndInvalid(t *testing.T) {
	dir := t.TempDir()

	c, err := Load(filepath.Join(dir, "missing.json"))
	if err != nil {
		t.Errorf("expected no error for missing file, got %v", err)
	}
	if len(c.Languages) != 0 {
		t.Errorf("expected empty catalog, got %d languages", len(c.Languages))
	}

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("{not json"), 0644)
	if _, err := Load(bad); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestNoteCount(t *testing.T) {
	c := Catalog{Languages: sampleLanguages()}
	if got := c.NoteCount(); got != 6 {
		t.Errorf("expected 6 notes, got %d", got)
	}
}

func TestFilter(t *testing.T) {
	langs := sampleLanguages()

	assertIDs(t, Filter(langs, ""), "go", "java", "elixir", "docker")
	assertIDs(t, Filter(langs, "   "), "go", "java", "elixir", "docker")
	assertIDs(t, Filter(langs, "JAVA"), "java")
	// matches a note title, not the language name
	assertIDs(t, Filter(langs, "channel"), "go")
	assertIDs(t, Filter(langs, "build"), "docker")
	if got := Filter(langs, "rust"); len(got) != 0 {
		t.Errorf("expected no results, got %v", ids(got))
	}
}

func TestSort(t *testing.T) {
	langs := sampleLanguages()

	assertIDs(t, Sort(langs, SortByNotes, i18n.PtBR), "java", "go", "docker", "elixir")
	assertIDs(t, Sort(langs, SortAZ, i18n.PtBR), "docker", "elixir", "go", "java")
	assertIDs(t, Sort(langs, SortByRecent, i18n.EnUS), "java", "go", "docker", "elixir")

	if langs[0].ID != "go" {
		t.Error("expected input slice to be left untouched")
	}
}

func TestQuery(t *testing.T) {
	got := Query(sampleLanguages(), "o", SortAZ, i18n.EnUS)
	// "o" hits Go, Docker and Java (via "Records")
	assertIDs(t, got, "docker", "go", "java")
}

func TestSortOrder(t *testing.T) {
	if order, ok := ParseSortOrder(" AZ "); !ok || order != SortAZ {
		t.Errorf("expected az, got %q (%v)", order, ok)
	}
	if _, ok := ParseSortOrder("popular"); ok {
		t.Error("expected unknown order to be rejected")
	}
	if SortByNotes.Next() != SortAZ || SortAZ.Next() != SortByRecent || SortByRecent.Next() != SortByNotes {
		t.Error("expected notes -> az -> recent -> notes")
	}
	if SortAZ.LabelKey() != "studies.sortAZ" {
		t.Errorf("unexpected label key %q", SortAZ.LabelKey())
	}
}

func TestLastUpdateAndProgress(t *testing.T) {
	langs := sampleLanguages()

	last, ok := langs[1].LastUpdate()
	if !ok || last.Year() != 2025 {
		t.Errorf("expected 2025 last update, got %v (%v)", last, ok)
	}
	if _, ok := langs[2].LastUpdate(); ok {
		t.Error("expected no last update for a language without notes")
	}

	max := MaxNotes(langs)
	if max != 3 {
		t.Errorf("expected max 3, got %d", max)
	}
	if got := langs[1].Progress(max); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
	if got := langs[0].Progress(max); got != 67 {
		t.Errorf("expected 67, got %d", got)
	}
	if got := langs[3].Progress(max); got != 33 {
		t.Errorf("expected 33, got %d", got)
	}
	if got := MaxNotes(nil); got != 1 {
		t.Errorf("expected MaxNotes floor of 1, got %d", got)
	}
}

func TestLanguageURL(t *testing.T) {
	l := Language{ID: "go"}
	if got := l.URL(i18n.PtBR); got != "/estudos/go" {
		t.Errorf("expected /estudos/go, got %q", got)
	}
	if got := l.URL(i18n.EnUS); got != "/en/studies/go" {
		t.Errorf("expected /en/studies/go, got %q", got)
	}
}
