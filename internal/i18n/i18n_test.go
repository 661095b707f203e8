package i18n

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestT_EmbeddedTables(t *testing.T) {
	if got := T("nav.home", PtBR, nil); got != "Início" {
		t.Errorf("expected 'Início', got %q", got)
	}
	if got := T("nav.home", EnUS, nil); got != "Home" {
		t.Errorf("expected 'Home', got %q", got)
	}
}

func TestT_FallsBackToDefaultLocale(t *testing.T) {
	tr := Translations{
		PtBR: {"greeting": "Olá", "only.pt": "Somente português"},
		EnUS: {"greeting": "Hello"},
	}

	if got := tr.T("only.pt", EnUS, nil); got != "Somente português" {
		t.Errorf("expected default-locale string, got %q", got)
	}
	if got := tr.T("greeting", EnUS, nil); got != "Hello" {
		t.Errorf("expected 'Hello', got %q", got)
	}
}

func TestT_UnknownKeyReturnsKey(t *testing.T) {
	if got := T("does.not.exist", EnUS, nil); got != "does.not.exist" {
		t.Errorf("expected key itself, got %q", got)
	}
}

func TestT_Interpolation(t *testing.T) {
	got := T("code.minutesRead", EnUS, P("minutes", "7"))
	if got != "7 min read" {
		t.Errorf("expected '7 min read', got %q", got)
	}
	got = T("code.minutesRead", PtBR, map[string]string{"minutes": "3"})
	if got != "3 min de leitura" {
		t.Errorf("expected '3 min de leitura', got %q", got)
	}
}

func TestT_InterpolationReplacesFirstOccurrence(t *testing.T) {
	tr := Translations{PtBR: {"twice": "{n} e {n}"}, EnUS: {}}
	if got := tr.T("twice", PtBR, P("n", "1")); got != "1 e {n}" {
		t.Errorf("expected '1 e {n}', got %q", got)
	}
}

func TestT_InterpolationIsDeterministic(t *testing.T) {
	tr := Translations{PtBR: {"nested": "{a} {b}"}, EnUS: {}}
	params := P("a", "{b}", "b", "X")
	for i := 0; i < 20; i++ {
		if got := tr.T("nested", PtBR, params); got != "X {b}" {
			t.Fatalf("expected 'X {b}', got %q", got)
		}
	}
}

func TestTablesHaveSameKeys(t *testing.T) {
	tr := Default()
	for key := range tr[PtBR] {
		if !tr.Has(key, EnUS) {
			t.Errorf("key %q missing from en-US", key)
		}
	}
	for key := range tr[EnUS] {
		if !tr.Has(key, PtBR) {
			t.Errorf("key %q missing from pt-BR", key)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/pt-BR.yaml": {Data: []byte(`"a": "b"`)},
	}
	if _, err := Load(fsys); err == nil {
		t.Error("expected error for missing en-US table")
	}
}

func TestToggle(t *testing.T) {
	if got := Toggle(PtBR); got != EnUS {
		t.Errorf("expected en-US, got %s", got)
	}
	if got := Toggle(EnUS); got != PtBR {
		t.Errorf("expected pt-BR, got %s", got)
	}
	if got := Toggle(Toggle(PtBR)); got != PtBR {
		t.Errorf("expected double toggle to return pt-BR, got %s", got)
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"pt-BR", true},
		{"en-US", true},
		{"en", false},
		{"pt-br", false},
		{"", false},
	}
	for _, tt := range tests {
		if _, ok := ParseLocale(tt.input); ok != tt.ok {
			t.Errorf("ParseLocale(%q): expected ok=%v, got %v", tt.input, tt.ok, ok)
		}
	}
}

func TestFromLanguageTag(t *testing.T) {
	tests := []struct {
		input    string
		expected Locale
		ok       bool
	}{
		{"en", EnUS, true},
		{"en-GB", EnUS, true},
		{"en_US.UTF-8", EnUS, true},
		{"pt", PtBR, true},
		{"pt_PT.UTF-8@euro", PtBR, true},
		{"pt_BR:en_US", PtBR, true},
		{"fr-FR", "", false},
		{"C", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := FromLanguageTag(tt.input)
		if ok != tt.ok || got != tt.expected {
			t.Errorf("FromLanguageTag(%q): expected (%q, %v), got (%q, %v)", tt.input, tt.expected, tt.ok, got, ok)
		}
	}
}

func envFunc(vars map[string]string) func(string) string {
	return func(name string) string { return vars[name] }
}

func TestResolver_StoredWins(t *testing.T) {
	store := &MemoryStore{}
	store.Save(EnUS)
	r := &Resolver{Store: store, Getenv: envFunc(map[string]string{"LANG": "pt_BR.UTF-8"})}

	if got := r.Current(); got != EnUS {
		t.Errorf("expected stored en-US, got %s", got)
	}
}

func TestResolver_SystemLanguage(t *testing.T) {
	r := &Resolver{Store: &MemoryStore{}, Getenv: envFunc(map[string]string{"LANG": "en_GB.UTF-8"})}
	if got := r.Current(); got != EnUS {
		t.Errorf("expected en-US from LANG, got %s", got)
	}

	r.Getenv = envFunc(map[string]string{"LC_ALL": "C", "LANG": "pt_BR.UTF-8"})
	if got := r.Current(); got != PtBR {
		t.Errorf("expected pt-BR after skipping LC_ALL=C, got %s", got)
	}
}

func TestResolver_Default(t *testing.T) {
	r := &Resolver{Getenv: envFunc(map[string]string{"LANG": "ja_JP.UTF-8"})}
	if got := r.Current(); got != DefaultLocale {
		t.Errorf("expected default %s, got %s", DefaultLocale, got)
	}
}

func TestResolver_Toggle(t *testing.T) {
	store := &MemoryStore{}
	r := &Resolver{Store: store, Getenv: envFunc(nil)}

	next, err := r.Toggle()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != EnUS {
		t.Errorf("expected en-US, got %s", next)
	}
	if got, ok := store.Load(); !ok || got != EnUS {
		t.Errorf("expected stored en-US, got %q (ok=%v)", got, ok)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := &FileStore{Path: filepath.Join(t.TempDir(), "nested", "state.json")}

	if _, ok := store.Load(); ok {
		t.Fatal("expected no stored locale before save")
	}
	if err := store.Save(EnUS); err != nil {
		t.Fatalf("save error: %v", err)
	}
	got, ok := store.Load()
	if !ok || got != EnUS {
		t.Errorf("expected en-US, got %q (ok=%v)", got, ok)
	}
}

func TestFileStore_KeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte(`{"theme": "dark"}`), 0644); err != nil {
		t.Fatal(err)
	}

	store := &FileStore{Path: path}
	if err := store.Save(PtBR); err != nil {
		t.Fatalf("save error: %v", err)
	}
	state, err := store.read()
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if state["theme"] != "dark" || state[PreferenceKey] != "pt-BR" {
		t.Errorf("expected both keys kept, got %v", state)
	}
}

func TestFileStore_UndecodableStateNotOverwritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	original := []byte(`{"theme": "dark",`)
	if err := os.WriteFile(path, original, 0644); err != nil {
		t.Fatal(err)
	}

	store := &FileStore{Path: path}
	if err := store.Save(EnUS); err == nil {
		t.Error("expected an error for an undecodable state file")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(original) {
		t.Errorf("expected state file untouched, got %q", data)
	}
	if _, ok := store.Load(); ok {
		t.Error("expected no stored locale from an undecodable file")
	}
}
