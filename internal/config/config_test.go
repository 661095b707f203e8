package config

import (
	"os"
	"path/filepath"
	"testing"

	"committolearn/internal/i18n"
)

// isolate points HOME at a temp dir and clears the content env vars
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, name := range []string{EnvArticles, EnvNotes, EnvCatalog, EnvLocale} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	return home
}

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func writeSettings(t *testing.T, home, data string) {
	t.Helper()
	dir := filepath.Join(home, ".config", "committolearn")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_Default(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(CLIFlags{EnvFile: noEnvFile(t)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ArticlesDir != "articles" {
		t.Errorf("expected articles, got %q", cfg.ArticlesDir)
	}
	if cfg.NotesDir != "notes" {
		t.Errorf("expected notes, got %q", cfg.NotesDir)
	}
	if cfg.CatalogFile != filepath.Join("data", "languages.json") {
		t.Errorf("expected data/languages.json, got %q", cfg.CatalogFile)
	}
	if cfg.DefaultView != ViewHome {
		t.Errorf("expected default view 'home', got %q", cfg.DefaultView)
	}
	if cfg.Locale != "" {
		t.Errorf("expected unresolved locale, got %q", cfg.Locale)
	}
	if cfg.StatePath() != filepath.Join(home, ".config", "committolearn", "state.json") {
		t.Errorf("unexpected state path %q", cfg.StatePath())
	}
	if Get() != cfg {
		t.Error("expected Get to return the loaded config")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	home := isolate(t)
	writeSettings(t, home, `{"articles_dir": "~/blog/articles", "default_view": "studies", "locale": "en-US"}`)

	cfg, err := Load(CLIFlags{EnvFile: noEnvFile(t)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ArticlesDir != filepath.Join(home, "blog", "articles") {
		t.Errorf("expected expanded articles dir, got %q", cfg.ArticlesDir)
	}
	if cfg.DefaultView != ViewStudies {
		t.Errorf("expected studies view, got %q", cfg.DefaultView)
	}
	if cfg.Locale != i18n.EnUS {
		t.Errorf("expected en-US, got %q", cfg.Locale)
	}
	if cfg.NotesDir != "notes" {
		t.Errorf("expected default notes dir, got %q", cfg.NotesDir)
	}
}

func TestLoad_EnvVar(t *testing.T) {
	home := isolate(t)
	writeSettings(t, home, `{"articles_dir": "/from/file", "notes_dir": "/file/notes"}`)
	t.Setenv(EnvArticles, "/from/env")

	cfg, err := Load(CLIFlags{EnvFile: noEnvFile(t)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ArticlesDir != "/from/env" {
		t.Errorf("expected env to override file, got %q", cfg.ArticlesDir)
	}
	if cfg.NotesDir != "/file/notes" {
		t.Errorf("expected file value to survive, got %q", cfg.NotesDir)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	isolate(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	os.WriteFile(envFile, []byte("COMMITTOLEARN_NOTES=/dotenv/notes\nCOMMITTOLEARN_ARTICLES=/dotenv/articles\n"), 0644)
	t.Setenv(EnvArticles, "/real/env")

	cfg, err := Load(CLIFlags{EnvFile: envFile})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.NotesDir != "/dotenv/notes" {
		t.Errorf("expected .env value, got %q", cfg.NotesDir)
	}
	if cfg.ArticlesDir != "/real/env" {
		t.Errorf("expected process env to win over .env, got %q", cfg.ArticlesDir)
	}
	if _, set := os.LookupEnv(EnvNotes); set {
		t.Error("expected .env values not to be exported")
	}
}

func TestLoad_CLIFlags(t *testing.T) {
	isolate(t)
	t.Setenv(EnvCatalog, "/env/catalog.json")
	t.Setenv(EnvLocale, "pt-BR")

	cfg, err := Load(CLIFlags{
		CatalogFile: "/cli/catalog.json",
		Locale:      "en-US",
		View:        "studies",
		EnvFile:     noEnvFile(t),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.CatalogFile != "/cli/catalog.json" {
		t.Errorf("expected CLI catalog, got %q", cfg.CatalogFile)
	}
	if cfg.Locale != i18n.EnUS {
		t.Errorf("expected CLI locale en-US, got %q", cfg.Locale)
	}
	if cfg.DefaultView != ViewStudies {
		t.Errorf("expected studies view, got %q", cfg.DefaultView)
	}
}

func TestLoad_Invalid(t *testing.T) {
	isolate(t)

	if _, err := Load(CLIFlags{Locale: "fr-FR", EnvFile: noEnvFile(t)}); err == nil {
		t.Error("expected error for unsupported locale")
	}
	if _, err := Load(CLIFlags{View: "agenda", EnvFile: noEnvFile(t)}); err == nil {
		t.Error("expected error for unknown view")
	}
}

func TestEnsureConfigFile(t *testing.T) {
	home := isolate(t)

	if err := EnsureConfigFile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path := filepath.Join(home, ".config", "committolearn", "config.json")
	settings, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("expected config file to be written: %v", err)
	}
	if settings.ArticlesDir != "articles" || settings.DefaultView != ViewHome {
		t.Errorf("unexpected defaults: %+v", settings)
	}

	// existing files are left alone
	os.WriteFile(path, []byte(`{"notes_dir": "mine"}`), 0644)
	if err := EnsureConfigFile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	settings, _ = loadConfigFile(path)
	if settings.NotesDir != "mine" {
		t.Errorf("expected existing config to be kept, got %+v", settings)
	}
}

func TestContentRoots(t *testing.T) {
	cfg := &Config{ArticlesDir: "/a", NotesDir: "/n"}
	roots := cfg.ContentRoots()
	if len(roots) != 2 || roots[0] != "/a" || roots[1] != "/n" {
		t.Errorf("expected [/a /n], got %v", roots)
	}
}
