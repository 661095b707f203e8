package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"committolearn/internal/i18n"
)

// Environment variables, read from the process or a .env file
const (
	EnvArticles = "COMMITTOLEARN_ARTICLES"
	EnvNotes    = "COMMITTOLEARN_NOTES"
	EnvCatalog  = "COMMITTOLEARN_CATALOG"
	EnvLocale   = "COMMITTOLEARN_LOCALE"
)

// Views the TUI can open on
const (
	ViewHome    = "home"
	ViewStudies = "studies"
)

// Config holds the unified application configuration
type Config struct {
	ArticlesDir string
	NotesDir    string
	CatalogFile string
	Locale      i18n.Locale // "" resolves from stored preference and system language
	DefaultView string
	StateDir    string // debug.log and state.json
}

// Settings represents the config file structure
type Settings struct {
	ArticlesDir string `json:"articles_dir,omitempty"`
	NotesDir    string `json:"notes_dir,omitempty"`
	CatalogFile string `json:"catalog_file,omitempty"`
	Locale      string `json:"locale,omitempty"`
	DefaultView string `json:"default_view,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	ArticlesDir string
	NotesDir    string
	CatalogFile string
	Locale      string
	View        string
	EnvFile     string // defaults to .env in the working directory
}

var globalConfig *Config

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		ArticlesDir: "articles",
		NotesDir:    "notes",
		CatalogFile: filepath.Join("data", "languages.json"),
		DefaultView: ViewHome,
	}
	var locale string

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	cfg.StateDir = configDir

	// Priority 3: config file
	if settings, err := loadConfigFile(filepath.Join(configDir, "config.json")); err == nil {
		apply(&cfg.ArticlesDir, settings.ArticlesDir)
		apply(&cfg.NotesDir, settings.NotesDir)
		apply(&cfg.CatalogFile, settings.CatalogFile)
		apply(&cfg.DefaultView, settings.DefaultView)
		apply(&locale, settings.Locale)
	}

	// Priority 2: environment, with .env values filling unset variables
	getenv := envLookup(flags.EnvFile)
	apply(&cfg.ArticlesDir, getenv(EnvArticles))
	apply(&cfg.NotesDir, getenv(EnvNotes))
	apply(&cfg.CatalogFile, getenv(EnvCatalog))
	apply(&locale, getenv(EnvLocale))

	// Priority 1: CLI flags override everything
	apply(&cfg.ArticlesDir, flags.ArticlesDir)
	apply(&cfg.NotesDir, flags.NotesDir)
	apply(&cfg.CatalogFile, flags.CatalogFile)
	apply(&cfg.DefaultView, flags.View)
	apply(&locale, flags.Locale)

	if locale != "" {
		parsed, ok := i18n.ParseLocale(locale)
		if !ok {
			return nil, fmt.Errorf("unsupported locale %q (use pt-BR or en-US)", locale)
		}
		cfg.Locale = parsed
	}

	switch cfg.DefaultView {
	case ViewHome, ViewStudies:
	default:
		return nil, fmt.Errorf("unknown view %q (use home or studies)", cfg.DefaultView)
	}

	cfg.ArticlesDir = expandPath(cfg.ArticlesDir)
	cfg.NotesDir = expandPath(cfg.NotesDir)
	cfg.CatalogFile = expandPath(cfg.CatalogFile)

	globalConfig = cfg
	return cfg, nil
}

// Get returns the loaded config
func Get() *Config {
	return globalConfig
}

func apply(dst *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*dst = value
	}
}

// envLookup prefers the process environment and falls back to the values of
// the .env file, without exporting them.
func envLookup(envFile string) func(string) string {
	if envFile == "" {
		envFile = ".env"
	}
	dotenv, err := godotenv.Read(envFile)
	if err != nil {
		dotenv = map[string]string{}
	}
	return func(name string) string {
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return dotenv[name]
	}
}

// GetConfigDir returns ~/.config/committolearn
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "committolearn"), nil
}

// StatePath is the client state file holding the locale preference
func (c *Config) StatePath() string {
	return filepath.Join(c.StateDir, "state.json")
}

// ContentRoots returns the directories the watcher follows
func (c *Config) ContentRoots() []string {
	return []string{c.ArticlesDir, c.NotesDir}
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	configPath := filepath.Join(configDir, "config.json")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	settings := Settings{
		ArticlesDir: "articles",
		NotesDir:    "notes",
		CatalogFile: filepath.Join("data", "languages.json"),
		DefaultView: ViewHome,
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
