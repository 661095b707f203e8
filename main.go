package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"committolearn/internal/catalog"
	"committolearn/internal/cli"
	"committolearn/internal/config"
	"committolearn/internal/content"
	"committolearn/internal/i18n"
	"committolearn/internal/logs"
	"committolearn/internal/publications"
	"committolearn/internal/tui"
	"committolearn/internal/watcher"
)

func main() {
	// Parse CLI flags
	articlesFlag := flag.String("articles", "", "Articles directory")
	notesFlag := flag.String("notes", "", "Notes directory")
	catalogFlag := flag.String("catalog", "", "Language catalog file (languages.json)")
	localeFlag := flag.String("locale", "", "Force a locale: pt-BR, en-US")
	viewFlag := flag.String("view", "", "Initial view: home, studies")
	envFlag := flag.String("env", "", "Path of the .env file (default .env)")
	flag.Parse()

	cfg, err := config.Load(config.CLIFlags{
		ArticlesDir: *articlesFlag,
		NotesDir:    *notesFlag,
		CatalogFile: *catalogFlag,
		Locale:      *localeFlag,
		View:        *viewFlag,
		EnvFile:     *envFlag,
	})
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	if err := logs.Initialize(cfg.StateDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	resolver := i18n.NewResolver(&i18n.FileStore{Path: cfg.StatePath()})
	loader := content.NewLoader(cfg.ArticlesDir, cfg.NotesDir)
	source := catalog.File{Path: cfg.CatalogFile}
	aggregator := publications.NewAggregator(loader, source)

	// Check for CLI subcommands
	args := flag.Args()
	if len(args) > 0 {
		exitCode := cli.Run(args, &cli.Env{
			Loader:     loader,
			Aggregator: aggregator,
			Catalog:    source,
			Resolver:   resolver,
			Locale:     cfg.Locale,
			Roots:      cfg.ContentRoots(),
		})
		logs.Close()
		os.Exit(exitCode)
	}

	// TUI mode
	logs.Logger.Println("Starting app in TUI mode")
	appModel := tui.NewAppModel(tui.Options{
		Loader:      loader,
		Aggregator:  aggregator,
		Catalog:     source,
		Resolver:    resolver,
		Locale:      cfg.Locale,
		DefaultView: cfg.DefaultView,
	})
	p := tea.NewProgram(appModel, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fsWatcher, err := watcher.New(cfg.ContentRoots(), watcher.DefaultWindow, func(paths []string) {
		p.Send(tui.ContentChangedMsg{Paths: paths})
	})
	if err != nil {
		logs.Logger.Printf("Warning: could not watch content: %v", err)
	} else {
		go func() {
			if err := fsWatcher.Run(ctx); err != nil {
				logs.Logger.Printf("Watcher stopped: %v", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
