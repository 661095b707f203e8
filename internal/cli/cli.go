package cli

import (
	"fmt"
	"io"
	"os"

	"committolearn/internal/catalog"
	"committolearn/internal/content"
	"committolearn/internal/i18n"
	"committolearn/internal/publications"
)

// Env carries everything a command needs. Zero-valued writers default to
// the process streams.
type Env struct {
	Loader     *content.Loader
	Aggregator *publications.Aggregator
	Catalog    catalog.Source
	Resolver   *i18n.Resolver
	Locale     i18n.Locale // forced by flag, env or config; "" resolves
	Roots      []string    // directories followed by watch

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (e *Env) out() io.Writer {
	if e.Stdout == nil {
		return os.Stdout
	}
	return e.Stdout
}

func (e *Env) err() io.Writer {
	if e.Stderr == nil {
		return os.Stderr
	}
	return e.Stderr
}

func (e *Env) in() io.Reader {
	if e.Stdin == nil {
		return os.Stdin
	}
	return e.Stdin
}

// locale is the forced locale, else the resolver's answer
func (e *Env) locale() i18n.Locale {
	if e.Locale != "" {
		return e.Locale
	}
	if e.Resolver != nil {
		return e.Resolver.Current()
	}
	return i18n.DefaultLocale
}

// Commands lists the names Run dispatches on
var Commands = []string{"latest", "stats", "articles", "article", "notes", "studies", "detect", "locale", "watch", "help"}

// IsCommand reports whether name is a CLI command
func IsCommand(name string) bool {
	for _, c := range Commands {
		if c == name {
			return true
		}
	}
	return false
}

// Run executes the CLI with the given arguments and returns the exit code.
// The first argument is the command name.
func Run(args []string, env *Env) int {
	if len(args) == 0 {
		printUsage(env.out())
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "latest":
		return runLatest(cmdArgs, env)
	case "stats":
		return runStats(cmdArgs, env)
	case "articles":
		return runArticles(cmdArgs, env)
	case "article":
		return runArticle(cmdArgs, env)
	case "notes":
		return runNotes(cmdArgs, env)
	case "studies":
		return runStudies(cmdArgs, env)
	case "detect":
		return runDetect(cmdArgs, env)
	case "locale":
		return runLocale(cmdArgs, env)
	case "watch":
		return runWatch(cmdArgs, env)
	case "help", "-h", "--help":
		printUsage(env.out())
		return 0
	default:
		fmt.Fprintf(env.err(), "Unknown command: %s\n", command)
		printUsage(env.err())
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `committolearn - bilingual study notes and articles

Usage: committolearn [flags] [command] [arguments]

Commands:
  latest [-n N]           Latest publications (articles and notes), newest first
  stats                   Notes, articles, areas and days since the first publication
  articles [-q query]     List articles, optionally fuzzy-filtered by title
  article <slug>          Show an article with its outline and code blocks
  notes                   List notes from the notes tree, grouped by category
  studies [-q query] [-sort notes|az|recent]
                          Study areas from the catalog
  detect [-strategy regex|classifier] [file]
                          Guess the language of a snippet (stdin when no file)
  locale [get|set <locale>|toggle]
                          Show or change the preferred locale
  watch                   Reprint the latest publications when content changes
  help                    Show this help message

Flags:
  -articles <dir>         Articles directory
  -notes <dir>            Notes directory
  -catalog <file>         Language catalog (languages.json)
  -locale <locale>        Force pt-BR or en-US
  -view <name>            Initial TUI view: home, studies

Running committolearn without arguments launches the interactive TUI.`)
}
