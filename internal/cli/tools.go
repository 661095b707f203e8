package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"committolearn/internal/highlight"
	"committolearn/internal/i18n"
	"committolearn/internal/watcher"
)

func runDetect(args []string, env *Env) int {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	fs.SetOutput(env.err())
	strategy := fs.String("strategy", "regex", "Detection strategy: regex, classifier")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	var snippet []byte
	var err error
	if path := fs.Arg(0); path != "" {
		snippet, err = os.ReadFile(path)
	} else {
		snippet, err = io.ReadAll(env.in())
	}
	if err != nil {
		fmt.Fprintf(env.err(), "Error reading snippet: %v\n", err)
		return 1
	}

	locale := env.locale()
	detector := highlight.ByName(*strategy)

	lang, ok := detector.Detect(string(snippet))
	if !ok {
		fmt.Fprintln(env.out(), i18n.T("code.noneDetected", locale, nil))
		return 0
	}
	fmt.Fprintln(env.out(), i18n.T("code.detected", locale, i18n.P("language", highlight.DisplayName(lang))))
	return 0
}

func runLocale(args []string, env *Env) int {
	if env.Resolver == nil {
		fmt.Fprintln(env.err(), "Error: locale preference is unavailable")
		return 1
	}

	action := "get"
	if len(args) > 0 {
		action = args[0]
	}

	switch action {
	case "get":
		current := env.Resolver.Current()
		fmt.Fprintln(env.out(), i18n.T("locale.current", current, i18n.P("locale", current.String())))
		return 0

	case "set":
		if len(args) < 2 {
			fmt.Fprintln(env.err(), "Usage: committolearn locale set <pt-BR|en-US>")
			return 1
		}
		locale, ok := i18n.ParseLocale(args[1])
		if !ok {
			fmt.Fprintf(env.err(), "Error: unsupported locale %q (use pt-BR or en-US)\n", args[1])
			return 1
		}
		if err := env.Resolver.Set(locale); err != nil {
			fmt.Fprintf(env.err(), "Error saving locale: %v\n", err)
			return 1
		}
		fmt.Fprintln(env.out(), i18n.T("locale.changed", locale, i18n.P("locale", locale.String())))
		return 0

	case "toggle":
		locale, err := env.Resolver.Toggle()
		if err != nil {
			fmt.Fprintf(env.err(), "Error saving locale: %v\n", err)
			return 1
		}
		fmt.Fprintln(env.out(), i18n.T("locale.changed", locale, i18n.P("locale", locale.String())))
		return 0

	default:
		fmt.Fprintf(env.err(), "Unknown locale command: %s\n", action)
		fmt.Fprintln(env.err(), "Usage: committolearn locale [get|set <locale>|toggle]")
		return 1
	}
}

func runWatch(args []string, env *Env) int {
	locale := env.locale()
	w := env.out()

	printLatest := func() {
		for _, p := range env.Aggregator.Latest(0, locale) {
			printPublication(w, p, locale)
		}
	}

	fsWatcher, err := watcher.New(env.Roots, watcher.DefaultWindow, func([]string) {
		fmt.Fprintln(w, i18n.T("watch.changed", locale, nil))
		printLatest()
	})
	if err != nil {
		fmt.Fprintf(env.err(), "Error starting watcher: %v\n", err)
		return 1
	}

	fmt.Fprintln(w, i18n.T("watch.watching", locale, i18n.P("dirs", strings.Join(env.Roots, ", "))))
	printLatest()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := fsWatcher.Run(ctx); err != nil {
		fmt.Fprintf(env.err(), "Error: %v\n", err)
		return 1
	}
	return 0
}
