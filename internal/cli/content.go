package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"committolearn/internal/catalog"
	"committolearn/internal/content"
	"committolearn/internal/dates"
	"committolearn/internal/highlight"
	"committolearn/internal/i18n"
	"committolearn/internal/publications"
	"committolearn/internal/tui/theme"
)

func runLatest(args []string, env *Env) int {
	fs := flag.NewFlagSet("latest", flag.ContinueOnError)
	fs.SetOutput(env.err())
	limit := fs.Int("n", publications.DefaultLimit, "Number of publications")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	locale := env.locale()
	pubs := env.Aggregator.Latest(*limit, locale)

	w := env.out()
	fmt.Fprintln(w, theme.Title.Render(i18n.T("home.latest.title", locale, nil)))
	if len(pubs) == 0 {
		fmt.Fprintln(w, theme.Muted.Render(i18n.T("noResults", locale, nil)))
		return 0
	}
	for _, p := range pubs {
		printPublication(w, p, locale)
	}
	return 0
}

// printPublication writes one feed entry
func printPublication(w io.Writer, p publications.Publication, locale i18n.Locale) {
	var badge, detail string
	if p.Type == publications.TypeArticle {
		badge = theme.ArticleBadge.Render(i18n.T("articles.badge", locale, nil))
		detail = p.ReadingTime
	} else {
		badge = theme.NoteBadge.Render(i18n.T("notes.badge", locale, nil))
		detail = strings.TrimSpace(p.LanguageIcon + " " + p.Language)
	}

	fmt.Fprintf(w, "%s  %s  %s\n", badge, theme.Muted.Render(dates.FormatShort(p.Date, locale)), theme.Bold.Render(p.Title))
	if detail != "" {
		fmt.Fprintf(w, "    %s\n", detail)
	}
	if p.Excerpt != "" {
		fmt.Fprintf(w, "    %s\n", p.Excerpt)
	}
	fmt.Fprintf(w, "    %s\n", theme.Muted.Render(p.URL(locale)))
}

// statsRow renders the four stat boxes side by side
func statsRow(stats publications.ProjectStats, locale i18n.Locale) string {
	box := func(value int, key string) string {
		return theme.StatBox.Render(theme.StatValue.Render(strconv.Itoa(value)) + "\n" + i18n.T(key, locale, nil))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		box(stats.TotalNotes, "stats.notes"),
		box(stats.TotalArticles, "stats.articles"),
		box(stats.TotalCategories, "stats.areas"),
		box(stats.DaysSinceStart, "stats.days"),
	)
}

func runStats(args []string, env *Env) int {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.SetOutput(env.err())
	if err := fs.Parse(args); err != nil {
		return 1
	}

	locale := env.locale()
	stats := env.Aggregator.Stats(locale)

	w := env.out()
	fmt.Fprintln(w, statsRow(stats, locale))
	if stats.EarliestDate != nil {
		fmt.Fprintln(w, theme.Muted.Render(dates.Format(*stats.EarliestDate, locale)))
	}
	return 0
}

type articleTitles []content.Article

func (a articleTitles) String(i int) string { return a[i].Title }
func (a articleTitles) Len() int            { return len(a) }

func runArticles(args []string, env *Env) int {
	fs := flag.NewFlagSet("articles", flag.ContinueOnError)
	fs.SetOutput(env.err())
	query := fs.String("q", "", "Fuzzy filter on titles")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	locale := env.locale()
	articles := env.Loader.AllArticles(locale)

	if *query != "" {
		matches := fuzzy.FindFrom(*query, articleTitles(articles))
		filtered := make([]content.Article, len(matches))
		for i, match := range matches {
			filtered[i] = articles[match.Index]
		}
		articles = filtered
	}

	w := env.out()
	fmt.Fprintln(w, theme.Title.Render(i18n.T("nav.articles", locale, nil)))
	if len(articles) == 0 {
		fmt.Fprintln(w, theme.Muted.Render(i18n.T("articles.noArticles", locale, nil)))
		return 0
	}

	for _, a := range articles {
		date := "—"
		if d, ok := a.ParsedDate(); ok {
			date = dates.Format(d, locale)
		}
		fmt.Fprintf(w, "%s  %s  %s\n", theme.Muted.Render(date), theme.Bold.Render(a.Title), theme.Muted.Render("("+a.Slug+")"))
		fmt.Fprintf(w, "    %s\n", a.ReadingTime)
		if len(a.Tags) > 0 {
			fmt.Fprintf(w, "    %s\n", theme.Tag.Render("#"+strings.Join(a.Tags, " #")))
		}
	}
	return 0
}

func runArticle(args []string, env *Env) int {
	if len(args) == 0 {
		fmt.Fprintln(env.err(), "Error: article slug required")
		fmt.Fprintln(env.err(), "Usage: committolearn article <slug>")
		return 1
	}

	locale := env.locale()
	slug := args[0]

	article, err := env.Loader.ArticleBySlug(slug, locale)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			fmt.Fprintln(env.err(), i18n.T("articles.notFound", locale, i18n.P("slug", slug)))
		} else {
			fmt.Fprintf(env.err(), "Error: %v\n", err)
		}
		return 1
	}

	w := env.out()
	fmt.Fprintln(w, theme.Title.Render(article.Title))

	meta := []string{article.ReadingTime}
	if d, ok := article.ParsedDate(); ok {
		meta = append([]string{dates.Format(d, locale)}, meta...)
	}
	if article.Category != "" {
		meta = append(meta, article.Category)
	}
	fmt.Fprintln(w, theme.Muted.Render(strings.Join(meta, " · ")))
	if len(article.Tags) > 0 {
		fmt.Fprintln(w, theme.Tag.Render("#"+strings.Join(article.Tags, " #")))
	}

	if outline := content.Outline(article.Content); outline != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, theme.Subtitle.Render(i18n.T("articles.toc", locale, nil)))
		for _, h := range outline {
			indent := "  "
			if h.Level == 3 {
				indent = "    "
			}
			fmt.Fprintf(w, "%s%s %s\n", indent, h.Text, theme.Muted.Render("#"+h.ID))
		}
	}

	if blocks := content.CodeBlocks(article.Content, highlight.NewRegexDetector()); len(blocks) > 0 {
		fmt.Fprintln(w)
		for i, b := range blocks {
			label := b.Label()
			if label == "" {
				label = "?"
			}
			if b.Detected {
				label += "*"
			}
			fmt.Fprintf(w, "  [%d] %s\n", i+1, theme.Language.Render(label))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.TrimSpace(article.Content))
	return 0
}

func runNotes(args []string, env *Env) int {
	locale := env.locale()
	notes := env.Loader.AllNotes(locale)

	w := env.out()
	if len(notes) == 0 {
		fmt.Fprintln(w, theme.Muted.Render(i18n.T("notes.noNotes", locale, nil)))
		return 0
	}

	var order []string
	groups := map[string][]content.Note{}
	for _, n := range notes {
		if _, seen := groups[n.Category]; !seen {
			order = append(order, n.Category)
		}
		groups[n.Category] = append(groups[n.Category], n)
	}

	for _, category := range order {
		name := category
		if name == "" {
			name = "-"
		}
		fmt.Fprintln(w, theme.Subtitle.Render(name))
		for _, n := range groups[category] {
			fmt.Fprintf(w, "  %s  %s\n", n.Title, theme.Muted.Render(n.Path))
		}
	}
	fmt.Fprintf(w, "\n%d %s\n", len(notes), i18n.T("studies.notesCount", locale, nil))
	return 0
}

func runStudies(args []string, env *Env) int {
	fs := flag.NewFlagSet("studies", flag.ContinueOnError)
	fs.SetOutput(env.err())
	query := fs.String("q", "", "Filter by language name or note title")
	sortFlag := fs.String("sort", string(catalog.SortByNotes), "Sort order: notes, az, recent")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	order, ok := catalog.ParseSortOrder(*sortFlag)
	if !ok {
		fmt.Fprintf(env.err(), "Error: unknown sort order %q (use notes, az or recent)\n", *sortFlag)
		return 1
	}

	c, err := env.Catalog.Catalog()
	if err != nil {
		fmt.Fprintf(env.err(), "Error loading catalog: %v\n", err)
		return 1
	}

	locale := env.locale()
	langs := catalog.Query(c.Languages, *query, order, locale)
	maxNotes := catalog.MaxNotes(c.Languages)

	w := env.out()
	fmt.Fprintln(w, theme.Title.Render(i18n.T("studies.title", locale, nil)))
	if len(langs) == 0 {
		fmt.Fprintln(w, theme.Muted.Render(i18n.T("studies.noResults", locale, nil)))
		return 0
	}

	for _, l := range langs {
		fmt.Fprintln(w, studyLine(l, maxNotes, locale))
	}
	return 0
}

// studyLine renders one study area: icon, name, count, last update, progress
func studyLine(l catalog.Language, maxNotes int, locale i18n.Locale) string {
	last := "—"
	if d, ok := l.LastUpdate(); ok {
		last = dates.FormatShort(d, locale)
	}
	return fmt.Sprintf("%s %s  %d %s · %s %s  %s",
		l.Icon,
		theme.Bold.Render(l.Name),
		len(l.Notes),
		i18n.T("studies.notesCount", locale, nil),
		i18n.T("studies.lastUpdate", locale, nil),
		last,
		theme.ProgressBar(l.Progress(maxNotes), 10),
	)
}
