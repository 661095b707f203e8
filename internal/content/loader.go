package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"committolearn/internal/dates"
	"committolearn/internal/i18n"
	"committolearn/internal/logs"
)

var (
	// ErrNotFound means no file exists for the requested slug
	ErrNotFound = errors.New("content not found")
	// ErrReadFailure wraps I/O and front matter errors
	ErrReadFailure = errors.New("content read failure")
)

// Article is a long-form markdown post
type Article struct {
	Slug        string
	Title       string
	Content     string // Body without front matter
	Excerpt     string
	Date        string // As written in front matter, "" when absent
	Category    string
	Tags        []string
	Locale      i18n.Locale
	ReadingTime string
}

// ParsedDate returns the article date when it is present and parseable
func (a Article) ParsedDate() (time.Time, bool) {
	return dates.Parse(a.Date)
}

// Note is a study note found while walking the notes tree
type Note struct {
	Slug     string
	Title    string
	Content  string // Whole file, front matter included
	Category string // First-level directory under the locale root
	Path     string
}

// Loader reads articles and notes from two content trees:
//
//	<ArticlesDir>/<slug>.md            pt-BR articles
//	<ArticlesDir>/en-US/<slug>.md      en-US articles
//	<NotesDir>/<locale>/<category>/... notes
type Loader struct {
	ArticlesDir string
	NotesDir    string
}

// NewLoader creates a loader over the given content roots
func NewLoader(articlesDir, notesDir string) *Loader {
	return &Loader{ArticlesDir: articlesDir, NotesDir: notesDir}
}

func (l *Loader) articlesDir(locale i18n.Locale) string {
	if locale == i18n.EnUS {
		return filepath.Join(l.ArticlesDir, string(i18n.EnUS))
	}
	return l.ArticlesDir
}

// ArticlePath returns the file an article slug maps to for a locale
func (l *Loader) ArticlePath(slug string, locale i18n.Locale) string {
	return filepath.Join(l.articlesDir(locale), slug+".md")
}

// ArticleBySlug reads and parses a single article. A missing file returns
// ErrNotFound; unreadable files and invalid front matter return an error
// wrapping ErrReadFailure, which is also logged.
func (l *Loader) ArticleBySlug(slug string, locale i18n.Locale) (Article, error) {
	path := l.ArticlePath(slug, locale)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Article{}, fmt.Errorf("article %q: %w", slug, ErrNotFound)
		}
		return Article{}, readFailure(slug, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Article{}, readFailure(slug, err)
	}

	fm, body, err := parseFrontmatter(data)
	if err != nil {
		return Article{}, readFailure(slug, err)
	}

	var excerpt string
	if fm.Excerpt != "" {
		excerpt = StripMarkdown(fm.Excerpt)
	} else {
		excerpt = Excerpt(StripMarkdown(body))
	}

	title := fm.Title
	if title == "" {
		title = TitleFromSlug(slug)
	}

	return Article{
		Slug:        slug,
		Title:       CapitalizeTitle(title),
		Content:     body,
		Excerpt:     excerpt,
		Date:        fm.Date,
		Category:    fm.Category,
		Tags:        []string(fm.Tags),
		Locale:      locale,
		ReadingTime: ReadingTime(body, locale),
	}, nil
}

func readFailure(slug string, err error) error {
	logs.Logger.Printf("Error reading article %s: %v", slug, err)
	return fmt.Errorf("article %q: %w: %w", slug, ErrReadFailure, err)
}

// AllArticles returns every article of a locale that parses. Files that fail
// are skipped and a missing directory yields an empty list.
func (l *Loader) AllArticles(locale i18n.Locale) []Article {
	entries, err := os.ReadDir(l.articlesDir(locale))
	if err != nil {
		if !os.IsNotExist(err) {
			logs.Logger.Printf("Error reading articles: %v", err)
		}
		return []Article{}
	}

	articles := []Article{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		slug := strings.TrimSuffix(entry.Name(), ".md")
		article, err := l.ArticleBySlug(slug, locale)
		if err != nil {
			continue
		}
		articles = append(articles, article)
	}

	return articles
}

// AllNotes walks <NotesDir>/<locale> and returns every markdown file as a
// Note. Hidden directories are skipped; unreadable files are logged and
// skipped.
func (l *Loader) AllNotes(locale i18n.Locale) []Note {
	notes := []Note{}
	root := filepath.Join(l.NotesDir, string(locale))

	if err := walkNotes(root, "", &notes); err != nil {
		logs.Logger.Printf("Error walking notes in %s: %v", root, err)
	}

	return notes
}

func walkNotes(dir, category string, notes *[]Note) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if entry.IsDir() {
			if strings.HasPrefix(name, ".") {
				continue
			}
			sub := category
			if sub == "" {
				sub = name
			}
			if err := walkNotes(path, sub, notes); err != nil {
				return err
			}
			continue
		}

		if !strings.HasSuffix(name, ".md") {
			continue
		}

		note, err := readNote(path, category)
		if err != nil {
			logs.Logger.Printf("Error reading note %s: %v", path, err)
			continue
		}
		*notes = append(*notes, note)
	}

	return nil
}

func readNote(path, category string) (Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Note{}, err
	}

	slug := strings.TrimSuffix(filepath.Base(path), ".md")

	// Invalid front matter only costs the note its metadata
	fm, _, err := parseFrontmatter(data)
	if err != nil {
		logs.Logger.Printf("Ignoring front matter of %s: %v", path, err)
	}

	title := fm.Title
	if title == "" {
		title = TitleFromSlug(slug)
	}

	return Note{
		Slug:     slug,
		Title:    title,
		Content:  string(data),
		Category: category,
		Path:     path,
	}, nil
}
