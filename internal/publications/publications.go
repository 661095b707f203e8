package publications

import (
	"time"

	"committolearn/internal/catalog"
	"committolearn/internal/content"
	"committolearn/internal/dates"
	"committolearn/internal/i18n"
	"committolearn/internal/logs"
)

// DefaultLimit is the feed size used when the caller passes no limit
const DefaultLimit = 8

// Type discriminates the two kinds of publication
type Type string

const (
	TypeArticle Type = "article"
	TypeNote    Type = "note"
)

// Publication is the feed projection of an article or a catalog note
type Publication struct {
	Type     Type
	Slug     string
	Title    string
	Date     time.Time
	Category string

	// Articles only
	Excerpt     string
	ReadingTime string

	// Notes only
	Language     string
	LanguageIcon string
}

// URL is the site path of the publication, under /en for en-US
func (p Publication) URL(locale i18n.Locale) string {
	var path string
	if p.Type == TypeArticle {
		path = "/articles/" + p.Slug
	} else {
		path = "/notes/" + p.Category + "/" + p.Slug
	}
	if locale == i18n.EnUS {
		return "/en" + path
	}
	return path
}

// ProjectStats summarizes the content set
type ProjectStats struct {
	TotalNotes      int
	TotalArticles   int
	TotalCategories int
	DaysSinceStart  int
	EarliestDate    *time.Time
}

// ArticleSource lists the articles of a locale
type ArticleSource interface {
	AllArticles(locale i18n.Locale) []content.Article
}

// Aggregator merges articles and catalog notes. Every call recomputes from
// its sources.
type Aggregator struct {
	Articles ArticleSource
	Catalog  catalog.Source
	Now      func() time.Time
}

// NewAggregator creates an Aggregator using the wall clock
func NewAggregator(articles ArticleSource, source catalog.Source) *Aggregator {
	return &Aggregator{Articles: articles, Catalog: source, Now: time.Now}
}

func (a *Aggregator) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a *Aggregator) languages() []catalog.Language {
	if a.Catalog == nil {
		return nil
	}
	c, err := a.Catalog.Catalog()
	if err != nil {
		logs.Logger.Printf("Error loading catalog: %v", err)
		return nil
	}
	return c.Languages
}

func (a *Aggregator) articles(locale i18n.Locale) []content.Article {
	if a.Articles == nil {
		return nil
	}
	return a.Articles.AllArticles(locale)
}

// All returns every dated publication, newest first. Equal dates keep
// source order: articles first, then notes in catalog order.
func (a *Aggregator) All(locale i18n.Locale) []Publication {
	var pubs []Publication

	for _, article := range a.articles(locale) {
		date, ok := article.ParsedDate()
		if !ok {
			continue
		}
		pubs = append(pubs, Publication{
			Type:        TypeArticle,
			Slug:        article.Slug,
			Title:       article.Title,
			Date:        date,
			Category:    article.Category,
			Excerpt:     article.Excerpt,
			ReadingTime: article.ReadingTime,
		})
	}

	for _, lang := range a.languages() {
		for _, note := range lang.Notes {
			date, ok := note.ParsedDate()
			if !ok {
				continue
			}
			pubs = append(pubs, Publication{
				Type:         TypeNote,
				Slug:         note.Slug,
				Title:        note.Title,
				Date:         date,
				Category:     lang.ID,
				Language:     lang.Name,
				LanguageIcon: lang.Icon,
			})
		}
	}

	return dates.SortByDate(pubs, func(p Publication) time.Time { return p.Date })
}

// Latest returns at most limit publications, newest first. A limit of zero
// or less means DefaultLimit.
func (a *Aggregator) Latest(limit int, locale i18n.Locale) []Publication {
	if limit <= 0 {
		limit = DefaultLimit
	}
	pubs := a.All(locale)
	if len(pubs) > limit {
		pubs = pubs[:limit]
	}
	return pubs
}

// Stats counts every article of the locale and every catalog note, dated or
// not. DaysSinceStart is measured from the earliest dated item and is 0 when
// nothing is dated.
func (a *Aggregator) Stats(locale i18n.Locale) ProjectStats {
	articles := a.articles(locale)
	langs := a.languages()

	var found []time.Time
	for _, article := range articles {
		if d, ok := article.ParsedDate(); ok {
			found = append(found, d)
		}
	}

	totalNotes := 0
	for _, lang := range langs {
		totalNotes += len(lang.Notes)
		for _, note := range lang.Notes {
			if d, ok := note.ParsedDate(); ok {
				found = append(found, d)
			}
		}
	}

	stats := ProjectStats{
		TotalNotes:      totalNotes,
		TotalArticles:   len(articles),
		TotalCategories: len(langs),
	}

	identity := func(t time.Time) time.Time { return t }
	if earliest, ok := dates.Earliest(found, identity); ok {
		stats.EarliestDate = &earliest
		stats.DaysSinceStart = daysBetween(earliest, a.now())
	}

	return stats
}

// daysBetween is ceil((now - start) / 24h), never negative
func daysBetween(start, now time.Time) int {
	if !now.After(start) {
		return 0
	}
	return dates.DaysSince(start, now)
}
