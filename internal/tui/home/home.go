package home

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"committolearn/internal/dates"
	"committolearn/internal/i18n"
	"committolearn/internal/publications"
	"committolearn/internal/tui/messages"
	"committolearn/internal/tui/theme"
)

var (
	itemStyle     = lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 2)
	selectedStyle = lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).Padding(0, 2)
	detailStyle   = lipgloss.NewStyle().Foreground(theme.TextMuted).PaddingLeft(6)
)

// HomeModel shows the project stats and the latest publications feed
type HomeModel struct {
	aggregator *publications.Aggregator
	locale     i18n.Locale
	stats      publications.ProjectStats
	pubs       []publications.Publication
	selected   int
	width      int
	height     int
}

func NewHomeModel(aggregator *publications.Aggregator, locale i18n.Locale) HomeModel {
	m := HomeModel{aggregator: aggregator, locale: locale}
	m.Reload()
	return m
}

// Reload recomputes stats and the feed for the current locale
func (m *HomeModel) Reload() {
	if m.aggregator == nil {
		return
	}
	m.stats = m.aggregator.Stats(m.locale)
	m.pubs = m.aggregator.Latest(publications.DefaultLimit, m.locale)
	if m.selected >= len(m.pubs) {
		m.selected = max(len(m.pubs)-1, 0)
	}
}

// SetLocale switches the locale and reloads
func (m *HomeModel) SetLocale(locale i18n.Locale) {
	m.locale = locale
	m.Reload()
}

// SetSize updates view dimensions.
func (m *HomeModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Selected returns the highlighted publication
func (m HomeModel) Selected() (publications.Publication, bool) {
	if m.selected < 0 || m.selected >= len(m.pubs) {
		return publications.Publication{}, false
	}
	return m.pubs[m.selected], true
}

// HintText returns the key hints for the home view
func (m HomeModel) HintText() string {
	return i18n.T("hints.home", m.locale, nil)
}

func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		if m.selected < len(m.pubs)-1 {
			m.selected++
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
	case "g":
		m.selected = 0
	case "G":
		m.selected = max(len(m.pubs)-1, 0)
	case "enter":
		if p, ok := m.Selected(); ok && p.Type == publications.TypeArticle {
			return m, messages.OpenArticle(p.Slug)
		}
	}
	return m, nil
}

func (m HomeModel) View() string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(i18n.T("home.hero.title", m.locale, nil)))
	b.WriteString("\n")
	b.WriteString(theme.Muted.Render(i18n.T("home.hero.subtitle", m.locale, nil)))
	b.WriteString("\n\n")
	b.WriteString(m.renderStats())
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render(i18n.T("home.latest.title", m.locale, nil)))
	b.WriteString("\n")

	if len(m.pubs) == 0 {
		b.WriteString(itemStyle.Render(theme.Muted.Render(i18n.T("noResults", m.locale, nil))))
		return b.String()
	}

	for i, p := range m.pubs {
		b.WriteString(m.renderItem(p, i == m.selected))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m HomeModel) renderStats() string {
	box := func(value int, key string) string {
		return theme.StatBox.Render(theme.StatValue.Render(strconv.Itoa(value)) + "\n" + i18n.T(key, m.locale, nil))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		box(m.stats.TotalNotes, "stats.notes"),
		box(m.stats.TotalArticles, "stats.articles"),
		box(m.stats.TotalCategories, "stats.areas"),
		box(m.stats.DaysSinceStart, "stats.days"),
	)
}

func (m HomeModel) renderItem(p publications.Publication, selected bool) string {
	badge := theme.NoteBadge.Render(i18n.T("notes.badge", m.locale, nil))
	detail := strings.TrimSpace(p.LanguageIcon + " " + p.Language)
	if p.Type == publications.TypeArticle {
		badge = theme.ArticleBadge.Render(i18n.T("articles.badge", m.locale, nil))
		detail = p.ReadingTime
	}

	cursor := "  "
	style := itemStyle
	if selected {
		cursor = theme.Cursor.Render("> ")
		style = selectedStyle
	}

	line := fmt.Sprintf("%s%s  %s  %s", cursor, badge, theme.Muted.Render(dates.FormatShort(p.Date, m.locale)), p.Title)
	out := style.Render(line)
	if detail != "" {
		out += "\n" + detailStyle.Render(detail)
	}
	if selected && p.Excerpt != "" {
		out += "\n" + detailStyle.Render(p.Excerpt)
	}
	return out
}
