package tui

import (
	"committolearn/internal/catalog"
	"committolearn/internal/config"
	"committolearn/internal/content"
	"committolearn/internal/i18n"
	"committolearn/internal/logs"
	"committolearn/internal/publications"
	"committolearn/internal/tui/home"
	"committolearn/internal/tui/reader"
	"committolearn/internal/tui/studies"
	"committolearn/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options wires the content sources into the TUI
type Options struct {
	Loader      *content.Loader
	Aggregator  *publications.Aggregator
	Catalog     catalog.Source
	Resolver    *i18n.Resolver
	Locale      i18n.Locale
	DefaultView string
}

// AppModel is the root model that dispatches to child views
type AppModel struct {
	opts         Options
	locale       i18n.Locale
	currentView  ViewType
	homeView     home.HomeModel
	studiesView  studies.StudiesModel
	readerView   reader.ReaderModel
	readerLoaded bool // true when readerView holds an article
	status       string
	showHelp     bool
	width        int
	height       int
	ready        bool
}

// NewAppModel creates the root application model
func NewAppModel(opts Options) AppModel {
	locale := opts.Locale
	if locale == "" {
		locale = i18n.DefaultLocale
		if opts.Resolver != nil {
			locale = opts.Resolver.Current()
		}
	}

	view := ViewHome
	if opts.DefaultView == config.ViewStudies {
		view = ViewStudies
	}

	return AppModel{
		opts:        opts,
		locale:      locale,
		currentView: view,
		homeView:    home.NewHomeModel(opts.Aggregator, locale),
		studiesView: studies.NewStudiesModel(opts.Catalog, locale),
	}
}

// Locale returns the active locale
func (m AppModel) Locale() i18n.Locale {
	return m.locale
}

// CurrentView returns the view being shown
func (m AppModel) CurrentView() ViewType {
	return m.currentView
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) contentHeight() int {
	return m.height - 5 // tab bar and status bar
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.homeView.SetSize(msg.Width, m.contentHeight())
		m.studiesView.SetSize(msg.Width, m.contentHeight())
		if m.readerLoaded {
			m.readerView.SetSize(msg.Width, m.contentHeight())
		}
		return m, nil

	case OpenArticleMsg:
		m.openArticle(msg.Slug)
		return m, nil

	case SwitchViewMsg:
		if msg.View == ViewArticle && !m.readerLoaded {
			return m, nil
		}
		m.currentView = msg.View
		return m, nil

	case LocaleChangedMsg:
		m.locale = msg.Locale
		m.homeView.SetLocale(msg.Locale)
		m.studiesView.SetLocale(msg.Locale)
		if m.readerLoaded {
			m.openArticle(m.readerView.Slug())
		}
		return m, nil

	case ContentChangedMsg:
		logs.Logger.Printf("Content changed: %v", msg.Paths)
		m.homeView.Reload()
		m.studiesView.Reload()
		if m.readerLoaded && m.currentView == ViewArticle {
			m.openArticle(m.readerView.Slug())
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		m.status = ""

		// Let the search box take every key while it has focus
		if m.currentView == ViewStudies && m.studiesView.IsTyping() {
			break
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case "l":
			return m, m.toggleLocale()
		case "tab":
			if m.currentView == ViewStudies {
				m.currentView = ViewHome
			} else {
				m.currentView = ViewStudies
			}
			return m, nil
		case "1":
			m.currentView = ViewHome
			return m, nil
		case "2":
			m.currentView = ViewStudies
			return m, nil
		}
	}

	// Dispatch to current child view
	var cmd tea.Cmd
	switch m.currentView {
	case ViewHome:
		m.homeView, cmd = m.homeView.Update(msg)
	case ViewStudies:
		m.studiesView, cmd = m.studiesView.Update(msg)
	case ViewArticle:
		if m.readerLoaded {
			m.readerView, cmd = m.readerView.Update(msg)
		}
	}
	return m, cmd
}

// toggleLocale flips the locale and stores it as the preference. A failed
// save is logged and the switch still happens.
func (m AppModel) toggleLocale() tea.Cmd {
	next := i18n.Toggle(m.locale)
	if m.opts.Resolver != nil {
		if err := m.opts.Resolver.Set(next); err != nil {
			logs.Logger.Printf("Error saving locale: %v", err)
		}
	}
	return func() tea.Msg {
		return LocaleChangedMsg{Locale: next}
	}
}

func (m *AppModel) openArticle(slug string) {
	if m.opts.Loader == nil {
		return
	}
	article, err := m.opts.Loader.ArticleBySlug(slug, m.locale)
	if err != nil {
		logs.Logger.Printf("Error opening article %s: %v", slug, err)
		m.status = i18n.T("articles.notFound", m.locale, i18n.P("slug", slug))
		if m.currentView == ViewArticle {
			m.currentView = ViewHome
			m.readerLoaded = false
		}
		return
	}
	m.readerView = reader.NewReaderModel(article, m.locale, m.width, m.contentHeight())
	m.readerLoaded = true
	m.currentView = ViewArticle
}

func (m AppModel) View() string {
	if !m.ready {
		return i18n.T("loading", m.locale, nil)
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var body, hints string
	switch m.currentView {
	case ViewHome:
		body = m.homeView.View()
		hints = m.homeView.HintText()
	case ViewStudies:
		body = m.studiesView.View()
		hints = m.studiesView.HintText()
	case ViewArticle:
		body = m.readerView.View()
		hints = m.readerView.HintText()
	}

	statusText := hints + "  |  " + m.locale.String()
	if m.status != "" {
		statusText = theme.Error.Render(m.status) + "  " + statusText
	}
	statusBar := theme.StatusBar.Width(m.width).Render(theme.HelpHint.Render(statusText))

	return lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), body, statusBar)
}

func (m AppModel) renderTabs() string {
	tab := func(view ViewType, key string) string {
		label := i18n.T(key, m.locale, nil)
		if m.currentView == view || (view == ViewHome && m.currentView == ViewArticle) {
			return theme.TabActive.Render(label)
		}
		return theme.TabInactive.Render(label)
	}
	tabs := tab(ViewHome, "nav.home") + "   " + tab(ViewStudies, "nav.studies")
	return theme.TabBar.Width(m.width).Render(tabs)
}

func (m AppModel) renderHelpOverlay() string {
	helpBoxStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 2)

	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)
	descStyle := lipgloss.NewStyle().Foreground(theme.Text)

	t := func(key string) string {
		return i18n.T(key, m.locale, nil)
	}
	line := func(key, desc string) string {
		return "  " + keyStyle.Width(14).Render(key) + descStyle.Render(t(desc))
	}

	var help string
	help += theme.Title.Render(t("help.title")) + "\n\n"

	help += theme.Subtitle.Render(t("help.global")) + "\n"
	help += line("tab / 1 / 2", "help.switchViews") + "\n"
	help += line("l", "help.toggleLocale") + "\n"
	help += line("?", "help.showHelp") + "\n"
	help += line("q", "help.quit") + "\n"
	help += line("ctrl+c", "help.forceQuit") + "\n\n"

	help += theme.Subtitle.Render(t("help.home")) + "\n"
	help += line("j / k", "help.navigate") + "\n"
	help += line("enter", "help.readArticle") + "\n\n"

	help += theme.Subtitle.Render(t("help.studies")) + "\n"
	help += line("/", "help.search") + "\n"
	help += line("s", "help.cycleSort") + "\n"
	help += line("enter", "help.showNotes") + "\n\n"

	help += theme.Subtitle.Render(t("help.article")) + "\n"
	help += line("j / k", "help.scroll") + "\n"
	help += line("esc", "help.back") + "\n\n"

	help += theme.HelpHint.Render(t("help.close"))

	box := helpBoxStyle.Render(help)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
