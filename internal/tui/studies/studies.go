package studies

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"committolearn/internal/catalog"
	"committolearn/internal/dates"
	"committolearn/internal/i18n"
	"committolearn/internal/logs"
	"committolearn/internal/tui/theme"
)

// SearchDelay is how long typing must pause before the query applies
const SearchDelay = 300 * time.Millisecond

var (
	itemStyle        = lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 2)
	selectedStyle    = lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).Padding(0, 2)
	noteStyle        = lipgloss.NewStyle().Foreground(theme.TextMuted).PaddingLeft(6)
	searchLabelStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
)

// searchTickMsg fires SearchDelay after a keystroke. Only the tick carrying
// the latest sequence number applies the query.
type searchTickMsg struct {
	seq int
}

// StudiesModel lists the catalog languages with search and sorting
type StudiesModel struct {
	source    catalog.Source
	locale    i18n.Locale
	languages []catalog.Language
	visible   []catalog.Language
	maxNotes  int

	textInput textinput.Model
	searching bool
	query     string
	seq       int
	order     catalog.SortOrder

	selected int
	expanded bool
	width    int
	height   int
	err      error
}

func NewStudiesModel(source catalog.Source, locale i18n.Locale) StudiesModel {
	ti := textinput.New()
	ti.CharLimit = 100
	ti.Width = 40

	m := StudiesModel{
		source:    source,
		locale:    locale,
		textInput: ti,
		order:     catalog.SortByNotes,
	}
	m.textInput.Placeholder = i18n.T("studies.searchPlaceholder", locale, nil)
	m.Reload()
	return m
}

// Reload reads the catalog again and reapplies query and order
func (m *StudiesModel) Reload() {
	m.err = nil
	if m.source == nil {
		m.languages = nil
	} else if c, err := m.source.Catalog(); err != nil {
		logs.Logger.Printf("Error loading catalog: %v", err)
		m.err = err
		m.languages = nil
	} else {
		m.languages = c.Languages
	}
	m.maxNotes = catalog.MaxNotes(m.languages)
	m.apply()
}

// SetLocale switches the locale used for labels and A→Z collation
func (m *StudiesModel) SetLocale(locale i18n.Locale) {
	m.locale = locale
	m.textInput.Placeholder = i18n.T("studies.searchPlaceholder", locale, nil)
	m.apply()
}

// SetSize updates view dimensions.
func (m *StudiesModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// IsTyping returns true when the search input has focus.
func (m StudiesModel) IsTyping() bool {
	return m.searching
}

// Query returns the query currently applied to the list
func (m StudiesModel) Query() string {
	return m.query
}

// Order returns the active sort order
func (m StudiesModel) Order() catalog.SortOrder {
	return m.order
}

// Visible returns the languages after filtering and sorting
func (m StudiesModel) Visible() []catalog.Language {
	return m.visible
}

// HintText returns the raw hint string for the current mode.
func (m StudiesModel) HintText() string {
	if m.searching {
		return i18n.T("hints.search", m.locale, nil)
	}
	return i18n.T("hints.studies", m.locale, nil)
}

func (m *StudiesModel) apply() {
	m.visible = catalog.Query(m.languages, m.query, m.order, m.locale)
	if m.selected >= len(m.visible) {
		m.selected = max(len(m.visible)-1, 0)
	}
}

// scheduleSearch bumps the sequence and returns the delayed tick for it
func (m *StudiesModel) scheduleSearch() tea.Cmd {
	m.seq++
	seq := m.seq
	return tea.Tick(SearchDelay, func(time.Time) tea.Msg {
		return searchTickMsg{seq: seq}
	})
}

func (m StudiesModel) Update(msg tea.Msg) (StudiesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case searchTickMsg:
		if msg.seq == m.seq && m.query != m.textInput.Value() {
			m.query = m.textInput.Value()
			m.selected = 0
			m.expanded = false
			m.apply()
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m StudiesModel) updateSearch(msg tea.KeyMsg) (StudiesModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.textInput.Blur()
		m.seq++
		m.query = m.textInput.Value()
		m.apply()
		return m, nil
	case "esc":
		m.searching = false
		m.textInput.Blur()
		m.textInput.SetValue("")
		m.seq++
		m.query = ""
		m.apply()
		return m, nil
	}

	before := m.textInput.Value()
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if m.textInput.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.scheduleSearch())
}

func (m StudiesModel) updateList(msg tea.KeyMsg) (StudiesModel, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.searching = true
		return m, m.textInput.Focus()
	case "s":
		m.order = m.order.Next()
		m.apply()
	case "j", "down":
		if m.selected < len(m.visible)-1 {
			m.selected++
			m.expanded = false
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
			m.expanded = false
		}
	case "enter":
		m.expanded = !m.expanded
	}
	return m, nil
}

func (m StudiesModel) View() string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(i18n.T("studies.title", m.locale, nil)))
	b.WriteString("\n")
	b.WriteString(theme.Muted.Render(i18n.T("studies.subtitle", m.locale, nil)))
	b.WriteString("\n\n")

	label := searchLabelStyle.Render(i18n.T("studies.searchLabel", m.locale, nil) + ": ")
	if m.searching || m.textInput.Value() != "" {
		b.WriteString(label + m.textInput.View())
	} else {
		b.WriteString(label + theme.Muted.Render("/"))
	}
	b.WriteString("   ")
	b.WriteString(m.renderSortTabs())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(theme.Error.Render("Error: " + m.err.Error()))
		return b.String()
	}
	if len(m.visible) == 0 {
		b.WriteString(itemStyle.Render(theme.Muted.Render(i18n.T("studies.noResults", m.locale, nil))))
		return b.String()
	}

	for i, l := range m.visible {
		b.WriteString(m.renderLanguage(l, i == m.selected))
		b.WriteString("\n")
		if i == m.selected && m.expanded {
			b.WriteString(m.renderNotes(l))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m StudiesModel) renderSortTabs() string {
	tabs := make([]string, len(catalog.SortOrders))
	for i, o := range catalog.SortOrders {
		text := i18n.T(o.LabelKey(), m.locale, nil)
		if o == m.order {
			tabs[i] = theme.TabActive.Render("[" + text + "]")
		} else {
			tabs[i] = theme.TabInactive.Render(text)
		}
	}
	return strings.Join(tabs, " ")
}

func (m StudiesModel) renderLanguage(l catalog.Language, selected bool) string {
	last := "—"
	if d, ok := l.LastUpdate(); ok {
		last = dates.FormatShort(d, m.locale)
	}

	cursor := "  "
	style := itemStyle
	if selected {
		cursor = theme.Cursor.Render("> ")
		style = selectedStyle
	}

	line := fmt.Sprintf("%s%s %-12s %3d %s  %s %s  %s",
		cursor,
		l.Icon,
		l.Name,
		len(l.Notes),
		i18n.T("studies.notesCount", m.locale, nil),
		i18n.T("studies.lastUpdate", m.locale, nil),
		last,
		theme.ProgressBar(l.Progress(m.maxNotes), 12),
	)
	return style.Render(line)
}

func (m StudiesModel) renderNotes(l catalog.Language) string {
	if len(l.Notes) == 0 {
		return noteStyle.Render(i18n.T("notes.noNotes", m.locale, nil)) + "\n"
	}
	var b strings.Builder
	for _, n := range l.Notes {
		date := ""
		if d, ok := n.ParsedDate(); ok {
			date = dates.FormatShort(d, m.locale) + "  "
		}
		b.WriteString(noteStyle.Render(theme.Muted.Render(date) + n.Title))
		b.WriteString("\n")
	}
	b.WriteString(noteStyle.Render(theme.Muted.Render(l.URL(m.locale))))
	b.WriteString("\n")
	return b.String()
}
