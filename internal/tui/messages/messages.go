package messages

import (
	tea "github.com/charmbracelet/bubbletea"

	"committolearn/internal/i18n"
)

// ViewType represents the different views in the application
type ViewType int

const (
	ViewHome ViewType = iota
	ViewStudies
	ViewArticle
)

// SwitchViewMsg is sent by child views to switch to a different view
type SwitchViewMsg struct {
	View ViewType
}

// OpenArticleMsg requests the reader for one article
type OpenArticleMsg struct {
	Slug string
}

// LocaleChangedMsg is sent after the active locale changed
type LocaleChangedMsg struct {
	Locale i18n.Locale
}

// ContentChangedMsg signals that files under the content roots changed
type ContentChangedMsg struct {
	Paths []string
}

func SwitchView(v ViewType) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{View: v}
	}
}

func OpenArticle(slug string) tea.Cmd {
	return func() tea.Msg {
		return OpenArticleMsg{Slug: slug}
	}
}
