package tui

import "committolearn/internal/tui/messages"

// Re-export types from messages package for convenience
type ViewType = messages.ViewType

const (
	ViewHome    = messages.ViewHome
	ViewStudies = messages.ViewStudies
	ViewArticle = messages.ViewArticle
)

type SwitchViewMsg = messages.SwitchViewMsg
type OpenArticleMsg = messages.OpenArticleMsg
type LocaleChangedMsg = messages.LocaleChangedMsg
type ContentChangedMsg = messages.ContentChangedMsg
