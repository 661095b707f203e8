package reader

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"committolearn/internal/content"
	"committolearn/internal/dates"
	"committolearn/internal/highlight"
	"committolearn/internal/i18n"
	"committolearn/internal/tui/messages"
	"committolearn/internal/tui/theme"
)

// ReaderModel shows one article in a scrollable viewport
type ReaderModel struct {
	article  content.Article
	detector highlight.Detector
	locale   i18n.Locale
	viewport viewport.Model
}

func NewReaderModel(article content.Article, locale i18n.Locale, width, height int) ReaderModel {
	m := ReaderModel{
		article:  article,
		detector: highlight.NewRegexDetector(),
		locale:   locale,
		viewport: viewport.New(width, max(height, 1)),
	}
	m.viewport.SetContent(m.render())
	return m
}

// Slug returns the slug of the open article
func (m ReaderModel) Slug() string {
	return m.article.Slug
}

// SetSize updates view dimensions.
func (m *ReaderModel) SetSize(w, h int) {
	m.viewport.Width = w
	m.viewport.Height = max(h, 1)
}

// HintText returns the key hints for the reader
func (m ReaderModel) HintText() string {
	return i18n.T("hints.reader", m.locale, nil)
}

func (m ReaderModel) Update(msg tea.Msg) (ReaderModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "backspace", "h":
			return m, messages.SwitchView(messages.ViewHome)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m ReaderModel) View() string {
	return m.viewport.View()
}

func (m ReaderModel) render() string {
	a := m.article
	var b strings.Builder

	b.WriteString(theme.Muted.Render(i18n.T("articles.backToArticles", m.locale, nil)))
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Render(a.Title))
	b.WriteString("\n")

	meta := []string{a.ReadingTime}
	if d, ok := a.ParsedDate(); ok {
		meta = append([]string{dates.Format(d, m.locale)}, meta...)
	}
	b.WriteString(theme.Muted.Render(strings.Join(meta, " · ")))
	b.WriteString("\n")
	if len(a.Tags) > 0 {
		b.WriteString(theme.Tag.Render("#" + strings.Join(a.Tags, " #")))
		b.WriteString("\n")
	}

	if outline := content.Outline(a.Content); outline != nil {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render(i18n.T("articles.toc", m.locale, nil)))
		b.WriteString("\n")
		for _, h := range outline {
			indent := "  "
			if h.Level == 3 {
				indent = "    "
			}
			b.WriteString(indent + h.Text + "\n")
		}
	}

	var blocks []content.CodeBlock
	for _, block := range content.CodeBlocks(a.Content, m.detector) {
		if block.Fenced {
			blocks = append(blocks, block)
		}
	}
	next := 0
	inFence := false

	b.WriteString("\n")
	for _, line := range strings.Split(strings.TrimSpace(a.Content), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if !inFence && next < len(blocks) {
				if label := blocks[next].Label(); label != "" {
					b.WriteString(theme.Language.Render(fmt.Sprintf("[%s]", label)))
					b.WriteString("\n")
				}
				next++
			}
			inFence = !inFence
			continue
		}
		if inFence {
			b.WriteString(theme.Code.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
