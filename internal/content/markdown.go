package content

import (
	"math"
	"strconv"
	"strings"

	"committolearn/internal/highlight"
	"committolearn/internal/i18n"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// WordsPerMinute is the reading rate used for reading time labels
const WordsPerMinute = 200

// MinOutlineHeadings is the heading count below which no outline is shown
const MinOutlineHeadings = 3

var markdown = goldmark.New(
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

func parse(source []byte) ast.Node {
	return markdown.Parser().Parse(text.NewReader(source))
}

// plainText concatenates the text segments below n
func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := child.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(source))
			if c.SoftLineBreak() || c.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(c.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// WordCount counts the prose words of a markdown document. Code blocks,
// code spans and raw HTML are not counted.
func WordCount(body string) int {
	source := []byte(body)
	doc := parse(source)

	var prose strings.Builder
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n.Kind() {
		case ast.KindCodeBlock, ast.KindFencedCodeBlock, ast.KindCodeSpan, ast.KindHTMLBlock, ast.KindRawHTML:
			return ast.WalkSkipChildren, nil
		}

		if !entering {
			if n.Type() == ast.TypeBlock {
				prose.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}

		switch c := n.(type) {
		case *ast.Text:
			prose.Write(c.Segment.Value(source))
			if c.SoftLineBreak() || c.HardLineBreak() {
				prose.WriteByte(' ')
			}
		case *ast.String:
			prose.Write(c.Value)
		}
		return ast.WalkContinue, nil
	})

	return len(strings.Fields(prose.String()))
}

// ReadingTime returns the localized reading time label for a markdown body
func ReadingTime(body string, locale i18n.Locale) string {
	minutes := int(math.Ceil(float64(WordCount(body)) / WordsPerMinute))

	switch {
	case minutes < 1:
		return i18n.T("code.lessThanOneMin", locale, nil)
	case minutes == 1:
		return i18n.T("code.oneMin", locale, nil)
	}
	return i18n.T("code.minutesRead", locale, i18n.P("minutes", strconv.Itoa(minutes)))
}

// Heading is a level 2 or 3 heading with its generated anchor id
type Heading struct {
	ID    string
	Text  string
	Level int
}

// Headings returns the h2 and h3 headings of a markdown body in order
func Headings(body string) []Heading {
	source := []byte(body)
	doc := parse(source)

	var headings []Heading
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if heading.Level == 2 || heading.Level == 3 {
			var id string
			if v, ok := heading.AttributeString("id"); ok {
				if b, ok := v.([]byte); ok {
					id = string(b)
				}
			}
			headings = append(headings, Heading{
				ID:    id,
				Text:  strings.TrimSpace(plainText(heading, source)),
				Level: heading.Level,
			})
		}
		return ast.WalkSkipChildren, nil
	})

	return headings
}

// Outline returns the headings for a table of contents, or nil when there
// are fewer than MinOutlineHeadings.
func Outline(body string) []Heading {
	headings := Headings(body)
	if len(headings) < MinOutlineHeadings {
		return nil
	}
	return headings
}

// CodeBlock is a fenced or indented code block. Language comes from the
// fence info string, or from the detector when Detected is true.
type CodeBlock struct {
	Language string
	Detected bool
	Fenced   bool
	Source   string
}

// Label is the display name of the block language, "" when unknown
func (c CodeBlock) Label() string {
	if c.Language == "" {
		return ""
	}
	return highlight.DisplayName(c.Language)
}

// CodeBlocks extracts the code blocks of a markdown body. Blocks without an
// info string are passed to detector; a nil detector skips detection.
func CodeBlocks(body string, detector highlight.Detector) []CodeBlock {
	source := []byte(body)
	doc := parse(source)

	var blocks []CodeBlock
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		var lang string
		fenced := false
		switch c := n.(type) {
		case *ast.FencedCodeBlock:
			lang = string(c.Language(source))
			fenced = true
		case *ast.CodeBlock:
		default:
			return ast.WalkContinue, nil
		}

		var code strings.Builder
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			segment := lines.At(i)
			code.Write(segment.Value(source))
		}

		block := CodeBlock{Language: lang, Fenced: fenced, Source: code.String()}
		if lang == "" && detector != nil {
			if detected, ok := detector.Detect(block.Source); ok {
				block.Language = detected
				block.Detected = true
			}
		}
		blocks = append(blocks, block)

		return ast.WalkSkipChildren, nil
	})

	return blocks
}
