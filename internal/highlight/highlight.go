package highlight

import (
	"regexp"
	"strings"
)

// Detector guesses the programming language of a snippet. The second return
// value is false when nothing matched.
type Detector interface {
	Detect(snippet string) (string, bool)
}

// Signature is a set of patterns; any single match claims the snippet
type Signature struct {
	Language string
	Patterns []*regexp.Regexp
}

// Matches reports whether any pattern of s matches content
func (s Signature) Matches(content string) bool {
	for _, p := range s.Patterns {
		if p.MatchString(content) {
			return true
		}
	}
	return false
}

func patterns(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		compiled[i] = regexp.MustCompile(expr)
	}
	return compiled
}

var (
	Docker = Signature{Language: "dockerfile", Patterns: patterns(
		`(?m)^\s*FROM\s+[\w/:.\-]+`,
		`(?m)^\s*RUN\s+`,
		`(?m)^\s*COPY\s+`,
		`(?m)^\s*ADD\s+`,
		`(?m)^\s*WORKDIR\s+`,
		`(?m)^\s*EXPOSE\s+\d+`,
		`(?m)^\s*ENV\s+\w+`,
		`(?m)^\s*CMD\s*\[`,
		`(?m)^\s*ENTRYPOINT\s*\[`,
		`(?m)^\s*VOLUME\s+`,
		`(?m)^\s*USER\s+`,
		`(?m)^\s*LABEL\s+`,
		`(?m)^\s*ARG\s+`,
	)}

	Java = Signature{Language: "java", Patterns: patterns(
		`\bpublic\s+class\s+\w+`,
		`\bpublic\s+static\s+void\s+main`,
		`\bimport\s+java\.`,
		`\bSystem\.out\.print`,
		`\bnew\s+\w+\s*\(`,
		`\b(ArrayList|HashMap|String)\s*<`,
		`\bpublic\s+\w+\s+\w+\s*\(`,
		`\bprivate\s+\w+\s+\w+`,
		// "\b@" needs a word character right before the at sign
		`\w@Override\b`,
		`\bextends\s+\w+`,
		`\bimplements\s+\w+`,
	)}

	Python = Signature{Language: "python", Patterns: patterns(
		`\bdef\s+\w+\s*\(`,
		`\bimport\s+\w+`,
		`\bfrom\s+\w+\s+import`,
		`\bclass\s+\w+\s*\(`,
		`\bclass\s+\w+\s*:`,
		`\bif\s+__name__\s*==\s*["']__main__["']:`,
		`\bprint\s*\(`,
		`\bself\.`,
		`\brange\s*\(`,
	)}

	Go = Signature{Language: "go", Patterns: patterns(
		`\bpackage\s+\w+`,
		`\bfunc\s+\w+\s*\(`,
		`\bfunc\s+main\s*\(\s*\)`,
		`\bimport\s*\(`,
		`\bvar\s+\w+\s+\w+`,
		`\bfmt\.`,
		`\bmake\s*\(`,
		`\btype\s+\w+\s+struct`,
		// ":=" between word characters, e.g. "x:=1"
		`\w:=\w`,
		`\bfunc\s*\(`,
	)}

	JavaScript = Signature{Language: "javascript", Patterns: patterns(
		`\b(const|let|var)\s+\w+`,
		`\bfunction\s+\w+`,
		`\b(async|await)\b`,
		`\bconsole\.(log|error|warn)`,
		`\bexport\s+(default|const|function)`,
		`\bimport\s+.*from`,
		`=>\s*\{`,
		`\b(React|useState|useEffect)\b`,
	)}

	SQL = Signature{Language: "sql", Patterns: patterns(
		`(?i)\b(SELECT|INSERT|UPDATE|DELETE|CREATE|DROP|ALTER)\s+`,
		`(?i)\bFROM\s+\w+`,
		`(?i)\bWHERE\s+`,
		`(?i)\bJOIN\s+`,
		`(?i)\bGROUP\s+BY\b`,
		`(?i)\bORDER\s+BY\b`,
	)}
)

// DefaultOrder is the fixed check order; the first match wins
var DefaultOrder = []Signature{Docker, Java, Python, Go, JavaScript, SQL}

// RegexDetector runs signatures in order and returns the first match
type RegexDetector struct {
	Signatures []Signature
}

// NewRegexDetector returns a detector using DefaultOrder
func NewRegexDetector() *RegexDetector {
	return &RegexDetector{Signatures: DefaultOrder}
}

func (d *RegexDetector) Detect(snippet string) (string, bool) {
	for _, sig := range d.Signatures {
		if sig.Matches(snippet) {
			return sig.Language, true
		}
	}
	return "", false
}

// DetectLanguage runs the default regex detector
func DetectLanguage(snippet string) (string, bool) {
	return defaultDetector.Detect(snippet)
}

var defaultDetector = NewRegexDetector()

var codeHints = Signature{Patterns: patterns(
	`\bclass\s+\w+`,
	`\bpublic\s+static\s+void`,
	`\bimport\s+[\w.]+`,
	`\bfunction\s+\w+`,
	`\bdef\s+\w+`,
	`\bpackage\s+\w+`,
	`\bfunc\s+\w+`,
	`\breturn\s+\w+`,
	`\b(if|for|while)\s*\(`,
)}

// ShouldHighlight is a coarse "does this look like code at all" check
func ShouldHighlight(content string) bool {
	return codeHints.Matches(content)
}

var displayNames = map[string]string{
	"java":       "Java",
	"python":     "Python",
	"go":         "Go",
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"dockerfile": "Docker",
	"sql":        "SQL",
	"bash":       "Bash",
	"shell":      "Shell",
	"json":       "JSON",
	"yaml":       "YAML",
	"markdown":   "Markdown",
	"html":       "HTML",
	"css":        "CSS",
}

// DisplayName maps a language tag to its human-readable name, returning the
// tag unchanged when unknown.
func DisplayName(lang string) string {
	if name, ok := displayNames[strings.ToLower(lang)]; ok {
		return name
	}
	return lang
}
