package highlight

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// classifierCandidates are the enry language names the classifier may pick
// from; they lower-case to the same tags RegexDetector returns.
var classifierCandidates = []string{"Dockerfile", "Java", "Python", "Go", "JavaScript", "SQL"}

// ClassifierDetector asks go-enry's Bayesian classifier for the most likely
// candidate. Snippets that pass neither ShouldHighlight nor the Docker or SQL
// signatures are rejected first, since the classifier always answers.
type ClassifierDetector struct {
	Candidates []string
}

// NewClassifierDetector returns a classifier limited to the regex languages
func NewClassifierDetector() *ClassifierDetector {
	return &ClassifierDetector{Candidates: classifierCandidates}
}

func (d *ClassifierDetector) Detect(snippet string) (string, bool) {
	if !ShouldHighlight(snippet) && !Docker.Matches(snippet) && !SQL.Matches(snippet) {
		return "", false
	}
	languages := enry.GetLanguagesByClassifier("", []byte(snippet), d.Candidates)
	if len(languages) == 0 {
		return "", false
	}
	return strings.ToLower(languages[0]), true
}

// ByName returns the detector registered under name ("regex" or
// "classifier"); unknown names get the regex detector.
func ByName(name string) Detector {
	switch strings.ToLower(name) {
	case "classifier", "enry":
		return NewClassifierDetector()
	}
	return NewRegexDetector()
}
