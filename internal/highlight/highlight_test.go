package highlight

import "testing"

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name     string
		snippet  string
		expected string
	}{
		{"go main", "package main\nfunc main() {\n}", "go"},
		{"java main", "public class Foo { public static void main(String[] args) {} }", "java"},
		{"dockerfile", "FROM golang:1.22-alpine\nWORKDIR /app\nRUN go build", "dockerfile"},
		{"python", "def greet(name):\n    print(name)", "python"},
		{"javascript", "const total = items.reduce((a, b) => { return a + b })", "javascript"},
		{"sql", "select id from users where active = 1", "sql"},
		{"go struct", "type Server struct {\n\taddr string\n}", "go"},
		{"java generics", "List<String> names = new ArrayList<>();", "java"},
	}

	for _, tt := range tests {
		got, ok := DetectLanguage(tt.snippet)
		if !ok {
			t.Errorf("%s: expected %q, got no match", tt.name, tt.expected)
			continue
		}
		if got != tt.expected {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.expected, got)
		}
	}
}

func TestDetectLanguage_NoMatch(t *testing.T) {
	for _, prose := range []string{
		"The quick brown fox jumps over the lazy dog.",
		"",
		"Anotações sobre estruturas de dados.",
	} {
		if got, ok := DetectLanguage(prose); ok {
			t.Errorf("expected no match for %q, got %q", prose, got)
		}
	}
}

func TestDetectLanguage_OrderMatters(t *testing.T) {
	// Matches both the Docker and SQL signatures; Docker is checked first.
	snippet := "FROM postgres:16\nRUN psql -c 'SELECT 1'"
	if got, _ := DetectLanguage(snippet); got != "dockerfile" {
		t.Errorf("expected dockerfile, got %q", got)
	}

	// "import os" matches Python before Go's import pattern is considered.
	if got, _ := DetectLanguage("import os\nfmt.Println(1)"); got != "python" {
		t.Errorf("expected python, got %q", got)
	}
}

func TestRegexDetector_CustomOrder(t *testing.T) {
	d := &RegexDetector{Signatures: []Signature{SQL, Docker}}
	snippet := "FROM postgres:16\nRUN psql -c 'SELECT 1'"
	if got, _ := d.Detect(snippet); got != "sql" {
		t.Errorf("expected sql with SQL checked first, got %q", got)
	}
}

func TestShouldHighlight(t *testing.T) {
	if !ShouldHighlight("func main() {}") {
		t.Error("expected Go function to be highlighted")
	}
	if !ShouldHighlight("if (x > 1) { return y }") {
		t.Error("expected control structure to be highlighted")
	}
	if ShouldHighlight("Just a sentence about learning.") {
		t.Error("expected prose not to be highlighted")
	}
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"go":         "Go",
		"dockerfile": "Docker",
		"SQL":        "SQL",
		"JavaScript": "JavaScript",
		"rust":       "rust",
	}
	for input, expected := range tests {
		if got := DisplayName(input); got != expected {
			t.Errorf("DisplayName(%q): expected %q, got %q", input, expected, got)
		}
	}
}

func TestClassifierDetector(t *testing.T) {
	d := NewClassifierDetector()

	if got, ok := d.Detect("The quick brown fox jumps over the lazy dog."); ok {
		t.Errorf("expected prose to be rejected, got %q", got)
	}

	got, ok := d.Detect("package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n")
	if !ok {
		t.Fatal("expected a language for Go source")
	}
	valid := map[string]bool{"dockerfile": true, "java": true, "python": true, "go": true, "javascript": true, "sql": true}
	if !valid[got] {
		t.Errorf("expected one of the candidate tags, got %q", got)
	}
}

func TestByName(t *testing.T) {
	if _, ok := ByName("classifier").(*ClassifierDetector); !ok {
		t.Error("expected classifier detector")
	}
	if _, ok := ByName("regex").(*RegexDetector); !ok {
		t.Error("expected regex detector")
	}
	if _, ok := ByName("unknown").(*RegexDetector); !ok {
		t.Error("expected regex detector for unknown name")
	}
}
