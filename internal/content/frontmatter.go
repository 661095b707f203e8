package content

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontmatter holds the metadata attributes recognized in content files
type frontmatter struct {
	Title    string   `yaml:"title"`
	Date     string   `yaml:"date"`
	Excerpt  string   `yaml:"excerpt"`
	Category string   `yaml:"category"`
	Tags     tagList  `yaml:"tags"`
}

// tagList accepts a sequence of tags or a single scalar tag. Other shapes
// decode as no tags.
type tagList []string

func (t *tagList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if tag := strings.TrimSpace(value.Value); tag != "" && value.Tag != "!!null" {
			*t = tagList{tag}
		}
	case yaml.SequenceNode:
		var tags []string
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag == "!!null" {
				continue
			}
			if tag := strings.TrimSpace(item.Value); tag != "" {
				tags = append(tags, tag)
			}
		}
		*t = tags
	}
	return nil
}

// splitFrontmatter separates a leading "---" delimited block from the body.
// Content without a complete block is returned whole with a nil block.
func splitFrontmatter(content []byte) ([]byte, string) {
	lines := bytes.Split(content, []byte("\n"))

	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return nil, string(content)
	}

	var end int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			end = i
			break
		}
	}

	if end == 0 {
		return nil, string(content)
	}

	block := bytes.Join(lines[1:end], []byte("\n"))
	body := bytes.Join(lines[end+1:], []byte("\n"))
	return block, string(body)
}

// parseFrontmatter decodes the metadata block and returns it with the body
func parseFrontmatter(content []byte) (frontmatter, string, error) {
	var fm frontmatter

	block, body := splitFrontmatter(content)
	if block == nil {
		return fm, body, nil
	}

	if err := yaml.Unmarshal(block, &fm); err != nil {
		return frontmatter{}, body, err
	}

	return fm, body, nil
}
