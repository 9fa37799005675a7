package markdown

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the YAML header of a Markdown file.
type FrontMatter string

// SplitFrontMatter extracts the front matter enclosed between two "---" lines
// at the top of a document. Blank lines between the front matter and the body are dropped.
// The document is returned unchanged when there is no front matter.
func SplitFrontMatter(md string) (FrontMatter, string) {
	lines := strings.Split(strings.ReplaceAll(md, "\r\n", "\n"), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", md
	}

	var rawFrontMatter strings.Builder
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			body := strings.Join(lines[i+1:], "\n")
			return FrontMatter(rawFrontMatter.String()), strings.TrimLeft(body, "\n")
		}
		rawFrontMatter.WriteString(lines[i])
		rawFrontMatter.WriteString("\n")
	}

	// Never closed
	return "", md
}

func (f FrontMatter) AsMap() (map[string]any, error) {
	var attributes = make(map[string]any)
	if err := yaml.Unmarshal([]byte(f), attributes); err != nil {
		return nil, err
	}
	return attributes, nil
}

// Decode unmarshalls the front matter into v. Unknown attributes are rejected.
func (f FrontMatter) Decode(v any) error {
	if strings.TrimSpace(string(f)) == "" {
		return nil
	}
	decoder := yaml.NewDecoder(bytes.NewBufferString(string(f)))
	decoder.KnownFields(true)
	return decoder.Decode(v)
}

// WithFrontMatter prepends the attributes of v as front matter.
func WithFrontMatter(v any, body string) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return "", err
	}
	if err := encoder.Close(); err != nil {
		return "", err
	}
	buf.WriteString("---\n\n")
	buf.WriteString(body)
	return buf.String(), nil
}
