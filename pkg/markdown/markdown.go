package markdown

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// ToHTML renders a Markdown document. Links open in a new tab as slides
// are displayed full screen.
func ToHTML(md string) string {
	// A parser cannot be reused
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs | parser.Footnotes)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.HrefTargetBlank,
	})
	doc := p.Parse([]byte(md))
	return strings.TrimSpace(string(markdown.Render(doc, renderer)))
}

// IsHeading returns if a given line is a Markdown heading, its title and its level.
func IsHeading(line string) (bool, string, int) {
	if !strings.HasPrefix(line, "#") {
		return false, "", 0
	}
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level > 6 || level >= len(line) || line[level] != ' ' {
		return false, "", 0
	}
	return true, strings.TrimSpace(line[level+1:]), level
}

// Title returns the text of the first heading, or the first non-blank line
// when the document has no heading.
func Title(md string) string {
	firstLine := ""
	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimSpace(line)
		if ok, title, _ := IsHeading(line); ok {
			return title
		}
		if firstLine == "" && line != "" {
			firstLine = line
		}
	}
	return firstLine
}
