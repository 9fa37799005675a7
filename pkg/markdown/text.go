package markdown

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// How many spaces to indent headings per level
const indentHeading = 2

// How many spaces to indent code blocks
const indentCode = 4

var (
	reBoldAsterisks     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	reBoldUnderscores   = regexp.MustCompile(`__(.*?)__`)
	reItalicAsterisks   = regexp.MustCompile(`\*(.*?)\*`)
	reItalicUnderscores = regexp.MustCompile(`\b_(.*?)_\b`)
	reInlineCode        = regexp.MustCompile("`([^`]*)`")
	reImage             = regexp.MustCompile(`!\[(.*?)\]\(.*?\)`)
	reLink              = regexp.MustCompile(`\[(.*?)\]\(.*?\)`)
	reURL               = regexp.MustCompile(`<(https?://.*?)>`)
	reEmail             = regexp.MustCompile(`<(.*?@.*?[.]\w+)>`)
	reBullet            = regexp.MustCompile(`^(\s*)[-*+] `)
)

// ToText converts a Markdown document to plain text suitable for a terminal.
func ToText(md string) string {
	var lines []string
	insideCode := false
	insideQuote := false
	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, "```") || strings.HasPrefix(line, "~~~") {
			insideCode = !insideCode
			continue
		}
		if insideCode {
			lines = append(lines, strings.Repeat(" ", indentCode)+line)
			continue
		}

		if strings.HasPrefix(line, ">") {
			quotation := inline(strings.TrimSpace(strings.TrimPrefix(line, ">")))
			if insideQuote {
				lines[len(lines)-1] = strings.TrimSuffix(lines[len(lines)-1], `"`) + "\n" + quotation + `"`
			} else {
				lines = append(lines, `"`+quotation+`"`)
			}
			insideQuote = true
			continue
		}
		insideQuote = false

		if ok, title, level := IsHeading(line); ok {
			lines = append(lines, heading(inline(title), level))
			continue
		}

		line = reBullet.ReplaceAllString(line, "$1• ")
		lines = append(lines, inline(line))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// heading underlines top headings and indents the others.
func heading(title string, level int) string {
	switch level {
	case 1:
		return title + "\n" + strings.Repeat("=", utf8.RuneCountInString(title))
	case 2:
		return title + "\n" + strings.Repeat("-", utf8.RuneCountInString(title))
	}
	return strings.Repeat(" ", (level-2)*indentHeading) + title
}

// inline removes inline markup.
func inline(text string) string {
	text = reInlineCode.ReplaceAllString(text, "$1")
	text = reBoldAsterisks.ReplaceAllString(text, "$1")
	text = reBoldUnderscores.ReplaceAllString(text, "$1")
	text = reItalicAsterisks.ReplaceAllString(text, "$1")
	text = reItalicUnderscores.ReplaceAllString(text, "$1")
	text = reImage.ReplaceAllString(text, "[image: $1]")
	text = reLink.ReplaceAllString(text, "$1")
	text = reURL.ReplaceAllString(text, "$1")
	text = reEmail.ReplaceAllString(text, "$1")
	return text
}
