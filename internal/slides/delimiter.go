package slides

import (
	"strings"
)

// Separator is the text a line must contain to separate two slides.
const Separator = "---"

// JoinSeparator is inserted between slides when joining them.
// Blank lines around the dashes keep the result splittable even when a slide
// starts or ends with a line ending.
const JoinSeparator = "\n\n" + Separator + "\n\n"

// line is a line of text followed by its line ending ("" for the last line).
type line struct {
	text   string
	ending string
}

// splitLines cuts a text into lines, keeping "\n", "\r\n" and "\r" endings.
func splitLines(text string) []line {
	var lines []line
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, line{text: text[start:i], ending: "\n"})
			start = i + 1
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				lines = append(lines, line{text: text[start:i], ending: "\r\n"})
				i++
			} else {
				lines = append(lines, line{text: text[start:i], ending: "\r"})
			}
			start = i + 1
		}
	}
	lines = append(lines, line{text: text[start:]})
	return lines
}

// isDelimiter reports if the i-th line separates two slides.
// The line must be exactly "---" with a line ending on both sides.
// The two endings may differ, and successive delimiters each start a new slide.
func isDelimiter(lines []line, i int) bool {
	return i > 0 && lines[i].text == Separator && lines[i].ending != ""
}

// Split cuts a markdown document into slide contents.
//
// A blank document yields a single empty content. Each fragment loses exactly
// one leading and one trailing line ending so that Join(Split(md)) is stable.
func Split(markdown string) []string {
	return SplitOr(markdown, "")
}

// SplitOr is like Split but returns the fallback content for a blank document.
func SplitOr(markdown string, fallback string) []string {
	if strings.TrimSpace(markdown) == "" {
		return []string{fallback}
	}

	lines := splitLines(markdown)

	var fragments []string
	var current strings.Builder
	first := 0 // index of the first line of the current fragment
	for i := range lines {
		if !isDelimiter(lines, i) {
			continue
		}
		current.Reset()
		for j := first; j < i; j++ {
			current.WriteString(lines[j].text)
			// The line ending just before the delimiter belongs to the delimiter
			if j < i-1 {
				current.WriteString(lines[j].ending)
			}
		}
		fragments = append(fragments, trimLineEndings(current.String()))
		first = i + 1
	}

	current.Reset()
	for j := first; j < len(lines); j++ {
		current.WriteString(lines[j].text)
		current.WriteString(lines[j].ending)
	}
	fragments = append(fragments, trimLineEndings(current.String()))

	return fragments
}

// Join concatenates slide contents into a single markdown document.
func Join(contents []string) string {
	return strings.Join(contents, JoinSeparator)
}

// ContainsDelimiter reports if the text would be split into several slides.
func ContainsDelimiter(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	lines := splitLines(text)
	for i := range lines {
		if isDelimiter(lines, i) {
			return true
		}
	}
	return false
}

// trimLineEndings removes at most one line ending on each side.
func trimLineEndings(text string) string {
	return trimTrailingLineEnding(trimLeadingLineEnding(text))
}

func trimLeadingLineEnding(text string) string {
	switch {
	case strings.HasPrefix(text, "\r\n"):
		return text[2:]
	case strings.HasPrefix(text, "\n"), strings.HasPrefix(text, "\r"):
		return text[1:]
	}
	return text
}

func trimTrailingLineEnding(text string) string {
	switch {
	case strings.HasSuffix(text, "\r\n"):
		return text[:len(text)-2]
	case strings.HasSuffix(text, "\n"), strings.HasSuffix(text, "\r"):
		return text[:len(text)-1]
	}
	return text
}
