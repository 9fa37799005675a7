package markdown_test

import (
	"testing"

	"github.com/julien-sobczak/the-slidewriter/pkg/markdown"
	"github.com/stretchr/testify/assert"
)

func TestToHTML(t *testing.T) {
	var tests = []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "heading",
			input:    "# Welcome",
			expected: `<h1 id="welcome">Welcome</h1>`,
		},
		{
			name:     "paragraph",
			input:    "Some **bold** text",
			expected: "<p>Some <strong>bold</strong> text</p>",
		},
		{
			name:     "blank",
			input:    "",
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, markdown.ToHTML(tt.input))
		})
	}

	// Links open in a new tab
	assert.Contains(t, markdown.ToHTML("[docs](https://example.com)"), `target="_blank"`)
}

func TestIsHeading(t *testing.T) {
	var tests = []struct {
		line  string
		ok    bool
		title string
		level int
	}{
		{"# Title", true, "Title", 1},
		{"### Sub title ", true, "Sub title", 3},
		{"###### Deep", true, "Deep", 6},
		{"####### Too deep", false, "", 0},
		{"#hashtag", false, "", 0},
		{"Text", false, "", 0},
		{"#", false, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			ok, title, level := markdown.IsHeading(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.title, title)
			assert.Equal(t, tt.level, level)
		})
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Features", markdown.Title("\n## Features\n\n- Simple"))
	assert.Equal(t, "Just text", markdown.Title("\n\nJust text\nMore text"))
	assert.Equal(t, "", markdown.Title("  \n"))
}
