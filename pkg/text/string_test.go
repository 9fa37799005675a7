package text_test

import (
	"testing"

	"github.com/julien-sobczak/the-slidewriter/pkg/text"
	"github.com/stretchr/testify/assert"
)

func TestSquashBlankLines(t *testing.T) {
	var tests = []struct {
		name     string
		input    string
		expected string
	}{
		{
			"TwoLines",
			"\nThis is a paragraph.\n\n\nThis is a second paragraph.\n\n",
			"\nThis is a paragraph.\n\nThis is a second paragraph.\n\n",
		},
		{
			"NoEmptyLines",
			"A\nB\n",
			"A\nB\n",
		},
		{
			"Whitespaces",
			"A\n  \n\t\nB",
			"A\n  \nB\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.SquashBlankLines(tt.input))
		})
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, text.IsBlank(""))
	assert.True(t, text.IsBlank(" \n\t "))
	assert.False(t, text.IsBlank(" a "))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "# Title", text.FirstLine("\n  \n  # Title  \nBody"))
	assert.Equal(t, "", text.FirstLine("\n \n"))
}

func TestTruncate(t *testing.T) {
	var tests = []struct {
		input    string
		width    int
		expected string
	}{
		{"Hello", 10, "Hello"},
		{"Hello", 5, "Hello"},
		{"Hello World", 5, "Hell…"},
		{"Héllo Wörld", 7, "Héllo …"},
		{"Hello", 1, "…"},
		{"Hello", 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, text.Truncate(tt.input, tt.width))
	}
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "deck", text.Pluralize(1, "deck", "decks"))
	assert.Equal(t, "decks", text.Pluralize(0, "deck", "decks"))
	assert.Equal(t, "decks", text.Pluralize(2, "deck", "decks"))
}
