package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Already normalized",
			input:    "# A\n\n---\n\n# B",
			expected: "# A\n\n---\n\n# B",
		},
		{
			name:     "Tight delimiters",
			input:    "# A\n---\n# B",
			expected: "# A\n\n---\n\n# B",
		},
		{
			name:     "Windows line endings",
			input:    "# A\r\n---\r\n# B",
			expected: "# A\n\n---\n\n# B",
		},
		{
			name:     "Single slide",
			input:    "# A\n\nText",
			expected: "# A\n\nText",
		},
		{
			name:     "Blank",
			input:    "  \n",
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := NormalizeMarkdown(tt.input)
			assert.Equal(t, tt.expected, actual)
			// Normalization is stable
			assert.Equal(t, actual, NormalizeMarkdown(actual))
		})
	}
}

func TestDiffSlideDeck(t *testing.T) {
	deck := NewSlideDeck("Intro", "# A\n---\n# B\n")

	assert.Empty(t, DiffSlideDeck(deck, deck.Content))

	patch := DiffSlideDeck(deck, "# A\n---\n# C\n")
	require.NotEmpty(t, patch)
	assert.Contains(t, patch, "intro.md")
	assert.Contains(t, patch, "-# B")
	assert.Contains(t, patch, "+# C")
}

func TestSampleMarkdown(t *testing.T) {
	SetUpWorkspaceFromTempDir(t)
	r := CurrentRepository()
	deck := mustCreateSlideDeck(t, SampleTitle, "")

	require.NoError(t, r.LoadSample(deck))

	loaded := mustLoadSlideDeck(t, deck.OID)
	contents := loaded.Slides()
	require.Len(t, contents, 6)
	assert.Equal(t, "# Welcome to Markdown Slideshow\n\nThis is your first slide. Write your content here using standard markdown.", contents[0])
	assert.Contains(t, contents[3], "```go\n")
	assert.Contains(t, contents[5], "Separate slides with `---`")
	assert.NotContains(t, SampleMarkdown, "”")
}
