package main

import (
	"strings"
	"testing"

	"github.com/julien-sobczak/the-slidewriter/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		value    string
		expected int
		err      bool
	}{
		{"1", 0, false},
		{"3", 2, false},
		{"0", 0, true},
		{"-2", 0, true},
		{"first", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			actual, err := parsePosition(tt.value)
			if tt.err {
				assert.ErrorIs(t, err, core.ErrInvalidPosition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func newTestListing() *core.Listing {
	return &core.Listing{
		CurrentPresentation: "1111111000000000000000000000000000000000",
		CurrentDeck:         "bbbbbbb000000000000000000000000000000000",
		Presentations: []core.ListedPresentation{
			{
				OID:      "1111111000000000000000000000000000000000",
				Title:    "Talk",
				Position: 0,
				Decks: []string{
					"aaaaaaa000000000000000000000000000000000",
					"bbbbbbb000000000000000000000000000000000",
				},
				Slides: 3,
			},
			{
				OID:      "2222222000000000000000000000000000000000",
				Title:    "Draft",
				Position: 1,
			},
		},
		Decks: []core.ListedDeck{
			{OID: "aaaaaaa000000000000000000000000000000000", Title: "Intro", Slug: "intro", Slides: 2},
			{OID: "bbbbbbb000000000000000000000000000000000", Title: "Outro", Slug: "outro", Slides: 1},
		},
	}
}

func TestFormatListing(t *testing.T) {
	expected := `
* 1. Talk [1111111] (3 slides)
     - Intro
     - Outro
  2. Draft [2222222] (0 slides)

Slide decks:
  intro [aaaaaaa] Intro (2 slides)
* outro [bbbbbbb] Outro (1 slide)
`
	assert.Equal(t, strings.TrimPrefix(expected, "\n"), formatListing(newTestListing()))

	assert.Equal(t, "No presentations\n\nSlide decks:\n  (none)\n", formatListing(&core.Listing{}))
}

func TestFormatListingAs(t *testing.T) {
	listing := newTestListing()

	output, err := formatListingAs(listing, "json")
	require.NoError(t, err)
	assert.Contains(t, output, `"title": "Talk"`)
	assert.True(t, strings.HasSuffix(output, "}\n"))

	output, err = formatListingAs(listing, "yaml")
	require.NoError(t, err)
	assert.Contains(t, output, "currentDeck: bbbbbbb000000000000000000000000000000000\n")
	assert.Contains(t, output, "\n  title: Intro\n")

	_, err = formatListingAs(listing, "xml")
	assert.ErrorContains(t, err, `unsupported format "xml"`)
}

func TestFormatQueryResult(t *testing.T) {
	output, err := formatQueryResult("Talk")
	require.NoError(t, err)
	assert.Equal(t, "Talk", output)

	output, err = formatQueryResult(map[string]any{"slides": 3})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"slides\": 3\n}", output)
}

func TestFormatSettings(t *testing.T) {
	settings := core.DefaultSettings()
	settings.Style.FontSize = 6

	output := formatSettings(settings, map[string]string{"style.fontSize": "6"})
	assert.True(t, strings.HasPrefix(output, "Appearance:\n"))
	assert.Contains(t, output, "\nStyle:\n")
	assert.Contains(t, output, "\nNavigation:\n")
	assert.Regexp(t, `\n\* style\.fontSize +6 vw\n`, output)
	assert.Regexp(t, `\n  style\.textAlign +center\n`, output)
	assert.Regexp(t, `\n  appearance\.showProgressBar +false\n`, output)
}
