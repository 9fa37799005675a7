package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeckFile(t *testing.T) {
	tests := []struct {
		name       string
		filename   string
		content    string
		title      string
		body       string
		background string
		mediaType  MediaType
		err        string
	}{
		{
			name:      "front matter",
			filename:  "intro.md",
			content:   "---\ntitle: Introduction\nbackground: assets/intro.webm\n---\n\n# Hello\n\n---\n\n# World\n",
			title:     "Introduction",
			body:      "# Hello\n\n---\n\n# World",
			mediaType: MediaTypeVideo,
			// Inferred from the extension
			background: "assets/intro.webm",
		},
		{
			name:       "explicit media type",
			filename:   "intro.md",
			content:    "---\nbackground: https://example.com/stream\nmedia_type: video\n---\n# Hello\n",
			title:      "Hello",
			body:       "# Hello",
			background: "https://example.com/stream",
			mediaType:  MediaTypeVideo,
		},
		{
			name:      "first heading",
			filename:  "intro.md",
			content:   "Some text\n\n## Agenda\n",
			title:     "Agenda",
			body:      "Some text\n\n## Agenda",
			mediaType: MediaTypeImage,
		},
		{
			name:      "file name",
			filename:  "closing-words.md",
			content:   "",
			title:     "closing-words",
			body:      "",
			mediaType: MediaTypeImage,
		},
		{
			name:     "unknown attribute",
			filename: "intro.md",
			content:  "---\ntags: [go]\n---\n# Hello\n",
			err:      "invalid front matter in intro.md",
		},
		{
			name:     "invalid media type",
			filename: "intro.md",
			content:  "---\nbackground: song.mp3\nmedia_type: audio\n---\n# Hello\n",
			err:      `unsupported media type "audio"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck, err := ParseDeckFile(tt.filename, tt.content)
			if tt.err != "" {
				assert.ErrorContains(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.title, deck.Title)
			assert.Equal(t, tt.body, deck.Content)
			assert.Equal(t, tt.background, deck.Background)
			assert.Equal(t, tt.mediaType, deck.MediaType)
		})
	}
}

func TestFormatDeckFile(t *testing.T) {
	deck := NewSlideDeck("Intro", "# Hello\n\n---\n\n# World")

	actual, err := FormatDeckFile(deck)
	require.NoError(t, err)
	assert.Equal(t, "---\ntitle: Intro\n---\n\n# Hello\n\n---\n\n# World\n", actual)

	deck.SetBackground("assets/bg.mp4", MediaTypeVideo)
	actual, err = FormatDeckFile(deck)
	require.NoError(t, err)
	assert.Equal(t, "---\ntitle: Intro\nbackground: assets/bg.mp4\nmedia_type: video\n---\n\n# Hello\n\n---\n\n# World\n", actual)

	parsed, err := ParseDeckFile("intro.md", actual)
	require.NoError(t, err)
	assert.Equal(t, deck.Title, parsed.Title)
	assert.Equal(t, deck.Content, parsed.Content)
	assert.Equal(t, deck.Background, parsed.Background)
	assert.Equal(t, deck.MediaType, parsed.MediaType)
}

func TestCreateSlideDeckFromFile(t *testing.T) {
	root := SetUpWorkspaceFromTempDir(t)
	r := CurrentRepository()

	path := filepath.Join(root, "agenda.md")
	require.NoError(t, os.WriteFile(path, []byte("# Agenda\n\n---\n\n# Questions\n"), 0644))

	deck, err := r.CreateSlideDeckFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Agenda", deck.Title)
	assert.Equal(t, "agenda", deck.Slug)
	assert.Equal(t, []string{"# Agenda", "# Questions"}, deck.Slides())

	current, err := r.CurrentSlideDeck()
	require.NoError(t, err)
	assert.Equal(t, deck.OID, current.OID)

	_, err = r.CreateSlideDeckFromFile(filepath.Join(root, "missing.md"))
	assert.Error(t, err)
}
