package core

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTML(t *testing.T) {
	slideshow := &Slideshow{
		Title: "Go <3",
		Slides: []Slide{
			{Markdown: "# Hello\n\nWelcome **all**"},
			{Markdown: "# Demo", Background: "https://example.com/demo.mp4", MediaType: MediaTypeVideo, DeckTitle: "Demo"},
			{Markdown: "# Thanks", Background: "assets/thanks.png", MediaType: MediaTypeImage},
		},
	}
	settings := DefaultSettings()
	settings.Appearance.ShowProgressBar = true
	settings.Style.TextColor = "#333"
	settings.Style.FontSize = 6.5

	html, err := RenderHTML(slideshow, settings)
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Go &lt;3</title>")
	assert.Contains(t, html, `<h1 id="hello">Hello</h1>`)
	assert.Contains(t, html, "<strong>all</strong>")
	assert.Contains(t, html, `<section class="slide active" data-index="0">`)
	assert.Contains(t, html, `<section class="slide" data-index="1" data-deck="Demo">`)
	assert.Contains(t, html, `<video class="background" src="https://example.com/demo.mp4"`)
	assert.Contains(t, html, `<img class="background" src="assets/thanks.png"`)
	assert.Contains(t, html, "color: #333;")
	assert.Contains(t, html, "font-size: 6.5vw;")
	assert.Contains(t, html, `id="progress"`)
	assert.Contains(t, html, `<div class="counter" id="counter">1 / 3</div>`)
	assert.Contains(t, html, "Use arrow keys, spacebar to navigate")
	assert.Regexp(t, `var autoHide = \s*false\s*;`, html)

	settings.Appearance.ShowProgressBar = false
	settings.Appearance.ShowSlideCounter = false
	settings.Navigation.ShowNavigationHint = false
	html, err = RenderHTML(slideshow, settings)
	require.NoError(t, err)
	assert.NotContains(t, html, `id="progress"`)
	assert.NotContains(t, html, `id="counter"`)
	assert.NotContains(t, html, "Use arrow keys")
}

func TestRenderHTMLPlaceholder(t *testing.T) {
	html, err := RenderHTML(BuildSlideshow(nil, nil), DefaultSettings())
	require.NoError(t, err)
	assert.Contains(t, html, "<title>Slideshow</title>")
	assert.Contains(t, html, "No Presentation Selected")
	// A single slide needs no navigation hint
	assert.NotContains(t, html, "Use arrow keys")
}

func TestExportHTML(t *testing.T) {
	root := SetUpWorkspaceFromTempDir(t)
	UseSequenceOID(t)
	r := CurrentRepository()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "assets/images"), os.ModePerm))
	require.NoError(t, os.WriteFile(filepath.Join(root, "assets/logo.svg"), []byte("<svg/>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "assets/images/bg.png"), []byte("png"), 0644))

	presentation := mustCreatePresentation(t, "Go Tour")
	deck := mustCreateSlideDeck(t, "Intro", "# Hello\n\n---\n\n![logo](assets/logo.svg)")
	require.NoError(t, r.AddSlideDeckToPresentation(presentation.OID, deck.OID))

	var progress bytes.Buffer
	result, err := r.ExportHTML(presentation.OID, &progress)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "build/go-tour.html"), result.Path)
	assert.Equal(t, 2, result.Slides)
	assert.Equal(t, 2, result.Assets)
	assert.Greater(t, result.Size, int64(0))

	page, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	assert.Contains(t, string(page), `<img src="assets/logo.svg" alt="logo"`)
	assert.FileExists(t, filepath.Join(root, "build/assets/logo.svg"))
	assert.FileExists(t, filepath.Join(root, "build/assets/images/bg.png"))
	assert.Contains(t, progress.String(), "Copied 2 assets")

	// Only modified assets are copied again
	require.NoError(t, os.WriteFile(filepath.Join(root, "assets/logo.svg"), []byte("<svg></svg>"), 0644))
	progress.Reset()
	result, err = r.ExportHTML(presentation.OID, &progress)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Assets)
	assert.Contains(t, progress.String(), "Copied 1 asset (1 unchanged)")

	result, err = r.ExportHTML(presentation.OID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Assets)
	copied, err := os.ReadFile(filepath.Join(root, "build/assets/logo.svg"))
	require.NoError(t, err)
	assert.Equal(t, "<svg></svg>", string(copied))
}

func TestExportHTMLWithoutAssets(t *testing.T) {
	root := SetUpWorkspaceFromTempDir(t)
	r := CurrentRepository()

	presentation := mustCreatePresentation(t, "Empty")

	result, err := r.ExportHTML(presentation.OID, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "build/empty.html"), result.Path)
	assert.Equal(t, 1, result.Slides)
	assert.Equal(t, 0, result.Assets)
	assert.NoDirExists(t, filepath.Join(root, "build/assets"))
}
