package core

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"
	"github.com/julien-sobczak/the-slidewriter/internal/helpers"
	"github.com/julien-sobczak/the-slidewriter/pkg/console"
	"github.com/julien-sobczak/the-slidewriter/pkg/filesystem"
	"github.com/julien-sobczak/the-slidewriter/pkg/markdown"
	"github.com/julien-sobczak/the-slidewriter/pkg/oid"
	"github.com/julien-sobczak/the-slidewriter/pkg/text"
	"github.com/otiai10/copy"
)

//go:embed templates/*.html
var templatesFS embed.FS

var slideshowTemplate = template.Must(template.ParseFS(templatesFS, "templates/slideshow.html"))

type htmlSlide struct {
	HTML       template.HTML
	Deck       string
	Background string
	Video      bool
}

type htmlSlideshow struct {
	Title string
	Settings
	Slides   []htmlSlide
	ShowHint bool
	Hint     string
}

// RenderHTML renders a slideshow as a single HTML page styled using the settings.
func RenderHTML(slideshow *Slideshow, settings Settings) (string, error) {
	title := slideshow.Title
	if title == "" {
		title = "Slideshow"
	}
	data := htmlSlideshow{
		Title:    title,
		Settings: settings,
		ShowHint: NewNavigator(len(slideshow.Slides)).ShowHint(settings),
		Hint:     NavigationHint,
	}
	for _, slide := range slideshow.Slides {
		data.Slides = append(data.Slides, htmlSlide{
			// Content is written by the user and trusted
			HTML:       template.HTML(markdown.ToHTML(slide.Markdown)),
			Deck:       slide.DeckTitle,
			Background: slide.Background,
			Video:      slide.MediaType == MediaTypeVideo,
		})
	}

	var buf bytes.Buffer
	if err := slideshowTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// HTMLExport summarizes an exported slideshow.
type HTMLExport struct {
	Path   string
	Slides int
	Assets int
	Size   int64
}

// ExportHTML writes the slideshow of a presentation in the output directory,
// next to a copy of the assets directory. The progress is reported on w.
func (r *Repository) ExportHTML(presentationOID oid.OID, w io.Writer) (*HTMLExport, error) {
	slideshow, err := r.Slideshow(presentationOID)
	if err != nil {
		return nil, err
	}
	settings, err := r.LoadSettings()
	if err != nil {
		return nil, err
	}
	page, err := RenderHTML(slideshow, settings)
	if err != nil {
		return nil, err
	}

	outputDir := CurrentConfig().OutputDir()
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return nil, err
	}
	path := filepath.Join(outputDir, slug.Make(slideshow.Title)+".html")
	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		return nil, err
	}
	CurrentLogger().Infof("Exported %d slides to %s", len(slideshow.Slides), path)

	assets, err := copyAssets(CurrentConfig().AssetsDir(), outputDir, w)
	if err != nil {
		return nil, err
	}

	size, err := filesystem.FileSize(path)
	if err != nil {
		return nil, err
	}

	return &HTMLExport{
		Path:   path,
		Slides: len(slideshow.Slides),
		Assets: assets,
		Size:   size,
	}, nil
}

// copyAssets copies the assets directory inside the output directory and returns the number of copied files.
// Files already present in the output directory with the same content are skipped.
func copyAssets(assetsDir, outputDir string, w io.Writer) (int, error) {
	if _, err := os.Stat(assetsDir); os.IsNotExist(err) {
		CurrentLogger().Debugf("No assets to copy from %s", assetsDir)
		return 0, nil
	}
	files, err := filesystem.ListFiles(assetsDir)
	if err != nil {
		return 0, err
	}
	if w == nil {
		w = io.Discard
	}

	targetDir := filepath.Join(outputDir, filepath.Base(assetsDir))
	progress := console.NewProgressLog(len(files), console.ToWriter(w), console.ShowPercent())
	copied := 0
	for i, file := range files {
		relpath, err := filepath.Rel(assetsDir, file)
		if err != nil {
			return 0, err
		}
		target := filepath.Join(targetDir, relpath)
		unchanged, err := helpers.SameContent(file, target)
		if err != nil {
			return 0, err
		}
		if unchanged {
			CurrentLogger().Debugf("Skipping unchanged asset %s", relpath)
			continue
		}
		progress.Log(i, fmt.Sprintf("Copying %s...", relpath))
		if err := copy.Copy(file, target); err != nil {
			return 0, err
		}
		copied++
	}
	message := fmt.Sprintf("Copied %d %s", copied, text.Pluralize(copied, "asset", "assets"))
	if unchanged := len(files) - copied; unchanged > 0 {
		message += fmt.Sprintf(" (%d unchanged)", unchanged)
	}
	progress.Clear(message)
	return copied, nil
}
