package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julien-sobczak/the-slidewriter/pkg/markdown"
)

// DeckFileHeader is the front matter of a slide deck saved as a Markdown file.
type DeckFileHeader struct {
	Title      string    `yaml:"title"`
	Background string    `yaml:"background,omitempty"`
	MediaType  MediaType `yaml:"media_type,omitempty"`
}

// ParseDeckFile reads a slide deck from a Markdown file with an optional front matter.
// Without a title attribute, the first heading is used, then the file name.
func ParseDeckFile(filename, content string) (*SlideDeck, error) {
	frontMatter, body := markdown.SplitFrontMatter(content)

	var header DeckFileHeader
	if err := frontMatter.Decode(&header); err != nil {
		return nil, fmt.Errorf("invalid front matter in %s: %w", filename, err)
	}

	title := header.Title
	if title == "" {
		title = markdown.Title(body)
	}
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}

	deck := NewSlideDeck(title, strings.TrimRight(body, "\n"))
	if header.Background != "" || header.MediaType != "" {
		mediaType := header.MediaType
		if mediaType == "" {
			mediaType = InferMediaType(header.Background)
		}
		parsed, err := ParseMediaType(string(mediaType))
		if err != nil {
			return nil, fmt.Errorf("invalid front matter in %s: %w", filename, err)
		}
		deck.SetBackground(header.Background, parsed)
	}
	return deck, nil
}

// FormatDeckFile writes a slide deck as a Markdown file starting with a front matter.
func FormatDeckFile(deck *SlideDeck) (string, error) {
	header := DeckFileHeader{
		Title: deck.Title,
	}
	if deck.Background != "" {
		header.Background = deck.Background
		header.MediaType = deck.MediaType
	}
	return markdown.WithFrontMatter(header, deck.Content+"\n")
}

// CreateSlideDeckFromFile creates a slide deck from a Markdown file and selects it.
func (r *Repository) CreateSlideDeckFromFile(path string) (*SlideDeck, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	deck, err := ParseDeckFile(filepath.Base(path), string(content))
	if err != nil {
		return nil, err
	}
	return r.insertSlideDeck(deck)
}
