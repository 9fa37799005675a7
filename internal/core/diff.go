package core

import (
	godiffpatch "github.com/sourcegraph/go-diff-patch"

	"github.com/julien-sobczak/the-slidewriter/internal/slides"
)

// NormalizeMarkdown rewrites the content so that slides are separated by the canonical delimiter.
func NormalizeMarkdown(markdown string) string {
	return slides.Join(slides.Split(markdown))
}

// DiffSlideDeck returns the unified patch between the saved content of a deck and a new content.
// An empty string is returned when nothing differs.
func DiffSlideDeck(deck *SlideDeck, newContent string) string {
	if deck.Content == newContent {
		return ""
	}
	return godiffpatch.GeneratePatch(deck.Slug+".md", deck.Content, newContent)
}
