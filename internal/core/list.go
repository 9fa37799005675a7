package core

import (
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
	"github.com/julien-sobczak/the-slidewriter/internal/slides"
	"github.com/julien-sobczak/the-slidewriter/pkg/text"
)

// Listing is the machine-readable summary of a workspace.
type Listing struct {
	CurrentPresentation string               `json:"currentPresentation,omitempty" yaml:"currentPresentation,omitempty"`
	CurrentDeck         string               `json:"currentDeck,omitempty" yaml:"currentDeck,omitempty"`
	Presentations       []ListedPresentation `json:"presentations" yaml:"presentations"`
	Decks               []ListedDeck         `json:"decks" yaml:"decks"`
}

type ListedPresentation struct {
	OID       string   `json:"oid" yaml:"oid"`
	Title     string   `json:"title" yaml:"title"`
	Position  int      `json:"position" yaml:"position"`
	Decks     []string `json:"decks" yaml:"decks"`
	Slides    int      `json:"slides" yaml:"slides"`
	UpdatedAt string   `json:"updatedAt" yaml:"updatedAt"`
}

type ListedDeck struct {
	OID        string `json:"oid" yaml:"oid"`
	Title      string `json:"title" yaml:"title"`
	Slug       string `json:"slug" yaml:"slug"`
	Slides     int    `json:"slides" yaml:"slides"`
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
	MediaType  string `json:"mediaType" yaml:"mediaType"`
	UpdatedAt  string `json:"updatedAt" yaml:"updatedAt"`
}

// List summarizes the presentations and slide decks of the workspace.
func (r *Repository) List() (*Listing, error) {
	listing := &Listing{
		Presentations: []ListedPresentation{},
		Decks:         []ListedDeck{},
	}

	decks, err := r.SlideDecks()
	if err != nil {
		return nil, err
	}
	slideCounts := make(map[string]int)
	for _, deck := range decks {
		count := countSlides(deck.Content)
		slideCounts[deck.OID.String()] = count
		listing.Decks = append(listing.Decks, ListedDeck{
			OID:        deck.OID.String(),
			Title:      deck.Title,
			Slug:       deck.Slug,
			Slides:     count,
			Background: deck.Background,
			MediaType:  string(deck.MediaType),
			UpdatedAt:  timeToSQL(deck.UpdatedAt),
		})
	}

	presentations, err := r.Presentations()
	if err != nil {
		return nil, err
	}
	for _, presentation := range presentations {
		listed := ListedPresentation{
			OID:       presentation.OID.String(),
			Title:     presentation.Title,
			Position:  presentation.Position,
			Decks:     []string{},
			UpdatedAt: timeToSQL(presentation.UpdatedAt),
		}
		for _, deckOID := range presentation.DeckOIDs {
			count, ok := slideCounts[deckOID.String()]
			if !ok {
				continue
			}
			listed.Decks = append(listed.Decks, deckOID.String())
			listed.Slides += count
		}
		listing.Presentations = append(listing.Presentations, listed)
	}

	listing.CurrentPresentation, err = CurrentDB().ReadState(stateCurrentPresentation)
	if err != nil {
		return nil, err
	}
	listing.CurrentDeck, err = CurrentDB().ReadState(stateCurrentDeck)
	if err != nil {
		return nil, err
	}
	return listing, nil
}

// countSlides returns the number of non-blank slides of a deck.
func countSlides(content string) int {
	count := 0
	for _, slide := range slides.Split(content) {
		if !text.IsBlank(slide) {
			count++
		}
	}
	return count
}

// Query evaluates a jq expression over the JSON representation of the listing.
func (l *Listing) Query(expr string) ([]any, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}

	// gojq only works on plain maps and slices
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, err
	}

	iter := query.Run(input)
	var values []any
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
