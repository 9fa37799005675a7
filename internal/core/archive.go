package core

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/julien-sobczak/the-slidewriter/pkg/oid"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Archive is the portable YAML representation of a workspace.
// Decks are referenced from presentations by slug.
type Archive struct {
	Presentations []ArchivedPresentation `yaml:"presentations"`
	Decks         []ArchivedDeck         `yaml:"decks"`
	Settings      map[string]string      `yaml:"settings,omitempty"`
}

type ArchivedPresentation struct {
	Title string   `yaml:"title"`
	Decks []string `yaml:"decks,omitempty"`
}

type ArchivedDeck struct {
	Slug       string    `yaml:"slug"`
	Title      string    `yaml:"title"`
	Background string    `yaml:"background,omitempty"`
	MediaType  MediaType `yaml:"media_type,omitempty"`
	Content    string    `yaml:"content"`
}

// Export builds an archive of the given presentations and their decks.
// All presentations and decks are exported when no presentation is given.
func (r *Repository) Export(presentationOIDs ...oid.OID) (*Archive, error) {
	var presentations []*Presentation
	var decks []*SlideDeck
	var err error
	if len(presentationOIDs) == 0 {
		presentations, err = r.Presentations()
		if err != nil {
			return nil, err
		}
		decks, err = r.SlideDecks()
		if err != nil {
			return nil, err
		}
	} else {
		for _, presentationOID := range presentationOIDs {
			presentation, err := r.mustLoadPresentation(presentationOID)
			if err != nil {
				return nil, err
			}
			presentations = append(presentations, presentation)
			presentationDecks, err := r.GetPresentationSlideDecks(presentationOID)
			if err != nil {
				return nil, err
			}
			for _, deck := range presentationDecks {
				if !slices.ContainsFunc(decks, func(d *SlideDeck) bool { return d.OID == deck.OID }) {
					decks = append(decks, deck)
				}
			}
		}
	}

	archive := &Archive{}
	slugs := make(map[oid.OID]string)
	for _, deck := range decks {
		slug := uniqueSlug(deck.Slug, slugs)
		slugs[deck.OID] = slug
		archive.Decks = append(archive.Decks, ArchivedDeck{
			Slug:       slug,
			Title:      deck.Title,
			Background: deck.Background,
			MediaType:  deck.MediaType,
			Content:    deck.Content,
		})
	}
	for _, presentation := range presentations {
		archived := ArchivedPresentation{
			Title: presentation.Title,
		}
		for _, deckOID := range presentation.DeckOIDs {
			if slug, ok := slugs[deckOID]; ok {
				archived.Decks = append(archived.Decks, slug)
			}
		}
		archive.Presentations = append(archive.Presentations, archived)
	}

	if len(presentationOIDs) == 0 {
		archive.Settings, err = r.StoredSettings()
		if err != nil {
			return nil, err
		}
	}
	return archive, nil
}

// uniqueSlug returns a slug not already used by another deck.
func uniqueSlug(slug string, used map[oid.OID]string) string {
	if slug == "" {
		slug = "deck"
	}
	taken := func(candidate string) bool {
		for _, s := range used {
			if s == candidate {
				return true
			}
		}
		return false
	}
	candidate := slug
	for i := 2; taken(candidate); i++ {
		candidate = fmt.Sprintf("%s-%d", slug, i)
	}
	return candidate
}

// ExportYAML serializes an archive of the given presentations.
func (r *Repository) ExportYAML(presentationOIDs ...oid.OID) (string, error) {
	archive, err := r.Export(presentationOIDs...)
	if err != nil {
		return "", err
	}
	return ToYAML(archive)
}

// ParseArchive reads a YAML archive.
func ParseArchive(data []byte) (*Archive, error) {
	var archive Archive
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&archive); err != nil {
		return nil, fmt.Errorf("invalid archive: %w", err)
	}
	if err := archive.Check(); err != nil {
		return nil, err
	}
	return &archive, nil
}

// Check validates the references between presentations and decks.
func (a *Archive) Check() error {
	slugs := make(map[string]bool)
	for _, deck := range a.Decks {
		if deck.Slug == "" {
			return fmt.Errorf("invalid archive: deck %q has no slug", deck.Title)
		}
		if slugs[deck.Slug] {
			return fmt.Errorf("invalid archive: duplicate deck slug %q", deck.Slug)
		}
		if deck.MediaType != "" {
			if _, err := ParseMediaType(string(deck.MediaType)); err != nil {
				return fmt.Errorf("invalid archive: deck %q: %w", deck.Slug, err)
			}
		}
		slugs[deck.Slug] = true
	}
	for _, presentation := range a.Presentations {
		if strings.TrimSpace(presentation.Title) == "" {
			return fmt.Errorf("invalid archive: presentation without title")
		}
		for _, slug := range presentation.Decks {
			if !slugs[slug] {
				return fmt.Errorf("invalid archive: presentation %q references unknown deck %q", presentation.Title, slug)
			}
		}
	}
	for key, value := range a.Settings {
		definition, err := LookupSetting(key)
		if err != nil {
			return fmt.Errorf("invalid archive: %w", err)
		}
		if _, err := definition.Parse(value); err != nil {
			return fmt.Errorf("invalid archive: %w", err)
		}
	}
	return nil
}

// ImportResult lists the objects created by an import.
type ImportResult struct {
	Presentations []*Presentation
	Decks         []*SlideDeck
}

// Import creates new presentations and decks from an archive.
// Existing objects are never overwritten. The selection is left unchanged.
func (r *Repository) Import(archive *Archive) (*ImportResult, error) {
	if err := archive.Check(); err != nil {
		return nil, err
	}
	count, err := r.CountPresentations()
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	err = CurrentDB().WithTransaction(func() error {
		deckOIDs := make(map[string]oid.OID)
		for _, archived := range archive.Decks {
			deck := NewSlideDeck(archived.Title, archived.Content)
			mediaType := archived.MediaType
			if mediaType == "" {
				mediaType = InferMediaType(archived.Background)
			}
			deck.SetBackground(archived.Background, mediaType)
			if err := deck.Save(); err != nil {
				return err
			}
			deckOIDs[archived.Slug] = deck.OID
			result.Decks = append(result.Decks, deck)
		}
		for i, archived := range archive.Presentations {
			presentation := NewPresentation(archived.Title, count+i)
			for _, slug := range archived.Decks {
				presentation.AppendDeck(deckOIDs[slug])
			}
			if err := presentation.Save(); err != nil {
				return err
			}
			result.Presentations = append(result.Presentations, presentation)
		}
		for key, value := range archive.Settings {
			if _, err := r.SetSetting(key, value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	CurrentLogger().Infof("Imported %d presentations and %d slide decks", len(result.Presentations), len(result.Decks))
	return result, nil
}

// ImportYAML parses and imports a YAML archive.
func (r *Repository) ImportYAML(data []byte) (*ImportResult, error) {
	archive, err := ParseArchive(data)
	if err != nil {
		return nil, err
	}
	return r.Import(archive)
}
