package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julien-sobczak/the-slidewriter/pkg/oid"
	"github.com/julien-sobczak/the-slidewriter/pkg/resync"
)

// Keys in the state table
const (
	stateCurrentPresentation = "current_presentation"
	stateCurrentDeck         = "current_deck"
)

var (
	// Lazy-load configuration and ensure a single read
	repositoryOnce      resync.Once
	repositorySingleton *Repository
)

// Repository manages the presentations and slide decks of a workspace.
type Repository struct {
	Path string `yaml:"path"`
}

func CurrentRepository() *Repository {
	repositoryOnce.Do(func() {
		var err error
		repositorySingleton, err = NewRepository()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to init current repository: %v\n", err)
			os.Exit(1)
		}
	})
	return repositorySingleton
}

func NewRepository() (*Repository, error) {
	config := CurrentConfig()

	absolutePath, err := filepath.Abs(config.RootDirectory)
	if err != nil {
		return nil, err
	}

	return &Repository{
		Path: absolutePath,
	}, nil
}

func (r *Repository) Close() {
	CurrentDB().Close()
}

// GetAbsolutePath converts a relative path from the workspace to an absolute path on disk.
func (r *Repository) GetAbsolutePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.Path, path)
}

/* Presentations */

// Presentations returns all presentations in display order.
func (r *Repository) Presentations() ([]*Presentation, error) {
	return QueryPresentations(CurrentDB().Client(), "ORDER BY position")
}

// CountPresentations returns the total number of presentations.
func (r *Repository) CountPresentations() (int, error) {
	var count int
	if err := CurrentDB().Client().QueryRow(`SELECT count(*) FROM presentation`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) LoadPresentationByOID(o oid.OID) (*Presentation, error) {
	return QueryPresentation(CurrentDB().Client(), "WHERE oid = ?", o)
}

// CreatePresentation appends a new empty presentation and selects it.
func (r *Repository) CreatePresentation(title string) (*Presentation, error) {
	count, err := r.CountPresentations()
	if err != nil {
		return nil, err
	}
	presentation := NewPresentation(title, count)
	err = CurrentDB().WithTransaction(func() error {
		if err := presentation.Save(); err != nil {
			return err
		}
		return r.SetCurrentPresentation(presentation.OID)
	})
	if err != nil {
		return nil, err
	}
	CurrentLogger().Infof("Created %s", presentation)
	return presentation, nil
}

// UpdatePresentation renames a presentation.
func (r *Repository) UpdatePresentation(presentationOID oid.OID, title string) (*Presentation, error) {
	presentation, err := r.mustLoadPresentation(presentationOID)
	if err != nil {
		return nil, err
	}
	presentation.SetTitle(title)
	if err := presentation.Save(); err != nil {
		return nil, err
	}
	return presentation, nil
}

// DeletePresentation removes a presentation. Its decks are kept.
func (r *Repository) DeletePresentation(presentationOID oid.OID) error {
	presentation, err := r.mustLoadPresentation(presentationOID)
	if err != nil {
		return err
	}
	return CurrentDB().WithTransaction(func() error {
		if err := presentation.Delete(); err != nil {
			return err
		}
		current, err := CurrentDB().ReadState(stateCurrentPresentation)
		if err != nil {
			return err
		}
		if current == presentationOID.String() {
			if err := CurrentDB().WriteState(stateCurrentPresentation, ""); err != nil {
				return err
			}
			if err := CurrentDB().WriteState(stateCurrentDeck, ""); err != nil {
				return err
			}
		}
		return r.renumberPresentations()
	})
}

// ReorderPresentations moves the presentation at index from to index to.
func (r *Repository) ReorderPresentations(from, to int) error {
	presentations, err := r.Presentations()
	if err != nil {
		return err
	}
	moved, err := move(presentations, from, to)
	if err != nil {
		return err
	}
	return CurrentDB().WithTransaction(func() error {
		for i, presentation := range moved {
			presentation.SetPosition(i)
			if err := presentation.Save(); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) renumberPresentations() error {
	presentations, err := r.Presentations()
	if err != nil {
		return err
	}
	for i, presentation := range presentations {
		presentation.SetPosition(i)
		if err := presentation.Save(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) mustLoadPresentation(presentationOID oid.OID) (*Presentation, error) {
	presentation, err := r.LoadPresentationByOID(presentationOID)
	if err != nil {
		return nil, err
	}
	if presentation == nil {
		return nil, fmt.Errorf("%w: %s", ErrPresentationNotFound, presentationOID)
	}
	return presentation, nil
}

// FindPresentation searches a presentation by OID, OID prefix or title (case-insensitive).
func (r *Repository) FindPresentation(ref string) (*Presentation, error) {
	presentations, err := r.Presentations()
	if err != nil {
		return nil, err
	}
	for _, presentation := range presentations {
		if presentation.OID.String() == ref {
			return presentation, nil
		}
	}
	var matches []*Presentation
	for _, presentation := range presentations {
		if presentation.OID.HasPrefix(ref) || strings.EqualFold(presentation.Title, ref) {
			matches = append(matches, presentation)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrPresentationNotFound, ref)
	case 1:
		return matches[0], nil
	}
	return nil, fmt.Errorf("ambiguous presentation %q matches %d presentations", ref, len(matches))
}

/* Slide Decks */

// SlideDecks returns all slide decks, oldest first.
func (r *Repository) SlideDecks() ([]*SlideDeck, error) {
	return QuerySlideDecks(CurrentDB().Client(), "ORDER BY created_at, rowid")
}

// CountSlideDecks returns the total number of slide decks.
func (r *Repository) CountSlideDecks() (int, error) {
	var count int
	if err := CurrentDB().Client().QueryRow(`SELECT count(*) FROM slide_deck`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) LoadSlideDeckByOID(o oid.OID) (*SlideDeck, error) {
	return QuerySlideDeck(CurrentDB().Client(), "WHERE oid = ?", o)
}

// CreateSlideDeck saves a new deck and selects it.
func (r *Repository) CreateSlideDeck(title, content string) (*SlideDeck, error) {
	return r.insertSlideDeck(NewSlideDeck(title, content))
}

func (r *Repository) insertSlideDeck(deck *SlideDeck) (*SlideDeck, error) {
	err := CurrentDB().WithTransaction(func() error {
		if err := deck.Save(); err != nil {
			return err
		}
		return CurrentDB().WriteState(stateCurrentDeck, deck.OID.String())
	})
	if err != nil {
		return nil, err
	}
	CurrentLogger().Infof("Created %s", deck)
	return deck, nil
}

// UpdateSlideDeck persists the changes made on a deck.
func (r *Repository) UpdateSlideDeck(deck *SlideDeck) error {
	return deck.Save()
}

// DeleteSlideDeck removes a deck from every presentation before deleting it.
func (r *Repository) DeleteSlideDeck(deckOID oid.OID) error {
	deck, err := r.mustLoadSlideDeck(deckOID)
	if err != nil {
		return err
	}
	presentations, err := r.Presentations()
	if err != nil {
		return err
	}
	return CurrentDB().WithTransaction(func() error {
		for _, presentation := range presentations {
			if presentation.RemoveDeck(deckOID) {
				if err := presentation.Save(); err != nil {
					return err
				}
			}
		}
		if err := deck.Delete(); err != nil {
			return err
		}
		current, err := CurrentDB().ReadState(stateCurrentDeck)
		if err != nil {
			return err
		}
		if current == deckOID.String() {
			return CurrentDB().WriteState(stateCurrentDeck, "")
		}
		return nil
	})
}

func (r *Repository) mustLoadSlideDeck(deckOID oid.OID) (*SlideDeck, error) {
	deck, err := r.LoadSlideDeckByOID(deckOID)
	if err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, fmt.Errorf("%w: %s", ErrDeckNotFound, deckOID)
	}
	return deck, nil
}

// FindSlideDeck searches a deck by OID, OID prefix, slug or title (case-insensitive).
func (r *Repository) FindSlideDeck(ref string) (*SlideDeck, error) {
	decks, err := r.SlideDecks()
	if err != nil {
		return nil, err
	}
	for _, deck := range decks {
		if deck.OID.String() == ref {
			return deck, nil
		}
	}
	var matches []*SlideDeck
	for _, deck := range decks {
		if deck.OID.HasPrefix(ref) || deck.Slug == ref || strings.EqualFold(deck.Title, ref) {
			matches = append(matches, deck)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrDeckNotFound, ref)
	case 1:
		return matches[0], nil
	}
	return nil, fmt.Errorf("ambiguous slide deck %q matches %d decks", ref, len(matches))
}

/* Presentation <-> Slide Decks */

// AddSlideDeckToPresentation appends a deck at the end of a presentation.
func (r *Repository) AddSlideDeckToPresentation(presentationOID, deckOID oid.OID) error {
	presentation, err := r.mustLoadPresentation(presentationOID)
	if err != nil {
		return err
	}
	if _, err := r.mustLoadSlideDeck(deckOID); err != nil {
		return err
	}
	presentation.AppendDeck(deckOID)
	return presentation.Save()
}

// RemoveSlideDeckFromPresentation removes every occurrence of a deck from a presentation.
func (r *Repository) RemoveSlideDeckFromPresentation(presentationOID, deckOID oid.OID) error {
	presentation, err := r.mustLoadPresentation(presentationOID)
	if err != nil {
		return err
	}
	if !presentation.RemoveDeck(deckOID) {
		return nil
	}
	return presentation.Save()
}

// ReorderSlideDecksInPresentation moves the deck at index from to index to.
func (r *Repository) ReorderSlideDecksInPresentation(presentationOID oid.OID, from, to int) error {
	presentation, err := r.mustLoadPresentation(presentationOID)
	if err != nil {
		return err
	}
	if err := presentation.MoveDeck(from, to); err != nil {
		return err
	}
	return presentation.Save()
}

// GetPresentationSlideDecks returns the decks of a presentation in order.
// Decks that no longer exist are skipped.
func (r *Repository) GetPresentationSlideDecks(presentationOID oid.OID) ([]*SlideDeck, error) {
	presentation, err := r.mustLoadPresentation(presentationOID)
	if err != nil {
		return nil, err
	}
	var decks []*SlideDeck
	for _, deckOID := range presentation.DeckOIDs {
		deck, err := r.LoadSlideDeckByOID(deckOID)
		if err != nil {
			return nil, err
		}
		if deck == nil {
			CurrentLogger().Debugf("Skipping missing deck %s in %s", deckOID, presentation)
			continue
		}
		decks = append(decks, deck)
	}
	return decks, nil
}

/* Selection */

// CurrentPresentation returns the selected presentation or nil.
func (r *Repository) CurrentPresentation() (*Presentation, error) {
	value, err := CurrentDB().ReadState(stateCurrentPresentation)
	if err != nil || value == "" {
		return nil, err
	}
	return r.LoadPresentationByOID(oid.OID(value))
}

// SetCurrentPresentation selects a presentation (Nil to clear) and clears the selected deck.
func (r *Repository) SetCurrentPresentation(presentationOID oid.OID) error {
	return CurrentDB().WithTransaction(func() error {
		if err := CurrentDB().WriteState(stateCurrentPresentation, presentationOID.String()); err != nil {
			return err
		}
		return CurrentDB().WriteState(stateCurrentDeck, "")
	})
}

// CurrentSlideDeck returns the selected deck or nil.
func (r *Repository) CurrentSlideDeck() (*SlideDeck, error) {
	value, err := CurrentDB().ReadState(stateCurrentDeck)
	if err != nil || value == "" {
		return nil, err
	}
	return r.LoadSlideDeckByOID(oid.OID(value))
}

// SetCurrentSlideDeck selects a deck (Nil to clear).
func (r *Repository) SetCurrentSlideDeck(deckOID oid.OID) error {
	return CurrentDB().WriteState(stateCurrentDeck, deckOID.String())
}
