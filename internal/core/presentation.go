package core

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julien-sobczak/the-slidewriter/pkg/clock"
	"github.com/julien-sobczak/the-slidewriter/pkg/oid"
	"golang.org/x/exp/slices"
)

// Presentation is an ordered list of slide decks.
type Presentation struct {
	OID   oid.OID `yaml:"oid" json:"oid"`
	Title string  `yaml:"title" json:"title"`

	// Position in the list of presentations
	Position int `yaml:"-" json:"position"`

	// Decks in presentation order. The same deck may appear several times.
	DeckOIDs []oid.OID `yaml:"decks" json:"decks"`

	// Timestamps to track changes
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at" json:"updated_at"`

	new   bool
	stale bool
}

func NewPresentation(title string, position int) *Presentation {
	return &Presentation{
		OID:       oid.New(),
		Title:     title,
		Position:  position,
		CreatedAt: clock.Now(),
		UpdatedAt: clock.Now(),
		new:       true,
		stale:     true,
	}
}

func (p Presentation) String() string {
	return fmt.Sprintf("presentation %q [%s]", p.Title, p.OID.Short())
}

/* Update */

func (p *Presentation) SetTitle(title string) {
	if p.Title == title {
		return
	}
	p.Title = title
	p.stale = true
}

func (p *Presentation) SetPosition(position int) {
	if p.Position == position {
		return
	}
	p.Position = position
	p.stale = true
}

// AppendDeck adds a deck at the end of the presentation.
func (p *Presentation) AppendDeck(deckOID oid.OID) {
	p.DeckOIDs = append(p.DeckOIDs, deckOID)
	p.stale = true
}

// RemoveDeck removes every occurrence of a deck and reports if one was found.
func (p *Presentation) RemoveDeck(deckOID oid.OID) bool {
	before := len(p.DeckOIDs)
	p.DeckOIDs = slices.DeleteFunc(p.DeckOIDs, func(o oid.OID) bool {
		return o == deckOID
	})
	if len(p.DeckOIDs) == before {
		return false
	}
	p.stale = true
	return true
}

// MoveDeck moves the deck at index from to index to.
func (p *Presentation) MoveDeck(from, to int) error {
	moved, err := move(p.DeckOIDs, from, to)
	if err != nil {
		return err
	}
	p.DeckOIDs = moved
	p.stale = true
	return nil
}

// ContainsDeck reports if the deck is part of the presentation.
func (p *Presentation) ContainsDeck(deckOID oid.OID) bool {
	return slices.Contains(p.DeckOIDs, deckOID)
}

// move returns a copy of the slice with the element at index from moved to index to.
func move[T any](s []T, from, to int) ([]T, error) {
	if from < 0 || from >= len(s) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidPosition, from, len(s))
	}
	if to < 0 || to >= len(s) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidPosition, to, len(s))
	}
	result := slices.Clone(s)
	item := result[from]
	result = slices.Delete(result, from, from+1)
	result = slices.Insert(result, to, item)
	return result, nil
}

/* State Management */

func (p *Presentation) New() bool {
	return p.new
}

func (p *Presentation) Updated() bool {
	return p.stale
}

/* Database Management */

func (p *Presentation) Save() error {
	var err error
	switch {
	case p.new:
		err = p.Insert()
	case p.stale:
		p.UpdatedAt = clock.Now()
		err = p.Update()
	}
	if err != nil {
		return err
	}
	p.new = false
	p.stale = false
	return nil
}

func (p *Presentation) Insert() error {
	CurrentLogger().Debugf("Creating presentation %s...", p)
	return CurrentDB().WithTransaction(func() error {
		query := `
			INSERT INTO presentation(
				oid,
				title,
				position,
				created_at,
				updated_at
			)
			VALUES (?, ?, ?, ?, ?);
			`
		_, err := CurrentDB().Client().Exec(query,
			p.OID,
			p.Title,
			p.Position,
			timeToSQL(p.CreatedAt),
			timeToSQL(p.UpdatedAt),
		)
		if err != nil {
			return err
		}
		return p.saveDecks()
	})
}

func (p *Presentation) Update() error {
	CurrentLogger().Debugf("Updating presentation %s...", p)
	return CurrentDB().WithTransaction(func() error {
		query := `
			UPDATE presentation
			SET
				title = ?,
				position = ?,
				updated_at = ?
			WHERE oid = ?;
			`
		_, err := CurrentDB().Client().Exec(query,
			p.Title,
			p.Position,
			timeToSQL(p.UpdatedAt),
			p.OID,
		)
		if err != nil {
			return err
		}
		return p.saveDecks()
	})
}

// saveDecks rewrites the ordered list of decks.
func (p *Presentation) saveDecks() error {
	db := CurrentDB().Client()
	if _, err := db.Exec(`DELETE FROM presentation_deck WHERE presentation_oid = ?;`, p.OID); err != nil {
		return err
	}
	for i, deckOID := range p.DeckOIDs {
		_, err := db.Exec(`
			INSERT INTO presentation_deck(presentation_oid, deck_oid, position)
			VALUES (?, ?, ?);`, p.OID, deckOID, i)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Presentation) Delete() error {
	CurrentLogger().Debugf("Deleting presentation %s...", p)
	return CurrentDB().WithTransaction(func() error {
		db := CurrentDB().Client()
		if _, err := db.Exec(`DELETE FROM presentation_deck WHERE presentation_oid = ?;`, p.OID); err != nil {
			return err
		}
		_, err := db.Exec(`DELETE FROM presentation WHERE oid = ?;`, p.OID)
		return err
	})
}

/* SQL Helpers */

func QueryPresentation(db SQLClient, whereClause string, args ...any) (*Presentation, error) {
	var p Presentation
	var createdAt string
	var updatedAt string

	// Query for a value based on a single row.
	if err := db.QueryRow(fmt.Sprintf(`
		SELECT
			oid,
			title,
			position,
			created_at,
			updated_at
		FROM presentation
		%s;`, whereClause), args...).
		Scan(
			&p.OID,
			&p.Title,
			&p.Position,
			&createdAt,
			&updatedAt,
		); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	p.CreatedAt = timeFromSQL(createdAt)
	p.UpdatedAt = timeFromSQL(updatedAt)

	deckOIDs, err := queryPresentationDeckOIDs(db, p.OID)
	if err != nil {
		return nil, err
	}
	p.DeckOIDs = deckOIDs

	return &p, nil
}

func QueryPresentations(db SQLClient, whereClause string, args ...any) ([]*Presentation, error) {
	var presentations []*Presentation

	rows, err := db.Query(fmt.Sprintf(`
		SELECT
			oid,
			title,
			position,
			created_at,
			updated_at
		FROM presentation
		%s;`, whereClause), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var p Presentation
		var createdAt string
		var updatedAt string

		err = rows.Scan(
			&p.OID,
			&p.Title,
			&p.Position,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		p.CreatedAt = timeFromSQL(createdAt)
		p.UpdatedAt = timeFromSQL(updatedAt)
		presentations = append(presentations, &p)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}
	rows.Close()

	// Decks are loaded once the cursor is released
	for _, p := range presentations {
		deckOIDs, err := queryPresentationDeckOIDs(db, p.OID)
		if err != nil {
			return nil, err
		}
		p.DeckOIDs = deckOIDs
	}

	return presentations, nil
}

func queryPresentationDeckOIDs(db SQLClient, presentationOID oid.OID) ([]oid.OID, error) {
	rows, err := db.Query(`
		SELECT deck_oid
		FROM presentation_deck
		WHERE presentation_oid = ?
		ORDER BY position;`, presentationOID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []oid.OID
	for rows.Next() {
		var deckOID oid.OID
		if err := rows.Scan(&deckOID); err != nil {
			return nil, err
		}
		result = append(result, deckOID)
	}
	return result, rows.Err()
}
