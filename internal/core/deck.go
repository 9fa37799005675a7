package core

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/julien-sobczak/the-slidewriter/internal/medias"
	"github.com/julien-sobczak/the-slidewriter/internal/slides"
	"github.com/julien-sobczak/the-slidewriter/pkg/clock"
	"github.com/julien-sobczak/the-slidewriter/pkg/oid"
)

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// ParseMediaType accepts "image" or "video" (case-insensitive).
func ParseMediaType(value string) (MediaType, error) {
	switch MediaType(strings.ToLower(strings.TrimSpace(value))) {
	case MediaTypeImage:
		return MediaTypeImage, nil
	case MediaTypeVideo:
		return MediaTypeVideo, nil
	}
	return "", fmt.Errorf("unsupported media type %q (expected image or video)", value)
}

// InferMediaType guesses the media type of a background from its extension.
// Unknown extensions are considered as images.
func InferMediaType(location string) MediaType {
	if medias.IsVideo(location) {
		return MediaTypeVideo
	}
	return MediaTypeImage
}

// SlideDeck is a titled markdown document containing one or more slides.
type SlideDeck struct {
	OID     oid.OID `yaml:"oid" json:"oid"`
	Title   string  `yaml:"title" json:"title"`
	Slug    string  `yaml:"slug" json:"slug"`
	Content string  `yaml:"content" json:"content"`

	// Optional image or video URL displayed behind every slide of the deck
	Background string    `yaml:"background,omitempty" json:"background,omitempty"`
	MediaType  MediaType `yaml:"media_type,omitempty" json:"media_type,omitempty"`

	// Timestamps to track changes
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at" json:"updated_at"`

	new   bool
	stale bool
}

func NewSlideDeck(title, content string) *SlideDeck {
	return &SlideDeck{
		OID:       oid.New(),
		Title:     title,
		Slug:      slug.Make(title),
		Content:   content,
		MediaType: MediaTypeImage,
		CreatedAt: clock.Now(),
		UpdatedAt: clock.Now(),
		new:       true,
		stale:     true,
	}
}

func (d SlideDeck) String() string {
	return fmt.Sprintf("deck %q [%s]", d.Title, d.OID.Short())
}

/* Update */

func (d *SlideDeck) SetTitle(title string) {
	if d.Title == title {
		return
	}
	d.Title = title
	d.Slug = slug.Make(title)
	d.stale = true
}

func (d *SlideDeck) SetContent(content string) {
	if d.Content == content {
		return
	}
	d.Content = content
	d.stale = true
}

func (d *SlideDeck) SetBackground(url string, mediaType MediaType) {
	if d.Background == url && d.MediaType == mediaType {
		return
	}
	d.Background = url
	d.MediaType = mediaType
	d.stale = true
}

// Slides returns the content of every slide in the deck.
func (d *SlideDeck) Slides() []string {
	return slides.Split(d.Content)
}

/* State Management */

func (d *SlideDeck) New() bool {
	return d.new
}

func (d *SlideDeck) Updated() bool {
	return d.stale
}

/* Database Management */

func (d *SlideDeck) Save() error {
	var err error
	switch {
	case d.new:
		err = d.Insert()
	case d.stale:
		d.UpdatedAt = clock.Now()
		err = d.Update()
	}
	if err != nil {
		return err
	}
	d.new = false
	d.stale = false
	return nil
}

func (d *SlideDeck) Insert() error {
	CurrentLogger().Debugf("Creating slide deck %s...", d)
	query := `
		INSERT INTO slide_deck(
			oid,
			title,
			slug,
			content,
			background,
			media_type,
			created_at,
			updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);
		`
	_, err := CurrentDB().Client().Exec(query,
		d.OID,
		d.Title,
		d.Slug,
		d.Content,
		d.Background,
		d.MediaType,
		timeToSQL(d.CreatedAt),
		timeToSQL(d.UpdatedAt),
	)
	return err
}

func (d *SlideDeck) Update() error {
	CurrentLogger().Debugf("Updating slide deck %s...", d)
	query := `
		UPDATE slide_deck
		SET
			title = ?,
			slug = ?,
			content = ?,
			background = ?,
			media_type = ?,
			updated_at = ?
		WHERE oid = ?;
		`
	_, err := CurrentDB().Client().Exec(query,
		d.Title,
		d.Slug,
		d.Content,
		d.Background,
		d.MediaType,
		timeToSQL(d.UpdatedAt),
		d.OID,
	)
	return err
}

func (d *SlideDeck) Delete() error {
	CurrentLogger().Debugf("Deleting slide deck %s...", d)
	_, err := CurrentDB().Client().Exec(`DELETE FROM slide_deck WHERE oid = ?;`, d.OID)
	return err
}

/* SQL Helpers */

const slideDeckColumns = `
			oid,
			title,
			slug,
			content,
			background,
			media_type,
			created_at,
			updated_at`

func QuerySlideDeck(db SQLClient, whereClause string, args ...any) (*SlideDeck, error) {
	var d SlideDeck
	var createdAt string
	var updatedAt string

	// Query for a value based on a single row.
	if err := db.QueryRow(fmt.Sprintf(`
		SELECT %s
		FROM slide_deck
		%s;`, slideDeckColumns, whereClause), args...).
		Scan(
			&d.OID,
			&d.Title,
			&d.Slug,
			&d.Content,
			&d.Background,
			&d.MediaType,
			&createdAt,
			&updatedAt,
		); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	d.CreatedAt = timeFromSQL(createdAt)
	d.UpdatedAt = timeFromSQL(updatedAt)

	return &d, nil
}

func QuerySlideDecks(db SQLClient, whereClause string, args ...any) ([]*SlideDeck, error) {
	var decks []*SlideDeck

	rows, err := db.Query(fmt.Sprintf(`
		SELECT %s
		FROM slide_deck
		%s;`, slideDeckColumns, whereClause), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var d SlideDeck
		var createdAt string
		var updatedAt string

		err = rows.Scan(
			&d.OID,
			&d.Title,
			&d.Slug,
			&d.Content,
			&d.Background,
			&d.MediaType,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		d.CreatedAt = timeFromSQL(createdAt)
		d.UpdatedAt = timeFromSQL(updatedAt)
		decks = append(decks, &d)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return decks, err
}
