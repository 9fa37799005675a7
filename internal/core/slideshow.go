package core

import (
	"fmt"
	"strings"

	"github.com/julien-sobczak/the-slidewriter/internal/slides"
	"github.com/julien-sobczak/the-slidewriter/pkg/oid"
)

// Messages displayed when there is nothing to present
const (
	NoPresentationMessage    = "No Presentation Selected"
	EmptyPresentationMessage = "Presentation has no slide decks or content."
)

// NavigationHint is displayed on the first slide.
const NavigationHint = "Use arrow keys, spacebar to navigate • Press 'd' for dark mode"

// Slide is a single page of a slideshow.
type Slide struct {
	Markdown string `yaml:"markdown" json:"markdown"`

	DeckOID    oid.OID   `yaml:"deck_oid,omitempty" json:"deck_oid,omitempty"`
	DeckTitle  string    `yaml:"deck_title,omitempty" json:"deck_title,omitempty"`
	Background string    `yaml:"background,omitempty" json:"background,omitempty"`
	MediaType  MediaType `yaml:"media_type,omitempty" json:"media_type,omitempty"`

	// Set on the slides generated when there is nothing to present
	Placeholder bool `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
}

// Slideshow is the flattened list of slides of a presentation.
type Slideshow struct {
	Title  string  `yaml:"title" json:"title"`
	Slides []Slide `yaml:"slides" json:"slides"`
}

func placeholder(message string) Slide {
	return Slide{
		Markdown:    "# " + message,
		Placeholder: true,
	}
}

// BuildSlideshow flattens the decks of a presentation into slides.
// Blank decks and blank slides are skipped. A placeholder slide is returned
// when there is no presentation or nothing to present.
func BuildSlideshow(presentation *Presentation, decks []*SlideDeck) *Slideshow {
	if presentation == nil {
		return &Slideshow{
			Slides: []Slide{placeholder(NoPresentationMessage)},
		}
	}

	result := &Slideshow{
		Title: presentation.Title,
	}
	for _, deck := range decks {
		if strings.TrimSpace(deck.Content) == "" {
			continue
		}
		for _, content := range slides.Split(deck.Content) {
			content = strings.TrimSpace(content)
			if content == "" {
				continue
			}
			result.Slides = append(result.Slides, Slide{
				Markdown:   content,
				DeckOID:    deck.OID,
				DeckTitle:  deck.Title,
				Background: deck.Background,
				MediaType:  deck.MediaType,
			})
		}
	}
	if len(result.Slides) == 0 {
		result.Slides = []Slide{placeholder(EmptyPresentationMessage)}
	}
	return result
}

// Slideshow builds the slideshow of a presentation.
func (r *Repository) Slideshow(presentationOID oid.OID) (*Slideshow, error) {
	presentation, err := r.mustLoadPresentation(presentationOID)
	if err != nil {
		return nil, err
	}
	decks, err := r.GetPresentationSlideDecks(presentationOID)
	if err != nil {
		return nil, err
	}
	return BuildSlideshow(presentation, decks), nil
}

// CurrentSlideshow builds the slideshow of the selected presentation.
func (r *Repository) CurrentSlideshow() (*Slideshow, error) {
	presentation, err := r.CurrentPresentation()
	if err != nil {
		return nil, err
	}
	if presentation == nil {
		return BuildSlideshow(nil, nil), nil
	}
	return r.Slideshow(presentation.OID)
}

// Navigator tracks the current slide of a slideshow.
type Navigator struct {
	index int
	total int
	dark  bool
}

func NewNavigator(total int) *Navigator {
	return &Navigator{
		total: max(total, 1),
	}
}

func (n *Navigator) Index() int {
	return n.index
}

func (n *Navigator) Total() int {
	return n.total
}

// Next moves to the following slide and reports if the slide changed.
func (n *Navigator) Next() bool {
	return n.GoTo(n.index + 1)
}

// Previous moves to the preceding slide and reports if the slide changed.
func (n *Navigator) Previous() bool {
	return n.GoTo(n.index - 1)
}

func (n *Navigator) First() bool {
	return n.GoTo(0)
}

func (n *Navigator) Last() bool {
	return n.GoTo(n.total - 1)
}

// GoTo moves to the given slide, clamped to the bounds of the slideshow.
func (n *Navigator) GoTo(index int) bool {
	index = min(max(index, 0), n.total-1)
	if index == n.index {
		return false
	}
	n.index = index
	return true
}

func (n *Navigator) IsFirst() bool {
	return n.index == 0
}

func (n *Navigator) IsLast() bool {
	return n.index == n.total-1
}

func (n *Navigator) ToggleDark() {
	n.dark = !n.dark
}

func (n *Navigator) Dark() bool {
	return n.dark
}

// Progress returns the ratio of slides seen, between 0 and 1.
func (n *Navigator) Progress() float64 {
	return float64(n.index+1) / float64(n.total)
}

// Counter returns the position as displayed to the audience.
func (n *Navigator) Counter() string {
	return fmt.Sprintf("%d / %d", n.index+1, n.total)
}

// ShowHint reports if the navigation hint must be displayed.
func (n *Navigator) ShowHint(settings Settings) bool {
	return settings.Navigation.ShowNavigationHint && n.index == 0 && n.total > 1
}
