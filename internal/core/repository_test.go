package core

import (
	"testing"
	"time"

	"github.com/julien-sobczak/the-slidewriter/pkg/oid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresentations(t *testing.T) {
	SetUpWorkspaceFromTempDir(t)
	clock := FreezeAt(t, time.Date(2023, time.January, 1, 12, 0, 0, 0, time.UTC))
	UseSequenceOID(t)

	r := CurrentRepository()

	t.Run("Create", func(t *testing.T) {
		intro := mustCreatePresentation(t, "Intro to Go")
		advanced := mustCreatePresentation(t, "Advanced Go")

		assert.Equal(t, 0, intro.Position)
		assert.Equal(t, 1, advanced.Position)
		assert.Equal(t, clock.Now(), intro.CreatedAt)

		// The last created presentation is selected
		current, err := r.CurrentPresentation()
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, advanced.OID, current.OID)

		count, err := r.CountPresentations()
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		loaded := mustLoadPresentation(t, intro.OID)
		assert.Equal(t, "Intro to Go", loaded.Title)
		assert.Equal(t, clock.Now(), loaded.CreatedAt)
		assert.Equal(t, clock.Now(), loaded.UpdatedAt)
		assert.Empty(t, loaded.DeckOIDs)
	})

	t.Run("Update", func(t *testing.T) {
		presentations, err := r.Presentations()
		require.NoError(t, err)
		require.Len(t, presentations, 2)

		later := clock.FastForward(time.Hour)
		updated, err := r.UpdatePresentation(presentations[0].OID, "Go 101")
		require.NoError(t, err)
		assert.Equal(t, "Go 101", updated.Title)

		loaded := mustLoadPresentation(t, presentations[0].OID)
		assert.Equal(t, "Go 101", loaded.Title)
		assert.Equal(t, later, loaded.UpdatedAt)
		assert.NotEqual(t, later, loaded.CreatedAt)

		_, err = r.UpdatePresentation(oid.New(), "Unknown")
		assert.ErrorIs(t, err, ErrPresentationNotFound)
	})

	t.Run("Reorder", func(t *testing.T) {
		mustCreatePresentation(t, "Concurrency")

		err := r.ReorderPresentations(2, 0)
		require.NoError(t, err)

		presentations, err := r.Presentations()
		require.NoError(t, err)
		assert.Equal(t, []string{"Concurrency", "Go 101", "Advanced Go"}, presentationTitles(presentations))
		for i, presentation := range presentations {
			assert.Equal(t, i, presentation.Position)
		}

		err = r.ReorderPresentations(0, 3)
		assert.ErrorIs(t, err, ErrInvalidPosition)
		err = r.ReorderPresentations(-1, 0)
		assert.ErrorIs(t, err, ErrInvalidPosition)
	})

	t.Run("Delete", func(t *testing.T) {
		presentations, err := r.Presentations()
		require.NoError(t, err)
		concurrency := presentations[0]
		require.NoError(t, r.SetCurrentPresentation(concurrency.OID))

		err = r.DeletePresentation(concurrency.OID)
		require.NoError(t, err)

		presentations, err = r.Presentations()
		require.NoError(t, err)
		assert.Equal(t, []string{"Go 101", "Advanced Go"}, presentationTitles(presentations))
		assert.Equal(t, 0, presentations[0].Position)
		assert.Equal(t, 1, presentations[1].Position)

		// Selection is cleared
		current, err := r.CurrentPresentation()
		require.NoError(t, err)
		assert.Nil(t, current)

		err = r.DeletePresentation(concurrency.OID)
		assert.ErrorIs(t, err, ErrPresentationNotFound)
	})
}

func TestFindPresentation(t *testing.T) {
	SetUpWorkspaceFromTempDir(t)
	SetNextOIDs(t,
		"a1b2c3d4e5f60718293a4b5c6d7e8f9012345678",
		"a1b2ffffffffffffffffffffffffffffffffffff",
		"b777777777777777777777777777777777777777",
	)

	r := CurrentRepository()
	intro := mustCreatePresentation(t, "Intro")
	outro := mustCreatePresentation(t, "Outro")
	mustCreatePresentation(t, "Demo")

	tests := []struct {
		name     string
		ref      string
		expected *Presentation
		err      string
	}{
		{"Full OID", "a1b2c3d4e5f60718293a4b5c6d7e8f9012345678", intro, ""},
		{"Short OID", "a1b2c3d", intro, ""},
		{"Title", "outro", outro, ""},
		{"Ambiguous prefix", "a1b2", nil, `ambiguous presentation "a1b2" matches 2 presentations`},
		{"Unknown", "Keynote", nil, `presentation not found: "Keynote"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := r.FindPresentation(tt.ref)
			if tt.err != "" {
				assert.EqualError(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected.OID, actual.OID)
		})
	}
}

func TestSlideDecks(t *testing.T) {
	SetUpWorkspaceFromTempDir(t)
	clock := FreezeAt(t, time.Date(2023, time.January, 1, 12, 0, 0, 0, time.UTC))
	UseSequenceOID(t)

	r := CurrentRepository()

	t.Run("Create", func(t *testing.T) {
		deck := mustCreateSlideDeck(t, "Getting Started", "# Hello\n\n---\n\n# World")
		assert.Equal(t, "getting-started", deck.Slug)
		assert.Equal(t, MediaTypeImage, deck.MediaType)

		current, err := r.CurrentSlideDeck()
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, deck.OID, current.OID)

		loaded := mustLoadSlideDeck(t, deck.OID)
		assert.Equal(t, "Getting Started", loaded.Title)
		assert.Equal(t, []string{"# Hello", "# World"}, loaded.Slides())
		assert.Equal(t, clock.Now(), loaded.CreatedAt)
	})

	t.Run("Update", func(t *testing.T) {
		deck, err := r.FindSlideDeck("getting-started")
		require.NoError(t, err)

		later := clock.FastForward(time.Minute)
		deck.SetTitle("First Steps")
		deck.SetContent("# Hi")
		deck.SetBackground("https://example.com/intro.mp4", MediaTypeVideo)
		require.NoError(t, r.UpdateSlideDeck(deck))

		loaded := mustLoadSlideDeck(t, deck.OID)
		assert.Equal(t, "First Steps", loaded.Title)
		assert.Equal(t, "first-steps", loaded.Slug)
		assert.Equal(t, "# Hi", loaded.Content)
		assert.Equal(t, "https://example.com/intro.mp4", loaded.Background)
		assert.Equal(t, MediaTypeVideo, loaded.MediaType)
		assert.Equal(t, later, loaded.UpdatedAt)

		// Nothing changed
		loaded.SetContent("# Hi")
		assert.False(t, loaded.Updated())
	})

	t.Run("Find", func(t *testing.T) {
		mustCreateSlideDeck(t, "Closing", "# Thanks")

		deck, err := r.FindSlideDeck("CLOSING")
		require.NoError(t, err)
		assert.Equal(t, "closing", deck.Slug)

		_, err = r.FindSlideDeck("missing")
		assert.ErrorIs(t, err, ErrDeckNotFound)

		decks, err := r.SlideDecks()
		require.NoError(t, err)
		assert.Equal(t, []string{"First Steps", "Closing"}, deckTitles(decks))

		count, err := r.CountSlideDecks()
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestDeleteSlideDeck(t *testing.T) {
	SetUpWorkspaceFromTempDir(t)
	UseSequenceOID(t)

	r := CurrentRepository()
	presentation := mustCreatePresentation(t, "Talk")
	other := mustCreatePresentation(t, "Other Talk")
	intro := mustCreateSlideDeck(t, "Intro", "# Intro")
	body := mustCreateSlideDeck(t, "Body", "# Body")

	require.NoError(t, r.AddSlideDeckToPresentation(presentation.OID, intro.OID))
	require.NoError(t, r.AddSlideDeckToPresentation(presentation.OID, body.OID))
	require.NoError(t, r.AddSlideDeckToPresentation(presentation.OID, intro.OID))
	require.NoError(t, r.AddSlideDeckToPresentation(other.OID, intro.OID))
	require.NoError(t, r.SetCurrentSlideDeck(intro.OID))

	err := r.DeleteSlideDeck(intro.OID)
	require.NoError(t, err)

	// Removed from every presentation
	assert.Equal(t, []oid.OID{body.OID}, mustLoadPresentation(t, presentation.OID).DeckOIDs)
	assert.Empty(t, mustLoadPresentation(t, other.OID).DeckOIDs)

	// Selection is cleared
	current, err := r.CurrentSlideDeck()
	require.NoError(t, err)
	assert.Nil(t, current)

	deck, err := r.LoadSlideDeckByOID(intro.OID)
	require.NoError(t, err)
	assert.Nil(t, deck)

	err = r.DeleteSlideDeck(intro.OID)
	assert.ErrorIs(t, err, ErrDeckNotFound)
}

func TestPresentationSlideDecks(t *testing.T) {
	SetUpWorkspaceFromTempDir(t)
	UseSequenceOID(t)

	r := CurrentRepository()
	presentation := mustCreatePresentation(t, "Talk")
	a := mustCreateSlideDeck(t, "A", "# A")
	b := mustCreateSlideDeck(t, "B", "# B")
	c := mustCreateSlideDeck(t, "C", "# C")

	for _, deck := range []*SlideDeck{a, b, c, a} {
		require.NoError(t, r.AddSlideDeckToPresentation(presentation.OID, deck.OID))
	}

	decks, err := r.GetPresentationSlideDecks(presentation.OID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "A"}, deckTitles(decks))

	// Reorder
	require.NoError(t, r.ReorderSlideDecksInPresentation(presentation.OID, 2, 0))
	decks, err = r.GetPresentationSlideDecks(presentation.OID)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B", "A"}, deckTitles(decks))

	err = r.ReorderSlideDecksInPresentation(presentation.OID, 0, 4)
	assert.ErrorIs(t, err, ErrInvalidPosition)

	// Remove every occurrence
	require.NoError(t, r.RemoveSlideDeckFromPresentation(presentation.OID, a.OID))
	decks, err = r.GetPresentationSlideDecks(presentation.OID)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B"}, deckTitles(decks))

	// Removing a deck not in the presentation is a no-op
	require.NoError(t, r.RemoveSlideDeckFromPresentation(presentation.OID, a.OID))

	// Unknown references
	err = r.AddSlideDeckToPresentation(presentation.OID, oid.New())
	assert.ErrorIs(t, err, ErrDeckNotFound)
	err = r.AddSlideDeckToPresentation(oid.New(), a.OID)
	assert.ErrorIs(t, err, ErrPresentationNotFound)

	// Decks deleted without the repository are skipped
	require.NoError(t, c.Delete())
	decks, err = r.GetPresentationSlideDecks(presentation.OID)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, deckTitles(decks))
}

func TestSelection(t *testing.T) {
	SetUpWorkspaceFromTempDir(t)
	UseSequenceOID(t)

	r := CurrentRepository()

	current, err := r.CurrentPresentation()
	require.NoError(t, err)
	assert.Nil(t, current)

	presentation := mustCreatePresentation(t, "Talk")
	deck := mustCreateSlideDeck(t, "Intro", "# Intro")

	currentDeck, err := r.CurrentSlideDeck()
	require.NoError(t, err)
	require.NotNil(t, currentDeck)
	assert.Equal(t, deck.OID, currentDeck.OID)

	// Selecting a presentation clears the selected deck
	require.NoError(t, r.SetCurrentPresentation(presentation.OID))
	currentDeck, err = r.CurrentSlideDeck()
	require.NoError(t, err)
	assert.Nil(t, currentDeck)

	current, err = r.CurrentPresentation()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, presentation.OID, current.OID)

	require.NoError(t, r.SetCurrentPresentation(oid.Nil))
	current, err = r.CurrentPresentation()
	require.NoError(t, err)
	assert.Nil(t, current)
}

/* Test Helpers */

func presentationTitles(presentations []*Presentation) []string {
	var result []string
	for _, presentation := range presentations {
		result = append(result, presentation.Title)
	}
	return result
}

func deckTitles(decks []*SlideDeck) []string {
	var result []string
	for _, deck := range decks {
		result = append(result, deck.Title)
	}
	return result
}
