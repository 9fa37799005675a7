package slides

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(markdown string) (*Store, *recordingLogger) {
	logger := &recordingLogger{}
	store := NewStore(WithIDGenerator(sequenceIDs()), WithLogger(logger))
	store.Load(markdown)
	return store, logger
}

func TestNewStore(t *testing.T) {
	store := NewStore()
	require.Equal(t, 1, store.Len())
	assert.Equal(t, DefaultContent, store.Blocks()[0].Content)
	assert.Equal(t, DefaultContent, store.Markdown())

	store = NewStore(WithDefaultContent("# Hello"))
	assert.Equal(t, "# Hello", store.Markdown())
}

func TestStoreLoad(t *testing.T) {
	store, _ := newTestStore("Slide 1\n---\nSlide 2")
	assert.Equal(t, []string{"Slide 1", "Slide 2"}, contents(store.Blocks()))
	before := ids(store.Blocks())

	store.Load("Slide 1\n---\nSlide 2")
	after := ids(store.Blocks())
	assert.NotEqual(t, before, after, "IDs must be regenerated")

	store.Load("")
	assert.Equal(t, []string{DefaultContent}, contents(store.Blocks()))
}

func TestStoreSetContent(t *testing.T) {

	t.Run("Replace", func(t *testing.T) {
		store, _ := newTestStore("Slide 1\n---\nSlide 2")
		id := store.Blocks()[0].ID

		created, ok := store.SetContent(id, "Updated\n\nwith --- dashes")
		require.True(t, ok)
		assert.Empty(t, created)
		assert.Equal(t, "Updated\n\nwith --- dashes\n\n---\n\nSlide 2", store.Markdown())

		_, ok = store.SetContent(id, "Updated\n\nwith --- dashes")
		assert.False(t, ok, "same content is not a change")
	})

	t.Run("Split on delimiter", func(t *testing.T) {
		store, _ := newTestStore("single")
		before := store.Blocks()
		require.Len(t, before, 1)

		created, ok := store.SetContent(before[0].ID, "A\n---\nB")
		require.True(t, ok)

		blocks := store.Blocks()
		assert.Len(t, blocks, len(before)+1)
		assert.Equal(t, []string{"A", "B"}, contents(blocks))
		assert.Equal(t, before[0].ID, blocks[0].ID)
		assert.Equal(t, []string{blocks[1].ID}, created)
		assert.NotEqual(t, blocks[0].ID, blocks[1].ID)
	})

	t.Run("Split inserts new blocks in order after the block", func(t *testing.T) {
		store, _ := newTestStore("One\n---\nTwo\n---\nThree")
		two := store.Blocks()[1]

		created, ok := store.SetContent(two.ID, "Two\n---\nTwo bis\n---\nTwo ter")
		require.True(t, ok)
		require.Len(t, created, 2)

		blocks := store.Blocks()
		assert.Equal(t, []string{"One", "Two", "Two bis", "Two ter", "Three"}, contents(blocks))
		assert.Equal(t, two.ID, blocks[1].ID)
		assert.Equal(t, created, []string{blocks[2].ID, blocks[3].ID})
	})

	t.Run("Unknown block", func(t *testing.T) {
		store, logger := newTestStore("One")
		_, ok := store.SetContent("missing", "Two")
		assert.False(t, ok)
		assert.Equal(t, "One", store.Markdown())
		assert.Len(t, logger.warnings, 1)
	})
}

func TestStoreAddAfter(t *testing.T) {

	t.Run("After anchor", func(t *testing.T) {
		store, _ := newTestStore("Slide 1\n---\nSlide 2\n---\nSlide 3")
		first := store.Blocks()[0]

		id, ok := store.AddAfter(first.ID)
		require.True(t, ok)

		blocks := store.Blocks()
		assert.Equal(t, []string{"Slide 1", DefaultContent, "Slide 2", "Slide 3"}, contents(blocks))
		assert.Equal(t, id, blocks[1].ID)
		assert.Equal(t, "Slide 1\n\n---\n\n"+DefaultContent+"\n\n---\n\nSlide 2\n\n---\n\nSlide 3", store.Markdown())
	})

	t.Run("Prepend", func(t *testing.T) {
		store, _ := newTestStore("Slide 1")
		id, ok := store.AddAfter("")
		require.True(t, ok)
		assert.Equal(t, []string{DefaultContent, "Slide 1"}, contents(store.Blocks()))
		assert.Equal(t, id, store.Blocks()[0].ID)
	})

	t.Run("Replace untouched placeholder", func(t *testing.T) {
		store, _ := newTestStore("")
		placeholder := store.Blocks()[0]

		id, ok := store.AddAfter(placeholder.ID)
		require.True(t, ok)

		blocks := store.Blocks()
		require.Len(t, blocks, 1)
		assert.Equal(t, id, blocks[0].ID)
		assert.NotEqual(t, placeholder.ID, id)
		assert.Equal(t, DefaultContent, blocks[0].Content)
	})

	t.Run("Unknown anchor", func(t *testing.T) {
		store, logger := newTestStore("Slide 1\n---\nSlide 2")
		_, ok := store.AddAfter("missing")
		assert.False(t, ok)
		assert.Equal(t, 2, store.Len())
		assert.NotEmpty(t, logger.warnings)
	})
}

func TestStoreDelete(t *testing.T) {

	t.Run("Middle block", func(t *testing.T) {
		store, _ := newTestStore("Slide 1\n---\nSlide 2\n---\nSlide 3")
		ok := store.Delete(store.Blocks()[1].ID)
		require.True(t, ok)
		assert.Equal(t, "Slide 1\n\n---\n\nSlide 3", store.Markdown())
	})

	t.Run("Last remaining block", func(t *testing.T) {
		store, _ := newTestStore("Only one slide")
		only := store.Blocks()[0]

		ok := store.Delete(only.ID)
		require.True(t, ok)

		blocks := store.Blocks()
		require.Len(t, blocks, 1)
		assert.Equal(t, DefaultContent, blocks[0].Content)
		assert.NotEqual(t, only.ID, blocks[0].ID)
		assert.Equal(t, DefaultContent, store.Markdown())
	})

	t.Run("Never empty", func(t *testing.T) {
		store, _ := newTestStore("A\n---\nB\n---\nC")
		for i := 0; i < 10; i++ {
			store.Delete(store.Blocks()[0].ID)
			assert.GreaterOrEqual(t, store.Len(), 1)
		}
		assert.Equal(t, DefaultContent, store.Markdown())
	})

	t.Run("Unknown block", func(t *testing.T) {
		store, _ := newTestStore("A")
		assert.False(t, store.Delete("missing"))
		assert.Equal(t, "A", store.Markdown())
	})
}

func TestStoreMergeBackward(t *testing.T) {

	t.Run("Merge", func(t *testing.T) {
		store, _ := newTestStore("Hello\n---\nWorld")
		hello, world := store.Blocks()[0], store.Blocks()[1]

		id, offset, ok := store.MergeBackward(world.ID)
		require.True(t, ok)

		blocks := store.Blocks()
		require.Len(t, blocks, 1)
		assert.Equal(t, hello.ID, id)
		assert.Equal(t, hello.ID, blocks[0].ID)
		assert.Equal(t, "Hello\nWorld", blocks[0].Content)
		assert.Equal(t, 6, offset)
	})

	t.Run("Offset counts characters", func(t *testing.T) {
		store, _ := newTestStore("Héllo 🎉\n---\nWorld")
		_, offset, ok := store.MergeBackward(store.Blocks()[1].ID)
		require.True(t, ok)
		assert.Equal(t, 8, offset)
	})

	t.Run("First block", func(t *testing.T) {
		store, _ := newTestStore("Hello\n---\nWorld")
		_, _, ok := store.MergeBackward(store.Blocks()[0].ID)
		assert.False(t, ok)
		assert.Equal(t, 2, store.Len())
	})
}

func TestStoreSplitAt(t *testing.T) {
	var tests = []struct {
		name     string
		content  string
		offset   int
		expected []string
	}{
		{
			name:     "middle of a line",
			content:  "Hello World",
			offset:   5,
			expected: []string{"Hello", " World"},
		},
		{
			name:     "before a line ending",
			content:  "# Title\nBody",
			offset:   7,
			expected: []string{"# Title", "Body"},
		},
		{
			name:     "after a line ending",
			content:  "# Title\nBody",
			offset:   8,
			expected: []string{"# Title", "Body"},
		},
		{
			name:     "beyond the end",
			content:  "Title",
			offset:   42,
			expected: []string{"Title", ""},
		},
		{
			name:     "negative offset",
			content:  "Title",
			offset:   -1,
			expected: []string{"", "Title"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(tt.content)
			original := store.Blocks()[0]

			id, ok := store.SplitAt(original.ID, tt.offset)
			require.True(t, ok)

			blocks := store.Blocks()
			assert.Equal(t, tt.expected, contents(blocks))
			assert.Equal(t, original.ID, blocks[0].ID)
			assert.Equal(t, id, blocks[1].ID)
		})
	}
}

func TestStoreReorder(t *testing.T) {

	t.Run("Reverse", func(t *testing.T) {
		store, _ := newTestStore("One\n---\nTwo\n---\nThree")
		before := store.Blocks()

		reversed := []Block{before[2], before[1], before[0]}
		require.True(t, store.Reorder(reversed))

		after := store.Blocks()
		assert.Equal(t, []string{before[2].ID, before[1].ID, before[0].ID}, ids(after))
		for _, block := range before {
			found, ok := store.Get(block.ID)
			require.True(t, ok)
			assert.Equal(t, block.Content, found.Content)
		}
		assert.Equal(t, "Three\n\n---\n\nTwo\n\n---\n\nOne", store.Markdown())
	})

	t.Run("Not a permutation", func(t *testing.T) {
		store, logger := newTestStore("One\n---\nTwo")
		before := store.Blocks()

		assert.False(t, store.Reorder([]Block{before[0]}))
		assert.False(t, store.Reorder([]Block{before[0], before[0]}))
		assert.False(t, store.Reorder([]Block{before[0], {ID: "missing"}}))
		assert.Equal(t, before, store.Blocks())
		assert.Len(t, logger.warnings, 3)
	})

	t.Run("Contents come from the store", func(t *testing.T) {
		store, _ := newTestStore("One\n---\nTwo")
		before := store.Blocks()

		require.True(t, store.Reorder([]Block{{ID: before[1].ID, Content: "tampered"}, before[0]}))
		assert.Equal(t, []string{"Two", "One"}, contents(store.Blocks()))
	})
}

func TestStoreMove(t *testing.T) {
	store, _ := newTestStore("One\n---\nTwo\n---\nThree")
	one := store.Blocks()[0]

	assert.True(t, store.Move(one.ID, 1))
	assert.Equal(t, []string{"Two", "One", "Three"}, contents(store.Blocks()))

	assert.True(t, store.Move(one.ID, 10))
	assert.Equal(t, []string{"Two", "Three", "One"}, contents(store.Blocks()))

	assert.False(t, store.Move(one.ID, 1), "already last")
	assert.False(t, store.Move("missing", 1))
}

func TestStoreUniqueIDs(t *testing.T) {
	store, _ := newTestStore("A\n---\nB")
	first := store.Blocks()[0]
	store.SetContent(first.ID, "A\n---\nA2\n---\nA3")
	store.AddAfter(first.ID)
	store.SplitAt(first.ID, 0)

	seen := map[string]bool{}
	for _, block := range store.Blocks() {
		assert.False(t, seen[block.ID], "duplicate ID %s", block.ID)
		seen[block.ID] = true
	}
}
