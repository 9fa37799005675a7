package slides

import (
	"unicode/utf8"

	"github.com/julien-sobczak/the-slidewriter/pkg/oid"
	"golang.org/x/exp/slices"
)

// DefaultContent is the content of a freshly added slide.
const DefaultContent = "# New Slide\n\nEdit this content."

// How many times to regenerate an ID colliding with an existing block
const maxIDAttempts = 5

// Block is the markdown of a single slide.
type Block struct {
	ID      string
	Content string
}

// Store is an ordered collection of blocks.
// It is never empty and never contains duplicate IDs.
type Store struct {
	blocks         []Block
	defaultContent string
	newID          func() string
	logger         Logger
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithDefaultContent overrides the content of new blocks.
func WithDefaultContent(content string) StoreOption {
	return func(s *Store) {
		s.defaultContent = content
	}
}

// WithIDGenerator overrides how block IDs are minted.
func WithIDGenerator(newID func() string) StoreOption {
	return func(s *Store) {
		s.newID = newID
	}
}

// WithLogger reports ignored operations to the given logger.
func WithLogger(logger Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore returns a store containing a single default block.
func NewStore(options ...StoreOption) *Store {
	s := newStore()
	for _, option := range options {
		option(s)
	}
	s.Load("")
	return s
}

func newStore() *Store {
	return &Store{
		defaultContent: DefaultContent,
		newID:          oid.NewString,
		logger:         nopLogger{},
	}
}

// DefaultContent returns the content used for new blocks.
func (s *Store) DefaultContent() string {
	return s.defaultContent
}

// Load replaces all blocks by the slides of the document.
// Every block receives a new ID.
func (s *Store) Load(markdown string) {
	contents := SplitOr(markdown, s.defaultContent)
	s.blocks = make([]Block, 0, len(contents))
	for _, content := range contents {
		s.blocks = append(s.blocks, s.newBlock(content))
	}
}

// Markdown returns the document made of all blocks.
func (s *Store) Markdown() string {
	contents := make([]string, 0, len(s.blocks))
	for _, block := range s.blocks {
		contents = append(contents, block.Content)
	}
	return Join(contents)
}

// Blocks returns a copy of the blocks in order.
func (s *Store) Blocks() []Block {
	return slices.Clone(s.blocks)
}

func (s *Store) Len() int {
	return len(s.blocks)
}

// Index returns the position of a block or -1.
func (s *Store) Index(id string) int {
	return slices.IndexFunc(s.blocks, func(b Block) bool {
		return b.ID == id
	})
}

// Get returns the block with the given ID.
func (s *Store) Get(id string) (Block, bool) {
	i := s.Index(id)
	if i < 0 {
		return Block{}, false
	}
	return s.blocks[i], true
}

// At returns the block at the given position.
func (s *Store) At(i int) (Block, bool) {
	if i < 0 || i >= len(s.blocks) {
		return Block{}, false
	}
	return s.blocks[i], true
}

// Reorder replaces the sequence by a permutation of the current blocks.
// Contents are taken from the store, only the order of IDs matters.
func (s *Store) Reorder(newOrder []Block) bool {
	if len(newOrder) != len(s.blocks) {
		s.logger.Warnf("Ignoring reorder of %d blocks in a store of %d blocks", len(newOrder), len(s.blocks))
		return false
	}
	current := make(map[string]Block, len(s.blocks))
	for _, block := range s.blocks {
		current[block.ID] = block
	}
	reordered := make([]Block, 0, len(newOrder))
	for _, block := range newOrder {
		existing, ok := current[block.ID]
		if !ok {
			s.logger.Warnf("Ignoring reorder referencing unknown or duplicate block %q", block.ID)
			return false
		}
		delete(current, block.ID)
		reordered = append(reordered, existing)
	}
	s.blocks = reordered
	return true
}

// Move shifts a block by delta positions, bounded by the ends of the sequence.
func (s *Store) Move(id string, delta int) bool {
	from := s.Index(id)
	if from < 0 {
		s.logger.Warnf("Ignoring move of unknown block %q", id)
		return false
	}
	to := min(max(from+delta, 0), len(s.blocks)-1)
	if to == from {
		return false
	}
	newOrder := slices.Clone(s.blocks)
	block := newOrder[from]
	newOrder = slices.Delete(newOrder, from, from+1)
	newOrder = slices.Insert(newOrder, to, block)
	return s.Reorder(newOrder)
}

// SetContent updates the content of a block.
//
// When the text contains a delimiter line, the block is split in place: the
// first fragment stays in the block and every following fragment becomes a
// new block inserted right after it. The IDs of the new blocks are returned.
func (s *Store) SetContent(id string, text string) ([]string, bool) {
	i := s.Index(id)
	if i < 0 {
		s.logger.Warnf("Ignoring content update of unknown block %q", id)
		return nil, false
	}

	if !ContainsDelimiter(text) {
		if s.blocks[i].Content == text {
			return nil, false
		}
		s.blocks[i].Content = text
		return nil, true
	}

	fragments := Split(text)
	s.blocks[i].Content = fragments[0]
	var created []Block
	var createdIDs []string
	for _, fragment := range fragments[1:] {
		block := s.newBlock(fragment)
		created = append(created, block)
		createdIDs = append(createdIDs, block.ID)
	}
	s.blocks = slices.Insert(s.blocks, i+1, created...)
	return createdIDs, true
}

// AddAfter inserts a default block after the given block.
// An empty anchor inserts the block first. A store holding only an untouched
// default block gets this block replaced instead.
func (s *Store) AddAfter(anchorID string) (string, bool) {
	block := s.newBlock(s.defaultContent)

	if len(s.blocks) == 0 || (len(s.blocks) == 1 && s.blocks[0].Content == s.defaultContent) {
		if anchorID != "" && s.Index(anchorID) < 0 {
			s.logger.Warnf("Ignoring insertion after unknown block %q", anchorID)
			return "", false
		}
		s.blocks = []Block{block}
		return block.ID, true
	}

	if anchorID == "" {
		s.blocks = slices.Insert(s.blocks, 0, block)
		return block.ID, true
	}

	i := s.Index(anchorID)
	if i < 0 {
		s.logger.Warnf("Ignoring insertion after unknown block %q", anchorID)
		return "", false
	}
	s.blocks = slices.Insert(s.blocks, i+1, block)
	return block.ID, true
}

// Delete removes a block. Removing the last block leaves a single default block.
func (s *Store) Delete(id string) bool {
	i := s.Index(id)
	if i < 0 {
		s.logger.Warnf("Ignoring deletion of unknown block %q", id)
		return false
	}
	s.blocks = slices.Delete(s.blocks, i, i+1)
	if len(s.blocks) == 0 {
		s.blocks = []Block{s.newBlock(s.defaultContent)}
	}
	return true
}

// MergeBackward appends a block to the previous one, separated by a newline.
// It returns the ID of the merged block and the cursor offset (in characters)
// where the appended content starts.
func (s *Store) MergeBackward(id string) (string, int, bool) {
	i := s.Index(id)
	if i < 0 {
		s.logger.Warnf("Ignoring merge of unknown block %q", id)
		return "", 0, false
	}
	if i == 0 {
		return "", 0, false
	}
	previous := s.blocks[i-1]
	offset := utf8.RuneCountInString(previous.Content) + 1
	s.blocks[i-1].Content = previous.Content + "\n" + s.blocks[i].Content
	s.blocks = slices.Delete(s.blocks, i, i+1)
	return previous.ID, offset, true
}

// SplitAt cuts a block at the given character offset.
// The block keeps the text before the offset and a new block, inserted right
// after, receives the text after. One line ending is dropped on each side of
// the cut like Split does around a delimiter.
func (s *Store) SplitAt(id string, offset int) (string, bool) {
	i := s.Index(id)
	if i < 0 {
		s.logger.Warnf("Ignoring split of unknown block %q", id)
		return "", false
	}
	runes := []rune(s.blocks[i].Content)
	offset = min(max(offset, 0), len(runes))
	head := trimTrailingLineEnding(string(runes[:offset]))
	tail := trimLeadingLineEnding(string(runes[offset:]))

	s.blocks[i].Content = head
	block := s.newBlock(tail)
	s.blocks = slices.Insert(s.blocks, i+1, block)
	return block.ID, true
}

func (s *Store) newBlock(content string) Block {
	id := s.newID()
	for attempt := 0; attempt < maxIDAttempts && s.Index(id) >= 0; attempt++ {
		s.logger.Debugf("Block ID %q already used, generating a new one", id)
		id = s.newID()
	}
	return Block{ID: id, Content: content}
}
