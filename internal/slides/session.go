package slides

// Repository stores the markdown document edited by a session.
type Repository interface {
	Load(key string) (string, error)
	Save(key string, markdown string) error
}

// Session keeps the blocks of one document in sync with its owner.
//
// Every local mutation persists the new document in the repository and
// notifies the owner. When the owner reflects this document back through
// Receive, the update is recognized as an echo and the blocks are preserved.
type Session struct {
	key      string
	repo     Repository
	store    *Store
	sync     Synchronizer
	focus    focusController
	onChange func(markdown string)
	enabled  bool
	logger   Logger
}

// SessionOption customizes a Session.
type SessionOption func(*Session)

// OnChange registers the function called after every local mutation.
func OnChange(f func(markdown string)) SessionOption {
	return func(s *Session) {
		s.onChange = f
	}
}

// UseLogger reports ignored operations and persistence failures.
func UseLogger(logger Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// UseStoreOptions forwards options to the underlying store.
func UseStoreOptions(options ...StoreOption) SessionOption {
	return func(s *Session) {
		for _, option := range options {
			option(s.store)
		}
	}
}

// NewSession creates a session for the document identified by key.
// The repository is optional. When present, the document is loaded from it.
func NewSession(repo Repository, key string, options ...SessionOption) (*Session, error) {
	s := &Session{
		key:     key,
		repo:    repo,
		store:   newStore(),
		enabled: true,
		logger:  nopLogger{},
	}
	for _, option := range options {
		option(s)
	}
	if _, ok := s.store.logger.(nopLogger); ok {
		s.store.logger = s.logger
	}

	markdown := ""
	if repo != nil {
		var err error
		markdown, err = repo.Load(key)
		if err != nil {
			return nil, err
		}
	}
	s.store.Load(markdown)
	return s, nil
}

// Key returns the identifier of the edited document.
func (s *Session) Key() string {
	return s.key
}

// Enabled reports if mutations are allowed.
func (s *Session) Enabled() bool {
	return s.enabled
}

// SetEnabled toggles the session. A disabled session ignores mutations
// and exposes no block.
func (s *Session) SetEnabled(enabled bool) {
	s.enabled = enabled
	if !enabled {
		s.focus.clear()
	}
}

// Blocks returns the blocks to display.
func (s *Session) Blocks() []Block {
	if !s.enabled {
		return nil
	}
	return s.store.Blocks()
}

// Block returns a single block.
func (s *Session) Block(id string) (Block, bool) {
	return s.store.Get(id)
}

// Markdown returns the current document.
func (s *Session) Markdown() string {
	return s.store.Markdown()
}

// State returns the state of the synchronizer.
func (s *Session) State() SyncState {
	return s.sync.State()
}

// DefaultContent returns the content used for new blocks.
func (s *Session) DefaultContent() string {
	return s.store.DefaultContent()
}

// Receive processes a document coming from the owner.
// It returns true when the blocks were derived again from the document.
func (s *Session) Receive(markdown string) bool {
	decision := s.sync.Accept(markdown)
	s.logger.Debugf("Session %q received %d bytes: %s", s.key, len(markdown), decision)
	if decision == DiscardEcho {
		return false
	}
	s.store.Load(markdown)
	s.focus.clear()
	return true
}

// Refresh reloads the document from the repository and receives it.
func (s *Session) Refresh() (bool, error) {
	if s.repo == nil {
		return false, nil
	}
	markdown, err := s.repo.Load(s.key)
	if err != nil {
		return false, err
	}
	return s.Receive(markdown), nil
}

// TakeFocus returns the pending focus request, at most once.
func (s *Session) TakeFocus() (Focus, bool) {
	return s.focus.take()
}

// Reorder replaces the order of the blocks.
func (s *Session) Reorder(newOrder []Block) bool {
	if !s.enabled || !s.store.Reorder(newOrder) {
		return false
	}
	s.emit()
	return true
}

// Move shifts a block by delta positions.
func (s *Session) Move(id string, delta int) bool {
	if !s.enabled || !s.store.Move(id, delta) {
		return false
	}
	s.emit()
	return true
}

// SetContent updates the text of a block, splitting it on delimiter lines.
// After a split, the focus moves to the start of the first new block.
func (s *Session) SetContent(id string, text string) bool {
	if !s.enabled {
		return false
	}
	createdIDs, ok := s.store.SetContent(id, text)
	if !ok {
		return false
	}
	if len(createdIDs) > 0 {
		s.focus.request(createdIDs[0], 0)
	}
	s.emit()
	return true
}

// AddAfter inserts a new block after the anchor (first when empty) and focuses it.
func (s *Session) AddAfter(anchorID string) (string, bool) {
	if !s.enabled {
		return "", false
	}
	id, ok := s.store.AddAfter(anchorID)
	if !ok {
		return "", false
	}
	s.focus.request(id, 0)
	s.emit()
	return id, true
}

// Delete removes a block. The caller is responsible for asking confirmation.
// The focus moves to the end of the previous block, or the start of the first one.
func (s *Session) Delete(id string) bool {
	if !s.enabled {
		return false
	}
	i := s.store.Index(id)
	if !s.store.Delete(id) {
		return false
	}
	if previous, ok := s.store.At(i - 1); ok {
		s.focus.request(previous.ID, length(previous.Content))
	} else if first, ok := s.store.At(0); ok {
		s.focus.request(first.ID, 0)
	}
	s.emit()
	return true
}

// MergeBackward merges a block into the previous one and focuses the junction.
func (s *Session) MergeBackward(id string) (Focus, bool) {
	if !s.enabled {
		return Focus{}, false
	}
	mergedID, offset, ok := s.store.MergeBackward(id)
	if !ok {
		return Focus{}, false
	}
	s.focus.request(mergedID, offset)
	s.emit()
	return Focus{BlockID: mergedID, Offset: offset}, true
}

// SplitAt cuts a block at the cursor and focuses the start of the new block.
func (s *Session) SplitAt(id string, offset int) (string, bool) {
	if !s.enabled {
		return "", false
	}
	newID, ok := s.store.SplitAt(id, offset)
	if !ok {
		return "", false
	}
	s.focus.request(newID, 0)
	s.emit()
	return newID, true
}

// HandleKey processes a key pressed at the given offset of a block.
// It returns true only when the key crossed a block boundary.
func (s *Session) HandleKey(id string, key Key, offset int) bool {
	if !s.enabled {
		return false
	}
	i := s.store.Index(id)
	if i < 0 {
		s.logger.Warnf("Ignoring key %s on unknown block %q", key, id)
		return false
	}
	current, _ := s.store.At(i)

	switch key {
	case KeyBackspace:
		if offset != 0 || i == 0 {
			return false
		}
		_, ok := s.MergeBackward(id)
		return ok
	case KeyUp, KeyLeft:
		if offset != 0 || i == 0 {
			return false
		}
		previous, _ := s.store.At(i - 1)
		s.focus.request(previous.ID, length(previous.Content))
		return true
	case KeyDown, KeyRight:
		if offset < length(current.Content) || i == s.store.Len()-1 {
			return false
		}
		next, _ := s.store.At(i + 1)
		s.focus.request(next.ID, 0)
		return true
	}
	return false
}

// emit notifies the repository and the owner of the new document.
func (s *Session) emit() {
	markdown := s.store.Markdown()
	s.sync.Emitted(markdown)
	if s.repo != nil {
		if err := s.repo.Save(s.key, markdown); err != nil {
			s.logger.Warnf("Unable to save document %q: %v", s.key, err)
		}
	}
	if s.onChange != nil {
		s.onChange(markdown)
	}
}
