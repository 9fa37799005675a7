package slides

// SyncState tells if the session waits for its last emission to come back.
type SyncState int

const (
	Idle SyncState = iota
	AwaitingEcho
)

func (s SyncState) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingEcho:
		return "awaiting-echo"
	}
	return "unknown"
}

// Decision is the outcome of an external markdown update.
type Decision int

const (
	// Rederive replaces every block by the slides of the incoming document.
	Rederive Decision = iota
	// DiscardEcho ignores the update as it is the last emitted document.
	DiscardEcho
)

func (d Decision) String() string {
	if d == DiscardEcho {
		return "discard-echo"
	}
	return "rederive"
}

// Classify decides what to do with an incoming document.
// Only the document emitted last, received while waiting for it, is an echo.
func Classify(state SyncState, lastEmitted, incoming string) Decision {
	if state == AwaitingEcho && incoming == lastEmitted {
		return DiscardEcho
	}
	return Rederive
}

// Synchronizer tracks local emissions to recognize their echo.
type Synchronizer struct {
	state       SyncState
	lastEmitted string
}

func (s *Synchronizer) State() SyncState {
	return s.state
}

// LastEmitted returns the last document emitted locally.
func (s *Synchronizer) LastEmitted() string {
	return s.lastEmitted
}

// Emitted must be called before notifying the owner of a new document.
func (s *Synchronizer) Emitted(markdown string) {
	s.state = AwaitingEcho
	s.lastEmitted = markdown
}

// Accept classifies an incoming document and goes back to Idle.
func (s *Synchronizer) Accept(incoming string) Decision {
	decision := Classify(s.state, s.lastEmitted, incoming)
	s.state = Idle
	return decision
}
