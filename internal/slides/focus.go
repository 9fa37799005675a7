package slides

import "unicode/utf8"

// Focus asks the editing surface to move the cursor.
// Offset is expressed in characters.
type Focus struct {
	BlockID string
	Offset  int
}

// Key is a navigation key that may cross a block boundary.
type Key int

const (
	KeyBackspace Key = iota + 1
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

func (k Key) String() string {
	switch k {
	case KeyBackspace:
		return "backspace"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	}
	return "unknown"
}

// focusController remembers a single pending focus request.
type focusController struct {
	pending *Focus
}

func (c *focusController) request(blockID string, offset int) {
	c.pending = &Focus{BlockID: blockID, Offset: offset}
}

func (c *focusController) take() (Focus, bool) {
	if c.pending == nil {
		return Focus{}, false
	}
	f := *c.pending
	c.pending = nil
	return f, true
}

func (c *focusController) clear() {
	c.pending = nil
}

func length(content string) int {
	return utf8.RuneCountInString(content)
}
