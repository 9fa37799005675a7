package clock

import (
	"sync"
	"time"
)

// Clock abstracts the current time so that timestamps stored on
// presentations and slide decks can be controlled from tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// FrozenClock always returns the same instant until moved forward explicitly.
type FrozenClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *FrozenClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// FastForward moves the frozen instant and returns the new value.
func (c *FrozenClock) FastForward(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

var (
	mu      sync.RWMutex
	current Clock = systemClock{}
)

// Now is time.Now() unless the clock was frozen.
func Now() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return current.Now()
}

// Freeze stops the time at the current instant.
func Freeze() *FrozenClock {
	return FreezeAt(time.Now())
}

// FreezeAt stops the time at the given instant.
func FreezeAt(point time.Time) *FrozenClock {
	frozen := &FrozenClock{now: point}
	mu.Lock()
	current = frozen
	mu.Unlock()
	return frozen
}

// Unfreeze restores the system clock.
func Unfreeze() {
	mu.Lock()
	current = systemClock{}
	mu.Unlock()
}
