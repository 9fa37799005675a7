package oid

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var generator Generator = &UniqueGenerator{}

// Generator creates new OIDs.
type Generator interface {
	New() OID
}

// Reset restores the unique generator.
// Useful in tests with a defer after overriding the default generator.
func Reset() {
	generator = &UniqueGenerator{}
}

// UniqueGenerator returns random OIDs based on UUIDv4.
type UniqueGenerator struct{}

func NewUniqueGenerator() *UniqueGenerator {
	return &UniqueGenerator{}
}

func (g *UniqueGenerator) New() OID {
	// Two UUIDs without dashes give 64 hexadecimal characters, we keep 40.
	oid := strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", "")[0:40]
	return OID(oid)
}

// SuiteGenerator returns a predefined list of OIDs.
// It panics when the list is exhausted.
type SuiteGenerator struct {
	mu       sync.Mutex
	nextOIDs []string
}

func NewSuiteGenerator(nextOIDs ...string) *SuiteGenerator {
	return &SuiteGenerator{nextOIDs: nextOIDs}
}

func (g *SuiteGenerator) New() OID {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.nextOIDs) == 0 {
		panic("no more OIDs")
	}
	next := g.nextOIDs[0]
	g.nextOIDs = g.nextOIDs[1:]
	return OID(next)
}

// FixedGenerator returns always the same OID.
type FixedGenerator struct {
	oid OID
}

func NewFixedGenerator(oid OID) *FixedGenerator {
	return &FixedGenerator{oid: oid}
}

func (g *FixedGenerator) New() OID {
	return g.oid
}

// SequenceGenerator returns numbered OIDs ("000...001", "000...002", ...).
type SequenceGenerator struct {
	mu    sync.Mutex
	count int
}

func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{}
}

func (g *SequenceGenerator) New() OID {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.count++
	return OID(fmt.Sprintf("%040d", g.count))
}
