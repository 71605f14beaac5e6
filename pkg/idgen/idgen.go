// Package idgen generates entity ids that stay unique under rapid creation.
package idgen

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Generator returns a fresh id carrying prefix.
type Generator interface {
	NewID(prefix string) string
}

// UUID issues "<prefix>-<uuid v4>" ids.
type UUID struct{}

// NewID implements Generator.
func (UUID) NewID(prefix string) string {
	if prefix == "" {
		return uuid.NewString()
	}
	return prefix + "-" + uuid.NewString()
}

// Sequence issues "<prefix>-<n>" ids from a per-prefix monotonic counter.
// Output is reproducible for identical call sequences.
type Sequence struct {
	mu   sync.Mutex
	next map[string]int
}

// NewSequence returns a Sequence starting every prefix at 1.
func NewSequence() *Sequence {
	return &Sequence{next: make(map[string]int)}
}

// NewID implements Generator.
func (s *Sequence) NewID(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next[prefix]++
	return prefix + "-" + strconv.Itoa(s.next[prefix])
}

// New returns the generator for mode: "sequence" or anything else for UUID.
func New(mode string) Generator {
	if mode == "sequence" {
		return NewSequence()
	}
	return UUID{}
}
