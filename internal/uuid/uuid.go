// Package uuid wraps id generation so save and player ids can be mocked.
package uuid

import (
	"github.com/google/uuid"
)

// Generator produces unique ids for saves and players
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator with random v4 ids
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SequenceGenerator hands out prefixed ids from a fixed list, then falls back
// to random ones. Useful for deterministic save ids in tests and demos.
type SequenceGenerator struct {
	ids  []string
	next int
}

// NewSequenceGenerator creates a generator that returns ids in order
func NewSequenceGenerator(ids ...string) *SequenceGenerator {
	return &SequenceGenerator{ids: ids}
}

// New returns the next queued id or a random one once the queue is drained
func (g *SequenceGenerator) New() string {
	if g.next < len(g.ids) {
		id := g.ids[g.next]
		g.next++
		return id
	}
	return uuid.New().String()
}
