package mockchance

import (
	"fmt"
	"sync"
)

// ManualSource implements chance.Source for testing with predetermined draws.
// Running out of queued draws panics so a test notices an unexpected draw.
type ManualSource struct {
	mu       sync.Mutex
	floats   []float64
	ints     []int
	floatIdx int
	intIdx   int
}

// NewManualSource creates a new manual source
func NewManualSource() *ManualSource {
	return &ManualSource{}
}

// SetFloats queues Float64 results
func (m *ManualSource) SetFloats(floats ...float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.floats = floats
	m.floatIdx = 0
}

// SetInts queues Intn results
func (m *ManualSource) SetInts(ints ...int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ints = ints
	m.intIdx = 0
}

// FloatsUsed returns how many Float64 draws were consumed
func (m *ManualSource) FloatsUsed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.floatIdx
}

// Float64 implements chance.Source
func (m *ManualSource) Float64() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.floatIdx >= len(m.floats) {
		panic(fmt.Sprintf("no more predetermined floats available (used %d of %d)", m.floatIdx, len(m.floats)))
	}
	v := m.floats[m.floatIdx]
	m.floatIdx++
	return v
}

// Intn implements chance.Source. Queued values are reduced modulo n.
func (m *ManualSource) Intn(n int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.intIdx >= len(m.ints) {
		panic(fmt.Sprintf("no more predetermined ints available (used %d of %d)", m.intIdx, len(m.ints)))
	}
	v := m.ints[m.intIdx]
	m.intIdx++
	if n <= 0 {
		return 0
	}
	return v % n
}
