package chance

import (
	"math/rand"
	"time"
)

// randomSource implements Source on a seeded math/rand generator
type randomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a new random source. A zero seed uses the clock.
func NewRandomSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randomSource{rng: rand.New(rand.NewSource(seed))}
}

// Float64 implements Source.Float64
func (r *randomSource) Float64() float64 {
	return r.rng.Float64()
}

// Intn implements Source.Intn
func (r *randomSource) Intn(n int) int {
	return r.rng.Intn(n)
}
