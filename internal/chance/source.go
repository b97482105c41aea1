package chance

// Source provides the random draws the engine needs.
// This allows us to inject deterministic implementations for testing.
type Source interface {
	// Float64 returns a uniform draw in [0.0, 1.0)
	Float64() float64

	// Intn returns a uniform draw in [0, n). n must be > 0.
	Intn(n int) int
}

// Passes reports whether a per-attempt trigger chance succeeds.
// p <= 0 never passes and p >= 1 always passes without consuming a draw;
// anything in between consumes exactly one draw.
func Passes(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return src.Float64() < p
}

// PickWeighted returns the index chosen by a cumulative weight draw.
// Non-positive weights count as 1. Returns -1 for an empty slice.
func PickWeighted(src Source, weights []int) int {
	if len(weights) == 0 {
		return -1
	}

	total := 0
	for _, w := range weights {
		total += normalizeWeight(w)
	}

	pick := src.Intn(total)
	acc := 0
	for i, w := range weights {
		acc += normalizeWeight(w)
		if pick < acc {
			return i
		}
	}
	return len(weights) - 1
}

func normalizeWeight(w int) int {
	if w <= 0 {
		return 1
	}
	return w
}
