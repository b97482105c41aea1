package ability

// ChargeCounter tracks the uses left on an unlocked active ability.
// Invariant: 0 <= Current <= Max.
type ChargeCounter struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// NewChargeCounter creates a full counter
func NewChargeCounter(max int) *ChargeCounter {
	return &ChargeCounter{Current: max, Max: max}
}

// CanUse checks if a charge is left
func (c *ChargeCounter) CanUse() bool {
	return c.Current > 0
}

// Use consumes one charge
func (c *ChargeCounter) Use() bool {
	if !c.CanUse() {
		return false
	}
	c.Current--
	return true
}

// Restore refills the counter
func (c *ChargeCounter) Restore() {
	c.Current = c.Max
}

// Set stores a loaded charge count, clamped into range
func (c *ChargeCounter) Set(current int) {
	switch {
	case current < 0:
		c.Current = 0
	case current > c.Max:
		c.Current = c.Max
	default:
		c.Current = current
	}
}
