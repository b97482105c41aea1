package player

const (
	MaxGauge        = 100
	MinRelationship = -100
	MaxRelationship = 100
)

// Resources are the scalar levels the engine owns.
// Fuel, energy, vehicle and mood are gauges in [0,100]; money is >= 0.
type Resources struct {
	Fuel    int `json:"fuel"`
	Energy  int `json:"energy"`
	Money   int `json:"money"`
	Vehicle int `json:"vehicle"`
	Mood    int `json:"mood"`
}

// DefaultResources is the state of a fresh trip
func DefaultResources() Resources {
	return Resources{
		Fuel:    MaxGauge,
		Energy:  MaxGauge,
		Money:   200,
		Vehicle: MaxGauge,
		Mood:    70,
	}
}

// ClampGauge bounds a gauge value to [0,100]
func ClampGauge(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxGauge {
		return MaxGauge
	}
	return v
}

// ClampMoney bounds money to >= 0
func ClampMoney(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// ClampRelationship bounds a relationship value to [-100,100]
func ClampRelationship(v int) int {
	if v < MinRelationship {
		return MinRelationship
	}
	if v > MaxRelationship {
		return MaxRelationship
	}
	return v
}

// Normalize clamps every field into range
func (r *Resources) Normalize() {
	r.Fuel = ClampGauge(r.Fuel)
	r.Energy = ClampGauge(r.Energy)
	r.Vehicle = ClampGauge(r.Vehicle)
	r.Mood = ClampGauge(r.Mood)
	r.Money = ClampMoney(r.Money)
}
