// Package threshold raises a one-shot warning when a resource drops below
// its low or critical level, and re-arms only after the resource recovers
// past the level plus HysteresisMargin.
package threshold

import (
	"fmt"
	"log"
	"sync"

	"github.com/KirkDiggler/roadtrip-engine/internal/domain/player"
	apperr "github.com/KirkDiggler/roadtrip-engine/internal/errors"
)

// HysteresisMargin is how far above a threshold a resource must climb
// before its warning re-arms
const HysteresisMargin = 10

// Resource names a monitored resource
type Resource string

const (
	Fuel    Resource = "fuel"
	Energy  Resource = "energy"
	Vehicle Resource = "vehicle"
	Money   Resource = "money"
	Mood    Resource = "mood"
)

// Resources lists the monitored resources in priority order
var Resources = []Resource{Fuel, Energy, Vehicle, Money, Mood}

// State is a resource's position in the warning state machine
type State int

const (
	StateNormal State = iota
	StateWarnedLow
	StateWarnedCritical
)

func (s State) String() string {
	switch s {
	case StateWarnedLow:
		return "warned_low"
	case StateWarnedCritical:
		return "warned_critical"
	default:
		return "normal"
	}
}

// Thresholds are the two trigger levels of one resource. Critical < Low.
type Thresholds struct {
	Low      int
	Critical int
}

// DefaultThresholds returns the stock trigger levels
func DefaultThresholds() map[Resource]Thresholds {
	return map[Resource]Thresholds{
		Fuel:    {Low: 25, Critical: 10},
		Energy:  {Low: 25, Critical: 10},
		Vehicle: {Low: 30, Critical: 15},
		Money:   {Low: 50, Critical: 10},
		Mood:    {Low: 25, Critical: 10},
	}
}

// WarningID is the event id presented for a warning
func WarningID(res Resource, critical bool) string {
	if critical {
		return fmt.Sprintf("warning_%s_critical", res)
	}
	return fmt.Sprintf("warning_%s_low", res)
}

// Monitor tracks one state machine per resource
type Monitor struct {
	mu         sync.Mutex
	thresholds map[Resource]Thresholds
	states     map[Resource]State
}

// Config holds configuration for the monitor. Missing resources use the
// default thresholds.
type Config struct {
	Thresholds map[Resource]Thresholds
}

// NewMonitor creates a monitor with every resource in StateNormal
func NewMonitor(cfg *Config) (*Monitor, error) {
	thresholds := DefaultThresholds()
	if cfg != nil {
		for res, t := range cfg.Thresholds {
			if _, known := thresholds[res]; !known {
				return nil, apperr.Validationf("unknown resource %q", res)
			}
			if t.Critical < 0 || t.Critical >= t.Low {
				return nil, apperr.Validationf("%s thresholds must satisfy 0 <= critical < low, got %d/%d", res, t.Low, t.Critical)
			}
			thresholds[res] = t
		}
	}

	m := &Monitor{thresholds: thresholds}
	m.Reset()
	return m, nil
}

// Check advances every state machine in priority order and returns the
// first warning that fires. Later resources are left for the next check.
// Recovery is silent.
func (m *Monitor) Check(levels player.Resources) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, res := range Resources {
		next, fired, critical := step(m.states[res], valueOf(levels, res), m.thresholds[res])
		if next != m.states[res] && !fired {
			log.Printf("ThresholdMonitor: %s recovered to %s", res, next)
		}
		m.states[res] = next
		if fired {
			return WarningID(res, critical), true
		}
	}
	return "", false
}

// step is the transition function of a single resource
func step(state State, value int, t Thresholds) (next State, fired, critical bool) {
	switch state {
	case StateNormal:
		if value < t.Critical {
			return StateWarnedCritical, true, true
		}
		if value < t.Low {
			return StateWarnedLow, true, false
		}
	case StateWarnedLow:
		if value < t.Critical {
			return StateWarnedCritical, true, true
		}
		if value >= t.Low+HysteresisMargin {
			return StateNormal, false, false
		}
	case StateWarnedCritical:
		if value >= t.Low+HysteresisMargin {
			return StateNormal, false, false
		}
		if value >= t.Critical+HysteresisMargin {
			return StateWarnedLow, false, false
		}
	}
	return state, false, false
}

func valueOf(levels player.Resources, res Resource) int {
	switch res {
	case Fuel:
		return levels.Fuel
	case Energy:
		return levels.Energy
	case Vehicle:
		return levels.Vehicle
	case Money:
		return levels.Money
	case Mood:
		return levels.Mood
	}
	return 0
}

// State returns the current state of a resource
func (m *Monitor) State(res Resource) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.states[res]
}

// Thresholds returns the trigger levels of a resource
func (m *Monitor) Thresholds(res Resource) Thresholds {
	return m.thresholds[res]
}

// Reset puts every resource back into StateNormal
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states = make(map[Resource]State, len(Resources))
	for _, res := range Resources {
		m.states[res] = StateNormal
	}
}
