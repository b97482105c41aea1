// Package player holds the traveller's mutable state: resource gauges,
// position, party and inventory.
package player

// State is everything about the traveller the engine reads and mutates
type State struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Level     int        `json:"level"`
	Resources Resources  `json:"resources"`
	NodeID    string     `json:"node_id"`
	Location  string     `json:"location"`
	RoadType  string     `json:"road_type"`
	Party     *Party     `json:"party"`
	Inventory *Inventory `json:"inventory"`
}

// New creates a level 1 traveller with full gauges
func New(id, name string, partyCapacity int) *State {
	return &State{
		ID:        id,
		Name:      name,
		Level:     1,
		Resources: DefaultResources(),
		Party:     NewParty(partyCapacity),
		Inventory: NewInventory(),
	}
}

// Clone deep-copies the state for read-only callers
func (s *State) Clone() *State {
	out := *s
	if s.Party != nil {
		out.Party = s.Party.Clone()
	}
	if s.Inventory != nil {
		out.Inventory = s.Inventory.Clone()
	}
	return &out
}
