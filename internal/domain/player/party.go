package player

import "sort"

// Roster is what the engine needs from the travelling party
type Roster interface {
	Has(npcID string) bool
	Size() int
	Relationship(npcID string) int
}

// Party is the active travelling party and everyone's standing with the player.
// Relationships persist after an NPC leaves.
type Party struct {
	Capacity      int            `json:"capacity"`
	Members       []string       `json:"members"`
	Relationships map[string]int `json:"relationships"`
}

// NewParty creates an empty party
func NewParty(capacity int) *Party {
	return &Party{
		Capacity:      capacity,
		Relationships: make(map[string]int),
	}
}

// Has reports whether the NPC is travelling with the player
func (p *Party) Has(npcID string) bool {
	for _, m := range p.Members {
		if m == npcID {
			return true
		}
	}
	return false
}

// Size returns the number of members
func (p *Party) Size() int {
	return len(p.Members)
}

// IsFull reports whether no one else fits in the car
func (p *Party) IsFull() bool {
	return len(p.Members) >= p.Capacity
}

// Recruit adds an NPC. Returns false when full or already present.
func (p *Party) Recruit(npcID string) bool {
	if npcID == "" || p.Has(npcID) || p.IsFull() {
		return false
	}
	p.Members = append(p.Members, npcID)
	return true
}

// Remove drops an NPC from the party. Returns false if absent.
func (p *Party) Remove(npcID string) bool {
	for i, m := range p.Members {
		if m == npcID {
			p.Members = append(p.Members[:i], p.Members[i+1:]...)
			return true
		}
	}
	return false
}

// Relationship returns the player's standing with an NPC, 0 if unknown
func (p *Party) Relationship(npcID string) int {
	return p.Relationships[npcID]
}

// AdjustRelationship applies a delta, clamped, and returns the new value
func (p *Party) AdjustRelationship(npcID string, delta int) int {
	if p.Relationships == nil {
		p.Relationships = make(map[string]int)
	}
	v := ClampRelationship(p.Relationships[npcID] + delta)
	p.Relationships[npcID] = v
	return v
}

// Clone deep-copies the party
func (p *Party) Clone() *Party {
	out := &Party{
		Capacity:      p.Capacity,
		Members:       append([]string(nil), p.Members...),
		Relationships: make(map[string]int, len(p.Relationships)),
	}
	for k, v := range p.Relationships {
		out.Relationships[k] = v
	}
	return out
}

// SortedMembers returns members in a stable order for display
func (p *Party) SortedMembers() []string {
	out := append([]string(nil), p.Members...)
	sort.Strings(out)
	return out
}
