// Package eventpool owns the registered events, decides which ones are
// eligible for the current player state and draws one at random.
package eventpool

import (
	"log"
	"sort"
	"sync"

	"github.com/KirkDiggler/roadtrip-engine/internal/chance"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/event"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/player"
	apperr "github.com/KirkDiggler/roadtrip-engine/internal/errors"
)

// Query is the player state an event draw is evaluated against.
// Party and Items are optional; when nil, party constraints are not checked.
type Query struct {
	Fuel     int
	Energy   int
	Money    int
	Location string
	RoadType string
	Party    player.Roster
	Items    player.Items
}

// Triggered is returned by Trigger so the host can notify quest tracking
// and the UI without the pool holding a callback.
type Triggered struct {
	EventID     string
	Title       string
	Class       event.Class
	NPCID       string
	OneTimeOnly bool
}

// Pool holds the event catalog plus the triggered and blocked history
type Pool struct {
	mu        sync.Mutex
	source    chance.Source
	events    map[string]*event.Event
	order     []string
	triggered map[string]bool
	blocked   map[string]bool
}

// Config holds configuration for the pool
type Config struct {
	Source chance.Source
	Events []*event.Event
}

// New creates a pool and registers the given events
func New(cfg *Config) (*Pool, error) {
	if cfg == nil || cfg.Source == nil {
		panic("chance source is required")
	}

	p := &Pool{
		source:    cfg.Source,
		events:    make(map[string]*event.Event, len(cfg.Events)),
		triggered: make(map[string]bool),
		blocked:   make(map[string]bool),
	}
	for _, ev := range cfg.Events {
		if err := p.Register(ev); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Register adds an event. Ids must be unique.
func (p *Pool) Register(ev *event.Event) error {
	if ev == nil {
		return apperr.InvalidArgument("event cannot be nil")
	}
	if err := event.ValidateEvent(ev); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.events[ev.ID]; exists {
		return apperr.AlreadyExistsf("event %s already registered", ev.ID)
	}
	p.events[ev.ID] = ev
	p.order = append(p.order, ev.ID)
	return nil
}

// Get looks up an event by id
func (p *Pool) Get(id string) (*event.Event, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ev, ok := p.events[id]
	return ev, ok
}

// All returns events in registration order
func (p *Pool) All() []*event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]*event.Event, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.events[id])
	}
	return out
}

// CheckCondition evaluates resource ranges, location and road type, then
// rolls the trigger chance. The roll is fresh on every call.
func (p *Pool) CheckCondition(cond event.Condition, fuel, energy, money int, location, roadType string) bool {
	if !matchesResources(cond, fuel, energy, money, location, roadType) {
		return false
	}
	return chance.Passes(p.source, cond.Probability)
}

func matchesResources(cond event.Condition, fuel, energy, money int, location, roadType string) bool {
	if fuel < cond.MinFuel || fuel > cond.MaxFuel {
		return false
	}
	if energy < cond.MinEnergy || energy > cond.MaxEnergy {
		return false
	}
	if money < cond.MinMoney || money > cond.MaxMoney {
		return false
	}
	if cond.Location != "" && cond.Location != location {
		return false
	}
	if cond.RoadType != "" && cond.RoadType != roadType {
		return false
	}
	return true
}

// CheckParty evaluates the party, relationship and inventory constraints
func CheckParty(cond event.Condition, party player.Roster, items player.Items) bool {
	if party != nil {
		size := party.Size()
		if size < cond.MinPartySize || size > cond.MaxPartySize {
			return false
		}
		for _, npc := range cond.RequiredNPCs {
			if !party.Has(npc) {
				return false
			}
		}
		for npc, min := range cond.MinRelationship {
			if party.Relationship(npc) < min {
				return false
			}
		}
	} else if len(cond.RequiredNPCs) > 0 || len(cond.MinRelationship) > 0 || cond.MinPartySize > 0 {
		return false
	}

	if len(cond.RequiredItems) > 0 {
		if items == nil {
			return false
		}
		for _, id := range cond.RequiredItems {
			if !items.Has(id) {
				return false
			}
		}
	}
	return true
}

// RandomEvent draws one eligible event, weighted by Event.Weight.
// Returns nil when nothing is eligible.
func (p *Pool) RandomEvent(q Query) *event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	var (
		candidates []*event.Event
		weights    []int
	)
	for _, id := range p.order {
		ev := p.events[id]
		if !p.eligibleLocked(ev, q) {
			continue
		}
		if !p.CheckCondition(ev.Condition, q.Fuel, q.Energy, q.Money, q.Location, q.RoadType) {
			continue
		}
		candidates = append(candidates, ev)
		weights = append(weights, ev.Weight)
	}

	if len(candidates) == 0 {
		return nil
	}
	return candidates[chance.PickWeighted(p.source, weights)]
}

// eligibleLocked runs the deterministic history and party checks (caller must hold lock)
func (p *Pool) eligibleLocked(ev *event.Event, q Query) bool {
	if ev.OneTimeOnly && ev.Triggered {
		return false
	}
	if p.blocked[ev.ID] {
		return false
	}
	for _, id := range ev.Condition.BlockedBy {
		if p.triggered[id] {
			return false
		}
	}
	if ev.Condition.HasPartyConstraints() {
		return CheckParty(ev.Condition, q.Party, q.Items)
	}
	return true
}

// Trigger marks an event as presented and records what it blocks
func (p *Pool) Trigger(id string) (*Triggered, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ev, ok := p.events[id]
	if !ok {
		return nil, apperr.NotFoundf("event %s not found", id)
	}

	if ev.OneTimeOnly {
		ev.Triggered = true
	}
	p.triggered[id] = true
	for _, blocked := range ev.Blocks {
		p.blocked[blocked] = true
	}

	log.Printf("EventPool: Triggered %s", id)
	return &Triggered{
		EventID:     ev.ID,
		Title:       ev.Title,
		Class:       ev.Class,
		NPCID:       ev.NPCID,
		OneTimeOnly: ev.OneTimeOnly,
	}, nil
}

// ApplyChoice applies the three scalar deltas with clamping:
// fuel and energy to [0,100], money to >= 0.
func (p *Pool) ApplyChoice(choice *event.Choice, fuel, energy, money int) (int, int, int) {
	return player.ClampGauge(fuel + choice.FuelChange),
		player.ClampGauge(energy + choice.EnergyChange),
		player.ClampMoney(money + choice.MoneyChange)
}

// TriggeredIDs lists every event presented so far, sorted
func (p *Pool) TriggeredIDs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, 0, len(p.triggered))
	for id := range p.triggered {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// MarkTriggered replays a saved trigger history without notifications
func (p *Pool) MarkTriggered(ids []string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, id := range ids {
		ev, ok := p.events[id]
		if !ok {
			log.Printf("EventPool: Skipping unknown event %s from save", id)
			continue
		}
		p.triggered[id] = true
		if ev.OneTimeOnly {
			ev.Triggered = true
		}
		for _, blocked := range ev.Blocks {
			p.blocked[blocked] = true
		}
	}
}

// Reset clears the trigger history
func (p *Pool) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, ev := range p.events {
		ev.Triggered = false
	}
	p.triggered = make(map[string]bool)
	p.blocked = make(map[string]bool)
}
