package trip

import (
	"context"
	"log"

	"github.com/KirkDiggler/roadtrip-engine/internal/domain/player"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/save"
	apperr "github.com/KirkDiggler/roadtrip-engine/internal/errors"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/ability"
)

// Save writes the trip under its save id, creating one on first save.
// A pending presentation is not persisted.
func (s *service) Save(ctx context.Context) (*save.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveID == "" {
		s.saveID = s.ids.New()
	}

	snap := s.abilities.Snapshot()
	p := s.player.Clone()
	game := &save.Game{
		ID:              s.saveID,
		PlayerID:        p.ID,
		PlayerName:      p.Name,
		Level:           p.Level,
		Resources:       p.Resources,
		NodeID:          p.NodeID,
		Location:        p.Location,
		RoadType:        p.RoadType,
		Unlocked:        snap.Unlocked,
		SkillPoints:     snap.SkillPoints,
		Charges:         snap.Charges,
		TriggeredEvents: s.pool.TriggeredIDs(),
		Party:           p.Party,
		Inventory:       p.Inventory,
	}

	if err := s.saves.Save(ctx, game); err != nil {
		return nil, apperr.Wrapf(err, "failed to save trip %s", s.saveID)
	}

	log.Printf("TripService: Saved %s for %s", game.ID, game.PlayerID)
	return game, nil
}

// Load replaces the whole trip state with a save
func (s *service) Load(ctx context.Context, saveID string) error {
	game, err := s.saves.Get(ctx, saveID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	capacity := 0
	if s.player.Party != nil {
		capacity = s.player.Party.Capacity
	}

	p := &player.State{
		ID:        game.PlayerID,
		Name:      game.PlayerName,
		Level:     game.Level,
		Resources: game.Resources,
		NodeID:    game.NodeID,
		Location:  game.Location,
		RoadType:  game.RoadType,
		Party:     game.Party,
		Inventory: game.Inventory,
	}
	if p.Level < 1 {
		p.Level = 1
	}
	p.Resources.Normalize()
	if p.Party == nil {
		p.Party = player.NewParty(capacity)
	}
	if p.Party.Relationships == nil {
		p.Party.Relationships = make(map[string]int)
	}
	if p.Inventory == nil || p.Inventory.Items == nil {
		p.Inventory = player.NewInventory()
	}

	s.abilities.Restore(&ability.Snapshot{
		Unlocked:    game.Unlocked,
		SkillPoints: game.SkillPoints,
		Charges:     game.Charges,
	})
	s.pool.Reset()
	s.pool.MarkTriggered(game.TriggeredEvents)
	s.monitor.Reset()

	s.player = p
	s.current = nil
	s.saveID = game.ID

	log.Printf("TripService: Loaded %s for %s", game.ID, game.PlayerID)
	return nil
}

// Saves lists the current player's saves, newest first
func (s *service) Saves(ctx context.Context) ([]*save.Game, error) {
	s.mu.Lock()
	playerID := s.player.ID
	s.mu.Unlock()

	return s.saves.ListByPlayer(ctx, playerID)
}
