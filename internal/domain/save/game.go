// Package save defines the persisted shape of a trip in progress
package save

import (
	"time"

	"github.com/KirkDiggler/roadtrip-engine/internal/domain/player"
	apperr "github.com/KirkDiggler/roadtrip-engine/internal/errors"
)

// Game is everything needed to rebuild a trip: the traveller, the ability
// runtime state and the event history
type Game struct {
	ID         string `json:"id"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Level      int    `json:"level"`

	Resources player.Resources `json:"resources"`
	NodeID    string           `json:"node_id"`
	Location  string           `json:"location"`
	RoadType  string           `json:"road_type"`

	Unlocked    []string       `json:"unlocked"`
	SkillPoints int            `json:"skill_points"`
	Charges     map[string]int `json:"charges"`

	TriggeredEvents []string          `json:"triggered_events"`
	Party           *player.Party     `json:"party"`
	Inventory       *player.Inventory `json:"inventory"`

	SavedAt time.Time `json:"saved_at"`
}

// Validate checks the fields every repository relies on
func (g *Game) Validate() error {
	if g == nil {
		return apperr.InvalidArgument("save cannot be nil")
	}
	if g.ID == "" {
		return apperr.InvalidArgument("save id is required")
	}
	if g.PlayerID == "" {
		return apperr.InvalidArgument("player id is required")
	}
	if g.SkillPoints < 0 {
		return apperr.InvalidArgumentf("skill points cannot be negative: %d", g.SkillPoints)
	}
	return nil
}
