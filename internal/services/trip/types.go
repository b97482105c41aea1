package trip

import (
	"context"

	"github.com/KirkDiggler/roadtrip-engine/internal/domain/event"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/player"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/save"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/ability"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/choice"
)

// Service runs one trip: it owns the traveller and drives the event,
// ability and choice engines on the host's behalf
type Service interface {
	// Tick draws the next event, or returns the pending one. A nil
	// presentation means nothing happened this tick.
	Tick(ctx context.Context) (*Presentation, error)

	// Current returns the presentation awaiting a choice, if any
	Current() *Presentation

	// Choose applies a choice of the current presentation
	Choose(ctx context.Context, index int) (*Outcome, error)

	// Rest restores every ability charge and refills energy
	Rest(ctx context.Context) error

	// Arrive moves the traveller and notifies quest tracking
	Arrive(ctx context.Context, nodeID, location, roadType string) error

	// LevelUp raises the level by one and grants a skill point
	LevelUp() int

	// Unlock spends skill points at the current level
	Unlock(abilityID string) *ability.UnlockResult

	// SkillTree lists every ability with its unlock status
	SkillTree() []*ability.AvailableAbility

	// Player returns a copy of the traveller
	Player() *player.State

	Save(ctx context.Context) (*save.Game, error)
	Load(ctx context.Context, saveID string) error
	Saves(ctx context.Context) ([]*save.Game, error)

	// Reset starts a fresh trip with the same catalogs
	Reset()
}

// Presentation is an event ready to show, perk choices included
type Presentation struct {
	Event   *event.Event
	Choices []ChoiceView
	// Warning is set when a resource threshold raised the event
	Warning bool
}

// ChoiceView is one selectable line. Disabled choices carry the reason.
type ChoiceView struct {
	Index    int
	Text     string
	IsPerk   bool
	Disabled bool
	Reason   string
}

// Outcome is the result of Choose
type Outcome struct {
	Result *choice.Result
	// Next is the chained event, presented without a random draw
	Next *Presentation
}
