package choice

import (
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/event"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/player"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/ability"
)

// EventSource is the part of the event pool the applier needs
type EventSource interface {
	Get(id string) (*event.Event, bool)
	ApplyChoice(choice *event.Choice, fuel, energy, money int) (int, int, int)
}

// Input is a selected choice and the state it applies to
type Input struct {
	Event  *event.Event
	Choice *event.Choice
	Player *player.State
}

// Result describes what a choice did. When Applied is false nothing was
// mutated and Reason says why.
type Result struct {
	Applied bool
	Reason  string
	Outcome string

	Before player.Resources
	After  player.Resources

	ItemsAdded     []string
	ItemsRemoved   []string
	ItemsDelivered []string
	Recruited      string
	RecruitSkipped bool
	Removed        string

	// Chained is the event named by the choice's trigger, presented next
	// without a random draw
	Chained *event.Event

	PerkUse *ability.UseResult
}

const (
	ReasonNotEnoughMoneyFmt = "Requires $%d"
	ReasonMissingItemFmt    = "Requires %s"
	ReasonPerkUnavailable   = ability.ReasonNoCharges
)
