// Package perk surfaces unlocked active abilities as extra event choices
// when the event threatens the resource the ability protects.
package perk

import (
	"fmt"

	domain "github.com/KirkDiggler/roadtrip-engine/internal/domain/ability"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/event"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/player"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/ability"
)

// Injector appends perk choices to events about to be presented
type Injector struct {
	abilities ability.Service
}

// NewInjector creates an injector backed by the ability runtime state
func NewInjector(abilities ability.Service) *Injector {
	if abilities == nil {
		panic("ability service is required")
	}
	return &Injector{abilities: abilities}
}

// RelevantTags returns the preservation tags threatened by the event's
// authored choices, deduplicated, in the order fuel, energy, money, vehicle.
// Perk choices are ignored so injecting twice finds the same tags.
func RelevantTags(ev *event.Event) []domain.PreservationType {
	threatened := make(map[domain.PreservationType]bool, len(domain.PreservationTypes))
	for i := range ev.Choices {
		c := &ev.Choices[i]
		if c.IsPerkChoice {
			continue
		}
		if c.FuelChange < 0 {
			threatened[domain.PreserveFuel] = true
		}
		if c.EnergyChange < 0 {
			threatened[domain.PreserveEnergy] = true
		}
		if c.MoneyChange < 0 {
			threatened[domain.PreserveMoney] = true
		}
		if c.VehicleChange < 0 {
			threatened[domain.PreserveVehicle] = true
		}
	}

	var tags []domain.PreservationType
	for _, tag := range domain.PreservationTypes {
		if threatened[tag] {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Inject appends one choice per eligible perk and returns how many were
// added. Only the choice list changes; condition and identity are untouched.
// Abilities already offered on the event are skipped.
func (i *Injector) Inject(ev *event.Event, fuel, energy, money int, items player.Items) int {
	if ev == nil {
		return 0
	}

	offered := make(map[string]bool)
	for _, c := range ev.Choices {
		if c.IsPerkChoice {
			offered[c.PerkID] = true
		}
	}

	added := 0
	for _, tag := range RelevantTags(ev) {
		for _, perk := range i.abilities.EligiblePerks(tag, energy, money, items) {
			if offered[perk.Definition.ID] {
				continue
			}
			ev.Choices = append(ev.Choices, BuildChoice(perk.Definition, perk.Charges))
			offered[perk.Definition.ID] = true
			added++
		}
	}
	return added
}

// BuildChoice synthesizes the choice for an active ability. The protected
// resource gains the preserve amount minus the ability's own cost on that
// resource; the other costs are charged as plain deltas.
func BuildChoice(def *domain.Definition, charges domain.ChargeCounter) event.Choice {
	active := def.Active
	choice := event.Choice{
		Text:          fmt.Sprintf("Use %s (%d/%d)", def.Name, charges.Current, charges.Max),
		Outcome:       fmt.Sprintf("You used %s.", def.Name),
		EnergyChange:  -active.EnergyCost,
		MoneyChange:   -active.MoneyCost,
		RequiredItems: append([]string(nil), active.RequiredItems...),
		EndsEvent:     true,
		IsPerkChoice:  true,
		PerkID:        def.ID,
	}

	switch active.Preserves {
	case domain.PreserveFuel:
		choice.FuelChange = active.PreserveAmount
	case domain.PreserveEnergy:
		choice.EnergyChange = active.PreserveAmount - active.EnergyCost
	case domain.PreserveMoney:
		choice.MoneyChange = active.PreserveAmount - active.MoneyCost
	case domain.PreserveVehicle:
		choice.VehicleChange = active.PreserveAmount
	}
	return choice
}
