// Package choice commits the effects of a selected event choice to the
// player state and forwards quest notifications.
package choice

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"

	domain "github.com/KirkDiggler/roadtrip-engine/internal/domain/ability"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/event"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/player"
	apperr "github.com/KirkDiggler/roadtrip-engine/internal/errors"
	"github.com/KirkDiggler/roadtrip-engine/internal/events"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/ability"
)

// Applier applies choices. It holds no trip state of its own.
type Applier struct {
	events    EventSource
	abilities ability.Service
	publisher events.Publisher
}

// Config holds configuration for the applier
type Config struct {
	Events    EventSource
	Abilities ability.Service
	// Publisher is optional; without it no notifications are sent
	Publisher events.Publisher
}

// NewApplier creates a new choice applier
func NewApplier(cfg *Config) *Applier {
	if cfg == nil {
		panic("choice applier config is required")
	}
	if cfg.Events == nil {
		panic("event source is required")
	}
	if cfg.Abilities == nil {
		panic("ability service is required")
	}
	return &Applier{
		events:    cfg.Events,
		abilities: cfg.Abilities,
		publisher: cfg.Publisher,
	}
}

// Precheck returns the reason a choice cannot be taken, or "" when it can.
// A perk choice without a charge is rejected here so the charge use after
// the effects land cannot fail.
func (a *Applier) Precheck(c *event.Choice, p *player.State) string {
	if cost := c.MoneyCost(); cost > p.Resources.Money {
		return fmt.Sprintf(ReasonNotEnoughMoneyFmt, cost)
	}
	for _, item := range c.RequiredItems {
		if p.Inventory == nil || !p.Inventory.Has(item) {
			return fmt.Sprintf(ReasonMissingItemFmt, item)
		}
	}
	if c.IsPerkChoice && !a.abilities.CanUseActivePerk(c.PerkID) {
		return ReasonPerkUnavailable
	}
	return ""
}

// Apply runs the precheck and then commits every effect of the choice
func (a *Applier) Apply(ctx context.Context, in *Input) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if in == nil || in.Event == nil || in.Choice == nil || in.Player == nil {
		return nil, apperr.InvalidArgument("event, choice and player are required")
	}

	p := in.Player
	c := in.Choice
	result := &Result{Before: p.Resources, After: p.Resources}

	if reason := a.Precheck(c, p); reason != "" {
		result.Reason = reason
		return result, nil
	}

	adjusted := a.withPassives(c)

	p.Resources.Fuel, p.Resources.Energy, p.Resources.Money =
		a.events.ApplyChoice(&adjusted, p.Resources.Fuel, p.Resources.Energy, p.Resources.Money)
	p.Resources.Vehicle = player.ClampGauge(p.Resources.Vehicle + adjusted.VehicleChange)
	p.Resources.Mood = player.ClampGauge(p.Resources.Mood + adjusted.MoodChange)

	if p.Party != nil {
		for _, npc := range sortedKeys(adjusted.RelationshipChanges) {
			p.Party.AdjustRelationship(npc, adjusted.RelationshipChanges[npc])
		}
	}

	a.applyItems(c, p, result)
	a.applyParty(c, p, result)

	if c.TriggerEvent != "" {
		if chained, ok := a.events.Get(c.TriggerEvent); ok {
			result.Chained = chained
		} else {
			log.Printf("ChoiceApplier: Chained event %s not found", c.TriggerEvent)
		}
	}

	if c.IsPerkChoice {
		result.PerkUse = a.abilities.UseActivePerk(c.PerkID)
	}

	result.Applied = true
	result.Outcome = c.Outcome
	result.After = p.Resources

	a.notify(in, result)
	return result, nil
}

// withPassives returns a copy of the choice with passive bonuses folded in.
// Perk choices carry exact amounts and are returned unchanged.
func (a *Applier) withPassives(c *event.Choice) event.Choice {
	out := *c
	if c.IsPerkChoice {
		return out
	}

	if out.FuelChange < 0 {
		out.FuelChange = -divide(-out.FuelChange, a.abilities.PassiveBonus(domain.EffectFuelEfficiency))
	}
	if out.EnergyChange > 0 {
		out.EnergyChange = a.boost(out.EnergyChange, domain.EffectEnergyRecovery)
	}
	if out.MoneyChange > 0 {
		out.MoneyChange = a.boost(out.MoneyChange, domain.EffectMoneyBonus)
	}
	if out.VehicleChange < 0 {
		out.VehicleChange = -divide(-out.VehicleChange, a.abilities.PassiveBonus(domain.EffectVehicleDurability))
	}
	if out.MoodChange > 0 {
		out.MoodChange += a.abilities.PassiveBonusFlat(domain.EffectMoodBoost)
	}

	if len(c.RelationshipChanges) > 0 {
		out.RelationshipChanges = make(map[string]int, len(c.RelationshipChanges))
		for npc, delta := range c.RelationshipChanges {
			if delta > 0 {
				delta = a.boost(delta, domain.EffectRelationshipGain)
			}
			out.RelationshipChanges[npc] = delta
		}
	}
	return out
}

// boost scales a gain by the passive multiplier and adds the flat bonus
func (a *Applier) boost(gain int, effect domain.EffectType) int {
	scaled := int(math.Round(float64(gain) * a.abilities.PassiveBonus(effect)))
	return scaled + a.abilities.PassiveBonusFlat(effect)
}

// divide shrinks a cost by an efficiency multiplier
func divide(cost int, efficiency float64) int {
	if efficiency <= 0 {
		return cost
	}
	return int(math.Round(float64(cost) / efficiency))
}

func (a *Applier) applyItems(c *event.Choice, p *player.State, result *Result) {
	if p.Inventory == nil {
		p.Inventory = player.NewInventory()
	}
	for _, item := range c.AddItems {
		p.Inventory.Add(item, 1)
		result.ItemsAdded = append(result.ItemsAdded, item)
	}
	for _, item := range c.RemoveItems {
		if p.Inventory.Remove(item, 1) > 0 {
			result.ItemsRemoved = append(result.ItemsRemoved, item)
		}
	}
	for _, item := range c.DeliverItems {
		if p.Inventory.Remove(item, 1) > 0 {
			result.ItemsDelivered = append(result.ItemsDelivered, item)
		}
	}
}

func (a *Applier) applyParty(c *event.Choice, p *player.State, result *Result) {
	if p.Party == nil {
		return
	}
	if c.RecruitNPC != "" {
		if p.Party.Recruit(c.RecruitNPC) {
			result.Recruited = c.RecruitNPC
		} else if !p.Party.Has(c.RecruitNPC) {
			result.RecruitSkipped = true
			log.Printf("ChoiceApplier: Party full, %s not recruited", c.RecruitNPC)
		}
	}
	if c.RemoveNPC != "" && p.Party.Remove(c.RemoveNPC) {
		result.Removed = c.RemoveNPC
	}
}

// notify pushes quest notifications. Delivery is fire-and-forget: listener
// errors are logged and never undo the choice.
func (a *Applier) notify(in *Input, result *Result) {
	if a.publisher == nil {
		return
	}

	var out []events.Event
	for _, item := range result.ItemsAdded {
		out = append(out, events.NewItemCollected(item, 1))
	}
	for _, item := range result.ItemsDelivered {
		out = append(out, events.NewItemDelivered(item, in.Player.Location, 1))
	}
	if earned := result.After.Money - result.Before.Money; earned > 0 {
		out = append(out, events.NewMoneyEarned(earned))
	}
	if in.Event.NPCID != "" {
		out = append(out, events.NewNPCTalkedTo(in.Event.NPCID))
	}
	if in.Choice.EndsEvent {
		out = append(out, events.NewEventCompleted(in.Event.ID))
	}

	for _, e := range out {
		if err := a.publisher.Emit(e); err != nil {
			log.Printf("ChoiceApplier: Failed to publish %s: %v", e.GetType(), err)
		}
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
