package testutils

import (
	"testing"

	"github.com/KirkDiggler/roadtrip-engine/internal/domain/ability"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/event"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/player"
	"github.com/stretchr/testify/require"
)

// CreateTestPassive creates a passive ability definition
func CreateTestPassive(id string, effect ability.EffectType, multiplier float64, flat int) *ability.Definition {
	return &ability.Definition{
		ID:          id,
		Name:        id,
		Kind:        ability.KindPassive,
		Category:    ability.CategoryDriving,
		Requirement: ability.Requirement{MinLevel: 1, SkillPointCost: 1},
		Passive:     &ability.PassiveEffect{Effect: effect, Multiplier: multiplier, Flat: flat},
	}
}

// CreateTestActive creates an active ability definition with no costs
func CreateTestActive(id string, preserves ability.PreservationType, maxCharges, preserveAmount int) *ability.Definition {
	return &ability.Definition{
		ID:          id,
		Name:        id,
		Kind:        ability.KindActive,
		Category:    ability.CategorySurvival,
		Requirement: ability.Requirement{MinLevel: 1, SkillPointCost: 1},
		Active: &ability.ActiveEffect{
			Preserves:      preserves,
			MaxCharges:     maxCharges,
			PreserveAmount: preserveAmount,
		},
	}
}

// CreateTestCatalog builds a catalog or fails the test
func CreateTestCatalog(t *testing.T, defs ...*ability.Definition) *ability.Catalog {
	t.Helper()
	catalog, err := ability.NewCatalog(defs)
	require.NoError(t, err)
	return catalog
}

// CreateStandardCatalog is the small catalog most engine tests share:
// fuel_saver_1 (passive fuel_efficiency x1.1), emergency_fuel (active fuel,
// 2 charges, +10), power_nap (active energy, 3 charges, +15, 5 money cost)
// and haggler (passive money_bonus x1.5 +2).
func CreateStandardCatalog(t *testing.T) *ability.Catalog {
	t.Helper()

	fuelSaver := CreateTestPassive("fuel_saver_1", ability.EffectFuelEfficiency, 1.1, 0)
	fuelSaver.Name = "Fuel Saver I"

	emergency := CreateTestActive("emergency_fuel", ability.PreserveFuel, 2, 10)
	emergency.Name = "Emergency Fuel"

	nap := CreateTestActive("power_nap", ability.PreserveEnergy, 3, 15)
	nap.Name = "Power Nap"
	nap.Active.MoneyCost = 5

	haggler := CreateTestPassive("haggler", ability.EffectMoneyBonus, 1.5, 2)
	haggler.Name = "Haggler"
	haggler.Category = ability.CategoryCommerce

	return CreateTestCatalog(t, fuelSaver, emergency, nap, haggler)
}

// CreateTestEvent creates an always-eligible event
func CreateTestEvent(id string, choices ...event.Choice) *event.Event {
	return event.New(id, id, event.ClassRoad, choices...)
}

// CreateTestPlayer creates a level 1 traveller with full gauges and $200
func CreateTestPlayer(partyCapacity int) *player.State {
	return player.New("player-1", "Tester", partyCapacity)
}
