package perk_test

import (
	"testing"

	domain "github.com/KirkDiggler/roadtrip-engine/internal/domain/ability"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/event"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/player"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/ability"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/perk"
	"github.com/KirkDiggler/roadtrip-engine/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAbilities(t *testing.T, unlock ...string) ability.Service {
	t.Helper()
	svc := ability.NewService(&ability.ServiceConfig{
		Catalog:            testutils.CreateStandardCatalog(t),
		InitialSkillPoints: 10,
	})
	for _, id := range unlock {
		result := svc.Unlock(id, 1)
		require.True(t, result.Success, result.Reason)
	}
	return svc
}

func TestInject_EmergencyFuelScenario(t *testing.T) {
	abilities := newAbilities(t, "emergency_fuel")
	injector := perk.NewInjector(abilities)

	ev := testutils.CreateTestEvent("empty_stretch", event.Choice{Text: "Push on", FuelChange: -15})

	added := injector.Inject(ev, 50, 50, 100, nil)
	require.Equal(t, 1, added)
	require.Len(t, ev.Choices, 2)

	injected := ev.Choices[1]
	assert.True(t, injected.IsPerkChoice)
	assert.Equal(t, "emergency_fuel", injected.PerkID)
	assert.Equal(t, 10, injected.FuelChange)
	assert.Equal(t, 0, injected.EnergyChange)
	assert.Equal(t, 0, injected.MoneyChange)
	assert.Equal(t, "Use Emergency Fuel (2/2)", injected.Text)
	assert.Equal(t, "You used Emergency Fuel.", injected.Outcome)
	assert.True(t, injected.EndsEvent)

	use := abilities.UseActivePerk(injected.PerkID)
	require.True(t, use.Success)
	assert.Equal(t, 1, use.ChargesRemaining)
}

func TestInject_IrrelevantEvent(t *testing.T) {
	injector := perk.NewInjector(newAbilities(t, "emergency_fuel", "power_nap"))

	ev := testutils.CreateTestEvent("diner", event.Choice{Text: "Chat", MoodChange: 5, FuelChange: 3})
	assert.Equal(t, 0, injector.Inject(ev, 50, 50, 100, nil))
	assert.Len(t, ev.Choices, 1)
}

func TestInject_SkipsLockedAndExhausted(t *testing.T) {
	abilities := newAbilities(t, "emergency_fuel")
	injector := perk.NewInjector(abilities)

	// power_nap is not unlocked
	ev := testutils.CreateTestEvent("tired", event.Choice{Text: "Drive on", EnergyChange: -10})
	assert.Equal(t, 0, injector.Inject(ev, 50, 50, 100, nil))

	require.True(t, abilities.UseActivePerk("emergency_fuel").Success)
	require.True(t, abilities.UseActivePerk("emergency_fuel").Success)

	ev = testutils.CreateTestEvent("empty", event.Choice{Text: "Push on", FuelChange: -15})
	assert.Equal(t, 0, injector.Inject(ev, 50, 50, 100, nil))

	abilities.RestoreCharges()
	assert.Equal(t, 1, injector.Inject(ev, 50, 50, 100, nil))
}

func TestInject_CostAgainstOtherResource(t *testing.T) {
	abilities := newAbilities(t, "power_nap")
	injector := perk.NewInjector(abilities)

	ev := testutils.CreateTestEvent("long_drive", event.Choice{Text: "Keep going", EnergyChange: -20})

	// power_nap costs 5 money
	assert.Equal(t, 0, injector.Inject(ev, 50, 50, 4, nil))

	require.Equal(t, 1, injector.Inject(ev, 50, 50, 5, nil))
	injected := ev.Choices[1]
	assert.Equal(t, 15, injected.EnergyChange)
	assert.Equal(t, -5, injected.MoneyChange)
	assert.Equal(t, "Use Power Nap (3/3)", injected.Text)
}

func TestInject_CostOnProtectedResource(t *testing.T) {
	nap := testutils.CreateTestActive("second_wind", domain.PreserveEnergy, 1, 20)
	nap.Active.EnergyCost = 4
	patch := testutils.CreateTestActive("roadside_patch", domain.PreserveVehicle, 1, 20)
	patch.Active.EnergyCost = 5
	patch.Active.RequiredItems = []string{"toolkit"}

	abilities := ability.NewService(&ability.ServiceConfig{
		Catalog:            testutils.CreateTestCatalog(t, nap, patch),
		InitialSkillPoints: 5,
	})
	require.True(t, abilities.Unlock("second_wind", 1).Success)
	require.True(t, abilities.Unlock("roadside_patch", 1).Success)

	injector := perk.NewInjector(abilities)
	ev := testutils.CreateTestEvent("pothole", event.Choice{Text: "Hit it", VehicleChange: -10, EnergyChange: -5})

	inv := player.NewInventory()
	require.Equal(t, 1, injector.Inject(ev, 50, 50, 100, inv), "roadside_patch needs a toolkit")
	assert.Equal(t, "second_wind", ev.Choices[1].PerkID)
	assert.Equal(t, 16, ev.Choices[1].EnergyChange)

	inv.Add("toolkit", 1)
	require.Equal(t, 1, injector.Inject(ev, 50, 50, 100, inv))
	patched := ev.Choices[2]
	assert.Equal(t, "roadside_patch", patched.PerkID)
	assert.Equal(t, 20, patched.VehicleChange)
	assert.Equal(t, -5, patched.EnergyChange)
	assert.Equal(t, []string{"toolkit"}, patched.RequiredItems)
}

func TestInject_IsIdempotent(t *testing.T) {
	injector := perk.NewInjector(newAbilities(t, "emergency_fuel", "power_nap"))

	ev := testutils.CreateTestEvent("storm",
		event.Choice{Text: "Wait it out", EnergyChange: -10},
		event.Choice{Text: "Drive through", FuelChange: -20, EnergyChange: -5},
	)
	condition := ev.Condition

	require.Equal(t, 2, injector.Inject(ev, 50, 50, 100, nil))
	assert.Equal(t, "emergency_fuel", ev.Choices[2].PerkID, "fuel perks come first")
	assert.Equal(t, "power_nap", ev.Choices[3].PerkID)

	assert.Equal(t, 0, injector.Inject(ev, 50, 50, 100, nil))
	assert.Len(t, ev.Choices, 4)
	assert.Equal(t, "storm", ev.ID)
	assert.Equal(t, condition, ev.Condition)
}

func TestInject_LeavesRegisteredEventUntouchedWhenCloned(t *testing.T) {
	injector := perk.NewInjector(newAbilities(t, "emergency_fuel"))

	registered := testutils.CreateTestEvent("empty", event.Choice{Text: "Push on", FuelChange: -15})
	presented := registered.Clone()

	require.Equal(t, 1, injector.Inject(presented, 50, 50, 100, nil))
	assert.Len(t, registered.Choices, 1)
	assert.Len(t, presented.Choices, 2)
}

func TestRelevantTags(t *testing.T) {
	ev := testutils.CreateTestEvent("mixed",
		event.Choice{MoneyChange: -10, VehicleChange: -1},
		event.Choice{FuelChange: -5, MoneyChange: -3},
		event.Choice{EnergyChange: 10},
		event.Choice{IsPerkChoice: true, PerkID: "x", EnergyChange: -5},
	)

	assert.Equal(t, []domain.PreservationType{
		domain.PreserveFuel,
		domain.PreserveMoney,
		domain.PreserveVehicle,
	}, perk.RelevantTags(ev))
}
