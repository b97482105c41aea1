package choice_test

import (
	"context"
	"testing"

	mockchance "github.com/KirkDiggler/roadtrip-engine/internal/chance/mock"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/event"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/player"
	apperr "github.com/KirkDiggler/roadtrip-engine/internal/errors"
	"github.com/KirkDiggler/roadtrip-engine/internal/events"
	"github.com/KirkDiggler/roadtrip-engine/internal/quest"
	mockquest "github.com/KirkDiggler/roadtrip-engine/internal/quest/mock"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/ability"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/choice"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/eventpool"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/perk"
	"github.com/KirkDiggler/roadtrip-engine/internal/testutils"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ApplierTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	tracker   *mockquest.MockTracker
	pool      *eventpool.Pool
	abilities ability.Service
	applier   *choice.Applier
	player    *player.State
	ctx       context.Context
}

func (s *ApplierTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tracker = mockquest.NewMockTracker(s.ctrl)
	s.ctx = context.Background()

	bus := events.NewBus()
	quest.NewListener(s.tracker).Attach(bus)

	mechanic := testutils.CreateTestEvent("mechanic_offer", event.Choice{Text: "Pay", MoneyChange: -45, VehicleChange: 30})
	pool, err := eventpool.New(&eventpool.Config{
		Source: mockchance.NewManualSource(),
		Events: []*event.Event{mechanic},
	})
	s.Require().NoError(err)
	s.pool = pool

	s.abilities = ability.NewService(&ability.ServiceConfig{
		Catalog:            testutils.CreateStandardCatalog(s.T()),
		InitialSkillPoints: 10,
	})

	s.applier = choice.NewApplier(&choice.Config{
		Events:    s.pool,
		Abilities: s.abilities,
		Publisher: bus,
	})
	s.player = testutils.CreateTestPlayer(2)
}

func TestApplierTestSuite(t *testing.T) {
	suite.Run(t, new(ApplierTestSuite))
}

func (s *ApplierTestSuite) apply(ev *event.Event, idx int) *choice.Result {
	result, err := s.applier.Apply(s.ctx, &choice.Input{Event: ev, Choice: &ev.Choices[idx], Player: s.player})
	s.Require().NoError(err)
	return result
}

func (s *ApplierTestSuite) TestEmergencyFuelScenario() {
	s.Require().True(s.abilities.Unlock("emergency_fuel", 1).Success)
	s.player.Resources.Fuel = 20

	presented := testutils.CreateTestEvent("empty_stretch", event.Choice{Text: "Push on", FuelChange: -15}).Clone()
	s.Require().Equal(1, perk.NewInjector(s.abilities).Inject(presented, 20, 100, 200, s.player.Inventory))
	s.tracker.EXPECT().EventCompleted("empty_stretch")

	result := s.apply(presented, 1)

	s.True(result.Applied)
	s.Equal(30, s.player.Resources.Fuel)
	s.Require().NotNil(result.PerkUse)
	s.True(result.PerkUse.Success)

	charges, ok := s.abilities.Charges("emergency_fuel")
	s.Require().True(ok)
	s.Equal(1, charges.Current)
}

func (s *ApplierTestSuite) TestExhaustedPerkIsRejectedWithoutMutation() {
	s.Require().True(s.abilities.Unlock("emergency_fuel", 1).Success)
	presented := testutils.CreateTestEvent("empty_stretch", event.Choice{Text: "Push on", FuelChange: -15})
	s.Require().Equal(1, perk.NewInjector(s.abilities).Inject(presented, 100, 100, 200, nil))

	// drain the charges after the choice was offered
	s.Require().True(s.abilities.UseActivePerk("emergency_fuel").Success)
	s.Require().True(s.abilities.UseActivePerk("emergency_fuel").Success)

	s.player.Resources.Fuel = 20
	before := s.player.Resources

	result := s.apply(presented, 1)

	s.False(result.Applied)
	s.Equal(ability.ReasonNoCharges, result.Reason)
	s.Equal(before, s.player.Resources)
	s.Nil(result.PerkUse)
}

func (s *ApplierTestSuite) TestRecruitAtCapacityIsSkipped() {
	s.Require().True(s.player.Party.Recruit("ray"))
	s.Require().True(s.player.Party.Recruit("lou"))

	ev := testutils.CreateTestEvent("hitchhiker", event.Choice{Text: "Offer a ride", RecruitNPC: "maya", EndsEvent: true})
	s.tracker.EXPECT().EventCompleted("hitchhiker")

	result := s.apply(ev, 0)

	s.True(result.Applied)
	s.True(result.RecruitSkipped)
	s.Empty(result.Recruited)
	s.Equal(2, s.player.Party.Size())
	s.False(s.player.Party.Has("maya"))
}

func (s *ApplierTestSuite) TestRecruitAndRemove() {
	ev := testutils.CreateTestEvent("hitchhiker",
		event.Choice{Text: "Offer a ride", RecruitNPC: "maya", RelationshipChanges: map[string]int{"maya": 10}},
		event.Choice{Text: "Drop her off", RemoveNPC: "maya"},
	)
	ev.NPCID = "maya"
	s.tracker.EXPECT().NPCTalkedTo("maya").Times(2)

	result := s.apply(ev, 0)
	s.Equal("maya", result.Recruited)
	s.True(s.player.Party.Has("maya"))
	s.Equal(10, s.player.Party.Relationship("maya"))

	result = s.apply(ev, 1)
	s.Equal("maya", result.Removed)
	s.False(s.player.Party.Has("maya"))
}

func (s *ApplierTestSuite) TestNotEnoughMoney() {
	s.player.Resources.Money = 50
	ev := testutils.CreateTestEvent("tow", event.Choice{Text: "Call a tow", MoneyChange: -60, AddItems: []string{"receipt"}})

	result := s.apply(ev, 0)

	s.False(result.Applied)
	s.Equal("Requires $60", result.Reason)
	s.Equal(50, s.player.Resources.Money)
	s.False(s.player.Inventory.Has("receipt"))
}

func (s *ApplierTestSuite) TestMissingRequiredItem() {
	ev := testutils.CreateTestEvent("repair", event.Choice{Text: "Fix it", RequiredItems: []string{"toolkit"}, VehicleChange: 20})
	s.player.Resources.Vehicle = 50

	result := s.apply(ev, 0)
	s.False(result.Applied)
	s.Equal("Requires toolkit", result.Reason)
	s.Equal(50, s.player.Resources.Vehicle)

	s.player.Inventory.Add("toolkit", 1)
	result = s.apply(ev, 0)
	s.True(result.Applied)
	s.Equal(70, s.player.Resources.Vehicle)
	s.True(s.player.Inventory.Has("toolkit"), "required items are not consumed")
}

func (s *ApplierTestSuite) TestClamping() {
	s.Require().True(s.player.Party.Recruit("maya"))
	ev := testutils.CreateTestEvent("crash", event.Choice{
		Text:                "Swerve",
		FuelChange:          -500,
		EnergyChange:        50,
		VehicleChange:       -200,
		MoodChange:          60,
		RelationshipChanges: map[string]int{"maya": -300},
	})

	result := s.apply(ev, 0)

	s.True(result.Applied)
	s.Equal(0, s.player.Resources.Fuel)
	s.Equal(100, s.player.Resources.Energy)
	s.Equal(0, s.player.Resources.Vehicle)
	s.Equal(100, s.player.Resources.Mood)
	s.Equal(player.MinRelationship, s.player.Party.Relationship("maya"))
}

func (s *ApplierTestSuite) TestInventoryChanges() {
	s.player.Inventory.Add("map", 1)
	ev := testutils.CreateTestEvent("swap", event.Choice{
		Text:        "Trade",
		AddItems:    []string{"compass"},
		RemoveItems: []string{"map", "ghost_item"},
	})
	s.tracker.EXPECT().ItemCollected("compass", 1)

	result := s.apply(ev, 0)

	s.True(result.Applied)
	s.Equal([]string{"compass"}, result.ItemsAdded)
	s.Equal([]string{"map"}, result.ItemsRemoved)
	s.True(s.player.Inventory.Has("compass"))
	s.False(s.player.Inventory.Has("map"))
}

func (s *ApplierTestSuite) TestDeliveryNotifications() {
	s.player.Location = "coastal_city"
	s.player.Inventory.Add("parcel", 1)
	ev := testutils.CreateTestEvent("parcel_dropoff", event.Choice{
		Text:         "Deliver it",
		DeliverItems: []string{"parcel"},
		MoneyChange:  40,
		EndsEvent:    true,
	})

	gomock.InOrder(
		s.tracker.EXPECT().ItemDelivered("parcel", "coastal_city", 1),
		s.tracker.EXPECT().MoneyEarned(40),
		s.tracker.EXPECT().EventCompleted("parcel_dropoff"),
	)

	result := s.apply(ev, 0)

	s.True(result.Applied)
	s.Equal([]string{"parcel"}, result.ItemsDelivered)
	s.Equal(240, s.player.Resources.Money)
	s.False(s.player.Inventory.Has("parcel"))
}

func (s *ApplierTestSuite) TestChainedEvent() {
	ev := testutils.CreateTestEvent("engine_smoke", event.Choice{Text: "Inspect", TriggerEvent: "mechanic_offer"})

	result := s.apply(ev, 0)

	s.Require().NotNil(result.Chained)
	s.Equal("mechanic_offer", result.Chained.ID)
}

func (s *ApplierTestSuite) TestChainedEventMissing() {
	ev := testutils.CreateTestEvent("engine_smoke", event.Choice{Text: "Inspect", TriggerEvent: "nowhere"})

	result := s.apply(ev, 0)

	s.True(result.Applied)
	s.Nil(result.Chained)
}

func (s *ApplierTestSuite) TestPassiveBonuses() {
	s.Require().True(s.abilities.Unlock("fuel_saver_1", 1).Success)
	s.Require().True(s.abilities.Unlock("haggler", 1).Success)

	ev := testutils.CreateTestEvent("gig", event.Choice{Text: "Busk", FuelChange: -15, MoneyChange: 20})
	s.tracker.EXPECT().MoneyEarned(32)

	s.apply(ev, 0)

	// 15 / 1.1 rounds to 14; 20 * 1.5 + 2
	s.Equal(86, s.player.Resources.Fuel)
	s.Equal(232, s.player.Resources.Money)
}

func (s *ApplierTestSuite) TestPassivesDoNotTouchCosts() {
	s.Require().True(s.abilities.Unlock("haggler", 1).Success)

	ev := testutils.CreateTestEvent("diner", event.Choice{Text: "Eat", MoneyChange: -12})
	s.apply(ev, 0)

	s.Equal(188, s.player.Resources.Money)
}

func (s *ApplierTestSuite) TestInvalidInput() {
	_, err := s.applier.Apply(s.ctx, &choice.Input{})
	s.True(apperr.IsInvalidArgument(err))

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	ev := testutils.CreateTestEvent("any", event.Choice{Text: "ok"})
	_, err = s.applier.Apply(ctx, &choice.Input{Event: ev, Choice: &ev.Choices[0], Player: s.player})
	s.ErrorIs(err, context.Canceled)
}

func TestApplier_WithoutPublisher(t *testing.T) {
	pool, err := eventpool.New(&eventpool.Config{Source: mockchance.NewManualSource()})
	if err != nil {
		t.Fatal(err)
	}
	applier := choice.NewApplier(&choice.Config{
		Events: pool,
		Abilities: ability.NewService(&ability.ServiceConfig{
			Catalog: testutils.CreateStandardCatalog(t),
		}),
	})

	p := testutils.CreateTestPlayer(1)
	ev := testutils.CreateTestEvent("gift", event.Choice{Text: "Thanks", MoneyChange: 5, EndsEvent: true})
	result, err := applier.Apply(context.Background(), &choice.Input{Event: ev, Choice: &ev.Choices[0], Player: p})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Applied || p.Resources.Money != 205 {
		t.Fatalf("unexpected result %+v money=%d", result, p.Resources.Money)
	}
}
