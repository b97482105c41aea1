package eventpool

import (
	"math"
	"testing"

	"github.com/KirkDiggler/roadtrip-engine/internal/chance"
	mockchance "github.com/KirkDiggler/roadtrip-engine/internal/chance/mock"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/event"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/player"
	apperr "github.com/KirkDiggler/roadtrip-engine/internal/errors"
	"github.com/KirkDiggler/roadtrip-engine/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PoolTestSuite struct {
	suite.Suite
	source *mockchance.ManualSource
	pool   *Pool
}

func (s *PoolTestSuite) SetupTest() {
	s.source = mockchance.NewManualSource()
	pool, err := New(&Config{Source: s.source})
	s.Require().NoError(err)
	s.pool = pool
}

func TestPoolTestSuite(t *testing.T) {
	suite.Run(t, new(PoolTestSuite))
}

func (s *PoolTestSuite) register(ev *event.Event) *event.Event {
	s.Require().NoError(s.pool.Register(ev))
	return ev
}

func (s *PoolTestSuite) TestCheckCondition_FuelRangeScenario() {
	cond := event.DefaultCondition()
	cond.MinFuel = 0
	cond.MaxFuel = 30
	cond.Probability = 1.0

	s.True(s.pool.CheckCondition(cond, 20, 50, 100, "", ""))
	s.False(s.pool.CheckCondition(cond, 40, 50, 100, "", ""))
	s.Equal(0, s.source.FloatsUsed(), "certain events never roll")
}

func (s *PoolTestSuite) TestCheckCondition_ProbabilityExtremes() {
	cond := event.DefaultCondition()

	cond.Probability = 1.0
	for i := 0; i < 100; i++ {
		s.True(s.pool.CheckCondition(cond, 50, 50, 50, "anywhere", "dirt"))
	}

	cond.Probability = 0.0
	for i := 0; i < 100; i++ {
		s.False(s.pool.CheckCondition(cond, 50, 50, 50, "anywhere", "dirt"))
	}
}

func (s *PoolTestSuite) TestCheckCondition_RollsEveryAttempt() {
	cond := event.DefaultCondition()
	cond.Probability = 0.5
	s.source.SetFloats(0.1, 0.9, 0.49)

	s.True(s.pool.CheckCondition(cond, 50, 50, 50, "", ""))
	s.False(s.pool.CheckCondition(cond, 50, 50, 50, "", ""))
	s.True(s.pool.CheckCondition(cond, 50, 50, 50, "", ""))
	s.Equal(3, s.source.FloatsUsed())
}

func (s *PoolTestSuite) TestCheckCondition_LocationAndRoad() {
	cond := event.DefaultCondition()
	cond.Location = "desert_town"
	cond.RoadType = "highway"

	s.True(s.pool.CheckCondition(cond, 50, 50, 50, "desert_town", "highway"))
	s.False(s.pool.CheckCondition(cond, 50, 50, 50, "coastal_city", "highway"))
	s.False(s.pool.CheckCondition(cond, 50, 50, 50, "desert_town", "gravel"))

	wildcard := event.DefaultCondition()
	s.True(s.pool.CheckCondition(wildcard, 50, 50, 50, "anywhere", "gravel"))
}

func (s *PoolTestSuite) TestCheckCondition_ResourceBounds() {
	cond := event.DefaultCondition()
	cond.MinEnergy = 20
	cond.MaxMoney = 100

	s.True(s.pool.CheckCondition(cond, 50, 20, 100, "", ""), "bounds are inclusive")
	s.False(s.pool.CheckCondition(cond, 50, 19, 100, "", ""))
	s.False(s.pool.CheckCondition(cond, 50, 20, 101, "", ""))
}

func (s *PoolTestSuite) TestRandomEvent_NoneEligible() {
	ev := testutils.CreateTestEvent("low_fuel_only", event.Choice{Text: "ok"})
	ev.Condition.MaxFuel = 10
	s.register(ev)

	s.Nil(s.pool.RandomEvent(Query{Fuel: 80, Energy: 50, Money: 50}))
}

func (s *PoolTestSuite) TestRandomEvent_OneTimeOnly() {
	ev := testutils.CreateTestEvent("once", event.Choice{Text: "ok"})
	ev.OneTimeOnly = true
	s.register(ev)
	s.source.SetInts(0, 0)

	got := s.pool.RandomEvent(Query{Fuel: 50, Energy: 50, Money: 50})
	s.Require().NotNil(got)

	notice, err := s.pool.Trigger(got.ID)
	s.Require().NoError(err)
	s.True(notice.OneTimeOnly)
	s.True(got.Triggered)

	s.Nil(s.pool.RandomEvent(Query{Fuel: 50, Energy: 50, Money: 50}))
}

func (s *PoolTestSuite) TestRandomEvent_RepeatableEventStaysEligible() {
	s.register(testutils.CreateTestEvent("repeat", event.Choice{Text: "ok"}))
	s.source.SetInts(0, 0)

	_, err := s.pool.Trigger("repeat")
	s.Require().NoError(err)
	s.NotNil(s.pool.RandomEvent(Query{Fuel: 50, Energy: 50, Money: 50}))
}

func (s *PoolTestSuite) TestRandomEvent_BlocksAndBlockedBy() {
	first := testutils.CreateTestEvent("first", event.Choice{Text: "ok"})
	first.Blocks = []string{"second"}
	second := testutils.CreateTestEvent("second", event.Choice{Text: "ok"})
	third := testutils.CreateTestEvent("third", event.Choice{Text: "ok"})
	third.Condition.BlockedBy = []string{"first"}
	s.register(first)
	s.register(second)
	s.register(third)

	_, err := s.pool.Trigger("first")
	s.Require().NoError(err)

	s.source.SetInts(0)
	got := s.pool.RandomEvent(Query{Fuel: 50, Energy: 50, Money: 50})
	s.Require().NotNil(got)
	s.Equal("first", got.ID, "second is blocked and third is blocked by first")
}

func (s *PoolTestSuite) TestRandomEvent_PartyConstraints() {
	ev := testutils.CreateTestEvent("maya_argument", event.Choice{Text: "ok"})
	ev.Condition.RequiredNPCs = []string{"maya"}
	ev.Condition.MinRelationship = map[string]int{"maya": -50}
	s.register(ev)

	party := player.NewParty(3)
	q := Query{Fuel: 50, Energy: 50, Money: 50, Party: party}
	s.Nil(s.pool.RandomEvent(q), "maya not in party")

	party.Recruit("maya")
	s.source.SetInts(0)
	s.NotNil(s.pool.RandomEvent(q))

	party.AdjustRelationship("maya", -80)
	s.Nil(s.pool.RandomEvent(q), "relationship too low")

	s.Nil(s.pool.RandomEvent(Query{Fuel: 50, Energy: 50, Money: 50}), "no party supplied")
}

func (s *PoolTestSuite) TestRandomEvent_RequiredItems() {
	ev := testutils.CreateTestEvent("parcel_dropoff", event.Choice{Text: "ok"})
	ev.Condition.RequiredItems = []string{"parcel"}
	s.register(ev)

	inv := player.NewInventory()
	q := Query{Fuel: 50, Energy: 50, Money: 50, Party: player.NewParty(2), Items: inv}
	s.Nil(s.pool.RandomEvent(q))

	inv.Add("parcel", 1)
	s.source.SetInts(0)
	s.NotNil(s.pool.RandomEvent(q))
}

func (s *PoolTestSuite) TestRandomEvent_SkipsProbabilityRollForIneligible() {
	ev := testutils.CreateTestEvent("coastal", event.Choice{Text: "ok"})
	ev.Condition.Location = "coastal_city"
	ev.Condition.Probability = 0.5
	s.register(ev)

	s.Nil(s.pool.RandomEvent(Query{Fuel: 50, Energy: 50, Money: 50, Location: "desert_town"}))
	s.Equal(0, s.source.FloatsUsed())
}

func (s *PoolTestSuite) TestTrigger_Unknown() {
	_, err := s.pool.Trigger("ghost")
	s.True(apperr.IsNotFound(err))
}

func (s *PoolTestSuite) TestRegister_Duplicate() {
	s.register(testutils.CreateTestEvent("a", event.Choice{Text: "ok"}))
	err := s.pool.Register(testutils.CreateTestEvent("a", event.Choice{Text: "ok"}))
	s.True(apperr.IsAlreadyExists(err))
}

func (s *PoolTestSuite) TestRegister_RejectsHugeWeights() {
	a := testutils.CreateTestEvent("a", event.Choice{Text: "ok"})
	a.Weight = math.MaxInt
	err := s.pool.Register(a)
	s.True(apperr.IsValidation(err))

	b := testutils.CreateTestEvent("b", event.Choice{Text: "ok"})
	b.Weight = event.MaxWeight
	c := testutils.CreateTestEvent("c", event.Choice{Text: "ok"})
	c.Weight = event.MaxWeight
	s.register(b)
	s.register(c)

	s.source.SetInts(event.MaxWeight)
	got := s.pool.RandomEvent(Query{Fuel: 50, Energy: 50, Money: 50})
	s.Require().NotNil(got)
	s.Equal("c", got.ID)
}

func (s *PoolTestSuite) TestApplyChoice_Clamps() {
	fuel, energy, money := s.pool.ApplyChoice(&event.Choice{FuelChange: -30, EnergyChange: 50, MoneyChange: -500}, 20, 80, 100)
	s.Equal(0, fuel)
	s.Equal(100, energy)
	s.Equal(0, money)

	fuel, energy, money = s.pool.ApplyChoice(&event.Choice{FuelChange: 5, EnergyChange: -5, MoneyChange: 25}, 20, 80, 100)
	s.Equal(25, fuel)
	s.Equal(75, energy)
	s.Equal(125, money)
}

func (s *PoolTestSuite) TestHistory_MarkTriggeredAndReset() {
	once := testutils.CreateTestEvent("once", event.Choice{Text: "ok"})
	once.OneTimeOnly = true
	once.Blocks = []string{"other"}
	s.register(once)
	s.register(testutils.CreateTestEvent("other", event.Choice{Text: "ok"}))

	s.pool.MarkTriggered([]string{"once", "ghost"})
	s.Equal([]string{"once"}, s.pool.TriggeredIDs())
	s.Nil(s.pool.RandomEvent(Query{Fuel: 50, Energy: 50, Money: 50}))

	s.pool.Reset()
	s.Empty(s.pool.TriggeredIDs())
	s.False(once.Triggered)
	s.source.SetInts(1)
	got := s.pool.RandomEvent(Query{Fuel: 50, Energy: 50, Money: 50})
	s.Require().NotNil(got)
	s.Equal("other", got.ID)
}

// The draw is weighted by Event.Weight. Over many seeded draws the observed
// share of each event must track its share of the total weight.
func TestRandomEvent_WeightedDistribution(t *testing.T) {
	common := testutils.CreateTestEvent("common", event.Choice{Text: "ok"})
	common.Weight = 3
	rare := testutils.CreateTestEvent("rare", event.Choice{Text: "ok"})
	rare.Weight = 1
	unweighted := testutils.CreateTestEvent("unweighted", event.Choice{Text: "ok"})
	unweighted.Weight = 0

	pool, err := New(&Config{
		Source: chance.NewRandomSource(7),
		Events: []*event.Event{common, rare, unweighted},
	})
	require.NoError(t, err)

	const draws = 20000
	counts := make(map[string]int)
	for i := 0; i < draws; i++ {
		ev := pool.RandomEvent(Query{Fuel: 50, Energy: 50, Money: 50})
		require.NotNil(t, ev)
		counts[ev.ID]++
	}

	// total weight 5: common 3/5, rare 1/5, unweighted counts as 1/5
	assert.InDelta(t, 0.6, float64(counts["common"])/draws, 0.02)
	assert.InDelta(t, 0.2, float64(counts["rare"])/draws, 0.02)
	assert.InDelta(t, 0.2, float64(counts["unweighted"])/draws, 0.02)
}

func TestRandomEvent_ProbabilityRate(t *testing.T) {
	ev := testutils.CreateTestEvent("sometimes", event.Choice{Text: "ok"})
	ev.Condition.Probability = 0.25

	pool, err := New(&Config{Source: chance.NewRandomSource(11), Events: []*event.Event{ev}})
	require.NoError(t, err)

	const draws = 20000
	hits := 0
	for i := 0; i < draws; i++ {
		if pool.RandomEvent(Query{Fuel: 50, Energy: 50, Money: 50}) != nil {
			hits++
		}
	}
	assert.InDelta(t, 0.25, float64(hits)/draws, 0.02)
}
