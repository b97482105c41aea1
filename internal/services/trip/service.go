package trip

import (
	"context"
	"log"
	"sync"

	"github.com/KirkDiggler/roadtrip-engine/internal/domain/event"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/player"
	apperr "github.com/KirkDiggler/roadtrip-engine/internal/errors"
	"github.com/KirkDiggler/roadtrip-engine/internal/events"
	"github.com/KirkDiggler/roadtrip-engine/internal/repositories/saves"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/ability"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/choice"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/eventpool"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/perk"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/threshold"
	"github.com/KirkDiggler/roadtrip-engine/internal/uuid"
)

// service serializes every mutation of the trip through one mutex so the
// tick, injection and choice steps never interleave
type service struct {
	mu sync.Mutex

	player    *player.State
	abilities ability.Service
	pool      *eventpool.Pool
	injector  *perk.Injector
	applier   *choice.Applier
	monitor   *threshold.Monitor
	publisher events.Publisher
	saves     saves.Repository
	ids       uuid.Generator

	current *Presentation
	saveID  string
}

// ServiceConfig holds configuration for the trip service
type ServiceConfig struct {
	Player    *player.State
	Abilities ability.Service
	Pool      *eventpool.Pool
	Injector  *perk.Injector
	Applier   *choice.Applier
	Monitor   *threshold.Monitor
	Publisher events.Publisher
	Saves     saves.Repository
	IDs       uuid.Generator
}

// NewService creates a new trip service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("trip service config is required")
	}
	if cfg.Player == nil {
		panic("player is required")
	}
	if cfg.Abilities == nil {
		panic("ability service is required")
	}
	if cfg.Pool == nil {
		panic("event pool is required")
	}
	if cfg.Monitor == nil {
		panic("threshold monitor is required")
	}

	injector := cfg.Injector
	if injector == nil {
		injector = perk.NewInjector(cfg.Abilities)
	}
	applier := cfg.Applier
	if applier == nil {
		applier = choice.NewApplier(&choice.Config{
			Events:    cfg.Pool,
			Abilities: cfg.Abilities,
			Publisher: cfg.Publisher,
		})
	}
	repo := cfg.Saves
	if repo == nil {
		repo = saves.NewInMemoryRepository()
	}
	ids := cfg.IDs
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}

	return &service{
		player:    cfg.Player,
		abilities: cfg.Abilities,
		pool:      cfg.Pool,
		injector:  injector,
		applier:   applier,
		monitor:   cfg.Monitor,
		publisher: cfg.Publisher,
		saves:     repo,
		ids:       ids,
	}
}

func (s *service) Tick(ctx context.Context) (*Presentation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		return s.current, nil
	}

	if warningID, fired := s.monitor.Check(s.player.Resources); fired {
		if ev, ok := s.pool.Get(warningID); ok {
			return s.presentLocked(ev, true)
		}
		log.Printf("TripService: No event registered for warning %s", warningID)
	}

	ev := s.pool.RandomEvent(eventpool.Query{
		Fuel:     s.player.Resources.Fuel,
		Energy:   s.player.Resources.Energy,
		Money:    s.player.Resources.Money,
		Location: s.player.Location,
		RoadType: s.player.RoadType,
		Party:    s.player.Party,
		Items:    s.player.Inventory,
	})
	if ev == nil {
		return nil, nil
	}
	return s.presentLocked(ev, false)
}

// presentLocked triggers the event and injects perk choices into a copy,
// leaving the registered event untouched
func (s *service) presentLocked(ev *event.Event, warning bool) (*Presentation, error) {
	notice, err := s.pool.Trigger(ev.ID)
	if err != nil {
		return nil, err
	}
	s.publish(events.NewEventTriggered(notice.EventID, notice.Title, notice.NPCID))

	presented := ev.Clone()
	if n := s.injector.Inject(presented, s.player.Resources.Fuel, s.player.Resources.Energy, s.player.Resources.Money, s.player.Inventory); n > 0 {
		log.Printf("TripService: Offered %d perk choice(s) on %s", n, ev.ID)
	}

	s.current = &Presentation{
		Event:   presented,
		Choices: s.viewsLocked(presented),
		Warning: warning,
	}
	return s.current, nil
}

func (s *service) viewsLocked(ev *event.Event) []ChoiceView {
	views := make([]ChoiceView, len(ev.Choices))
	for i := range ev.Choices {
		c := &ev.Choices[i]
		reason := s.applier.Precheck(c, s.player)
		views[i] = ChoiceView{
			Index:    i,
			Text:     c.Text,
			IsPerk:   c.IsPerkChoice,
			Disabled: reason != "",
			Reason:   reason,
		}
	}
	return views
}

func (s *service) Current() *Presentation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *service) Choose(ctx context.Context, index int) (*Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, apperr.InvalidArgument("no event is being presented")
	}
	ev := s.current.Event
	if index < 0 || index >= len(ev.Choices) {
		return nil, apperr.InvalidArgumentf("choice %d out of range for %s", index, ev.ID)
	}

	result, err := s.applier.Apply(ctx, &choice.Input{
		Event:  ev,
		Choice: &ev.Choices[index],
		Player: s.player,
	})
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to apply choice %d of %s", index, ev.ID)
	}

	outcome := &Outcome{Result: result}
	if !result.Applied {
		// keep the event up so the player can pick again
		s.current.Choices = s.viewsLocked(ev)
		return outcome, nil
	}

	s.current = nil
	if result.Chained != nil {
		next, err := s.presentLocked(result.Chained, false)
		if err != nil {
			return nil, err
		}
		outcome.Next = next
	}
	return outcome, nil
}

func (s *service) Rest(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.abilities.RestoreCharges()
	s.player.Resources.Energy = player.MaxGauge
	log.Printf("TripService: %s rested", s.player.Name)
	return nil
}

func (s *service) Arrive(ctx context.Context, nodeID, location, roadType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.player.NodeID = nodeID
	s.player.Location = location
	s.player.RoadType = roadType
	if location != "" {
		s.publish(events.NewLocationVisited(location))
	}
	return nil
}

func (s *service) LevelUp() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.player.Level++
	s.abilities.AddSkillPoints(1)
	log.Printf("TripService: %s reached level %d", s.player.Name, s.player.Level)
	return s.player.Level
}

func (s *service) Unlock(abilityID string) *ability.UnlockResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.abilities.Unlock(abilityID, s.player.Level)
}

func (s *service) SkillTree() []*ability.AvailableAbility {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.abilities.Available(s.player.Level)
}

func (s *service) Player() *player.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player.Clone()
}

func (s *service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	capacity := 0
	if s.player.Party != nil {
		capacity = s.player.Party.Capacity
	}
	s.player = player.New(s.player.ID, s.player.Name, capacity)
	s.abilities.Reset()
	s.pool.Reset()
	s.monitor.Reset()
	s.current = nil
	s.saveID = ""
}

func (s *service) publish(e events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Emit(e); err != nil {
		log.Printf("TripService: Failed to publish %s: %v", e.GetType(), err)
	}
}
