package services

import (
	"github.com/KirkDiggler/roadtrip-engine/internal/chance"
	domainability "github.com/KirkDiggler/roadtrip-engine/internal/domain/ability"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/event"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/player"
	apperr "github.com/KirkDiggler/roadtrip-engine/internal/errors"
	"github.com/KirkDiggler/roadtrip-engine/internal/events"
	"github.com/KirkDiggler/roadtrip-engine/internal/quest"
	"github.com/KirkDiggler/roadtrip-engine/internal/repositories/saves"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/ability"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/choice"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/eventpool"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/perk"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/threshold"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/trip"
	"github.com/KirkDiggler/roadtrip-engine/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	AbilityService ability.Service
	EventPool      *eventpool.Pool
	TripService    trip.Service
	EventBus       *events.Bus
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Catalog *domainability.Catalog
	Events  []*event.Event
	Source  chance.Source

	Player           *player.State
	StartSkillPoints int
	Thresholds       map[threshold.Resource]threshold.Thresholds

	// Tracker receives quest notifications. Optional.
	Tracker        quest.Tracker
	SaveRepository saves.Repository
	IDs            uuid.Generator
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil || cfg.Catalog == nil {
		return nil, apperr.InvalidArgument("ability catalog is required")
	}
	if cfg.Player == nil {
		return nil, apperr.InvalidArgument("player is required")
	}

	source := cfg.Source
	if source == nil {
		source = chance.NewRandomSource(0)
	}

	// Use in-memory repository if none provided
	saveRepo := cfg.SaveRepository
	if saveRepo == nil {
		saveRepo = saves.NewInMemoryRepository()
	}

	pool, err := eventpool.New(&eventpool.Config{
		Source: source,
		Events: cfg.Events,
	})
	if err != nil {
		return nil, apperr.Wrap(err, "failed to build event pool")
	}

	monitor, err := threshold.NewMonitor(&threshold.Config{Thresholds: cfg.Thresholds})
	if err != nil {
		return nil, apperr.Wrap(err, "failed to build threshold monitor")
	}

	abilityService := ability.NewService(&ability.ServiceConfig{
		Catalog:            cfg.Catalog,
		InitialSkillPoints: cfg.StartSkillPoints,
	})

	bus := events.NewBus()
	if cfg.Tracker != nil {
		quest.NewListener(cfg.Tracker).Attach(bus)
	}

	tripService := trip.NewService(&trip.ServiceConfig{
		Player:    cfg.Player,
		Abilities: abilityService,
		Pool:      pool,
		Injector:  perk.NewInjector(abilityService),
		Applier: choice.NewApplier(&choice.Config{
			Events:    pool,
			Abilities: abilityService,
			Publisher: bus,
		}),
		Monitor:   monitor,
		Publisher: bus,
		Saves:     saveRepo,
		IDs:       cfg.IDs,
	})

	return &Provider{
		AbilityService: abilityService,
		EventPool:      pool,
		TripService:    tripService,
		EventBus:       bus,
	}, nil
}
