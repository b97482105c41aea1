package ability

import (
	"fmt"
	"log"
	"sort"
	"sync"

	domain "github.com/KirkDiggler/roadtrip-engine/internal/domain/ability"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/player"
)

// service owns which abilities are unlocked, the skill point balance and
// the charge counters. The catalog itself is never mutated.
type service struct {
	mu                 sync.Mutex
	catalog            *domain.Catalog
	initialSkillPoints int

	unlocked    map[string]bool
	skillPoints int
	charges     map[string]*domain.ChargeCounter
}

// ServiceConfig holds configuration for the ability service
type ServiceConfig struct {
	Catalog            *domain.Catalog
	InitialSkillPoints int
}

// NewService creates a new ability service with nothing unlocked
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Catalog == nil {
		panic("ability catalog is required")
	}

	svc := &service{
		catalog:            cfg.Catalog,
		initialSkillPoints: cfg.InitialSkillPoints,
	}
	svc.resetLocked()
	return svc
}

func (s *service) resetLocked() {
	s.unlocked = make(map[string]bool, s.catalog.Len())
	s.charges = make(map[string]*domain.ChargeCounter)
	s.skillPoints = s.initialSkillPoints
}

func (s *service) Catalog() *domain.Catalog {
	return s.catalog
}

// Unlock validates every requirement before touching any state
func (s *service) Unlock(abilityID string, level int) *UnlockResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	def, ok := s.catalog.Get(abilityID)
	if !ok {
		return s.unlockFailure(ReasonUnknownAbility)
	}
	if reason := s.unlockBlockerLocked(def, level); reason != "" {
		return s.unlockFailure(reason)
	}

	s.unlocked[def.ID] = true
	s.skillPoints -= def.Requirement.SkillPointCost
	if def.IsActive() {
		s.charges[def.ID] = domain.NewChargeCounter(def.Active.MaxCharges)
	}

	log.Printf("AbilityService: Unlocked %s (%d skill points left)", def.ID, s.skillPoints)
	return &UnlockResult{
		Success:              true,
		SkillPointsRemaining: s.skillPoints,
	}
}

func (s *service) unlockFailure(reason string) *UnlockResult {
	return &UnlockResult{
		Success:              false,
		Reason:               reason,
		SkillPointsRemaining: s.skillPoints,
	}
}

// unlockBlockerLocked returns why def can't be unlocked, or "" (caller must hold lock)
func (s *service) unlockBlockerLocked(def *domain.Definition, level int) string {
	if s.unlocked[def.ID] {
		return ReasonAlreadyUnlocked
	}
	if level < def.Requirement.MinLevel {
		return fmt.Sprintf(ReasonLevelTooLowFmt, def.Requirement.MinLevel)
	}
	if s.skillPoints < def.Requirement.SkillPointCost {
		return ReasonNotEnoughPoints
	}
	for _, pre := range def.Requirement.Prerequisites {
		if !s.unlocked[pre] {
			name := pre
			if preDef, ok := s.catalog.Get(pre); ok {
				name = preDef.Name
			}
			return fmt.Sprintf(ReasonMissingPrereqFmt, name)
		}
	}
	return ""
}

func (s *service) CanUseActivePerk(abilityID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.useBlockerLocked(abilityID) == ""
}

func (s *service) useBlockerLocked(abilityID string) string {
	def, ok := s.catalog.Get(abilityID)
	if !ok {
		return ReasonUnknownAbility
	}
	if !s.unlocked[abilityID] {
		return ReasonNotUnlocked
	}
	if !def.IsActive() {
		return ReasonNotActive
	}
	counter, ok := s.charges[abilityID]
	if !ok || !counter.CanUse() {
		return ReasonNoCharges
	}
	return ""
}

// UseActivePerk only gates and consumes the charge; effects are applied by the caller
func (s *service) UseActivePerk(abilityID string) *UseResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if reason := s.useBlockerLocked(abilityID); reason != "" {
		remaining := 0
		if counter, ok := s.charges[abilityID]; ok {
			remaining = counter.Current
		}
		return &UseResult{Success: false, Reason: reason, ChargesRemaining: remaining}
	}

	counter := s.charges[abilityID]
	counter.Use()
	log.Printf("AbilityService: Used %s (%d/%d charges left)", abilityID, counter.Current, counter.Max)

	return &UseResult{Success: true, ChargesRemaining: counter.Current}
}

func (s *service) RestoreCharges() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, counter := range s.charges {
		counter.Restore()
	}
}

func (s *service) PassiveBonus(effect domain.EffectType) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	bonus := 1.0
	for _, def := range s.unlockedPassivesLocked(effect) {
		bonus *= def.Passive.Multiplier
	}
	return bonus
}

func (s *service) PassiveBonusFlat(effect domain.EffectType) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	bonus := 0
	for _, def := range s.unlockedPassivesLocked(effect) {
		bonus += def.Passive.Flat
	}
	return bonus
}

// unlockedPassivesLocked walks the catalog in id order so the fold never
// depends on unlock order or map iteration
func (s *service) unlockedPassivesLocked(effect domain.EffectType) []*domain.Definition {
	var out []*domain.Definition
	for _, def := range s.catalog.All() {
		if !s.unlocked[def.ID] || !def.IsPassive() {
			continue
		}
		if def.Passive.Effect == effect {
			out = append(out, def)
		}
	}
	return out
}

func (s *service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *service) SkillPoints() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skillPoints
}

func (s *service) AddSkillPoints(n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skillPoints += n
}

func (s *service) IsUnlocked(abilityID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unlocked[abilityID]
}

// Charges returns a copy of the counter so callers can't mutate it
func (s *service) Charges(abilityID string) (domain.ChargeCounter, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counter, ok := s.charges[abilityID]
	if !ok {
		return domain.ChargeCounter{}, false
	}
	return *counter, true
}

func (s *service) EligiblePerks(tag domain.PreservationType, energy, money int, items player.Items) []*EligiblePerk {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*EligiblePerk
	for _, def := range s.catalog.All() {
		if !def.IsActive() || def.Active.Preserves != tag {
			continue
		}
		if s.useBlockerLocked(def.ID) != "" {
			continue
		}
		if def.Active.EnergyCost > energy || def.Active.MoneyCost > money {
			continue
		}
		if items != nil && !hasItems(items, def.Active.RequiredItems) {
			continue
		}
		out = append(out, &EligiblePerk{
			Definition: def,
			Charges:    *s.charges[def.ID],
		})
	}
	return out
}

func hasItems(items player.Items, ids []string) bool {
	for _, id := range ids {
		if !items.Has(id) {
			return false
		}
	}
	return true
}

func (s *service) Available(level int) []*AvailableAbility {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*AvailableAbility
	for _, category := range domain.Categories {
		for _, def := range s.catalog.ByCategory(category) {
			entry := &AvailableAbility{
				Definition: def,
				Unlocked:   s.unlocked[def.ID],
			}
			if !entry.Unlocked {
				entry.Reason = s.unlockBlockerLocked(def, level)
				entry.Unlockable = entry.Reason == ""
			}
			out = append(out, entry)
		}
	}
	return out
}

func (s *service) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &Snapshot{
		SkillPoints: s.skillPoints,
		Charges:     make(map[string]int, len(s.charges)),
	}
	for id := range s.unlocked {
		snap.Unlocked = append(snap.Unlocked, id)
	}
	sort.Strings(snap.Unlocked)
	for id, counter := range s.charges {
		snap.Charges[id] = counter.Current
	}
	return snap
}

// Restore rebuilds the runtime state from a snapshot. Unknown ids are
// skipped; every unlocked active ability gets a counter, full if no count
// was stored.
func (s *service) Restore(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
	if snap == nil {
		return
	}

	s.skillPoints = snap.SkillPoints
	if s.skillPoints < 0 {
		s.skillPoints = 0
	}

	for _, id := range snap.Unlocked {
		def, ok := s.catalog.Get(id)
		if !ok {
			log.Printf("AbilityService: Skipping unknown ability %s from save", id)
			continue
		}
		s.unlocked[id] = true
		if !def.IsActive() {
			continue
		}

		counter := domain.NewChargeCounter(def.Active.MaxCharges)
		if current, stored := snap.Charges[id]; stored {
			counter.Set(current)
		}
		s.charges[id] = counter
	}
}
