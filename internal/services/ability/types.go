package ability

import (
	domain "github.com/KirkDiggler/roadtrip-engine/internal/domain/ability"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/player"
)

// Service defines the ability runtime state: unlocks, skill points and charges
type Service interface {
	// Unlock spends skill points to unlock an ability
	Unlock(abilityID string, level int) *UnlockResult

	// CanUseActivePerk reports whether an unlocked active ability has a charge left
	CanUseActivePerk(abilityID string) bool

	// UseActivePerk consumes one charge
	UseActivePerk(abilityID string) *UseResult

	// RestoreCharges refills every charge counter (rest action)
	RestoreCharges()

	// PassiveBonus folds the multipliers of unlocked passives, starting at 1.0
	PassiveBonus(effect domain.EffectType) float64

	// PassiveBonusFlat folds the flat bonuses of unlocked passives, starting at 0
	PassiveBonusFlat(effect domain.EffectType) int

	// Reset returns to the initial skill points with nothing unlocked
	Reset()

	SkillPoints() int
	AddSkillPoints(n int)
	IsUnlocked(abilityID string) bool
	Charges(abilityID string) (domain.ChargeCounter, bool)

	// EligiblePerks lists unlocked active abilities protecting the given
	// resource that have a charge and are affordable right now
	EligiblePerks(tag domain.PreservationType, energy, money int, items player.Items) []*EligiblePerk

	// Available lists the skill tree with per-ability unlock status
	Available(level int) []*AvailableAbility

	Catalog() *domain.Catalog
	Snapshot() *Snapshot
	Restore(snap *Snapshot)
}

// UnlockResult contains the result of an unlock attempt
type UnlockResult struct {
	Success              bool
	Reason               string
	SkillPointsRemaining int
}

// UseResult contains the result of consuming a charge
type UseResult struct {
	Success          bool
	Reason           string
	ChargesRemaining int
}

// EligiblePerk pairs a definition with its live charge counter
type EligiblePerk struct {
	Definition *domain.Definition
	Charges    domain.ChargeCounter
}

// AvailableAbility represents a skill-tree entry and whether it can be unlocked
type AvailableAbility struct {
	Definition *domain.Definition
	Unlocked   bool
	Unlockable bool
	Reason     string // Why it can't be unlocked (e.g., "Requires level 3")
}

// Snapshot is the persisted shape of the runtime state
type Snapshot struct {
	Unlocked    []string       `json:"unlocked"`
	SkillPoints int            `json:"skill_points"`
	Charges     map[string]int `json:"charges"`
}

const (
	ReasonUnknownAbility   = "Unknown ability"
	ReasonAlreadyUnlocked  = "Already unlocked"
	ReasonNotEnoughPoints  = "Not enough skill points"
	ReasonNotUnlocked      = "Ability not unlocked"
	ReasonNotActive        = "Ability is passive"
	ReasonNoCharges        = "No charges remaining"
	ReasonMissingPrereqFmt = "Requires %s"
	ReasonLevelTooLowFmt   = "Requires level %d"
)
