// Package ability holds the static skill-tree catalog: what every ability
// is, what it costs to unlock and what it does once unlocked.
package ability

import (
	"sort"

	apperr "github.com/KirkDiggler/roadtrip-engine/internal/errors"
)

const (
	MinSkillPointCost = 1
	MaxSkillPointCost = 3
)

// Catalog is the validated, immutable set of ability definitions
type Catalog struct {
	byID  map[string]*Definition
	order []string
}

// NewCatalog validates the definitions and builds a catalog.
// Any malformed entry rejects the whole catalog.
func NewCatalog(defs []*Definition) (*Catalog, error) {
	c := &Catalog{
		byID: make(map[string]*Definition, len(defs)),
	}

	for _, def := range defs {
		if def == nil {
			return nil, apperr.Validationf("ability catalog contains a nil entry")
		}
		if def.ID == "" {
			return nil, apperr.Validationf("ability %q has no id", def.Name)
		}
		if _, exists := c.byID[def.ID]; exists {
			return nil, apperr.EntryInvalid("ability", def.ID, "duplicate id")
		}

		entry := def.clone()
		if err := validateDefinition(entry); err != nil {
			return nil, err
		}
		c.byID[entry.ID] = entry
		c.order = append(c.order, entry.ID)
	}

	for _, id := range c.order {
		for _, pre := range c.byID[id].Requirement.Prerequisites {
			if _, ok := c.byID[pre]; !ok {
				return nil, apperr.EntryInvalid("ability", id, "unknown prerequisite %q", pre)
			}
		}
	}

	if err := c.checkCycles(); err != nil {
		return nil, err
	}

	sort.Strings(c.order)
	return c, nil
}

func validateDefinition(def *Definition) error {
	req := def.Requirement
	if req.SkillPointCost < MinSkillPointCost || req.SkillPointCost > MaxSkillPointCost {
		return apperr.EntryInvalid("ability", def.ID, "skill point cost must be in [%d,%d], got %d",
			MinSkillPointCost, MaxSkillPointCost, req.SkillPointCost)
	}
	if req.MinLevel < 0 {
		return apperr.EntryInvalid("ability", def.ID, "negative min level %d", req.MinLevel)
	}
	for _, pre := range req.Prerequisites {
		if pre == def.ID {
			return apperr.EntryInvalid("ability", def.ID, "lists itself as a prerequisite")
		}
	}

	switch def.Category {
	case CategoryDriving, CategoryMechanics, CategorySurvival, CategorySocial, CategoryCommerce:
	default:
		return apperr.EntryInvalid("ability", def.ID, "unknown category %q", def.Category)
	}

	switch def.Kind {
	case KindPassive:
		if def.Passive == nil {
			return apperr.EntryInvalid("ability", def.ID, "passive ability has no passive payload")
		}
		if def.Active != nil {
			return apperr.EntryInvalid("ability", def.ID, "passive ability carries an active payload")
		}
		if def.Passive.Effect == "" {
			return apperr.EntryInvalid("ability", def.ID, "passive ability has no effect type")
		}
		if !def.Passive.Effect.Valid() {
			return apperr.EntryInvalid("ability", def.ID, "unknown effect type %q", def.Passive.Effect)
		}
		if def.Passive.Multiplier < 0 {
			return apperr.EntryInvalid("ability", def.ID, "negative multiplier %v", def.Passive.Multiplier)
		}
		if def.Passive.Multiplier == 0 {
			def.Passive.Multiplier = 1.0
		}
	case KindActive:
		if def.Active == nil {
			return apperr.EntryInvalid("ability", def.ID, "active ability has no active payload")
		}
		if def.Passive != nil {
			return apperr.EntryInvalid("ability", def.ID, "active ability carries a passive payload")
		}
		a := def.Active
		if a.MaxCharges < 1 {
			return apperr.EntryInvalid("ability", def.ID, "max charges must be >= 1, got %d", a.MaxCharges)
		}
		if a.Preserves == "" {
			return apperr.EntryInvalid("ability", def.ID, "active ability has no preservation type")
		}
		if !a.Preserves.Valid() {
			return apperr.EntryInvalid("ability", def.ID, "unknown preservation type %q", a.Preserves)
		}
		if a.EnergyCost < 0 || a.MoneyCost < 0 {
			return apperr.EntryInvalid("ability", def.ID, "costs must not be negative")
		}
		if a.PreserveAmount < 0 {
			return apperr.EntryInvalid("ability", def.ID, "negative preserve amount %d", a.PreserveAmount)
		}
		if a.Target == "" {
			a.Target = TargetSelf
		}
		if !a.Target.Valid() {
			return apperr.EntryInvalid("ability", def.ID, "unknown target scope %q", a.Target)
		}
	default:
		return apperr.EntryInvalid("ability", def.ID, "unknown kind %q", def.Kind)
	}

	return nil
}

// checkCycles rejects prerequisite loops, which would make abilities unreachable
func (c *Catalog) checkCycles() error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(c.byID))

	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case visiting:
			return apperr.EntryInvalid("ability", id, "prerequisite cycle")
		case done:
			return nil
		}
		state[id] = visiting
		for _, pre := range c.byID[id].Requirement.Prerequisites {
			if err := visit(pre); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}

	for _, id := range c.order {
		if err := visit(id); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the definition for id
func (c *Catalog) Get(id string) (*Definition, bool) {
	def, ok := c.byID[id]
	return def, ok
}

// All returns every definition sorted by id
func (c *Catalog) All() []*Definition {
	out := make([]*Definition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// ByCategory returns the definitions of one skill domain sorted by id
func (c *Catalog) ByCategory(category Category) []*Definition {
	var out []*Definition
	for _, id := range c.order {
		if def := c.byID[id]; def.Category == category {
			out = append(out, def)
		}
	}
	return out
}

// Len returns the number of definitions
func (c *Catalog) Len() int {
	return len(c.order)
}
