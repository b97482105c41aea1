package ability

// Requirement gates an unlock
type Requirement struct {
	MinLevel       int      `yaml:"min_level" json:"min_level"`
	Prerequisites  []string `yaml:"prerequisites" json:"prerequisites"`
	SkillPointCost int      `yaml:"skill_point_cost" json:"skill_point_cost"`
}

// PassiveEffect is the always-on payload of a passive ability.
// Multipliers compose by product, flat bonuses by sum.
type PassiveEffect struct {
	Effect     EffectType `yaml:"effect" json:"effect"`
	Multiplier float64    `yaml:"multiplier" json:"multiplier"`
	Flat       int        `yaml:"flat" json:"flat"`
}

// ActiveEffect is the payload of a charge-gated ability
type ActiveEffect struct {
	Preserves      PreservationType `yaml:"preserves" json:"preserves"`
	EnergyCost     int              `yaml:"energy_cost" json:"energy_cost"`
	MoneyCost      int              `yaml:"money_cost" json:"money_cost"`
	RequiredItems  []string         `yaml:"required_items" json:"required_items"`
	MaxCharges     int              `yaml:"max_charges" json:"max_charges"`
	PreserveAmount int              `yaml:"preserve_amount" json:"preserve_amount"`
	Target         TargetScope      `yaml:"target" json:"target"`
	Duration       int              `yaml:"duration" json:"duration"`
}

// Definition is a catalog entry. It is never mutated after the catalog is built.
type Definition struct {
	ID          string         `yaml:"id" json:"id"`
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description" json:"description"`
	Kind        Kind           `yaml:"kind" json:"kind"`
	Category    Category       `yaml:"category" json:"category"`
	Requirement Requirement    `yaml:"requirement" json:"requirement"`
	Passive     *PassiveEffect `yaml:"passive,omitempty" json:"passive,omitempty"`
	Active      *ActiveEffect  `yaml:"active,omitempty" json:"active,omitempty"`
}

// IsActive reports whether the ability is charge-gated
func (d *Definition) IsActive() bool {
	return d.Kind == KindActive
}

// IsPassive reports whether the ability is always on
func (d *Definition) IsPassive() bool {
	return d.Kind == KindPassive
}

// Preserves returns the active preservation tag, or "" for passives
func (d *Definition) Preserves() PreservationType {
	if d.Active == nil {
		return ""
	}
	return d.Active.Preserves
}

// clone deep-copies a definition so the catalog owns its entries
func (d *Definition) clone() *Definition {
	out := *d
	out.Requirement.Prerequisites = append([]string(nil), d.Requirement.Prerequisites...)
	if d.Passive != nil {
		p := *d.Passive
		out.Passive = &p
	}
	if d.Active != nil {
		a := *d.Active
		a.RequiredItems = append([]string(nil), d.Active.RequiredItems...)
		out.Active = &a
	}
	return &out
}
