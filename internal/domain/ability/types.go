package ability

import (
	"fmt"
	"strings"
)

// Kind separates always-on passives from charge-gated actives
type Kind string

const (
	KindPassive Kind = "passive"
	KindActive  Kind = "active"
)

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(text []byte) error {
	switch v := Kind(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case KindPassive, KindActive:
		*k = v
		return nil
	default:
		return fmt.Errorf("unknown ability kind %q", string(text))
	}
}

// Category is one of the five skill-tree domains
type Category string

const (
	CategoryDriving   Category = "driving"
	CategoryMechanics Category = "mechanics"
	CategorySurvival  Category = "survival"
	CategorySocial    Category = "social"
	CategoryCommerce  Category = "commerce"
)

// Categories lists every category in skill-tree display order
var Categories = []Category{
	CategoryDriving,
	CategoryMechanics,
	CategorySurvival,
	CategorySocial,
	CategoryCommerce,
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Category) UnmarshalText(text []byte) error {
	v := Category(strings.ToLower(strings.TrimSpace(string(text))))
	for _, known := range Categories {
		if v == known {
			*c = v
			return nil
		}
	}
	return fmt.Errorf("unknown ability category %q", string(text))
}

// EffectType tags what a passive ability improves
type EffectType string

const (
	EffectFuelEfficiency    EffectType = "fuel_efficiency"
	EffectEnergyRecovery    EffectType = "energy_recovery"
	EffectMoneyBonus        EffectType = "money_bonus"
	EffectVehicleDurability EffectType = "vehicle_durability"
	EffectRelationshipGain  EffectType = "relationship_gain"
	EffectMoodBoost         EffectType = "mood_boost"
)

// EffectTypes lists every passive effect type
var EffectTypes = []EffectType{
	EffectFuelEfficiency,
	EffectEnergyRecovery,
	EffectMoneyBonus,
	EffectVehicleDurability,
	EffectRelationshipGain,
	EffectMoodBoost,
}

// Valid reports whether e is one of EffectTypes
func (e EffectType) Valid() bool {
	for _, known := range EffectTypes {
		if e == known {
			return true
		}
	}
	return false
}

// UnmarshalText implements encoding.TextUnmarshaler
func (e *EffectType) UnmarshalText(text []byte) error {
	v := EffectType(strings.ToLower(strings.TrimSpace(string(text))))
	if !v.Valid() {
		return fmt.Errorf("unknown effect type %q", string(text))
	}
	*e = v
	return nil
}

// PreservationType is the resource an active ability protects
type PreservationType string

const (
	PreserveFuel    PreservationType = "fuel"
	PreserveEnergy  PreservationType = "energy"
	PreserveMoney   PreservationType = "money"
	PreserveVehicle PreservationType = "vehicle"
)

// PreservationTypes lists every preservation tag in injection order
var PreservationTypes = []PreservationType{
	PreserveFuel,
	PreserveEnergy,
	PreserveMoney,
	PreserveVehicle,
}

// Valid reports whether p is one of PreservationTypes
func (p PreservationType) Valid() bool {
	for _, known := range PreservationTypes {
		if p == known {
			return true
		}
	}
	return false
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *PreservationType) UnmarshalText(text []byte) error {
	v := PreservationType(strings.ToLower(strings.TrimSpace(string(text))))
	if !v.Valid() {
		return fmt.Errorf("unknown preservation type %q", string(text))
	}
	*p = v
	return nil
}

// TargetScope describes who an active ability affects
type TargetScope string

const (
	TargetSelf    TargetScope = "self"
	TargetParty   TargetScope = "party"
	TargetVehicle TargetScope = "vehicle"
)

// Valid reports whether t is a known target scope
func (t TargetScope) Valid() bool {
	switch t {
	case TargetSelf, TargetParty, TargetVehicle:
		return true
	}
	return false
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *TargetScope) UnmarshalText(text []byte) error {
	v := TargetScope(strings.ToLower(strings.TrimSpace(string(text))))
	if !v.Valid() {
		return fmt.Errorf("unknown target scope %q", string(text))
	}
	*t = v
	return nil
}
