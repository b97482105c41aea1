// Package event defines encounters: when they may fire and what each
// choice does to the player.
package event

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Class is the presentation category of an event
type Class string

const (
	ClassRoad      Class = "road"
	ClassCompanion Class = "companion"
	ClassResource  Class = "resource"
	ClassShop      Class = "shop"
	ClassEncounter Class = "encounter"
	ClassConflict  Class = "conflict"
)

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Class) UnmarshalText(text []byte) error {
	switch v := Class(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case ClassRoad, ClassCompanion, ClassResource, ClassShop, ClassEncounter, ClassConflict:
		*c = v
		return nil
	default:
		return fmt.Errorf("unknown event class %q", string(text))
	}
}

// Condition gates whether an event may be drawn
type Condition struct {
	MinFuel   int `yaml:"min_fuel" json:"min_fuel"`
	MaxFuel   int `yaml:"max_fuel" json:"max_fuel"`
	MinEnergy int `yaml:"min_energy" json:"min_energy"`
	MaxEnergy int `yaml:"max_energy" json:"max_energy"`
	MinMoney  int `yaml:"min_money" json:"min_money"`
	MaxMoney  int `yaml:"max_money" json:"max_money"`

	// Empty strings match anything
	Location string `yaml:"location" json:"location"`
	RoadType string `yaml:"road_type" json:"road_type"`

	// Per-attempt trigger chance in [0,1]
	Probability float64 `yaml:"probability" json:"probability"`

	RequiredNPCs    []string       `yaml:"required_npcs" json:"required_npcs"`
	MinRelationship map[string]int `yaml:"min_relationship" json:"min_relationship"`
	RequiredItems   []string       `yaml:"required_items" json:"required_items"`
	BlockedBy       []string       `yaml:"blocked_by" json:"blocked_by"`
	MinPartySize    int            `yaml:"min_party_size" json:"min_party_size"`
	MaxPartySize    int            `yaml:"max_party_size" json:"max_party_size"`
}

// DefaultCondition matches every player state with certainty
func DefaultCondition() Condition {
	return Condition{
		MinFuel:      0,
		MaxFuel:      100,
		MinEnergy:    0,
		MaxEnergy:    100,
		MinMoney:     0,
		MaxMoney:     math.MaxInt32,
		Probability:  1.0,
		MinPartySize: 0,
		MaxPartySize: math.MaxInt32,
	}
}

// UnmarshalYAML starts from DefaultCondition so omitted fields stay wildcards
func (c *Condition) UnmarshalYAML(node *yaml.Node) error {
	type plain Condition
	out := plain(DefaultCondition())
	if err := decodeStrict(node, &out); err != nil {
		return err
	}
	*c = Condition(out)
	return nil
}

// HasPartyConstraints reports whether party or inventory state matters
func (c *Condition) HasPartyConstraints() bool {
	return len(c.RequiredNPCs) > 0 ||
		len(c.MinRelationship) > 0 ||
		len(c.RequiredItems) > 0 ||
		c.MinPartySize > 0 ||
		c.MaxPartySize < math.MaxInt32
}

// Choice is one selectable option of an event
type Choice struct {
	Text    string `yaml:"text" json:"text"`
	Outcome string `yaml:"outcome" json:"outcome"`

	FuelChange    int `yaml:"fuel" json:"fuel"`
	EnergyChange  int `yaml:"energy" json:"energy"`
	MoneyChange   int `yaml:"money" json:"money"`
	VehicleChange int `yaml:"vehicle" json:"vehicle"`
	MoodChange    int `yaml:"mood" json:"mood"`

	EndsEvent bool `yaml:"ends_event" json:"ends_event"`

	// Set only on choices synthesized from an unlocked ability
	IsPerkChoice bool   `yaml:"-" json:"is_perk_choice"`
	PerkID       string `yaml:"-" json:"perk_id,omitempty"`

	RelationshipChanges map[string]int `yaml:"relationships" json:"relationships,omitempty"`
	AddItems            []string       `yaml:"add_items" json:"add_items,omitempty"`
	RemoveItems         []string       `yaml:"remove_items" json:"remove_items,omitempty"`
	DeliverItems        []string       `yaml:"deliver_items" json:"deliver_items,omitempty"`
	RequiredItems       []string       `yaml:"required_items" json:"required_items,omitempty"`
	RecruitNPC          string         `yaml:"recruit_npc" json:"recruit_npc,omitempty"`
	RemoveNPC           string         `yaml:"remove_npc" json:"remove_npc,omitempty"`
	TriggerEvent        string         `yaml:"trigger_event" json:"trigger_event,omitempty"`
}

// MoneyCost returns how much money the choice takes, 0 for gains
func (c *Choice) MoneyCost() int {
	if c.MoneyChange < 0 {
		return -c.MoneyChange
	}
	return 0
}

// Event is a presentable encounter
type Event struct {
	ID          string    `yaml:"id" json:"id"`
	Title       string    `yaml:"title" json:"title"`
	Description string    `yaml:"description" json:"description"`
	Condition   Condition `yaml:"condition" json:"condition"`
	Choices     []Choice  `yaml:"choices" json:"choices"`
	Class       Class     `yaml:"class" json:"class"`
	Weight      int       `yaml:"weight" json:"weight"`
	OneTimeOnly bool      `yaml:"one_time_only" json:"one_time_only"`
	Blocks      []string  `yaml:"blocks" json:"blocks,omitempty"`
	NPCID       string    `yaml:"npc" json:"npc,omitempty"`

	Triggered bool `yaml:"-" json:"triggered"`
}

// New creates an event with a default condition and weight
func New(id, title string, class Class, choices ...Choice) *Event {
	return &Event{
		ID:        id,
		Title:     title,
		Class:     class,
		Condition: DefaultCondition(),
		Choices:   choices,
		Weight:    1,
	}
}

// Clone returns a copy whose choice list can be extended for presentation
// without touching the registered event.
func (e *Event) Clone() *Event {
	out := *e
	out.Choices = make([]Choice, len(e.Choices))
	copy(out.Choices, e.Choices)
	return &out
}

// UnmarshalYAML applies the default condition when the block is omitted
func (e *Event) UnmarshalYAML(node *yaml.Node) error {
	type plain Event
	out := plain{Condition: DefaultCondition(), Weight: 1}
	if err := decodeStrict(node, &out); err != nil {
		return err
	}
	*e = Event(out)
	return nil
}

// decodeStrict decodes node and rejects unknown keys. Node.Decode starts a
// fresh decoder, so the caller's KnownFields setting does not reach it.
func decodeStrict(node *yaml.Node, out any) error {
	raw, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	return dec.Decode(out)
}
