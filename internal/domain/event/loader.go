package event

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	apperr "github.com/KirkDiggler/roadtrip-engine/internal/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/events.yaml
var defaultEventsYAML []byte

type eventsFile struct {
	Events []*Event `yaml:"events"`
}

// LoadEvents decodes and validates a YAML event catalog
func LoadEvents(r io.Reader) ([]*Event, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file eventsFile
	if err := dec.Decode(&file); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeValidation, "failed to decode event catalog")
	}
	if len(file.Events) == 0 {
		return nil, apperr.Validationf("event catalog is empty")
	}
	if err := Validate(file.Events); err != nil {
		return nil, err
	}
	return file.Events, nil
}

// LoadEventsFile loads an event catalog from disk
func LoadEventsFile(path string) ([]*Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to open event catalog %s", path)
	}
	defer f.Close()

	return LoadEvents(f)
}

// DefaultEvents loads the events shipped with the engine
func DefaultEvents() ([]*Event, error) {
	return LoadEvents(bytes.NewReader(defaultEventsYAML))
}

// Validate checks a full event set, including cross references
func Validate(events []*Event) error {
	ids := make(map[string]bool, len(events))
	for _, ev := range events {
		if ev == nil || ev.ID == "" {
			return apperr.Validationf("event without id")
		}
		if ids[ev.ID] {
			return apperr.EntryInvalid("event", ev.ID, "duplicate id")
		}
		ids[ev.ID] = true
		if err := ValidateEvent(ev); err != nil {
			return err
		}
	}

	for _, ev := range events {
		for _, id := range ev.Blocks {
			if !ids[id] {
				return apperr.EntryInvalid("event", ev.ID, "blocks unknown event %q", id)
			}
		}
		for _, id := range ev.Condition.BlockedBy {
			if !ids[id] {
				return apperr.EntryInvalid("event", ev.ID, "blocked by unknown event %q", id)
			}
		}
		for i, ch := range ev.Choices {
			if ch.TriggerEvent != "" && !ids[ch.TriggerEvent] {
				return apperr.EntryInvalid("event", ev.ID, "choice %d chains to unknown event %q", i, ch.TriggerEvent)
			}
		}
	}
	return nil
}

// MaxWeight caps Event.Weight so summed draw weights stay far from overflow
const MaxWeight = 1_000_000

// ValidateEvent checks a single event in isolation
func ValidateEvent(ev *Event) error {
	c := ev.Condition
	if c.Probability < 0 || c.Probability > 1 {
		return apperr.EntryInvalid("event", ev.ID, "probability must be in [0,1], got %v", c.Probability)
	}
	if c.MinFuel > c.MaxFuel || c.MinEnergy > c.MaxEnergy || c.MinMoney > c.MaxMoney {
		return apperr.EntryInvalid("event", ev.ID, "resource range has min above max")
	}
	if c.MinPartySize > c.MaxPartySize {
		return apperr.EntryInvalid("event", ev.ID, "party size range has min above max")
	}
	if ev.Weight < 0 || ev.Weight > MaxWeight {
		return apperr.EntryInvalid("event", ev.ID, "weight must be in [0,%d], got %d", MaxWeight, ev.Weight)
	}
	if len(ev.Choices) == 0 {
		return apperr.EntryInvalid("event", ev.ID, "has no choices")
	}
	if ev.Class == "" {
		return apperr.EntryInvalid("event", ev.ID, "has no class")
	}
	return nil
}
