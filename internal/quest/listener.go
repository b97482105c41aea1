package quest

import (
	"log"

	"github.com/KirkDiggler/roadtrip-engine/internal/events"
)

const listenerID = "quest-tracker"

// Listener forwards bus notifications to a Tracker
type Listener struct {
	tracker Tracker
}

// NewListener creates a listener for the given tracker
func NewListener(tracker Tracker) *Listener {
	if tracker == nil {
		panic("quest tracker is required")
	}
	return &Listener{tracker: tracker}
}

// Attach subscribes the listener to every quest notification type
func (l *Listener) Attach(bus *events.Bus) {
	for _, eventType := range events.QuestEventTypes {
		bus.Subscribe(eventType, l)
	}
}

// Detach removes the listener from the bus
func (l *Listener) Detach(bus *events.Bus) {
	for _, eventType := range events.QuestEventTypes {
		bus.Unsubscribe(eventType, listenerID)
	}
}

func (l *Listener) ID() string    { return listenerID }
func (l *Listener) Priority() int { return events.PriorityQuest }

// HandleEvent implements events.EventListener
func (l *Listener) HandleEvent(event events.Event) error {
	switch e := event.(type) {
	case *events.ItemCollectedEvent:
		l.tracker.ItemCollected(e.ItemID, e.Quantity)
	case *events.ItemDeliveredEvent:
		l.tracker.ItemDelivered(e.ItemID, e.LocationID, e.Quantity)
	case *events.LocationVisitedEvent:
		l.tracker.LocationVisited(e.LocationID)
	case *events.NPCTalkedToEvent:
		l.tracker.NPCTalkedTo(e.NPCID)
	case *events.EventCompletedEvent:
		l.tracker.EventCompleted(e.EventID)
	case *events.MoneyEarnedEvent:
		l.tracker.MoneyEarned(e.Amount)
	default:
		log.Printf("QuestListener: Ignoring %s", event.GetType())
	}
	return nil
}
