package events

// EventType represents the type of trip notification
type EventType string

// Event is the base interface for everything published on the bus
type Event interface {
	GetType() EventType
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType { return e.Type }
func (e *BaseEvent) IsCancelled() bool  { return e.Cancelled }
func (e *BaseEvent) Cancel()            { e.Cancelled = true }

// ItemCollectedEvent is emitted when a choice adds an item to the inventory
type ItemCollectedEvent struct {
	BaseEvent
	ItemID   string
	Quantity int
}

// ItemDeliveredEvent is emitted when a choice hands an item over at a location
type ItemDeliveredEvent struct {
	BaseEvent
	ItemID     string
	LocationID string
	Quantity   int
}

// LocationVisitedEvent is emitted when the traveller arrives somewhere
type LocationVisitedEvent struct {
	BaseEvent
	LocationID string
}

// NPCTalkedToEvent is emitted when a choice on an NPC's event is applied
type NPCTalkedToEvent struct {
	BaseEvent
	NPCID string
}

// EventCompletedEvent is emitted when a choice ends its event
type EventCompletedEvent struct {
	BaseEvent
	EventID string
}

// MoneyEarnedEvent is emitted for positive money deltas
type MoneyEarnedEvent struct {
	BaseEvent
	Amount int
}

// EventTriggeredEvent is emitted when an event is presented
type EventTriggeredEvent struct {
	BaseEvent
	EventID string
	Title   string
	NPCID   string
}

// NewItemCollected creates an item collected notification
func NewItemCollected(itemID string, qty int) *ItemCollectedEvent {
	return &ItemCollectedEvent{BaseEvent: BaseEvent{Type: EventTypeItemCollected}, ItemID: itemID, Quantity: qty}
}

// NewItemDelivered creates an item delivered notification
func NewItemDelivered(itemID, locationID string, qty int) *ItemDeliveredEvent {
	return &ItemDeliveredEvent{
		BaseEvent:  BaseEvent{Type: EventTypeItemDelivered},
		ItemID:     itemID,
		LocationID: locationID,
		Quantity:   qty,
	}
}

// NewLocationVisited creates a location visited notification
func NewLocationVisited(locationID string) *LocationVisitedEvent {
	return &LocationVisitedEvent{BaseEvent: BaseEvent{Type: EventTypeLocationVisited}, LocationID: locationID}
}

// NewNPCTalkedTo creates an NPC talked to notification
func NewNPCTalkedTo(npcID string) *NPCTalkedToEvent {
	return &NPCTalkedToEvent{BaseEvent: BaseEvent{Type: EventTypeNPCTalkedTo}, NPCID: npcID}
}

// NewEventCompleted creates an event completed notification
func NewEventCompleted(eventID string) *EventCompletedEvent {
	return &EventCompletedEvent{BaseEvent: BaseEvent{Type: EventTypeEventCompleted}, EventID: eventID}
}

// NewMoneyEarned creates a money earned notification
func NewMoneyEarned(amount int) *MoneyEarnedEvent {
	return &MoneyEarnedEvent{BaseEvent: BaseEvent{Type: EventTypeMoneyEarned}, Amount: amount}
}

// NewEventTriggered creates an event triggered notification
func NewEventTriggered(eventID, title, npcID string) *EventTriggeredEvent {
	return &EventTriggeredEvent{
		BaseEvent: BaseEvent{Type: EventTypeEventTriggered},
		EventID:   eventID,
		Title:     title,
		NPCID:     npcID,
	}
}
