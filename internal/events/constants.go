package events

// Event type constants
const (
	// Quest notifications
	EventTypeItemCollected   EventType = "item_collected"
	EventTypeItemDelivered   EventType = "item_delivered"
	EventTypeLocationVisited EventType = "location_visited"
	EventTypeNPCTalkedTo     EventType = "npc_talked_to"
	EventTypeEventCompleted  EventType = "event_completed"
	EventTypeMoneyEarned     EventType = "money_earned"

	// Presentation
	EventTypeEventTriggered EventType = "event_triggered"
)

// QuestEventTypes lists every notification the quest tracker consumes
var QuestEventTypes = []EventType{
	EventTypeItemCollected,
	EventTypeItemDelivered,
	EventTypeLocationVisited,
	EventTypeNPCTalkedTo,
	EventTypeEventCompleted,
	EventTypeMoneyEarned,
}

// Priority levels for listener order
const (
	PriorityQuest   = 100 // Quest progress
	PriorityJournal = 200 // Trip log, achievements
	PriorityLogging = 500
)
