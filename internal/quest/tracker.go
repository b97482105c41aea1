// Package quest bridges engine notifications to the quest-tracking
// collaborator. The engine only pushes; it never reads quest state back.
package quest

//go:generate mockgen -destination=mock/mock_tracker.go -package=mockquest -source=tracker.go

// Tracker receives fire-and-forget progress notifications
type Tracker interface {
	ItemCollected(itemID string, qty int)
	ItemDelivered(itemID, locationID string, qty int)
	LocationVisited(locationID string)
	NPCTalkedTo(npcID string)
	EventCompleted(eventID string)
	MoneyEarned(amount int)
}
