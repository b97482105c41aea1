package quest

import (
	"log"
	"sort"
	"sync"
)

// Journal is a Tracker that keeps running totals, used by the terminal host
// when no external quest system is attached.
type Journal struct {
	mu sync.Mutex

	collected map[string]int
	delivered map[string]int
	visited   []string
	npcs      map[string]int
	completed map[string]int
	earned    int
}

// NewJournal creates an empty journal
func NewJournal() *Journal {
	return &Journal{
		collected: make(map[string]int),
		delivered: make(map[string]int),
		npcs:      make(map[string]int),
		completed: make(map[string]int),
	}
}

func (j *Journal) ItemCollected(itemID string, qty int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.collected[itemID] += qty
}

func (j *Journal) ItemDelivered(itemID, locationID string, qty int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.delivered[itemID] += qty
	log.Printf("Journal: Delivered %d x %s at %s", qty, itemID, locationID)
}

func (j *Journal) LocationVisited(locationID string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, visited := range j.visited {
		if visited == locationID {
			return
		}
	}
	j.visited = append(j.visited, locationID)
}

func (j *Journal) NPCTalkedTo(npcID string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.npcs[npcID]++
}

func (j *Journal) EventCompleted(eventID string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.completed[eventID]++
}

func (j *Journal) MoneyEarned(amount int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.earned += amount
}

// Summary is a point-in-time copy of the journal
type Summary struct {
	Collected       map[string]int
	Delivered       map[string]int
	Visited         []string
	NPCs            []string
	EventsCompleted int
	MoneyEarned     int
}

// Summary returns a copy of the totals
func (j *Journal) Summary() Summary {
	j.mu.Lock()
	defer j.mu.Unlock()

	s := Summary{
		Collected:   copyCounts(j.collected),
		Delivered:   copyCounts(j.delivered),
		Visited:     append([]string(nil), j.visited...),
		MoneyEarned: j.earned,
	}
	for npc := range j.npcs {
		s.NPCs = append(s.NPCs, npc)
	}
	sort.Strings(s.NPCs)
	for _, n := range j.completed {
		s.EventsCompleted += n
	}
	return s
}

func copyCounts(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
