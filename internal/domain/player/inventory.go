package player

import "sort"

// Items is the inventory query surface used by conditions and perk gating
type Items interface {
	Has(itemID string) bool
	Quantity(itemID string) int
}

// Inventory counts held items by id
type Inventory struct {
	Items map[string]int `json:"items"`
}

// NewInventory creates an empty inventory
func NewInventory() *Inventory {
	return &Inventory{Items: make(map[string]int)}
}

// Has reports whether at least one of the item is held
func (i *Inventory) Has(itemID string) bool {
	return i.Items[itemID] > 0
}

// HasAll reports whether every listed item is held
func (i *Inventory) HasAll(itemIDs []string) bool {
	for _, id := range itemIDs {
		if !i.Has(id) {
			return false
		}
	}
	return true
}

// Quantity returns how many of the item are held
func (i *Inventory) Quantity(itemID string) int {
	return i.Items[itemID]
}

// Add stores qty more of an item
func (i *Inventory) Add(itemID string, qty int) {
	if qty <= 0 {
		return
	}
	if i.Items == nil {
		i.Items = make(map[string]int)
	}
	i.Items[itemID] += qty
}

// Remove takes up to qty of an item and returns how many were removed.
// Removing an absent item is a no-op.
func (i *Inventory) Remove(itemID string, qty int) int {
	held := i.Items[itemID]
	if held == 0 || qty <= 0 {
		return 0
	}
	if qty > held {
		qty = held
	}
	if held == qty {
		delete(i.Items, itemID)
	} else {
		i.Items[itemID] = held - qty
	}
	return qty
}

// IDs lists held item ids in sorted order
func (i *Inventory) IDs() []string {
	out := make([]string, 0, len(i.Items))
	for id := range i.Items {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Clone deep-copies the inventory
func (i *Inventory) Clone() *Inventory {
	out := NewInventory()
	for k, v := range i.Items {
		out.Items[k] = v
	}
	return out
}
