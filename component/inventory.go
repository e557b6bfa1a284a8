package component

import (
	"maps"
	"slices"
)

const TagInventory = "Inventory"

// InventoryComponent counts items carried by an entity
type InventoryComponent struct {
	Items map[string]int
}

func NewInventory() *InventoryComponent {
	return &InventoryComponent{Items: make(map[string]int)}
}

func (*InventoryComponent) Type() string { return TagInventory }

// Add increases the count of item; non-positive amounts are ignored
func (inv *InventoryComponent) Add(item string, amount int) int {
	if amount <= 0 || item == "" {
		return inv.Items[item]
	}
	if inv.Items == nil {
		inv.Items = make(map[string]int)
	}
	inv.Items[item] += amount
	return inv.Items[item]
}

// Remove takes up to amount of item and returns how many were removed
// Empty stacks are deleted
func (inv *InventoryComponent) Remove(item string, amount int) int {
	have := inv.Items[item]
	if amount <= 0 || have == 0 {
		return 0
	}
	taken := min(amount, have)
	if taken == have {
		delete(inv.Items, item)
	} else {
		inv.Items[item] = have - taken
	}
	return taken
}

func (inv *InventoryComponent) Count(item string) int {
	return inv.Items[item]
}

// Snapshot returns a copy of the item counts
func (inv *InventoryComponent) Snapshot() map[string]int {
	return maps.Clone(inv.Items)
}

// ItemNames returns held item names, sorted
func (inv *InventoryComponent) ItemNames() []string {
	return slices.Sorted(maps.Keys(inv.Items))
}
