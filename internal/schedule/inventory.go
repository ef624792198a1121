package schedule

import (
	"fmt"
)

// Inventory is the ordered table of slots. Order is the persisted row
// order: generation order for a fresh store, load order thereafter.
//
// No two slots share a (resource, window) identity; FromSlots enforces
// this on load and Generate produces it by construction.
type Inventory struct {
	slots []Slot
	index map[SlotKey]int
	dirty []SlotKey // keys mutated since load, in mutation order
}

// Generate builds the full cross-product of resources and windows, every
// slot Available and unassigned. Resource order is the outer loop, so the
// table reads PC01 08:00, PC01 09:00, ..., PC02 08:00, matching the
// legacy layout.
func Generate(resources []ResourceID, windows []TimeWindow) *Inventory {
	inv := &Inventory{
		slots: make([]Slot, 0, len(resources)*len(windows)),
		index: make(map[SlotKey]int, len(resources)*len(windows)),
	}
	for _, r := range resources {
		for _, w := range windows {
			inv.index[SlotKey{Resource: r, Window: w}] = len(inv.slots)
			inv.slots = append(inv.slots, Slot{
				Resource: r,
				Window:   w,
				Status:   StatusAvailable,
			})
		}
	}
	return inv
}

// FromSlots builds an inventory from loaded rows, preserving their order.
// A duplicated (resource, window) identity is a corrupt store and is
// rejected.
func FromSlots(slots []Slot) (*Inventory, error) {
	inv := &Inventory{
		slots: make([]Slot, len(slots)),
		index: make(map[SlotKey]int, len(slots)),
	}
	copy(inv.slots, slots)
	for i, s := range inv.slots {
		key := s.Key()
		if prev, ok := inv.index[key]; ok {
			return nil, fmt.Errorf("duplicate slot %s at rows %d and %d", key, prev, i)
		}
		inv.index[key] = i
	}
	return inv, nil
}

// Len returns the number of slots.
func (inv *Inventory) Len() int {
	return len(inv.slots)
}

// Slots returns a copy of the full table in store order.
func (inv *Inventory) Slots() []Slot {
	out := make([]Slot, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// Lookup resolves a slot by its composite identity.
func (inv *Inventory) Lookup(key SlotKey) (Slot, bool) {
	i, ok := inv.index[key]
	if !ok {
		return Slot{}, false
	}
	return inv.slots[i], true
}

// At resolves a slot by positional index. The index is only meaningful
// against the snapshot it was displayed from; callers must re-resolve by
// key before mutating.
func (inv *Inventory) At(i int) (Slot, bool) {
	if i < 0 || i >= len(inv.slots) {
		return Slot{}, false
	}
	return inv.slots[i], true
}

// Reserve transitions the slot to Reserved with the given holder. The
// slot must exist and be Available; the engine validates both before
// calling, so a violation here is a programming error.
func (inv *Inventory) Reserve(key SlotKey, p Principal) error {
	i, ok := inv.index[key]
	if !ok {
		return fmt.Errorf("reserve %s: no such slot", key)
	}
	if inv.slots[i].Status != StatusAvailable {
		return fmt.Errorf("reserve %s: slot is not available", key)
	}
	inv.slots[i].Status = StatusReserved
	inv.slots[i].Holder = p
	inv.dirty = append(inv.dirty, key)
	return nil
}

// Dirty returns the keys mutated since load, in mutation order. An empty
// result means the transaction has nothing to persist.
func (inv *Inventory) Dirty() []SlotKey {
	out := make([]SlotKey, len(inv.dirty))
	copy(out, inv.dirty)
	return out
}
