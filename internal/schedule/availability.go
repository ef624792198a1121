package schedule

// Availability projections. These are pure reads over an inventory
// snapshot: no reload, no mutation, store order preserved.

// Available returns the slots open for booking, in store order.
func (inv *Inventory) Available() []Slot {
	return inv.withStatus(StatusAvailable)
}

// Reserved returns the slots currently held, in store order.
func (inv *Inventory) Reserved() []Slot {
	return inv.withStatus(StatusReserved)
}

func (inv *Inventory) withStatus(st Status) []Slot {
	var out []Slot
	for _, s := range inv.slots {
		if s.Status == st {
			out = append(out, s)
		}
	}
	return out
}

// WindowGroup pairs a time window with its slots in store order.
type WindowGroup struct {
	Window TimeWindow
	Slots  []Slot
}

// GroupedByWindow partitions the inventory by time window, windows
// ordered by first appearance in the store. Used for "pick a window,
// then pick resources" flows.
func (inv *Inventory) GroupedByWindow() []WindowGroup {
	byWindow := make(map[TimeWindow]int)
	var groups []WindowGroup
	for _, s := range inv.slots {
		i, ok := byWindow[s.Window]
		if !ok {
			i = len(groups)
			byWindow[s.Window] = i
			groups = append(groups, WindowGroup{Window: s.Window})
		}
		groups[i].Slots = append(groups[i].Slots, s)
	}
	return groups
}
