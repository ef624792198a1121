package schedule

// HasConflict reports whether the principal already holds any reservation
// in the given time window, on any resource. This models the rule that a
// principal may not hold two reservations in the same period.
//
// The check is only meaningful against the current in-memory state at
// commit time; evaluate it inside a booking transaction, never against a
// snapshot that predates a user-facing pause.
func HasConflict(inv *Inventory, p Principal, w TimeWindow) bool {
	for _, s := range inv.slots {
		if s.Status == StatusReserved && s.Holder == p && s.Window == w {
			return true
		}
	}
	return false
}

// HasConflictOn reports whether the principal already holds the specific
// (resource, window) pair, the re-reserve case.
func HasConflictOn(inv *Inventory, p Principal, w TimeWindow, r ResourceID) bool {
	s, ok := inv.Lookup(SlotKey{Resource: r, Window: w})
	if !ok {
		return false
	}
	return s.Status == StatusReserved && s.Holder == p
}
