package schedule

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Status is the booking state of a slot.
type Status int

const (
	// StatusAvailable means the slot has no holder and can be booked.
	StatusAvailable Status = iota + 1
	// StatusReserved means the slot is held by a principal.
	StatusReserved
)

// Persisted status strings. These match the tables written by the legacy
// system so exported flat files round-trip.
const (
	statusAvailableWire = "Disponível"
	statusReservedWire  = "Agendado"
)

// HolderNone is the persisted sentinel for an unassigned slot.
const HolderNone = "livre"

// String returns the persisted wire form of the status.
func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return statusAvailableWire
	case StatusReserved:
		return statusReservedWire
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ParseStatus parses a persisted status string.
func ParseStatus(s string) (Status, error) {
	switch strings.TrimSpace(s) {
	case statusAvailableWire:
		return StatusAvailable, nil
	case statusReservedWire:
		return StatusReserved, nil
	default:
		return 0, fmt.Errorf("unknown status %q", s)
	}
}

// ResourceID identifies a bookable resource (a lab PC).
type ResourceID string

// ParseResourceID validates raw text as a resource identifier.
// Identifiers are trimmed and must be non-empty with no whitespace or
// commas (they travel through flat files).
func ParseResourceID(raw string) (ResourceID, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("resource id is empty")
	}
	if strings.ContainsAny(s, ", \t\n") {
		return "", fmt.Errorf("resource id %q contains whitespace or comma", raw)
	}
	return ResourceID(s), nil
}

// Resources generates count sequential resource identifiers with the given
// prefix: Resources("PC", 3) = [PC01 PC02 PC03].
func Resources(prefix string, count int) []ResourceID {
	ids := make([]ResourceID, 0, count)
	for i := 1; i <= count; i++ {
		ids = append(ids, ResourceID(fmt.Sprintf("%s%02d", prefix, i)))
	}
	return ids
}

// TimeWindow labels a fixed period of the daily schedule, canonically
// "08:00 - 09:00".
type TimeWindow string

// ParseTimeWindow validates raw text as a time window label and returns
// the canonical form. Both "08:00 - 09:00" and "08:00-09:00" are
// accepted; the end must be after the start.
func ParseTimeWindow(raw string) (TimeWindow, error) {
	s := strings.TrimSpace(raw)
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return "", fmt.Errorf("time window %q: want HH:MM - HH:MM", raw)
	}
	sh, sm, err := parseClock(strings.TrimSpace(start))
	if err != nil {
		return "", fmt.Errorf("time window %q: %w", raw, err)
	}
	eh, em, err := parseClock(strings.TrimSpace(end))
	if err != nil {
		return "", fmt.Errorf("time window %q: %w", raw, err)
	}
	if eh*60+em <= sh*60+sm {
		return "", fmt.Errorf("time window %q: end is not after start", raw)
	}
	return TimeWindow(fmt.Sprintf("%02d:%02d - %02d:%02d", sh, sm, eh, em)), nil
}

func parseClock(s string) (hour, min int, err error) {
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hour, &min); err != nil {
		return 0, 0, fmt.Errorf("bad clock %q", s)
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, 0, fmt.Errorf("clock %q out of range", s)
	}
	return hour, min, nil
}

// Windows generates the one-hour windows of a daily schedule from open to
// close: Windows(8, 21) yields 13 windows, "08:00 - 09:00" through
// "20:00 - 21:00".
func Windows(openHour, closeHour int) []TimeWindow {
	var ws []TimeWindow
	for h := openHour; h < closeHour; h++ {
		ws = append(ws, TimeWindow(fmt.Sprintf("%02d:00 - %02d:00", h, h+1)))
	}
	return ws
}

// Principal is the already-authenticated identity holding a reservation.
// The core never authenticates; it receives the display name as an opaque
// value.
type Principal string

// ParsePrincipal validates raw text as a principal display name. Names
// are trimmed and NFC-normalized so accented spellings compare equal
// regardless of how the terminal encoded them. The holder sentinel is
// rejected: it can never name a real principal.
func ParsePrincipal(raw string) (Principal, error) {
	s := norm.NFC.String(strings.TrimSpace(raw))
	if s == "" {
		return "", fmt.Errorf("principal name is empty")
	}
	if s == HolderNone {
		return "", fmt.Errorf("principal name %q is reserved", HolderNone)
	}
	return Principal(s), nil
}

// SlotKey is the stable composite identity of a slot. Positional indices
// are a presentation convenience only; all engine addressing uses the key.
type SlotKey struct {
	Resource ResourceID `json:"pc"`
	Window   TimeWindow `json:"window"`
}

func (k SlotKey) String() string {
	return fmt.Sprintf("%s@%s", k.Resource, k.Window)
}

// ParseSlotKey parses the "RESOURCE@WINDOW" form used on the command
// line, e.g. "PC01@08:00-09:00".
func ParseSlotKey(raw string) (SlotKey, error) {
	res, win, ok := strings.Cut(raw, "@")
	if !ok {
		return SlotKey{}, fmt.Errorf("slot %q: want RESOURCE@WINDOW", raw)
	}
	r, err := ParseResourceID(res)
	if err != nil {
		return SlotKey{}, fmt.Errorf("slot %q: %w", raw, err)
	}
	w, err := ParseTimeWindow(win)
	if err != nil {
		return SlotKey{}, fmt.Errorf("slot %q: %w", raw, err)
	}
	return SlotKey{Resource: r, Window: w}, nil
}

// Slot is one bookable (resource, time window) unit.
type Slot struct {
	Resource ResourceID
	Window   TimeWindow
	Holder   Principal // empty when the slot is unassigned
	Status   Status
}

// Key returns the slot's composite identity.
func (s Slot) Key() SlotKey {
	return SlotKey{Resource: s.Resource, Window: s.Window}
}

// HolderWire returns the persisted holder string, substituting the
// unassigned sentinel for an empty holder.
func (s Slot) HolderWire() string {
	if s.Holder == "" {
		return HolderNone
	}
	return string(s.Holder)
}
