package schedule

import (
	"context"
	"errors"
	"fmt"
)

// Repository is the persistence contract the engine consumes. The core
// never names a storage medium; anything that can run the load → validate
// → mutate → persist sequence as one critical section can back it.
type Repository interface {
	// Transact loads a fresh inventory, passes it to fn, and commits the
	// dirty slots iff fn returns nil. A non-nil error from fn rolls the
	// transaction back and is returned unchanged. If fn leaves no dirty
	// slots, nothing is written.
	Transact(ctx context.Context, fn func(inv *Inventory) error) error
}

// OutcomeCode classifies the per-slot result of a booking request.
type OutcomeCode string

const (
	// OutcomeBooked means the slot transitioned to Reserved.
	OutcomeBooked OutcomeCode = "BOOKED"
	// OutcomeNotFound means the identity resolved to no slot.
	OutcomeNotFound OutcomeCode = "NOT_FOUND"
	// OutcomeConflict means the slot was already reserved.
	OutcomeConflict OutcomeCode = "CONFLICT"
)

// Outcome is the per-slot result of a booking request.
type Outcome struct {
	Key    SlotKey     `json:"slot"`
	Code   OutcomeCode `json:"code"`
	Detail string      `json:"detail,omitempty"`
}

// Engine applies booking transactions against a Repository.
//
// Each call is one critical section: the inventory is loaded fresh inside
// the transaction, validated there, and persisted in the same commit, so
// two writers sharing a store cannot lose each other's reservations.
type Engine struct {
	repo Repository
}

// NewEngine creates a booking engine over the given repository.
func NewEngine(repo Repository) *Engine {
	return &Engine{repo: repo}
}

// BookSingle reserves one slot for the principal.
//
// Returns a BookingError with code NOT_FOUND when the identity resolves
// to no slot, CONFLICT when the slot is already reserved (by anyone), and
// STORAGE_FAILURE when persistence fails. On success the slot is Reserved
// with the principal as holder and the store is persisted.
func (e *Engine) BookSingle(ctx context.Context, key SlotKey, p Principal) error {
	err := e.repo.Transact(ctx, func(inv *Inventory) error {
		slot, ok := inv.Lookup(key)
		if !ok {
			return &BookingError{
				Code:    ErrCodeNotFound,
				Message: "no such slot",
				Key:     &key,
			}
		}
		if slot.Status != StatusAvailable {
			return &BookingError{
				Code:    ErrCodeConflict,
				Message: conflictDetail(slot, p),
				Key:     &key,
			}
		}
		return inv.Reserve(key, p)
	})
	return e.wrapStorage(err)
}

// BookMultiple reserves several slots for the principal in one call. All
// slots must share one time window.
//
// Per-slot failures do not block independently valid bookings in the same
// request: each distinct slot gets its own Outcome (BOOKED, NOT_FOUND or
// CONFLICT) and the booked subset is committed in a single persist. Two
// exceptions fail the whole call with no mutation: a request whose
// resolvable slots span more than one window (WINDOW_MISMATCH, a request
// shape error rather than a business conflict) and storage failures.
//
// A repeated identity in one request is collapsed to a single outcome;
// it can neither double-count nor conflict with itself.
func (e *Engine) BookMultiple(ctx context.Context, keys []SlotKey, p Principal) ([]Outcome, error) {
	var outcomes []Outcome
	err := e.repo.Transact(ctx, func(inv *Inventory) error {
		outcomes = nil
		distinct := dedupe(keys)

		// Validation stage: the same-window invariant is checked over the
		// resolvable slots before anything is evaluated per-slot.
		var windows []TimeWindow
		seen := make(map[TimeWindow]bool)
		for _, key := range distinct {
			slot, ok := inv.Lookup(key)
			if !ok {
				continue
			}
			if !seen[slot.Window] {
				seen[slot.Window] = true
				windows = append(windows, slot.Window)
			}
		}
		if len(windows) > 1 {
			return &BookingError{
				Code:    ErrCodeWindowMismatch,
				Message: "request spans more than one time window",
				Windows: windows,
			}
		}

		// Per-slot evaluation against the freshly loaded state, then a
		// single commit of the staged subset.
		for _, key := range distinct {
			slot, ok := inv.Lookup(key)
			if !ok {
				outcomes = append(outcomes, Outcome{Key: key, Code: OutcomeNotFound, Detail: "no such slot"})
				continue
			}
			if slot.Status != StatusAvailable {
				outcomes = append(outcomes, Outcome{Key: key, Code: OutcomeConflict, Detail: conflictDetail(slot, p)})
				continue
			}
			if err := inv.Reserve(key, p); err != nil {
				return err
			}
			outcomes = append(outcomes, Outcome{Key: key, Code: OutcomeBooked})
		}
		return nil
	})
	if err != nil {
		return nil, e.wrapStorage(err)
	}
	return outcomes, nil
}

// wrapStorage turns repository infrastructure errors into STORAGE_FAILURE
// booking errors; business BookingErrors pass through untouched.
func (e *Engine) wrapStorage(err error) error {
	if err == nil {
		return nil
	}
	var be *BookingError
	if errors.As(err, &be) {
		return err
	}
	return &BookingError{
		Code:    ErrCodeStorage,
		Message: fmt.Sprintf("booking transaction failed: %v", err),
		Err:     err,
	}
}

func conflictDetail(slot Slot, p Principal) string {
	if slot.Holder == p {
		return "you already hold this slot"
	}
	return fmt.Sprintf("already reserved by %s", slot.HolderWire())
}

func dedupe(keys []SlotKey) []SlotKey {
	seen := make(map[SlotKey]bool, len(keys))
	out := make([]SlotKey, 0, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
