package schedule

import (
	"errors"
	"fmt"
	"strings"
)

// BookingError represents a whole-request booking failure.
//
// Per-slot failures (unknown identity, already reserved) are reported as
// Outcome values so a multi-slot request can partially succeed; a
// BookingError means no slot was mutated.
type BookingError struct {
	// Code identifies the failure category.
	Code BookingErrorCode

	// Message is a human-readable description.
	Message string

	// Key identifies the affected slot, when one applies.
	Key *SlotKey

	// Windows lists the distinct windows of a mismatched request.
	Windows []TimeWindow

	// Err is the underlying storage error, if any.
	Err error
}

// BookingErrorCode categorizes booking failures.
type BookingErrorCode string

const (
	// ErrCodeNotFound indicates the identity resolves to no slot.
	ErrCodeNotFound BookingErrorCode = "NOT_FOUND"

	// ErrCodeConflict indicates the slot is already reserved.
	ErrCodeConflict BookingErrorCode = "CONFLICT"

	// ErrCodeWindowMismatch indicates a multi-slot request spanning more
	// than one time window. Rejected wholesale before any evaluation.
	ErrCodeWindowMismatch BookingErrorCode = "WINDOW_MISMATCH"

	// ErrCodeStorage indicates the persistence layer failed; the store
	// reflects the pre-transaction state.
	ErrCodeStorage BookingErrorCode = "STORAGE_FAILURE"
)

// Error implements the error interface.
func (e *BookingError) Error() string {
	if e.Key != nil {
		return fmt.Sprintf("%s: %s (slot=%s)", e.Code, e.Message, e.Key)
	}
	if len(e.Windows) > 0 {
		labels := make([]string, len(e.Windows))
		for i, w := range e.Windows {
			labels[i] = string(w)
		}
		return fmt.Sprintf("%s: %s (windows=%s)", e.Code, e.Message, strings.Join(labels, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if the error is a slot resolution failure.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	return codeOf(err) == ErrCodeNotFound
}

// IsConflict returns true if the error is a reservation conflict.
func IsConflict(err error) bool {
	return codeOf(err) == ErrCodeConflict
}

// IsWindowMismatch returns true if the error is a mismatched-window
// request rejection.
func IsWindowMismatch(err error) bool {
	return codeOf(err) == ErrCodeWindowMismatch
}

// IsStorageFailure returns true if the error came from the persistence
// layer rather than a business rule.
func IsStorageFailure(err error) bool {
	return codeOf(err) == ErrCodeStorage
}

func codeOf(err error) BookingErrorCode {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
