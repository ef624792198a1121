// Package schedule implements the reservation core of the lab console.
//
// The package is built around three ideas:
//
//   - Inventory: the ordered table of bookable (resource, time window)
//     slots, uniquely identified by that pair. Generated as the full
//     cross-product of the configured resources and daily windows, all
//     starting out Available.
//
//   - Projections: Available, Reserved and GroupedByWindow are pure reads
//     over an Inventory snapshot; they never reload or mutate.
//
//   - Engine: applies single- and multi-slot booking transactions through
//     a Repository. Every transaction loads a fresh inventory, validates
//     against that freshly loaded state and commits in one step, so a
//     reservation committed by another process is never silently
//     overwritten.
//
// Booking failures are values, not panics: per-slot results carry an
// OutcomeCode, and whole-request failures are typed BookingErrors with
// string codes so callers can report exactly which slots were booked and
// which were not.
//
// The persisted wire strings ("Disponível", "Agendado", "livre") are kept
// compatible with tables produced by the legacy system, so exported flat
// files round-trip.
package schedule
