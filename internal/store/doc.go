// Package store provides SQLite-backed durable storage for the lab
// console: the slot inventory, attendance sessions and class reports.
//
// The slot table is the shared resource across process invocations, so
// every booking runs as one immediate transaction: load fresh, validate,
// mutate, commit. Readers never observe a partially written table and a
// second writer's committed reservation is never silently overwritten.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for cross-process locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Slot rows carry an explicit position column so the presentation layer's
// positional indices are stable across loads; the booking engine itself
// only ever addresses slots by (resource_id, time_window).
package store
