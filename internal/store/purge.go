package store

import (
	"context"
	"fmt"
)

// Administrative purges. Clearing the slot table drops every row; the
// next load re-seeds a fully Available inventory, which is the only way
// a Reserved slot ever becomes Available again.

// PurgeBookings deletes the whole slot table.
func (s *Store) PurgeBookings(ctx context.Context) error {
	return s.purge(ctx, "slots")
}

// PurgeSessions deletes all attendance sessions.
func (s *Store) PurgeSessions(ctx context.Context) error {
	return s.purge(ctx, "sessions")
}

// PurgeReports deletes all class reports.
func (s *Store) PurgeReports(ctx context.Context) error {
	return s.purge(ctx, "reports")
}

// PurgeAll clears every table in one transaction.
func (s *Store) PurgeAll(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin purge transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"slots", "sessions", "reports"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("purge %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit purge transaction: %w", err)
	}
	return nil
}

func (s *Store) purge(ctx context.Context, table string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("purge %s: %w", table, err)
	}
	return nil
}
