package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"labsched/internal/roster"
)

// ErrSessionNotFound is returned when a session id resolves to no record.
var ErrSessionNotFound = errors.New("session not found")

// InsertSession appends an attendance session record.
func (s *Store) InsertSession(ctx context.Context, sess roster.Session) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, resource_id, student, day, time_in, time_out, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, sess.ID, sess.Resource, sess.Student, sess.Day, sess.TimeIn, sess.TimeOut, sess.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// ListSessions returns all attendance sessions in insertion order.
// Returns an empty slice (not nil) when no records exist.
func (s *Store) ListSessions(ctx context.Context) ([]roster.Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, resource_id, student, day, time_in, time_out, created_at
		FROM sessions
		ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []roster.Session{}
	for rows.Next() {
		var sess roster.Session
		if err := rows.Scan(&sess.ID, &sess.Resource, &sess.Student, &sess.Day, &sess.TimeIn, &sess.TimeOut, &sess.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

// GetSession resolves a session by id.
func (s *Store) GetSession(ctx context.Context, id string) (roster.Session, error) {
	var sess roster.Session
	err := s.db.QueryRowContext(ctx, `
		SELECT id, resource_id, student, day, time_in, time_out, created_at
		FROM sessions WHERE id = ?
	`, id).Scan(&sess.ID, &sess.Resource, &sess.Student, &sess.Day, &sess.TimeIn, &sess.TimeOut, &sess.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return roster.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return roster.Session{}, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

// UpdateSession overwrites a session record in place.
func (s *Store) UpdateSession(ctx context.Context, sess roster.Session) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE sessions
		SET resource_id = ?, student = ?, day = ?, time_in = ?, time_out = ?
		WHERE id = ?
	`, sess.Resource, sess.Student, sess.Day, sess.TimeIn, sess.TimeOut, sess.ID)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// DeleteSession removes a session record.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}
