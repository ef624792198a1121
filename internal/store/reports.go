package store

import (
	"context"
	"fmt"

	"labsched/internal/report"
)

// InsertReport appends a class report.
func (s *Store) InsertReport(ctx context.Context, rep report.Report) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reports (id, teacher, body, created_at)
		VALUES (?, ?, ?, ?)
	`, rep.ID, rep.Teacher, rep.Body, rep.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// ListReports returns all class reports in insertion order.
// Returns an empty slice (not nil) when no records exist.
func (s *Store) ListReports(ctx context.Context) ([]report.Report, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, teacher, body, created_at
		FROM reports
		ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	reports := []report.Report{}
	for rows.Next() {
		var rep report.Report
		if err := rows.Scan(&rep.ID, &rep.Teacher, &rep.Body, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	return reports, nil
}
