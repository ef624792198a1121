// Package report keeps the append-only log of free-text class reports.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Report is one class report entry.
type Report struct {
	ID        string `json:"id"`
	Teacher   string `json:"teacher"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

// Repository is the persistence contract for reports.
type Repository interface {
	InsertReport(ctx context.Context, rep Report) error
	ListReports(ctx context.Context) ([]Report, error)
}

// Service appends and lists class reports.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a report service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Append validates and stores a new report.
func (s *Service) Append(ctx context.Context, teacher, body string) (Report, error) {
	teacher = strings.TrimSpace(teacher)
	body = strings.TrimSpace(body)
	if teacher == "" {
		return Report{}, fmt.Errorf("teacher name is empty")
	}
	if body == "" {
		return Report{}, fmt.Errorf("report body is empty")
	}

	rep := Report{
		ID:        uuid.NewString(),
		Teacher:   teacher,
		Body:      body,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}
	if err := s.repo.InsertReport(ctx, rep); err != nil {
		return Report{}, err
	}
	return rep, nil
}

// Reports lists all entries in insertion order.
func (s *Service) Reports(ctx context.Context) ([]Report, error) {
	return s.repo.ListReports(ctx)
}
