// Package roster manages attendance session records: which student sat
// at which PC, on which day, from when to when.
//
// Records carry stable UUID identities; positional indices shown by the
// console are a display convenience only. Raw text is parsed and
// validated at this boundary, so storage only ever sees well-formed
// dates and clock times.
package roster

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Legacy date and clock layouts: DD/MM/YYYY and HH:MM.
const (
	dayLayout   = "02/01/2006"
	clockLayout = "15:04"
)

// Session is one attendance record.
type Session struct {
	ID        string `json:"id"`
	Resource  string `json:"pc"`
	Student   string `json:"student"`
	Day       string `json:"day"`
	TimeIn    string `json:"time_in"`
	TimeOut   string `json:"time_out"`
	CreatedAt string `json:"created_at"`
}

// Input is a raw registration request, validated by Register.
type Input struct {
	Resource string
	Student  string
	Day      string
	TimeIn   string
	TimeOut  string
}

// Patch is a partial update; blank fields keep the current value,
// matching the legacy edit flow.
type Patch struct {
	Resource string
	Student  string
	Day      string
	TimeIn   string
	TimeOut  string
}

// Repository is the persistence contract for sessions.
type Repository interface {
	InsertSession(ctx context.Context, sess Session) error
	ListSessions(ctx context.Context) ([]Session, error)
	GetSession(ctx context.Context, id string) (Session, error)
	UpdateSession(ctx context.Context, sess Session) error
	DeleteSession(ctx context.Context, id string) error
}

// Service applies attendance operations against a Repository.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates an attendance service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Register validates and stores a new attendance session.
func (s *Service) Register(ctx context.Context, in Input) (Session, error) {
	sess := Session{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}

	var err error
	if sess.Resource, err = parseSerial(in.Resource); err != nil {
		return Session{}, err
	}
	if sess.Student, err = parseName(in.Student); err != nil {
		return Session{}, err
	}
	if sess.Day, err = ParseDay(in.Day); err != nil {
		return Session{}, err
	}
	if sess.TimeIn, err = ParseClock(in.TimeIn); err != nil {
		return Session{}, err
	}
	if sess.TimeOut, err = ParseClock(in.TimeOut); err != nil {
		return Session{}, err
	}

	if err := s.repo.InsertSession(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Sessions lists all attendance records in insertion order.
func (s *Service) Sessions(ctx context.Context) ([]Session, error) {
	return s.repo.ListSessions(ctx)
}

// Amend applies a partial update to an existing session. Blank patch
// fields keep the stored value; non-blank fields are validated before
// anything is written.
func (s *Service) Amend(ctx context.Context, id string, patch Patch) (Session, error) {
	sess, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return Session{}, err
	}

	if patch.Resource != "" {
		if sess.Resource, err = parseSerial(patch.Resource); err != nil {
			return Session{}, err
		}
	}
	if patch.Student != "" {
		if sess.Student, err = parseName(patch.Student); err != nil {
			return Session{}, err
		}
	}
	if patch.Day != "" {
		if sess.Day, err = ParseDay(patch.Day); err != nil {
			return Session{}, err
		}
	}
	if patch.TimeIn != "" {
		if sess.TimeIn, err = ParseClock(patch.TimeIn); err != nil {
			return Session{}, err
		}
	}
	if patch.TimeOut != "" {
		if sess.TimeOut, err = ParseClock(patch.TimeOut); err != nil {
			return Session{}, err
		}
	}

	if err := s.repo.UpdateSession(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Remove deletes a session record.
func (s *Service) Remove(ctx context.Context, id string) error {
	return s.repo.DeleteSession(ctx, id)
}

// ParseDay validates a DD/MM/YYYY date and returns the canonical form.
func ParseDay(raw string) (string, error) {
	t, err := time.Parse(dayLayout, strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("invalid date %q: want DD/MM/YYYY", raw)
	}
	return t.Format(dayLayout), nil
}

// ParseClock validates an HH:MM clock time and returns the canonical form.
func ParseClock(raw string) (string, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("invalid time %q: want HH:MM", raw)
	}
	return t.Format(clockLayout), nil
}

func parseSerial(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("pc serial is empty")
	}
	return s, nil
}

func parseName(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("student name is empty")
	}
	return s, nil
}
