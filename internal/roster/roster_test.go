package roster

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo keeps sessions in a map; enough to exercise the service
// without a database.
type fakeRepo struct {
	sessions map[string]Session
	order    []string
}

var errNotFound = errors.New("session not found")

func newFakeRepo() *fakeRepo {
	return &fakeRepo{sessions: make(map[string]Session)}
}

func (r *fakeRepo) InsertSession(_ context.Context, sess Session) error {
	r.sessions[sess.ID] = sess
	r.order = append(r.order, sess.ID)
	return nil
}

func (r *fakeRepo) ListSessions(_ context.Context) ([]Session, error) {
	out := []Session{}
	for _, id := range r.order {
		out = append(out, r.sessions[id])
	}
	return out, nil
}

func (r *fakeRepo) GetSession(_ context.Context, id string) (Session, error) {
	sess, ok := r.sessions[id]
	if !ok {
		return Session{}, errNotFound
	}
	return sess, nil
}

func (r *fakeRepo) UpdateSession(_ context.Context, sess Session) error {
	if _, ok := r.sessions[sess.ID]; !ok {
		return errNotFound
	}
	r.sessions[sess.ID] = sess
	return nil
}

func (r *fakeRepo) DeleteSession(_ context.Context, id string) error {
	if _, ok := r.sessions[id]; !ok {
		return errNotFound
	}
	delete(r.sessions, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func validInput() Input {
	return Input{
		Resource: "PC07",
		Student:  "Ana Souza",
		Day:      "12/05/2026",
		TimeIn:   "08:15",
		TimeOut:  "09:40",
	}
}

func TestRegister_ValidInput(t *testing.T) {
	svc := NewService(newFakeRepo())

	sess, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "PC07", sess.Resource)
	assert.Equal(t, "12/05/2026", sess.Day)
	assert.NotEmpty(t, sess.CreatedAt)
}

func TestRegister_RejectsMalformedInput(t *testing.T) {
	svc := NewService(newFakeRepo())

	mutations := map[string]func(*Input){
		"empty pc":      func(in *Input) { in.Resource = "  " },
		"empty student": func(in *Input) { in.Student = "" },
		"bad day":       func(in *Input) { in.Day = "2026-05-12" },
		"impossible":    func(in *Input) { in.Day = "31/02/2026" },
		"bad time in":   func(in *Input) { in.TimeIn = "8h15" },
		"bad time out":  func(in *Input) { in.TimeOut = "25:00" },
	}
	for name, mutate := range mutations {
		in := validInput()
		mutate(&in)
		_, err := svc.Register(context.Background(), in)
		assert.Error(t, err, name)
	}
}

func TestAmend_BlankFieldsKeepStoredValues(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	sess, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	amended, err := svc.Amend(context.Background(), sess.ID, Patch{TimeOut: "10:00"})
	require.NoError(t, err)
	assert.Equal(t, "10:00", amended.TimeOut)
	assert.Equal(t, sess.Student, amended.Student)
	assert.Equal(t, sess.Day, amended.Day)
	assert.Equal(t, sess.TimeIn, amended.TimeIn)
}

func TestAmend_ValidatesNonBlankFields(t *testing.T) {
	svc := NewService(newFakeRepo())
	sess, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.Amend(context.Background(), sess.ID, Patch{Day: "not a date"})
	assert.Error(t, err)

	// The rejected patch must not have touched the record.
	stored, err := svc.Sessions(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "12/05/2026", stored[0].Day)
}

func TestRemove(t *testing.T) {
	svc := NewService(newFakeRepo())
	sess, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), sess.ID))
	assert.ErrorIs(t, svc.Remove(context.Background(), sess.ID), errNotFound)
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay(" 01/02/2026 ")
	require.NoError(t, err)
	assert.Equal(t, "01/02/2026", day)

	_, err = ParseDay("2026/02/01")
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	clock, err := ParseClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", clock)

	_, err = ParseClock("9:05pm")
	assert.Error(t, err)
}
