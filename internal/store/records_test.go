package store

import (
	"context"
	"errors"
	"testing"

	"labsched/internal/report"
	"labsched/internal/roster"
)

func TestSessions_CRUD(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	sess := roster.Session{
		ID:        "s-1",
		Resource:  "PC07",
		Student:   "Ana Souza",
		Day:       "12/05/2026",
		TimeIn:    "08:15",
		TimeOut:   "09:40",
		CreatedAt: "2026-05-12T08:15:00Z",
	}
	if err := st.InsertSession(ctx, sess); err != nil {
		t.Fatalf("InsertSession() failed: %v", err)
	}

	got, err := st.GetSession(ctx, "s-1")
	if err != nil {
		t.Fatalf("GetSession() failed: %v", err)
	}
	if got != sess {
		t.Errorf("GetSession() = %+v, want %+v", got, sess)
	}

	sess.TimeOut = "10:00"
	if err := st.UpdateSession(ctx, sess); err != nil {
		t.Fatalf("UpdateSession() failed: %v", err)
	}

	sessions, err := st.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions() failed: %v", err)
	}
	if len(sessions) != 1 || sessions[0].TimeOut != "10:00" {
		t.Errorf("ListSessions() = %+v", sessions)
	}

	if err := st.DeleteSession(ctx, "s-1"); err != nil {
		t.Fatalf("DeleteSession() failed: %v", err)
	}
	if _, err := st.GetSession(ctx, "s-1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("GetSession() after delete = %v, want ErrSessionNotFound", err)
	}
}

func TestSessions_NotFound(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	if err := st.UpdateSession(ctx, roster.Session{ID: "ghost"}); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("UpdateSession() = %v, want ErrSessionNotFound", err)
	}
	if err := st.DeleteSession(ctx, "ghost"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("DeleteSession() = %v, want ErrSessionNotFound", err)
	}
}

func TestReports_AppendAndList(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	reports, err := st.ListReports(ctx)
	if err != nil {
		t.Fatalf("ListReports() failed: %v", err)
	}
	if reports == nil || len(reports) != 0 {
		t.Errorf("empty store: ListReports() = %#v, want empty non-nil slice", reports)
	}

	for _, rep := range []report.Report{
		{ID: "r-1", Teacher: "Carla", Body: "Turma concluiu o exercício 3.", CreatedAt: "2026-05-12T10:00:00Z"},
		{ID: "r-2", Teacher: "Bruno", Body: "Revisão de conteúdo.", CreatedAt: "2026-05-12T11:00:00Z"},
	} {
		if err := st.InsertReport(ctx, rep); err != nil {
			t.Fatalf("InsertReport(%s) failed: %v", rep.ID, err)
		}
	}

	reports, err = st.ListReports(ctx)
	if err != nil {
		t.Fatalf("ListReports() failed: %v", err)
	}
	if len(reports) != 2 || reports[0].ID != "r-1" || reports[1].ID != "r-2" {
		t.Errorf("ListReports() = %+v, want insertion order r-1, r-2", reports)
	}
}

func TestPurgeAll_ClearsEverything(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	if _, err := st.Inventory(testResources, testWindows).Load(ctx); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if err := st.InsertReport(ctx, report.Report{ID: "r-1", Teacher: "Carla", Body: "x", CreatedAt: "2026-05-12T10:00:00Z"}); err != nil {
		t.Fatalf("InsertReport() failed: %v", err)
	}
	if err := st.InsertSession(ctx, roster.Session{ID: "s-1", Resource: "PC01", Student: "Ana", Day: "12/05/2026", TimeIn: "08:00", TimeOut: "09:00", CreatedAt: "2026-05-12T08:00:00Z"}); err != nil {
		t.Fatalf("InsertSession() failed: %v", err)
	}

	if err := st.PurgeAll(ctx); err != nil {
		t.Fatalf("PurgeAll() failed: %v", err)
	}

	for _, table := range []string{"slots", "sessions", "reports"} {
		var count int
		if err := st.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if count != 0 {
			t.Errorf("table %s has %d rows after PurgeAll, want 0", table, count)
		}
	}
}
