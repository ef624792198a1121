package store

import (
	"context"
	"path/filepath"
	"testing"

	"labsched/internal/schedule"
)

var (
	testResources = []schedule.ResourceID{"PC01", "PC02"}
	testWindows   = []schedule.TimeWindow{"08:00 - 09:00", "09:00 - 10:00"}
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "lab.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoad_SeedsEmptyStore(t *testing.T) {
	repo := testStore(t).Inventory(testResources, testWindows)

	inv, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if inv.Len() != 4 {
		t.Fatalf("seeded inventory has %d slots, want 4", inv.Len())
	}
	for _, s := range inv.Slots() {
		if s.Status != schedule.StatusAvailable {
			t.Errorf("seeded slot %s is %v, want Available", s.Key(), s.Status)
		}
		if s.Holder != "" {
			t.Errorf("seeded slot %s has holder %q, want unassigned", s.Key(), s.Holder)
		}
	}
}

func TestLoad_Idempotent(t *testing.T) {
	repo := testStore(t).Inventory(testResources, testWindows)

	first, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("first Load() failed: %v", err)
	}
	second, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("second Load() failed: %v", err)
	}

	a, b := first.Slots(), second.Slots()
	if len(a) != len(b) {
		t.Fatalf("loads differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("row %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestLoad_NeverRegeneratesExistingStore(t *testing.T) {
	st := testStore(t)
	repo := st.Inventory(testResources, testWindows)
	engine := schedule.NewEngine(repo)

	key := schedule.SlotKey{Resource: "PC01", Window: "08:00 - 09:00"}
	if err := engine.BookSingle(context.Background(), key, "Ana"); err != nil {
		t.Fatalf("BookSingle() failed: %v", err)
	}

	// A repo with a different configured shape must load the existing
	// table rather than reseeding over it.
	other := st.Inventory([]schedule.ResourceID{"PC01", "PC02", "PC03"}, testWindows)
	inv, err := other.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if inv.Len() != 4 {
		t.Fatalf("existing store was regenerated: %d slots, want 4", inv.Len())
	}
	slot, ok := inv.Lookup(key)
	if !ok || slot.Holder != "Ana" {
		t.Errorf("reservation lost across loads: %+v", slot)
	}
}

func TestBooking_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.db")

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	engine := schedule.NewEngine(s1.Inventory(testResources, testWindows))
	key := schedule.SlotKey{Resource: "PC01", Window: "08:00 - 09:00"}
	if err := engine.BookSingle(context.Background(), key, "Ana"); err != nil {
		t.Fatalf("BookSingle() failed: %v", err)
	}
	s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	inv, err := s2.Inventory(testResources, testWindows).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	reserved := inv.Reserved()
	if len(reserved) != 1 {
		t.Fatalf("reserved() returned %d rows, want 1", len(reserved))
	}
	got := reserved[0]
	if got.Resource != "PC01" || got.Window != "08:00 - 09:00" || got.Holder != "Ana" || got.Status != schedule.StatusReserved {
		t.Errorf("reserved row = %+v, want (PC01, 08:00 - 09:00, Ana, Reserved)", got)
	}
}

func TestBooking_PartialSuccessPersistsOnlyBookedSlots(t *testing.T) {
	st := testStore(t)
	repo := st.Inventory(testResources, testWindows)
	engine := schedule.NewEngine(repo)
	ctx := context.Background()

	held := schedule.SlotKey{Resource: "PC02", Window: "08:00 - 09:00"}
	if err := engine.BookSingle(ctx, held, "Ana"); err != nil {
		t.Fatalf("BookSingle() failed: %v", err)
	}

	outcomes, err := engine.BookMultiple(ctx, []schedule.SlotKey{
		{Resource: "PC01", Window: "08:00 - 09:00"},
		held,
	}, "Ana")
	if err != nil {
		t.Fatalf("BookMultiple() failed: %v", err)
	}
	if outcomes[0].Code != schedule.OutcomeBooked || outcomes[1].Code != schedule.OutcomeConflict {
		t.Fatalf("outcomes = %+v, want booked then conflict", outcomes)
	}

	inv, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got := len(inv.Reserved()); got != 2 {
		t.Errorf("reserved rows = %d, want 2 (PC01 newly booked, PC02 untouched)", got)
	}
	slot, _ := inv.Lookup(schedule.SlotKey{Resource: "PC01", Window: "08:00 - 09:00"})
	if slot.Holder != "Ana" {
		t.Errorf("PC01 holder = %q, want Ana", slot.Holder)
	}
}

func TestPurgeBookings_NextLoadReseeds(t *testing.T) {
	st := testStore(t)
	repo := st.Inventory(testResources, testWindows)
	engine := schedule.NewEngine(repo)
	ctx := context.Background()

	key := schedule.SlotKey{Resource: "PC01", Window: "08:00 - 09:00"}
	if err := engine.BookSingle(ctx, key, "Ana"); err != nil {
		t.Fatalf("BookSingle() failed: %v", err)
	}

	if err := st.PurgeBookings(ctx); err != nil {
		t.Fatalf("PurgeBookings() failed: %v", err)
	}

	inv, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() after purge failed: %v", err)
	}
	if inv.Len() != 4 {
		t.Fatalf("re-seeded inventory has %d slots, want 4", inv.Len())
	}
	if got := len(inv.Reserved()); got != 0 {
		t.Errorf("re-seeded inventory has %d reserved slots, want 0", got)
	}
}
