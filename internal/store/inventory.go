package store

import (
	"context"
	"database/sql"
	"fmt"

	"labsched/internal/schedule"
)

// Inventory binds the slot table to the booking engine's Repository
// contract. The resource set and daily windows are only used to seed an
// empty table; an existing table is loaded as-is, never regenerated.
func (s *Store) Inventory(resources []schedule.ResourceID, windows []schedule.TimeWindow) *InventoryRepo {
	return &InventoryRepo{store: s, resources: resources, windows: windows}
}

// InventoryRepo implements schedule.Repository over the slots table.
type InventoryRepo struct {
	store     *Store
	resources []schedule.ResourceID
	windows   []schedule.TimeWindow
}

// Transact runs fn against a freshly loaded inventory inside a single
// immediate transaction, committing the dirty slots iff fn returns nil.
// The transaction takes the write lock up front, so load → validate →
// mutate → persist is one critical section even across processes sharing
// the database file.
func (r *InventoryRepo) Transact(ctx context.Context, fn func(inv *schedule.Inventory) error) error {
	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback()

	inv, err := loadOrSeed(ctx, tx, r.resources, r.windows)
	if err != nil {
		return err
	}

	if err := fn(inv); err != nil {
		return err
	}

	for _, key := range inv.Dirty() {
		slot, ok := inv.Lookup(key)
		if !ok {
			return fmt.Errorf("dirty slot %s vanished from inventory", key)
		}
		res, err := tx.ExecContext(ctx, `
			UPDATE slots SET holder = ?, status = ?
			WHERE resource_id = ? AND time_window = ?
		`, slot.HolderWire(), slot.Status.String(), string(slot.Resource), string(slot.Window))
		if err != nil {
			return fmt.Errorf("update slot %s: %w", key, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("update slot %s: %w", key, err)
		}
		if n != 1 {
			return fmt.Errorf("update slot %s: %d rows affected", key, n)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit booking transaction: %w", err)
	}
	return nil
}

// Load returns the persisted inventory, seeding and persisting the full
// cross-product first if no table exists yet.
func (r *InventoryRepo) Load(ctx context.Context) (*schedule.Inventory, error) {
	var inv *schedule.Inventory
	err := r.Transact(ctx, func(loaded *schedule.Inventory) error {
		inv = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// Replace overwrites the whole slot table with the given inventory.
// Used by flat-file import; the swap is atomic from a reader's
// perspective.
func (r *InventoryRepo) Replace(ctx context.Context, inv *schedule.Inventory) error {
	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM slots"); err != nil {
		return fmt.Errorf("clear slots: %w", err)
	}
	if err := insertSlots(ctx, tx, inv.Slots()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace transaction: %w", err)
	}
	return nil
}

// loadOrSeed reads the slot table inside tx, generating and inserting the
// default cross-product when the table is empty. Seeding is idempotent:
// a populated table is returned untouched.
func loadOrSeed(ctx context.Context, tx *sql.Tx, resources []schedule.ResourceID, windows []schedule.TimeWindow) (*schedule.Inventory, error) {
	slots, err := selectSlots(ctx, tx)
	if err != nil {
		return nil, err
	}
	if len(slots) > 0 {
		return schedule.FromSlots(slots)
	}

	inv := schedule.Generate(resources, windows)
	if err := insertSlots(ctx, tx, inv.Slots()); err != nil {
		return nil, err
	}
	return inv, nil
}

func selectSlots(ctx context.Context, tx *sql.Tx) ([]schedule.Slot, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT resource_id, time_window, holder, status
		FROM slots
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query slots: %w", err)
	}
	defer rows.Close()

	var slots []schedule.Slot
	for rows.Next() {
		var resource, window, holder, status string
		if err := rows.Scan(&resource, &window, &holder, &status); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slot, err := wireSlot(resource, window, holder, status)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slots: %w", err)
	}
	return slots, nil
}

func insertSlots(ctx context.Context, tx *sql.Tx, slots []schedule.Slot) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO slots (resource_id, time_window, holder, status, position)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare slot insert: %w", err)
	}
	defer stmt.Close()

	for i, slot := range slots {
		_, err := stmt.ExecContext(ctx,
			string(slot.Resource),
			string(slot.Window),
			slot.HolderWire(),
			slot.Status.String(),
			i,
		)
		if err != nil {
			return fmt.Errorf("insert slot %s: %w", slot.Key(), err)
		}
	}
	return nil
}

// wireSlot converts persisted strings into a validated slot.
func wireSlot(resource, window, holder, status string) (schedule.Slot, error) {
	r, err := schedule.ParseResourceID(resource)
	if err != nil {
		return schedule.Slot{}, fmt.Errorf("stored slot: %w", err)
	}
	w, err := schedule.ParseTimeWindow(window)
	if err != nil {
		return schedule.Slot{}, fmt.Errorf("stored slot: %w", err)
	}
	st, err := schedule.ParseStatus(status)
	if err != nil {
		return schedule.Slot{}, fmt.Errorf("stored slot %s@%s: %w", resource, window, err)
	}
	slot := schedule.Slot{Resource: r, Window: w, Status: st}
	if holder != schedule.HolderNone && holder != "" {
		p, err := schedule.ParsePrincipal(holder)
		if err != nil {
			return schedule.Slot{}, fmt.Errorf("stored slot %s@%s: %w", resource, window, err)
		}
		slot.Holder = p
	}
	// Holder and status must pair up; a row breaking that is corrupt.
	if st == schedule.StatusReserved && slot.Holder == "" {
		return schedule.Slot{}, fmt.Errorf("stored slot %s@%s: reserved with no holder", resource, window)
	}
	if st == schedule.StatusAvailable && slot.Holder != "" {
		return schedule.Slot{}, fmt.Errorf("stored slot %s@%s: available with holder %q", resource, window, slot.Holder)
	}
	return slot, nil
}
