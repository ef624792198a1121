package store

import (
	"encoding/csv"
	"fmt"
	"io"

	"labsched/internal/schedule"
)

// Flat-file interchange of the slot inventory, compatible with the
// four-column table the legacy system persisted: pc,horario,professor,status.

var csvHeader = []string{"pc", "horario", "professor", "status"}

// ExportInventoryCSV writes the inventory as a flat table in store order.
func ExportInventoryCSV(w io.Writer, inv *schedule.Inventory) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, slot := range inv.Slots() {
		record := []string{
			string(slot.Resource),
			string(slot.Window),
			slot.HolderWire(),
			slot.Status.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %s: %w", slot.Key(), err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ImportInventoryCSV parses a flat table back into an inventory,
// validating every field and rejecting duplicate slot identities.
func ImportInventoryCSV(r io.Reader) (*schedule.Inventory, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i, want := range csvHeader {
		if header[i] != want {
			return nil, fmt.Errorf("csv header column %d: got %q, want %q", i, header[i], want)
		}
	}

	var slots []schedule.Slot
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		slot, err := wireSlot(record[0], record[1], record[2], record[3])
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		slots = append(slots, slot)
	}

	return schedule.FromSlots(slots)
}
