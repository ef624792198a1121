package cli

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labsched/internal/schedule"
)

func fixtureListing() SlotListing {
	inv := schedule.Generate(
		[]schedule.ResourceID{"PC01", "PC02"},
		[]schedule.TimeWindow{"08:00 - 09:00"},
	)
	return SlotListing{Title: "Available slots", Slots: slotViews(inv.Available())}
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestSlotListing_TextGolden(t *testing.T) {
	g := newGoldie(t)
	g.Assert(t, "slots_text", []byte(fixtureListing().renderText()))
}

func TestSlotListing_JSONGolden(t *testing.T) {
	data, err := json.MarshalIndent(fixtureListing(), "", "  ")
	require.NoError(t, err)

	g := newGoldie(t)
	g.Assert(t, "slots_json", data)
}

func TestOutcomeListing_TextGolden(t *testing.T) {
	listing := OutcomeListing{
		Principal: "professor",
		Outcomes: []schedule.Outcome{
			{Key: schedule.SlotKey{Resource: "PC01", Window: "08:00 - 09:00"}, Code: schedule.OutcomeBooked},
			{Key: schedule.SlotKey{Resource: "PC02", Window: "08:00 - 09:00"}, Code: schedule.OutcomeConflict, Detail: "already reserved by Ana"},
		},
	}

	g := newGoldie(t)
	g.Assert(t, "outcomes_text", []byte(listing.renderText()))
}

func TestSlotListing_EmptyText(t *testing.T) {
	listing := SlotListing{Title: "Reserved slots"}
	assert.Equal(t, "Reserved slots\n  (none)\n", listing.renderText())
}

func TestOutcomeListing_Booked(t *testing.T) {
	listing := OutcomeListing{Outcomes: []schedule.Outcome{
		{Code: schedule.OutcomeConflict},
	}}
	assert.False(t, listing.booked())

	listing.Outcomes = append(listing.Outcomes, schedule.Outcome{Code: schedule.OutcomeBooked})
	assert.True(t, listing.booked())
}
