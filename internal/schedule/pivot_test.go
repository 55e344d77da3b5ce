package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnpivot_CalendarOrder(t *testing.T) {
	dayCols := GenerateColumns(time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC), GranularityDay, HorizonDays)

	// Insertion order of the sparse map must not leak into the output.
	row := &PlanRow{ID: 1, Quantities: map[string]int{
		"2024-06-01": 7,
		"2024-05-20": 100,
		"2024-05-24": 40,
	}}

	entries := Unpivot(row, dayCols)
	require.Len(t, entries, 3)
	assert.Equal(t, EditableEntry{Date: "2024-05-20", Weekday: "周一", Value: 100}, entries[0])
	assert.Equal(t, EditableEntry{Date: "2024-05-24", Weekday: "周五", Value: 40}, entries[1])
	assert.Equal(t, EditableEntry{Date: "2024-06-01", Weekday: "周六", Value: 7}, entries[2])
}

func TestUnpivot_EmptyRow(t *testing.T) {
	dayCols := GenerateColumns(time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC), GranularityDay, HorizonDays)
	row := &PlanRow{ID: 1, Quantities: map[string]int{}}
	assert.Empty(t, Unpivot(row, dayCols))
}

func TestApplyBulkEdit(t *testing.T) {
	row := &PlanRow{ID: 1, Quantities: map[string]int{"2024-05-20": 100}}

	out := ApplyBulkEdit(row, []Edit{
		{Date: "2024-05-21", Qty: 50},
		{Date: "2024-05-20", Qty: 0},
	})

	assert.Equal(t, map[string]int{"2024-05-21": 50}, out.Quantities)
	// Source row untouched.
	assert.Equal(t, map[string]int{"2024-05-20": 100}, row.Quantities)
}

func TestApplyBulkEdit_LastWriteWins(t *testing.T) {
	row := &PlanRow{ID: 1, Quantities: map[string]int{}}

	out := ApplyBulkEdit(row, []Edit{
		{Date: "2024-05-21", Qty: 50},
		{Date: "2024-05-21", Qty: 80},
	})
	assert.Equal(t, 80, out.Quantities["2024-05-21"])

	out = ApplyBulkEdit(row, []Edit{
		{Date: "2024-05-21", Qty: 50},
		{Date: "2024-05-21", Qty: 0},
	})
	assert.NotContains(t, out.Quantities, "2024-05-21")
}

func TestApplyBulkEdit_ZeroOnAbsentDateIsNoop(t *testing.T) {
	row := &PlanRow{ID: 1, Quantities: map[string]int{"2024-05-20": 10}}
	out := ApplyBulkEdit(row, []Edit{{Date: "2024-06-01", Qty: 0}})
	assert.Equal(t, row.Quantities, out.Quantities)
}

func TestUnpivot_ApplyBulkEdit_RoundTrip(t *testing.T) {
	dayCols := GenerateColumns(time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC), GranularityDay, HorizonDays)
	row := &PlanRow{ID: 1, Quantities: map[string]int{
		"2024-05-20": 100,
		"2024-05-25": 40,
		"2024-07-01": 3,
	}}

	entries := Unpivot(row, dayCols)
	edits := make([]Edit, len(entries))
	for i, e := range entries {
		edits[i] = Edit{Date: e.Date, Qty: e.Value}
	}

	out := ApplyBulkEdit(row, edits)
	assert.Equal(t, row.Quantities, out.Quantities)
}
