package schedule

// EditableEntry is one (row, day) pair of the vertical edit list: a
// read projection of the sparse map, never stored.
type EditableEntry struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Value   int    `json:"value"`
}

// Edit is one merge instruction for a row. Qty 0 deletes the date from
// the map; anything else sets it. Interactive single-cell edits and
// assistant smart-fill batches both reduce to sequences of these.
type Edit struct {
	Date string `json:"date"`
	Qty  int    `json:"qty"`
}

// Unpivot turns the row's sparse map into the ordered edit list: one
// entry per scheduled day, following calendar order of dayCols, days
// with no (or zero) quantity skipped.
func Unpivot(row *PlanRow, dayCols []Column) []EditableEntry {
	var entries []EditableEntry
	for _, col := range dayCols {
		if col.Type != GranularityDay {
			continue
		}
		qty, ok := row.Quantities[col.Key]
		if !ok || qty == 0 {
			continue
		}
		entries = append(entries, EditableEntry{
			Date:    col.Key,
			Weekday: col.BottomHeader,
			Value:   qty,
		})
	}
	return entries
}

// ApplyBulkEdit merges the edits into a copy of the row, in order:
// a later edit for the same date wins, qty 0 removes the date (a
// removal of an absent date is a no-op, not an error). The input row
// is never mutated.
func ApplyBulkEdit(row *PlanRow, edits []Edit) *PlanRow {
	out := row.clone()
	for _, e := range edits {
		if e.Qty == 0 {
			delete(out.Quantities, e.Date)
		} else {
			out.Quantities[e.Date] = e.Qty
		}
	}
	return out
}
