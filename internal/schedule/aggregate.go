package schedule

// WeekTotal sums the row's quantities over the week column's included
// days, treating absent days as 0. ok is false when the column is not
// a week column or when the sum is 0, so the grid can render an empty
// cell instead of a literal "0".
func WeekTotal(row *PlanRow, col Column) (total int, ok bool) {
	if !col.IsWeek() {
		return 0, false
	}
	for _, day := range col.IncludedDays {
		total += row.Quantities[day]
	}
	return total, total > 0
}

// LastActiveIndex scans the ordered day columns and returns the index
// of the chronologically latest scheduled day, or -1 when the row has
// none. It only has meaning in day granularity; the occupancy bar is
// not rendered for week columns, so callers pass nil there and get -1.
//
// Gaps between the first and last scheduled day are permitted and not
// inspected: the span is a render treatment, not a scheduling rule.
func LastActiveIndex(row *PlanRow, dayCols []Column) int {
	last := -1
	for i, col := range dayCols {
		if col.Type != GranularityDay {
			continue
		}
		if _, scheduled := row.Quantities[col.Key]; scheduled {
			last = i
		}
	}
	return last
}
