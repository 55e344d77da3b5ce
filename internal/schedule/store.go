package schedule

import "strconv"

// Rows is the grid's row set. It is replaced wholesale on every query
// and edited copy-on-write: mutations return a new slice where only
// the touched row is a new object, so consumers can detect change by
// pointer identity.
type Rows []*PlanRow

// Find returns the row with the given id, or nil.
func (rs Rows) Find(id int64) *PlanRow {
	for _, r := range rs {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// SetQuantity parses raw as an integer quantity for one cell and
// returns the updated row set. Unparseable input counts as 0, and 0
// removes the day key instead of storing it, keeping the map sparse.
// The second result reports whether the row id was found.
func (rs Rows) SetQuantity(id int64, dayKey string, raw string) (Rows, bool) {
	idx := -1
	for i, r := range rs {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return rs, false
	}

	qty, err := strconv.Atoi(raw)
	if err != nil {
		qty = 0
	}

	row := rs[idx].clone()
	if qty == 0 {
		delete(row.Quantities, dayKey)
	} else {
		row.Quantities[dayKey] = qty
	}

	out := make(Rows, len(rs))
	copy(out, rs)
	out[idx] = row
	return out, true
}

// Replace swaps one row for its edited copy, preserving every other
// row's identity. Returns rs unchanged when the id is not present.
func (rs Rows) Replace(row *PlanRow) (Rows, bool) {
	for i, r := range rs {
		if r.ID == row.ID {
			out := make(Rows, len(rs))
			copy(out, rs)
			out[i] = row
			return out, true
		}
	}
	return rs, false
}
