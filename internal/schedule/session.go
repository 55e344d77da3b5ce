package schedule

// NoSelection marks the session state before any row is selected.
const NoSelection int64 = 0

// Token identifies the grid state an assistant request was issued
// against: the query generation and the row selected at that moment.
// A smart-fill response is merged only while both still match, so a
// late response can never land on the wrong row or a reloaded grid.
type Token struct {
	Generation uint64 `json:"generation"`
	RowID      int64  `json:"rowId"`
}

// Session tracks the edit surface tied to the selected row. The grid
// core is single-threaded, so the session needs no locking: staleness
// is an identity check, not a synchronization problem.
type Session struct {
	generation uint64
	selected   int64
}

// Reset starts a new query generation and clears the selection. Every
// token issued before the reset becomes stale.
func (s *Session) Reset() {
	s.generation++
	s.selected = NoSelection
}

// Select switches the selection to the given row. Re-selecting the
// current row is a no-op so dependent recomputation is not retriggered.
// Returns true when the selection actually changed.
func (s *Session) Select(rowID int64) bool {
	if s.selected == rowID {
		return false
	}
	s.selected = rowID
	return true
}

// Selected returns the current row id, or NoSelection.
func (s *Session) Selected() int64 { return s.selected }

// Issue tags an outgoing assistant request with the current state.
func (s *Session) Issue() Token {
	return Token{Generation: s.generation, RowID: s.selected}
}

// Current reports whether a response carrying t may still be applied.
func (s *Session) Current(t Token) bool {
	return t.Generation == s.generation &&
		t.RowID == s.selected &&
		t.RowID != NoSelection
}
