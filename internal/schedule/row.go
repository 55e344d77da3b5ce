package schedule

// PlanRow is one production plan of the master grid. Quantities is a
// sparse map from day key to planned quantity: a key is present only
// when its quantity is non-zero, absence means unscheduled.
type PlanRow struct {
	ID          int64          `json:"id"`
	Code        string         `json:"code"`
	ProductName string         `json:"productName"`
	Workshop    string         `json:"workshop"`
	Status      string         `json:"status"`
	Quantities  map[string]int `json:"planData"`
}

// TotalQuantity sums every scheduled day of the row.
func (r *PlanRow) TotalQuantity() int {
	total := 0
	for _, q := range r.Quantities {
		total += q
	}
	return total
}

// clone returns a copy of the row with its own quantities map, so the
// original can keep being read while the copy is edited.
func (r *PlanRow) clone() *PlanRow {
	cp := *r
	cp.Quantities = make(map[string]int, len(r.Quantities))
	for k, v := range r.Quantities {
		cp.Quantities[k] = v
	}
	return &cp
}
