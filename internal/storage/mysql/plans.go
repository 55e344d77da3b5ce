package mysql

import (
	"context"
	"fmt"

	"react-golang/internal/schedule"
	"react-golang/internal/storage"
)

// GetPlans loads the full row set for one grid query: every plan row
// matching the filter plus its scheduled quantities inside the horizon.
// The result replaces the previous row set wholesale.
func (s *Storage) GetPlans(ctx context.Context, filter storage.PlanFilter) (schedule.Rows, error) {
	const op = "storage.plans.GetPlans"

	stmt := `
		SELECT id, code, product_name, workshop, status
		FROM production_plans
	`
	var args []interface{}
	if filter.Workshop != "" {
		stmt += " WHERE workshop = ?"
		args = append(args, filter.Workshop)
	}
	stmt += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var plans schedule.Rows
	byID := make(map[int64]*schedule.PlanRow)
	for rows.Next() {
		var p schedule.PlanRow
		if err := rows.Scan(&p.ID, &p.Code, &p.ProductName, &p.Workshop, &p.Status); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		p.Quantities = make(map[string]int)
		plans = append(plans, &p)
		byID[p.ID] = &p
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.loadQuantities(ctx, byID, filter); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return plans, nil
}

// loadQuantities fills the sparse maps. Zero quantities are filtered
// out here too: absence means unscheduled, and a stray 0 row in the
// table must not break that invariant.
func (s *Storage) loadQuantities(ctx context.Context, byID map[int64]*schedule.PlanRow, filter storage.PlanFilter) error {
	const op = "storage.plans.loadQuantities"

	stmt := `
		SELECT plan_id, plan_day, qty
		FROM plan_quantities
		WHERE plan_day >= ? AND plan_day <= ?
	`
	rows, err := s.db.QueryContext(ctx, stmt, filter.From, filter.To)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			planID int64
			day    string
			qty    int
		)
		if err := rows.Scan(&planID, &day, &qty); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if qty == 0 {
			continue
		}
		if p, ok := byID[planID]; ok {
			p.Quantities[day] = qty
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
