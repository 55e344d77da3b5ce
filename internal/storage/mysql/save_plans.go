package mysql

import (
	"context"
	"fmt"

	"react-golang/internal/schedule"
)

// SavePlans persists the current row set wholesale: each plan's status
// is updated and its quantities replaced with the sparse map as-is,
// all in one transaction.
func (s *Storage) SavePlans(ctx context.Context, plans schedule.Rows) error {
	const op = "storage.plans.SavePlans"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	updStmt, err := tx.PrepareContext(ctx, `
		UPDATE production_plans SET status = ? WHERE id = ?
	`)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer updStmt.Close()

	delStmt, err := tx.PrepareContext(ctx, `
		DELETE FROM plan_quantities WHERE plan_id = ?
	`)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer delStmt.Close()

	insStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO plan_quantities (plan_id, plan_day, qty) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer insStmt.Close()

	for _, p := range plans {
		if _, err := updStmt.ExecContext(ctx, p.Status, p.ID); err != nil {
			return fmt.Errorf("%s: update plan %d: %w", op, p.ID, err)
		}
		if _, err := delStmt.ExecContext(ctx, p.ID); err != nil {
			return fmt.Errorf("%s: clear quantities %d: %w", op, p.ID, err)
		}
		for day, qty := range p.Quantities {
			if qty == 0 {
				continue
			}
			if _, err := insStmt.ExecContext(ctx, p.ID, day, qty); err != nil {
				return fmt.Errorf("%s: insert quantity %d/%s: %w", op, p.ID, day, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}
	return nil
}
