package mysql

import (
	"context"
	"fmt"

	"react-golang/internal/storage"
)

// GetPlanMaterials loads the BOM detail rows for one plan.
func (s *Storage) GetPlanMaterials(ctx context.Context, planID int64) ([]storage.Material, error) {
	const op = "storage.materials.GetPlanMaterials"

	stmt := `
		SELECT id, material_code, material_name, unit, required_qty, inventory
		FROM plan_materials
		WHERE plan_id = ?
		ORDER BY material_code
	`
	rows, err := s.db.QueryContext(ctx, stmt, planID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var materials []storage.Material
	for rows.Next() {
		var m storage.Material
		if err := rows.Scan(&m.ID, &m.MaterialCode, &m.MaterialName, &m.Unit, &m.RequiredQty, &m.Inventory); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		materials = append(materials, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return materials, nil
}

// GetWorkshops returns the distinct workshop names for the filter UI.
func (s *Storage) GetWorkshops(ctx context.Context) ([]string, error) {
	const op = "storage.materials.GetWorkshops"

	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT workshop FROM production_plans ORDER BY workshop`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var workshops []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		workshops = append(workshops, w)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return workshops, nil
}
