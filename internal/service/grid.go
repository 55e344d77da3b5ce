package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"react-golang/internal/schedule"
	"react-golang/internal/storage"
)

// PlanStorage is what the grid service needs from persistence.
type PlanStorage interface {
	GetPlans(ctx context.Context, filter storage.PlanFilter) (schedule.Rows, error)
	GetPlanMaterials(ctx context.Context, planID int64) ([]storage.Material, error)
	GetWorkshops(ctx context.Context) ([]string, error)
	SavePlans(ctx context.Context, plans schedule.Rows) error
}

// FillPlanner turns a natural-language instruction into an edit batch.
type FillPlanner interface {
	PlanEdits(ctx context.Context, referenceDate, instruction string) ([]schedule.Edit, error)
}

var (
	ErrRowNotFound  = errors.New("plan row not found")
	ErrNoSelection  = errors.New("no row selected")
	ErrStaleRequest = errors.New("grid state changed since the request was issued")
)

// GridService owns the live grid state: the current query, its row
// set, the derived column sets and the selection session. Row edits
// are copy-on-write, so readers holding an older snapshot stay valid;
// the mutex only serializes the swap.
type GridService struct {
	storage PlanStorage
	planner FillPlanner
	horizon int

	mu      sync.Mutex
	refDate time.Time
	mode    schedule.Granularity
	rows    schedule.Rows
	session schedule.Session
}

func NewGridService(storage PlanStorage, planner FillPlanner, horizonDays int) *GridService {
	if horizonDays <= 0 {
		horizonDays = schedule.HorizonDays
	}
	return &GridService{storage: storage, planner: planner, horizon: horizonDays}
}

// GridSnapshot is one query result: everything the frontend needs to
// render the grid.
type GridSnapshot struct {
	Columns   []schedule.Column `json:"columns"`
	Rows      schedule.Rows     `json:"rows"`
	Layout    schedule.Layout   `json:"layout"`
	Workshops []string          `json:"workshops"`
	Token     schedule.Token    `json:"token"`
}

// Query reloads the grid for (refDate, mode): columns are regenerated,
// the row set is replaced wholesale and the selection is reset, which
// also invalidates every in-flight assistant request.
func (g *GridService) Query(ctx context.Context, refDate time.Time, mode schedule.Granularity, workshop string) (*GridSnapshot, error) {
	const op = "service.grid.Query"

	filter := storage.PlanFilter{
		From:     refDate.Format(schedule.DayKeyLayout),
		To:       refDate.AddDate(0, 0, g.horizon-1).Format(schedule.DayKeyLayout),
		Workshop: workshop,
	}

	var (
		rows      schedule.Rows
		workshops []string
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		rows, err = g.storage.GetPlans(egCtx, filter)
		return err
	})
	eg.Go(func() error {
		var err error
		workshops, err = g.storage.GetWorkshops(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.refDate = refDate
	g.mode = mode
	g.rows = rows
	g.session.Reset()

	return &GridSnapshot{
		Columns:   schedule.GenerateColumns(refDate, mode, g.horizon),
		Rows:      rows,
		Layout:    schedule.FrozenLayout(schedule.DefaultFrozenWidths, mode),
		Workshops: workshops,
		Token:     g.session.Issue(),
	}, nil
}

// RowDetail is the edit surface for the selected row: the unpivoted
// entry list, the BOM materials and the token smart-fill must echo.
type RowDetail struct {
	Row       *schedule.PlanRow        `json:"row"`
	Entries   []schedule.EditableEntry `json:"entries"`
	Materials []storage.Material       `json:"materials"`
	Token     schedule.Token           `json:"token"`
}

// SelectRow moves the selection and loads the row's detail view.
// Selecting the already-selected row skips nothing observable here
// (materials are re-read), but the session generation stays put so
// outstanding smart-fill requests for the row remain valid.
func (g *GridService) SelectRow(ctx context.Context, id int64) (*RowDetail, error) {
	const op = "service.grid.SelectRow"

	g.mu.Lock()
	row := g.rows.Find(id)
	if row == nil {
		g.mu.Unlock()
		return nil, ErrRowNotFound
	}
	g.session.Select(id)
	token := g.session.Issue()
	refDate := g.refDate
	g.mu.Unlock()

	materials, err := g.storage.GetPlanMaterials(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	dayCols := schedule.GenerateColumns(refDate, schedule.GranularityDay, g.horizon)
	return &RowDetail{
		Row:       row,
		Entries:   schedule.Unpivot(row, dayCols),
		Materials: materials,
		Token:     token,
	}, nil
}

// SetCell applies one interactive cell edit. Raw value semantics live
// in schedule.Rows: unparseable or zero input deletes the day key.
func (g *GridService) SetCell(id int64, dayKey, raw string) (*schedule.PlanRow, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	rows, ok := g.rows.SetQuantity(id, dayKey, raw)
	if !ok {
		return nil, ErrRowNotFound
	}
	g.rows = rows
	return rows.Find(id), nil
}

// BulkEdit merges an explicit edit batch into one row.
func (g *GridService) BulkEdit(id int64, edits []schedule.Edit) (*schedule.PlanRow, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	row := g.rows.Find(id)
	if row == nil {
		return nil, ErrRowNotFound
	}
	edited := schedule.ApplyBulkEdit(row, edits)
	g.rows, _ = g.rows.Replace(edited)
	return edited, nil
}

// UnpivotRow returns the ordered edit list for one row against the
// current query's day columns.
func (g *GridService) UnpivotRow(id int64) ([]schedule.EditableEntry, error) {
	g.mu.Lock()
	row := g.rows.Find(id)
	refDate := g.refDate
	g.mu.Unlock()

	if row == nil {
		return nil, ErrRowNotFound
	}
	dayCols := schedule.GenerateColumns(refDate, schedule.GranularityDay, g.horizon)
	return schedule.Unpivot(row, dayCols), nil
}

// SmartFill runs the assistant planner for the selected row. The token
// is checked twice: before spending a model call on a stale request,
// and again at merge time, because the selection or the query may have
// moved while the call was in flight. A stale response is discarded
// without touching any row.
func (g *GridService) SmartFill(ctx context.Context, token schedule.Token, instruction string) (*schedule.PlanRow, error) {
	const op = "service.grid.SmartFill"

	g.mu.Lock()
	if !g.session.Current(token) {
		g.mu.Unlock()
		return nil, ErrStaleRequest
	}
	refDate := g.refDate
	g.mu.Unlock()

	edits, err := g.planner.PlanEdits(ctx, refDate.Format(schedule.DayKeyLayout), instruction)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.session.Current(token) {
		return nil, ErrStaleRequest
	}
	row := g.rows.Find(token.RowID)
	if row == nil {
		return nil, ErrRowNotFound
	}

	edited := schedule.ApplyBulkEdit(row, edits)
	g.rows, _ = g.rows.Replace(edited)
	return edited, nil
}

// Rows returns the current row set (a copy-on-write snapshot, safe to
// read after the lock is released).
func (g *GridService) Rows() schedule.Rows {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rows
}

// View returns the current query parameters.
func (g *GridService) View() (time.Time, schedule.Granularity) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.refDate, g.mode
}

// Horizon returns the configured horizon length in days.
func (g *GridService) Horizon() int { return g.horizon }

// Save hands the current row set wholesale to persistence.
func (g *GridService) Save(ctx context.Context) (int, error) {
	const op = "service.grid.Save"

	rows := g.Rows()
	if err := g.storage.SavePlans(ctx, rows); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return len(rows), nil
}
