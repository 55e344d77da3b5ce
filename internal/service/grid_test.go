package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"react-golang/internal/schedule"
	"react-golang/internal/storage"
)

type MockPlanStorage struct {
	mock.Mock
}

func (m *MockPlanStorage) GetPlans(ctx context.Context, filter storage.PlanFilter) (schedule.Rows, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(schedule.Rows), args.Error(1)
}

func (m *MockPlanStorage) GetPlanMaterials(ctx context.Context, planID int64) ([]storage.Material, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Material), args.Error(1)
}

func (m *MockPlanStorage) GetWorkshops(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPlanStorage) SavePlans(ctx context.Context, plans schedule.Rows) error {
	args := m.Called(ctx, plans)
	return args.Error(0)
}

type MockPlanner struct {
	mock.Mock
}

func (m *MockPlanner) PlanEdits(ctx context.Context, referenceDate, instruction string) ([]schedule.Edit, error) {
	args := m.Called(ctx, referenceDate, instruction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schedule.Edit), args.Error(1)
}

func fixtureRows() schedule.Rows {
	return schedule.Rows{
		{ID: 1, Code: "MPS-2405-001", ProductName: "伺服电机 X系列", Workshop: "一车间", Status: "生产中",
			Quantities: map[string]int{"2024-05-20": 100}},
		{ID: 2, Code: "MPS-2405-002", ProductName: "控制模组 Y代", Workshop: "SMT线", Status: "待排",
			Quantities: map[string]int{}},
	}
}

func queriedService(t *testing.T) (*GridService, *MockPlanStorage, *MockPlanner, schedule.Token) {
	t.Helper()

	st := new(MockPlanStorage)
	pl := new(MockPlanner)
	st.On("GetPlans", mock.Anything, mock.Anything).Return(fixtureRows(), nil)
	st.On("GetWorkshops", mock.Anything).Return([]string{"SMT线", "一车间"}, nil)

	svc := NewGridService(st, pl, 90)
	snap, err := svc.Query(context.Background(), time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC), schedule.GranularityDay, "")
	require.NoError(t, err)
	return svc, st, pl, snap.Token
}

func TestQuery_BuildsSnapshot(t *testing.T) {
	st := new(MockPlanStorage)
	pl := new(MockPlanner)
	st.On("GetPlans", mock.Anything, storage.PlanFilter{From: "2024-05-20", To: "2024-08-17", Workshop: "一车间"}).
		Return(fixtureRows(), nil)
	st.On("GetWorkshops", mock.Anything).Return([]string{"SMT线", "一车间"}, nil)

	svc := NewGridService(st, pl, 90)
	snap, err := svc.Query(context.Background(), time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC), schedule.GranularityWeek, "一车间")
	require.NoError(t, err)

	assert.Len(t, snap.Rows, 2)
	assert.Equal(t, schedule.GranularityWeek, snap.Columns[0].Type)
	assert.Equal(t, 460, snap.Layout.TotalFrozen)
	assert.Equal(t, schedule.WidthWeekColumn, snap.Layout.ColumnWidth)
	assert.Equal(t, []string{"SMT线", "一车间"}, snap.Workshops)
	st.AssertExpectations(t)
}

func TestQuery_StorageError(t *testing.T) {
	st := new(MockPlanStorage)
	st.On("GetPlans", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	st.On("GetWorkshops", mock.Anything).Return([]string{}, nil)

	svc := NewGridService(st, new(MockPlanner), 90)
	_, err := svc.Query(context.Background(), time.Now(), schedule.GranularityDay, "")
	assert.Error(t, err)
}

func TestSelectRow_LoadsDetail(t *testing.T) {
	svc, st, _, _ := queriedService(t)
	st.On("GetPlanMaterials", mock.Anything, int64(1)).Return([]storage.Material{
		{ID: "D-1-0", MaterialCode: "MAT-1-100", MaterialName: "零部件 A-1", Unit: "个", RequiredQty: 40, Inventory: 12},
	}, nil)

	detail, err := svc.SelectRow(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), detail.Row.ID)
	require.Len(t, detail.Entries, 1)
	assert.Equal(t, "2024-05-20", detail.Entries[0].Date)
	assert.Len(t, detail.Materials, 1)
	assert.Equal(t, int64(1), detail.Token.RowID)
}

func TestSelectRow_Unknown(t *testing.T) {
	svc, _, _, _ := queriedService(t)
	_, err := svc.SelectRow(context.Background(), 99)
	assert.ErrorIs(t, err, ErrRowNotFound)
}

func TestSetCell_CopyOnWrite(t *testing.T) {
	svc, _, _, _ := queriedService(t)

	before := svc.Rows()
	row, err := svc.SetCell(2, "2024-05-21", "30")
	require.NoError(t, err)
	assert.Equal(t, 30, row.Quantities["2024-05-21"])

	after := svc.Rows()
	assert.Same(t, before.Find(1), after.Find(1))
	assert.NotSame(t, before.Find(2), after.Find(2))
	assert.Empty(t, before.Find(2).Quantities)
}

func TestBulkEdit(t *testing.T) {
	svc, _, _, _ := queriedService(t)

	row, err := svc.BulkEdit(1, []schedule.Edit{
		{Date: "2024-05-21", Qty: 50},
		{Date: "2024-05-20", Qty: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2024-05-21": 50}, row.Quantities)
}

func TestSmartFill_AppliesToSelectedRow(t *testing.T) {
	svc, st, pl, _ := queriedService(t)
	st.On("GetPlanMaterials", mock.Anything, int64(1)).Return([]storage.Material{}, nil)

	detail, err := svc.SelectRow(context.Background(), 1)
	require.NoError(t, err)

	pl.On("PlanEdits", mock.Anything, "2024-05-20", "未来3天填充100").Return([]schedule.Edit{
		{Date: "2024-05-21", Qty: 100},
		{Date: "2024-05-22", Qty: 100},
		{Date: "2024-05-23", Qty: 100},
	}, nil)

	row, err := svc.SmartFill(context.Background(), detail.Token, "未来3天填充100")
	require.NoError(t, err)
	assert.Len(t, row.Quantities, 4)
	assert.Equal(t, 100, row.Quantities["2024-05-23"])
}

func TestSmartFill_StaleAfterSelectionChange(t *testing.T) {
	svc, st, pl, _ := queriedService(t)
	st.On("GetPlanMaterials", mock.Anything, mock.Anything).Return([]storage.Material{}, nil)

	detail, err := svc.SelectRow(context.Background(), 1)
	require.NoError(t, err)

	// Selection moves while the request would be in flight.
	_, err = svc.SelectRow(context.Background(), 2)
	require.NoError(t, err)

	_, err = svc.SmartFill(context.Background(), detail.Token, "x")
	assert.ErrorIs(t, err, ErrStaleRequest)
	pl.AssertNotCalled(t, "PlanEdits", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, map[string]int{"2024-05-20": 100}, svc.Rows().Find(1).Quantities)
}

func TestSmartFill_StaleAfterRequery(t *testing.T) {
	svc, st, _, _ := queriedService(t)
	st.On("GetPlanMaterials", mock.Anything, mock.Anything).Return([]storage.Material{}, nil)

	detail, err := svc.SelectRow(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.Query(context.Background(), time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), schedule.GranularityDay, "")
	require.NoError(t, err)

	_, err = svc.SmartFill(context.Background(), detail.Token, "x")
	assert.ErrorIs(t, err, ErrStaleRequest)
}

func TestSmartFill_PlannerFailureLeavesRowsUntouched(t *testing.T) {
	svc, st, pl, _ := queriedService(t)
	st.On("GetPlanMaterials", mock.Anything, mock.Anything).Return([]storage.Material{}, nil)

	detail, err := svc.SelectRow(context.Background(), 1)
	require.NoError(t, err)

	pl.On("PlanEdits", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("malformed payload"))

	before := svc.Rows()
	_, err = svc.SmartFill(context.Background(), detail.Token, "x")
	assert.Error(t, err)
	assert.Same(t, before.Find(1), svc.Rows().Find(1))
}

func TestSave(t *testing.T) {
	svc, st, _, _ := queriedService(t)
	st.On("SavePlans", mock.Anything, mock.Anything).Return(nil)

	n, err := svc.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
