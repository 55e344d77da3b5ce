package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"react-golang/internal/schedule"
)

func TestExport_DayMode(t *testing.T) {
	rows := schedule.Rows{
		{ID: 1, Code: "MPS-2405-001", ProductName: "伺服电机 X系列", Workshop: "一车间", Status: "生产中",
			Quantities: map[string]int{"2024-05-20": 100, "2024-05-21": 40}},
	}
	cols := schedule.GenerateColumns(time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC), schedule.GranularityDay, 7)

	data, err := NewGridExporter().Export(rows, cols, schedule.GranularityDay)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	code, _ := f.GetCellValue("生产排程", "B2")
	assert.Equal(t, "MPS-2405-001", code)

	header, _ := f.GetCellValue("生产排程", "E1")
	assert.Equal(t, "2024-05-20", header)

	qty, _ := f.GetCellValue("生产排程", "E2")
	assert.Equal(t, "100", qty)

	// Unscheduled days render empty, not 0.
	blank, _ := f.GetCellValue("生产排程", "G2")
	assert.Empty(t, blank)
}

func TestExport_WeekModeTotals(t *testing.T) {
	rows := schedule.Rows{
		{ID: 1, Code: "MPS-2405-001", Quantities: map[string]int{"2024-05-20": 10, "2024-05-22": 5}},
		{ID: 2, Code: "MPS-2405-002", Quantities: map[string]int{}},
	}
	cols := schedule.GenerateColumns(time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC), schedule.GranularityWeek, 14)

	data, err := NewGridExporter().Export(rows, cols, schedule.GranularityWeek)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, _ := f.GetCellValue("生产排程", "E1")
	assert.Equal(t, "2024 第21周", header)

	total, _ := f.GetCellValue("生产排程", "E2")
	assert.Equal(t, "15", total)

	// Empty week total renders blank rather than 0.
	empty, _ := f.GetCellValue("生产排程", "E3")
	assert.Empty(t, empty)
}
