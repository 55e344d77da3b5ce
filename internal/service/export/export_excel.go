package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"react-golang/internal/schedule"
)

// GridExporter renders the scheduling grid to an .xlsx workbook:
// the frozen identity columns first, then one column per calendar
// column, week totals aggregated the same way the grid renders them.
type GridExporter struct{}

func NewGridExporter() *GridExporter {
	return &GridExporter{}
}

var identityHeaders = []string{"序号", "计划编码", "产品名称", "车间"}

func (e *GridExporter) Export(rows schedule.Rows, columns []schedule.Column, mode schedule.Granularity) ([]byte, error) {
	const op = "service.export.Export"

	f := excelize.NewFile()
	defer f.Close()
	sheet := "生产排程"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i, name := range identityHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}

	base := len(identityHeaders)
	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(base+i+1, 1)
		f.SetCellValue(sheet, cell, col.TopHeader)
	}

	lastCol, _ := excelize.CoordinatesToCellName(base+len(columns), 1)
	if err := f.SetCellStyle(sheet, "A1", lastCol, headerStyle); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for r, row := range rows {
		excelRow := r + 2
		f.SetCellValue(sheet, cellName(1, excelRow), r+1)
		f.SetCellValue(sheet, cellName(2, excelRow), row.Code)
		f.SetCellValue(sheet, cellName(3, excelRow), row.ProductName)
		f.SetCellValue(sheet, cellName(4, excelRow), row.Workshop)

		for c, col := range columns {
			cell := cellName(base+c+1, excelRow)
			if mode == schedule.GranularityWeek {
				if total, ok := schedule.WeekTotal(row, col); ok {
					f.SetCellValue(sheet, cell, total)
				}
				continue
			}
			if qty, ok := row.Quantities[col.Key]; ok {
				f.SetCellValue(sheet, cell, qty)
			}
		}
	}

	// Freeze the identity block, mirroring the grid's sticky columns.
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      base,
		YSplit:      1,
		TopLeftCell: "E2",
		ActivePane:  "bottomRight",
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}
