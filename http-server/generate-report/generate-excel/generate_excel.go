package generate_excel

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"react-golang/internal/schedule"
)

type GridExporter interface {
	Export(rows schedule.Rows, columns []schedule.Column, mode schedule.Granularity) ([]byte, error)
}

type GridState interface {
	Rows() schedule.Rows
	View() (time.Time, schedule.Granularity)
	Horizon() int
}

// GenerateReportExcel streams the current grid as an .xlsx download.
func GenerateReportExcel(log *slog.Logger, exporter GridExporter, grid GridState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.generate-excel.GenerateReportExcel"

		refDate, mode := grid.View()
		columns := schedule.GenerateColumns(refDate, mode, grid.Horizon())

		data, err := exporter.Export(grid.Rows(), columns, mode)
		if err != nil {
			log.Error("excel export failed", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		filename := fmt.Sprintf("schedule_%s_%s.xlsx", refDate.Format(schedule.DayKeyLayout), mode)
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		if _, err := w.Write(data); err != nil {
			log.Error("write response failed", slog.String("op", op), slog.String("error", err.Error()))
		}
	}
}
