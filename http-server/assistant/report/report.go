package report

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"react-golang/internal/schedule"
)

type ReportGenerator interface {
	DailyReport(ctx context.Context, rows schedule.Rows) string
}

type RowSource interface {
	Rows() schedule.Rows
}

type ResponseReport struct {
	Report string `json:"report"`
}

// GenerateReport asks the assistant for the daily schedule analysis.
// This path always answers 200 with text: failures come back as the
// assistant's user-facing diagnostic string.
func GenerateReport(log *slog.Logger, reporter ReportGenerator, grid RowSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.assistant.report.GenerateReport"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
		defer cancel()

		text := reporter.DailyReport(ctx, grid.Rows())
		log.Info("report generated", slog.Int("length", len(text)))

		render.JSON(w, r, ResponseReport{Report: text})
	}
}
