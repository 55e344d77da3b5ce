package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"react-golang/internal/schedule"
	"react-golang/internal/service"
)

type GridReader interface {
	Query(ctx context.Context, refDate time.Time, mode schedule.Granularity, workshop string) (*service.GridSnapshot, error)
	SelectRow(ctx context.Context, id int64) (*service.RowDetail, error)
	UnpivotRow(id int64) ([]schedule.EditableEntry, error)
}

// GetGrid handles the query interface: (referenceDate, granularity) →
// regenerated columns plus a wholesale row-set reload.
func GetGrid(log *slog.Logger, grid GridReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.plans.get.GetGrid"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		dateStr := r.URL.Query().Get("date")
		refDate, err := time.Parse(schedule.DayKeyLayout, dateStr)
		if err != nil {
			log.Error("invalid date", slog.String("date", dateStr))
			http.Error(w, "Invalid date", http.StatusBadRequest)
			return
		}

		mode, err := schedule.ParseGranularity(r.URL.Query().Get("mode"))
		if err != nil {
			http.Error(w, "Invalid mode", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		snap, err := grid.Query(ctx, refDate, mode, r.URL.Query().Get("workshop"))
		if err != nil {
			log.Error("grid query failed", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, snap)
	}
}

// GetPlanDetail selects a row and returns its edit surface: unpivoted
// entries, BOM materials and the smart-fill token.
func GetPlanDetail(log *slog.Logger, grid GridReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.plans.get.GetPlanDetail"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		detail, err := grid.SelectRow(ctx, id)
		if err != nil {
			if errors.Is(err, service.ErrRowNotFound) {
				http.Error(w, "Plan not found", http.StatusNotFound)
				return
			}
			log.Error("select row failed", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, detail)
	}
}

// GetUnpivot returns the ordered non-zero edit list for one row.
func GetUnpivot(log *slog.Logger, grid GridReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.plans.get.GetUnpivot"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		entries, err := grid.UnpivotRow(id)
		if err != nil {
			if errors.Is(err, service.ErrRowNotFound) {
				http.Error(w, "Plan not found", http.StatusNotFound)
				return
			}
			log.Error("unpivot failed", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, entries)
	}
}
