package update

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"react-golang/internal/schedule"
	"react-golang/internal/service"
)

type GridEditor interface {
	SetCell(id int64, dayKey, raw string) (*schedule.PlanRow, error)
	BulkEdit(id int64, edits []schedule.Edit) (*schedule.PlanRow, error)
}

type CellEditRequest struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

// UpdateCell applies one interactive cell edit. The raw value is
// forwarded as-is: non-numeric input and "0" both delete the key.
func UpdateCell(log *slog.Logger, grid GridEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.plans.update.UpdateCell"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req CellEditRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("bad request body", slog.String("error", err.Error()))
			http.Error(w, "Invalid body", http.StatusBadRequest)
			return
		}
		if req.Date == "" {
			http.Error(w, "Missing date", http.StatusBadRequest)
			return
		}

		row, err := grid.SetCell(id, req.Date, req.Value)
		if err != nil {
			if errors.Is(err, service.ErrRowNotFound) {
				http.Error(w, "Plan not found", http.StatusNotFound)
				return
			}
			log.Error("cell edit failed", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, row)
	}
}

// UpdateBulk merges an explicit {date, qty} batch into one row,
// last write wins within the batch.
func UpdateBulk(log *slog.Logger, grid GridEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.plans.update.UpdateBulk"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var edits []schedule.Edit
		if err := render.DecodeJSON(r.Body, &edits); err != nil {
			http.Error(w, "Invalid body", http.StatusBadRequest)
			return
		}

		row, err := grid.BulkEdit(id, edits)
		if err != nil {
			if errors.Is(err, service.ErrRowNotFound) {
				http.Error(w, "Plan not found", http.StatusNotFound)
				return
			}
			log.Error("bulk edit failed", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, row)
	}
}
