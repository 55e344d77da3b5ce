package save

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type GridSaver interface {
	Save(ctx context.Context) (int, error)
}

type ResponseSave struct {
	Saved  int    `json:"saved"`
	Status string `json:"status"`
}

// SavePlans hands the current row set wholesale to persistence.
func SavePlans(log *slog.Logger, grid GridSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.plans.save.SavePlans"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		saved, err := grid.Save(ctx)
		if err != nil {
			log.Error("save failed", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		log.Info("plans saved", slog.Int("count", saved))
		render.JSON(w, r, ResponseSave{Saved: saved, Status: "ok"})
	}
}
