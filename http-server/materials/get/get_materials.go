package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"react-golang/internal/storage"
)

type MaterialsGetter interface {
	GetPlanMaterials(ctx context.Context, planID int64) ([]storage.Material, error)
}

// GetMaterials returns the BOM detail rows for one plan.
func GetMaterials(log *slog.Logger, getter MaterialsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.materials.get.GetMaterials"

		planID, err := strconv.ParseInt(r.URL.Query().Get("plan_id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid plan_id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		materials, err := getter.GetPlanMaterials(ctx, planID)
		if err != nil {
			log.Error("get materials failed", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, materials)
	}
}
