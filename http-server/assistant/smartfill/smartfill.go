package smartfill

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"react-golang/internal/assistant"
	"react-golang/internal/schedule"
	"react-golang/internal/service"
)

type SmartFiller interface {
	SmartFill(ctx context.Context, token schedule.Token, instruction string) (*schedule.PlanRow, error)
}

type RequestSmartFill struct {
	Token       schedule.Token `json:"token"`
	Instruction string         `json:"instruction"`
}

type ResponseSmartFill struct {
	Row   *schedule.PlanRow `json:"row,omitempty"`
	Error string            `json:"error,omitempty"`
}

// SmartFill runs the assistant fill for the selected row. A stale
// token (selection or query changed since it was issued) answers 409
// and leaves the row set untouched; assistant failures answer 502
// with the classified diagnostic.
func SmartFill(log *slog.Logger, grid SmartFiller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.assistant.smartfill.SmartFill"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req RequestSmartFill
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			http.Error(w, "Invalid body", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Instruction) == "" {
			http.Error(w, "Missing instruction", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
		defer cancel()

		row, err := grid.SmartFill(ctx, req.Token, req.Instruction)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrStaleRequest):
				w.WriteHeader(http.StatusConflict)
				render.JSON(w, r, ResponseSmartFill{Error: "排程状态已变更，请重新选择计划后再试。"})
			case errors.Is(err, service.ErrRowNotFound):
				http.Error(w, "Plan not found", http.StatusNotFound)
			default:
				log.Error("smart fill failed",
					slog.String("error", err.Error()),
					slog.String("kind", string(assistant.Classify(err))),
				)
				w.WriteHeader(http.StatusBadGateway)
				render.JSON(w, r, ResponseSmartFill{Error: assistant.Diagnostic(err)})
			}
			return
		}

		render.JSON(w, r, ResponseSmartFill{Row: row})
	}
}
