package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	reporthandler "react-golang/http-server/assistant/report"
	smartfillhandler "react-golang/http-server/assistant/smartfill"
	generate_excel "react-golang/http-server/generate-report/generate-excel"
	getmaterials "react-golang/http-server/materials/get"
	getplans "react-golang/http-server/plans/get"
	saveplans "react-golang/http-server/plans/save"
	updateplans "react-golang/http-server/plans/update"
	"react-golang/internal/assistant"
	"react-golang/internal/config"
	"react-golang/internal/middleware/auth"
	"react-golang/internal/service"
	"react-golang/internal/service/export"
	"react-golang/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, grid *service.GridService, reporter *assistant.Reporter, exporter *export.GridExporter) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Grid query: regenerates columns and reloads the row set.
	router.Get("/api/plans", getplans.GetGrid(log, grid))

	// Row selection and the vertical edit list.
	router.Get("/api/plans/{id}/detail", getplans.GetPlanDetail(log, grid))
	router.Get("/api/plans/{id}/unpivot", getplans.GetUnpivot(log, grid))

	// Cell and batch edits.
	router.Put("/api/plans/{id}/quantity", updateplans.UpdateCell(log, grid))
	router.Post("/api/plans/{id}/bulk", updateplans.UpdateBulk(log, grid))

	// BOM detail rows.
	router.Get("/api/materials", getmaterials.GetMaterials(log, storage))

	// Assistant: analysis report and smart fill.
	router.Post("/api/assistant/report", reporthandler.GenerateReport(log, reporter, grid))
	router.Post("/api/assistant/smart-fill", smartfillhandler.SmartFill(log, grid))

	// Excel export of the current grid.
	router.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, exporter, grid))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))
	adminRouter.Post("/plans/save", saveplans.SavePlans(log, grid))
	router.Mount("/api/admin", adminRouter)

	return router
}
