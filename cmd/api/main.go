package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/casabooks/casabooks/internal/config"
	"github.com/casabooks/casabooks/internal/database"
	"github.com/casabooks/casabooks/internal/export"
	casaHttp "github.com/casabooks/casabooks/internal/http"
	exportHandler "github.com/casabooks/casabooks/internal/http/export"
	journalHandler "github.com/casabooks/casabooks/internal/http/journal"
	registryHandler "github.com/casabooks/casabooks/internal/http/registry"
	reportHandler "github.com/casabooks/casabooks/internal/http/report"
	settlementHandler "github.com/casabooks/casabooks/internal/http/settlement"
	"github.com/casabooks/casabooks/internal/journal"
	journalStore "github.com/casabooks/casabooks/internal/journal/store"
	"github.com/casabooks/casabooks/internal/registry"
	registryStore "github.com/casabooks/casabooks/internal/registry/store"
	"github.com/casabooks/casabooks/internal/report"
	reportStore "github.com/casabooks/casabooks/internal/report/store"
	"github.com/casabooks/casabooks/internal/settlement"
	settlementStore "github.com/casabooks/casabooks/internal/settlement/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		registryService   = registry.NewService(registryStore.New(db))
		journalService    = journal.NewService(journalStore.New(db))
		settlementService = settlement.NewService(settlementStore.New(db))
		reportService     = report.NewService(registryService, reportStore.New(db))
		exportService     = export.NewService(journalService)
	)

	var (
		registryH   = registryHandler.NewHandler(registryService)
		journalH    = journalHandler.NewHandler(journalService, registryService)
		settlementH = settlementHandler.NewHandler(settlementService)
		reportH     = reportHandler.NewHandler(reportService)
		exportH     = exportHandler.NewHandler(exportService)
	)

	router := casaHttp.New(cfg.Auth.JWTSecret, registryH, journalH, settlementH, reportH, exportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
