package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/casabooks/casabooks/internal/chart"
	"github.com/casabooks/casabooks/internal/config"
	"github.com/casabooks/casabooks/internal/database"
	"github.com/casabooks/casabooks/internal/registry"
	registryStore "github.com/casabooks/casabooks/internal/registry/store"
)

// seed loads the chart of accounts and bank accounts from CSV files and
// upserts them. Safe to re-run: rows are keyed by natural key.
func main() {
	glPath := flag.String("gl", "", "path to chart-of-accounts CSV (code,name,type)")
	bankPath := flag.String("banks", "", "path to bank-accounts CSV (name,type,opening_balance)")
	flag.Parse()

	if *glPath == "" && *bankPath == "" {
		slog.Error("nothing to do: pass -gl and/or -banks")
		os.Exit(1)
	}

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

	var glRows []chart.GLRow

	if *glPath != "" {
		glRows, err = readGL(*glPath)
		if err != nil {
			slog.Error("failed to read chart of accounts", "path", *glPath, "error", err)
			os.Exit(1)
		}
	}

	var bankRows []chart.BankRow

	if *bankPath != "" {
		bankRows, err = readBanks(*bankPath)
		if err != nil {
			slog.Error("failed to read bank accounts", "path", *bankPath, "error", err)
			os.Exit(1)
		}
	}

	svc := registry.NewService(registryStore.New(db))
	if err := chart.Seed(context.Background(), svc, glRows, bankRows); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	slog.Info("seeding done", "gl_accounts", len(glRows), "bank_accounts", len(bankRows))
}

func readGL(path string) ([]chart.GLRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return chart.ReadGLAccounts(f)
}

func readBanks(path string) ([]chart.BankRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return chart.ReadBankAccounts(f)
}
