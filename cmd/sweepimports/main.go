// sweepimports runs one pass of the stuck-import sweep and prints how many
// imports it reclaimed. Meant for cron; it exits 0 even when nothing moved.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/insurtech-mx/polizas-crm/internal/common"
	"github.com/insurtech-mx/polizas-crm/internal/imports"
	"github.com/insurtech-mx/polizas-crm/internal/repository"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("missing DB_URL environment variable")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	entc, pool, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	sweeper := imports.NewSweeper(repository.NewImportRepository(entc, logger), cfg.Imports.StaleAfter, logger)
	n, err := sweeper.Sweep(ctx)
	if err != nil {
		logger.Error("sweep failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("reclaimed %d stuck import(s)\n", n)
}
