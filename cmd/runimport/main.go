// runimport processes a single import synchronously, bypassing the queue.
// Useful for re-running a failed document or debugging extraction locally.
//
//	runimport -id <uuid> [-force]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/insurtech-mx/polizas-crm/internal/ai"
	"github.com/insurtech-mx/polizas-crm/internal/common"
	"github.com/insurtech-mx/polizas-crm/internal/extract"
	"github.com/insurtech-mx/polizas-crm/internal/imports"
	"github.com/insurtech-mx/polizas-crm/internal/repository"
)

func main() {
	_ = godotenv.Load()

	var (
		idFlag    = flag.String("id", "", "import id (uuid)")
		forceFlag = flag.Bool("force", false, "reprocess even if already processing or ready")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	importID, err := uuid.Parse(*idFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "usage: runimport -id <uuid> [-force]")
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	entc, pool, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	importsRepo := repository.NewImportRepository(entc, logger)
	clientsRepo := repository.NewClientRepository(entc, logger)

	extractor := extract.NewExtractor(extract.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
		MinTextLength: cfg.Imports.MinTextLength,
	}, logger)

	aiClient := ai.NewClient(ai.Config{
		APIKey:         cfg.AI.APIKey,
		BaseURL:        cfg.AI.BaseURL,
		Model:          cfg.AI.Model,
		Temperature:    cfg.AI.Temperature,
		RequestTimeout: cfg.AI.RequestTimeout,
		ConnectTimeout: cfg.AI.ConnectTimeout,
		MaxInputChars:  cfg.AI.MaxInputChars,
	}, logger)

	processor := imports.NewProcessor(importsRepo, extractor, aiClient, clientsRepo, cfg.Imports, logger)

	runCtx, cancel := context.WithTimeout(ctx, cfg.Imports.ProcessTimeout)
	defer cancel()
	if err := processor.Process(runCtx, importID, *forceFlag); err != nil {
		logger.Error("processing failed", "import_id", importID, "error", err)
		os.Exit(1)
	}

	imp, err := importsRepo.GetByID(ctx, importID)
	if err != nil {
		os.Exit(1)
	}
	stage := ""
	if imp.ProcessingStage != nil {
		stage = *imp.ProcessingStage
	}
	fmt.Printf("import %s -> %s (stage %s)\n", imp.ID, imp.Status, stage)
}
