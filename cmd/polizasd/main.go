// polizasd is the CRM daemon: HTTP API, the import worker pool and the
// periodic stuck-import sweep in one process.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/insurtech-mx/polizas-crm/internal/ai"
	"github.com/insurtech-mx/polizas-crm/internal/async"
	"github.com/insurtech-mx/polizas-crm/internal/commission"
	"github.com/insurtech-mx/polizas-crm/internal/common"
	"github.com/insurtech-mx/polizas-crm/internal/extract"
	"github.com/insurtech-mx/polizas-crm/internal/imports"
	"github.com/insurtech-mx/polizas-crm/internal/repository"
	"github.com/insurtech-mx/polizas-crm/internal/server"
	"github.com/insurtech-mx/polizas-crm/internal/tracking"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	if err := repository.Migrate(ctx, entc, logger); err != nil {
		os.Exit(1)
	}

	importsRepo := repository.NewImportRepository(entc, logger)
	clientsRepo := repository.NewClientRepository(entc, logger)
	leadsRepo := repository.NewLeadRepository(entc, logger)
	policiesRepo := repository.NewPolicyRepository(entc, logger)
	insurersRepo := repository.NewInsurerRepository(entc, logger)
	trackingRepo := repository.NewTrackingRepository(entc, logger)
	commissionsRepo := repository.NewCommissionRepository(entc, logger)

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
	queue := async.NewImportQueue(processor, logger,
		async.WithWorkers(cfg.Imports.Workers),
		async.WithQueueSize(cfg.Imports.QueueSize),
		async.WithProcessTimeout(cfg.Imports.ProcessTimeout),
	)

	sweeper := imports.NewSweeper(importsRepo, cfg.Imports.StaleAfter, logger)
	go sweeper.Run(ctx, time.Minute)

	trackingSvc := tracking.NewService(trackingRepo, leadsRepo, clientsRepo, policiesRepo, logger)
	commissionSvc := commission.NewService(commissionsRepo, logger)

	srv := server.New(cfg.Server, cfg.Imports.StorageRoot, server.Deps{
		Imports:     importsRepo,
		Clients:     clientsRepo,
		Policies:    policiesRepo,
		Insurers:    insurersRepo,
		Tracking:    trackingSvc,
		Commissions: commissionSvc,
		Queue:       queue,
	}, logger)

	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: srv.Router(),
	}

	logger.Info("polizasd listening", "addr", cfg.Server.HTTPAddr)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown error", "error", err)
	}
	queue.Shutdown(shutdownCtx)
	logger.Info("polizasd stopped")
}
