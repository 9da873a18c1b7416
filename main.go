package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"coffee-dashboard/config"
	"coffee-dashboard/services"
	"coffee-dashboard/sheets"
	"coffee-dashboard/storage"
	"coffee-dashboard/store"
	"coffee-dashboard/utils"
)

func main() {
	// ================== Bootstrap ====================
	logger := utils.NewLogger()
	defer logger.Sync()
	cfg := config.Load()

	logger.Info("Coffee Bean Dashboard Pipeline")
	logger.Info("Source: %s", cfg.SheetURL)
	logger.Info("Fetch mode: %s | Cache TTL: %dm | Rate delay: %dms | Retries: %d",
		cfg.FetchMode, cfg.CacheTTLMinutes, cfg.RateLimitDelay, cfg.MaxRetries)

	// =================== Fetcher ========================================
	var fetcher sheets.Fetcher
	if cfg.FetchMode == "browser" {
		fetcher = sheets.NewBrowserFetcher(cfg, logger)
	} else {
		fetcher = sheets.NewHTTPFetcher(cfg, logger)
	}

	// =============== Fetch + standardize ===================================
	standardizer := services.NewStandardizer(logger)
	beanStore := store.New(fetcher, standardizer,
		time.Duration(cfg.CacheTTLMinutes)*time.Minute, logger)

	snap, err := beanStore.Fetch(context.Background())
	if err != nil {
		logger.Error("Fetching sheet failed: %v", err)
		os.Exit(1)
	}

	if len(snap.Standardized) == 0 {
		logger.Warn("No bean records in sheet — check the export URL and sheet layout")
		os.Exit(0)
	}

	// ========= CSV: snapshot export (optional) ===========================
	if cfg.CSVExportPath != "" {
		csvWriter := storage.NewCSVWriter(cfg.CSVExportPath, logger)
		if err := csvWriter.Export(snap.Standardized); err != nil {
			logger.Error("Failed to write CSV snapshot: %v", err)
			// Non-fatal: continue to the report
		}
	}

	// ==== Insights ============================
	insightSvc := services.NewInsightService(logger)
	report := insightSvc.GenerateVersion(snap.Version, snap.Standardized)
	services.PrintInsightReport(report)

	fmt.Printf(" Done! %d beans standardized from %d raw rows\n",
		len(snap.Standardized), len(snap.Raw))
}
