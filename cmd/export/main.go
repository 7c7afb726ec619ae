package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/meridianbi/insight-api/internal/config"
	"github.com/meridianbi/insight-api/internal/database"
	"github.com/meridianbi/insight-api/internal/logger"
	"github.com/meridianbi/insight-api/internal/repository"
	"github.com/meridianbi/insight-api/internal/service"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Export error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	outputDir := flag.String("out", cfg.Export.OutputDir, "directory to write CSV files to")
	flag.Parse()

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	snapshots := repository.NewSnapshotLoader(
		repository.NewDepartmentRepository(db),
		repository.NewEmployeeRepository(db),
		repository.NewProductRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewSaleRepository(db),
	)

	analyticsService := service.NewAnalyticsService(snapshots, cfg.Analytics.MovingAverageWindow, log)
	exportService := service.NewExportService(analyticsService, log)

	if err := exportService.ExportAll(context.Background(), *outputDir); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	log.Info("export finished", zap.String("output_dir", *outputDir))
	return nil
}
