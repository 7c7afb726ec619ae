package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meridianbi/insight-api/docs"
	"github.com/meridianbi/insight-api/internal/config"
	"github.com/meridianbi/insight-api/internal/database"
	"github.com/meridianbi/insight-api/internal/http/handler"
	"github.com/meridianbi/insight-api/internal/http/middleware"
	"github.com/meridianbi/insight-api/internal/http/router"
	"github.com/meridianbi/insight-api/internal/jobs"
	"github.com/meridianbi/insight-api/internal/logger"
	"github.com/meridianbi/insight-api/internal/repository"
	"github.com/meridianbi/insight-api/internal/service"
	"go.uber.org/zap"
)

// @title Meridian Insight API
// @version 1.0
// @description Business metrics API for salary rankings, revenue trends, customer segmentation, and product performance

// @contact.name API Support
// @contact.email support@meridianbi.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.App.Port)

	// Connect to database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize repositories
	departmentRepo := repository.NewDepartmentRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	schemaRepo := repository.NewSchemaRepository(db)
	snapshots := repository.NewSnapshotLoader(departmentRepo, employeeRepo, productRepo, customerRepo, saleRepo)

	// Initialize services
	analyticsService := service.NewAnalyticsService(snapshots, cfg.Analytics.MovingAverageWindow, log)
	summaryService := service.NewSummaryService(departmentRepo, employeeRepo, productRepo, customerRepo, saleRepo, schemaRepo, log)
	exportService := service.NewExportService(analyticsService, log)

	// Initialize middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, log)
	summaryHandler := handler.NewSummaryHandler(summaryService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		rateLimiter,
		analyticsHandler,
		summaryHandler,
	)

	// Initialize and start scheduler for background jobs
	var scheduler *jobs.Scheduler
	if cfg.Export.Enabled {
		scheduler = jobs.NewScheduler(log)
		exportJob := jobs.NewExportJob(exportService, cfg.Export.OutputDir, log, jobs.DefaultExportTimeout)

		if err := scheduler.AddJob(jobs.ExportJobName, cfg.Export.Schedule, exportJob.Run); err != nil {
			log.Error("Failed to register export job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with export job",
				zap.String("cron_expr", cfg.Export.Schedule),
				zap.String("output_dir", cfg.Export.OutputDir),
			)
		}
	} else {
		log.Info("Periodic CSV export disabled")
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		// Stop scheduler if running
		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
