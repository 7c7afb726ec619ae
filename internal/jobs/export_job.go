package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ExportJobName is the name of the CSV export job
const ExportJobName = "csv_export"

// DefaultExportTimeout bounds a single export run
const DefaultExportTimeout = 5 * time.Minute

// AnalyticsExporter defines the interface for writing the analytics tables
// to disk. This interface allows the job to call the service without
// importing the service package directly.
type AnalyticsExporter interface {
	ExportAll(ctx context.Context, outputDir string) error
}

// ExportJob periodically writes the analytics result tables to CSV files.
type ExportJob struct {
	exporter  AnalyticsExporter
	outputDir string
	logger    *zap.Logger
	timeout   time.Duration
}

// NewExportJob creates a new CSV export job.
// The timeout controls how long a single export run is allowed to take.
func NewExportJob(exporter AnalyticsExporter, outputDir string, logger *zap.Logger, timeout time.Duration) *ExportJob {
	if timeout <= 0 {
		timeout = DefaultExportTimeout
	}
	return &ExportJob{
		exporter:  exporter,
		outputDir: outputDir,
		logger:    logger,
		timeout:   timeout,
	}
}

// Run executes the CSV export job.
// This is called by the scheduler according to the cron expression.
func (j *ExportJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	j.logger.Info("starting csv export job",
		zap.String("output_dir", j.outputDir))

	if err := j.exporter.ExportAll(ctx, j.outputDir); err != nil {
		j.logger.Error("csv export job failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}

	j.logger.Info("csv export job completed",
		zap.String("output_dir", j.outputDir),
		zap.Duration("duration", time.Since(start)))
}
