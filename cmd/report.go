package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"otc-compare/core/database"
	"otc-compare/core/reconcile"
	"otc-compare/core/report"
	"otc-compare/core/storage"
	"otc-compare/feature/history"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the report command
	reportWorkers int
	reportUpload  bool
	reportOut     string
)

// reportCmd runs the full-catalog comparison and writes the report.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compare every Marketplace item and write an xlsx/html report",
	Long: `Fetches the Marketplace and Discord catalogs once, compares every item and
writes <prefix>_<HH-MM-SS_DD-MM-YYYY>.xlsx and .html.

Rows cheaper on Discord are highlighted green, rows cheaper on the Marketplace
red. Items that could not be compared are kept with an empty verdict.

Examples:
  # Write the report to the configured directory
  report

  # More concurrent quote fetches, upload to object storage
  report --workers 8 --upload`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().IntVar(&reportWorkers, "workers", 0, "Override the number of concurrent quote fetches")
	reportCmd.Flags().BoolVar(&reportUpload, "upload", false, "Upload the report to object storage")
	reportCmd.Flags().StringVar(&reportOut, "out", "", "Override the report output directory")

	RootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	opts := runOptions(cfg)
	if reportWorkers > 0 {
		opts.Batch.Workers = reportWorkers
	}
	if reportOut != "" {
		cfg.Report.Dir = reportOut
	}
	opts.Progress = progressLogger(l)

	l.Info("Generating comparison data...", zap.Int("workers", opts.Batch.Workers))
	run := reconcile.NewRun(ctx, newSource(cfg, l), opts, l)

	records, runErr := run.CompareAll(ctx)
	if runErr != nil && !errors.Is(runErr, context.DeadlineExceeded) {
		return fmt.Errorf("batch comparison failed: %w", runErr)
	}
	if runErr != nil {
		l.Warn("Batch deadline exceeded; remaining items are undetermined", zap.Error(runErr))
	}

	summary := reconcile.Summarize(records)
	l.Info("Comparison finished",
		zap.String("run_id", run.ID),
		zap.Int("total", summary.Total),
		zap.Int("cheaper_on_discord", summary.CheaperOnDiscord),
		zap.Int("cheaper_on_marketplace", summary.CheaperOnMarketplace),
		zap.Int("undetermined", summary.Undetermined),
	)

	meta := report.Meta{RunID: run.ID, Generated: time.Now()}
	if sb, err := run.SBGoldPrice(); err == nil {
		meta.SBGold = &sb
	}

	files, err := report.Write(cfg.Report, records, meta)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	l.Info("Report written", zap.String("xlsx", files.XLSX), zap.String("html", files.HTML))

	// History is optional; a missing database never fails the report
	if conn, err := database.Connect(cfg.Database); err != nil {
		if !errors.Is(err, database.ErrDisabled) {
			l.Warn("Optional database connection failed", zap.Error(err))
		}
	} else {
		repo := history.NewRepository(conn)
		if err := repo.Migrate(); err != nil {
			l.Warn("Failed to migrate history tables", zap.Error(err))
		} else if err := repo.SaveRun(ctx, run.ID, run.StartedAt, meta.SBGold, records); err != nil {
			l.Warn("Failed to record run", zap.Error(err))
		} else {
			l.Info("Run recorded", zap.String("run_id", run.ID))
		}
	}

	if reportUpload || cfg.Report.Upload {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		keys, err := report.Upload(ctx, client, cfg.Storage, files)
		if err != nil {
			return fmt.Errorf("failed to upload report: %w", err)
		}
		l.Info("Report uploaded", zap.String("bucket", cfg.Storage.Bucket), zap.Strings("keys", keys))
	}

	return nil
}

// progressLogger logs batch progress roughly every tenth of the catalog.
func progressLogger(l *zap.Logger) reconcile.ProgressFunc {
	return func(done, total int) {
		step := total / 10
		if step == 0 {
			step = 1
		}
		if done%step == 0 || done == total {
			l.Info("Batch progress", zap.Int("done", done), zap.Int("total", total))
		}
	}
}
