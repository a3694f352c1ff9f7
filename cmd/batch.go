package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/remarks-cli/internal/model"
	"github.com/sells-group/remarks-cli/internal/reconcile"
	"github.com/sells-group/remarks-cli/internal/store"
)

var (
	batchDryRun bool
	batchLimit  int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process every unprocessed remark submission",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx, batchDryRun)
		if err != nil {
			return err
		}

		ledger, err := initLedger(ctx)
		if err != nil {
			return err
		}
		defer ledger.Close() //nolint:errcheck

		run, err := ledger.CreateRun(ctx, "batch")
		if err != nil {
			return err
		}

		limit := batchLimit
		if limit == 0 {
			limit = cfg.Batch.Limit
		}

		opts := []reconcile.DriverOption{
			reconcile.WithLimit(limit),
			reconcile.WithDriverDryRun(batchDryRun),
		}
		if l := batchLimiter(); l != nil {
			opts = append(opts, reconcile.WithLimiter(l))
		}

		driver := reconcile.NewDriver(env.engine, env.tracker, env.submissions, opts...)
		summary, err := driver.Run(ctx)
		if err != nil {
			recordFailure(ctx, ledger, run.ID, err)
			return err
		}

		if err := ledger.CompleteRun(ctx, run.ID, ledgerSummary(summary)); err != nil {
			zap.L().Warn("run ledger update failed", zap.String("run_id", run.ID), zap.Error(err))
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	},
}

func recordFailure(ctx context.Context, ledger store.Store, runID string, cause error) {
	if err := ledger.FailRun(ctx, runID, cause.Error()); err != nil {
		zap.L().Warn("run ledger update failed", zap.String("run_id", runID), zap.Error(err))
	}
}

func ledgerSummary(s *reconcile.Summary) *model.RunSummary {
	out := &model.RunSummary{
		Scanned:   s.Scanned,
		Processed: s.Processed,
		Skipped:   s.Skipped,
		Failed:    s.Failed,
		DryRun:    s.DryRun,
	}
	for _, f := range s.Failures {
		out.Failures = append(out.Failures, model.RunFailure{
			SubmissionID: f.SubmissionID,
			Shop:         f.ShopName,
			Error:        f.Error,
		})
	}
	return out
}

func init() {
	batchCmd.Flags().BoolVar(&batchDryRun, "dry-run", false, "report merge plans without writing")
	batchCmd.Flags().IntVar(&batchLimit, "limit", 0, "cap submissions handled this run (0 = config default)")
	rootCmd.AddCommand(batchCmd)
}
