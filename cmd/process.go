package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/remarks-cli/internal/model"
)

var processDryRun bool

var processCmd = &cobra.Command{
	Use:   "process <submission-id>",
	Short: "Process a single remark submission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx, processDryRun)
		if err != nil {
			return err
		}

		ledger, err := initLedger(ctx)
		if err != nil {
			return err
		}
		defer ledger.Close() //nolint:errcheck

		run, err := ledger.CreateRun(ctx, "process")
		if err != nil {
			return err
		}

		sub, err := env.submissions.Get(ctx, args[0])
		if err != nil {
			recordFailure(ctx, ledger, run.ID, err)
			return eris.Wrapf(err, "lookup submission %s", args[0])
		}

		res, err := env.engine.Process(ctx, *sub)
		if err != nil {
			recordFailure(ctx, ledger, run.ID, err)
			return eris.Wrapf(err, "process %s", sub.ID)
		}

		summary := &model.RunSummary{Scanned: 1, DryRun: processDryRun}
		switch {
		case res.AlreadyProcessed, res.Skipped:
			summary.Skipped = 1
		default:
			summary.Processed = 1
			if !processDryRun {
				if err := env.tracker.MarkProcessed(ctx, sub); err != nil {
					recordFailure(ctx, ledger, run.ID, err)
					return eris.Wrapf(err, "mark processed %s", sub.ID)
				}
			}
		}

		if err := ledger.CompleteRun(ctx, run.ID, summary); err != nil {
			zap.L().Warn("run ledger update failed", zap.String("run_id", run.ID), zap.Error(err))
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	},
}

func init() {
	processCmd.Flags().BoolVar(&processDryRun, "dry-run", false, "report the merge plan without writing")
	rootCmd.AddCommand(processCmd)
}
