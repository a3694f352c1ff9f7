package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/remarks-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "remarks-cli",
	Short: "Field-visit remark processor for the physical stores hit list",
	Long:  "Extracts contact details and follow-up dates from free-text sales visit remarks, merges them into hit-list rows without clobbering existing data, and schedules follow-up calendar events.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
