package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/leadrank/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "leadrank",
	Short: "Sales lead qualification and prioritization",
	Long:  "Normalizes lead records, scores them against BANT criteria with an LLM, ranks them by priority and drafts an outreach approach per lead.",
	// Runtime failures are reported as errors, not usage problems.
	SilenceUsage: true,
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
