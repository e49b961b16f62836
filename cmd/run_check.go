package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"replenishment-service/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var thresholdFlag int

// runCheckCmd runs a single reconciliation pass from the command line.
var runCheckCmd = &cobra.Command{
	Use:   "run-check",
	Short: "Run one reconciliation pass",
	Long: `Fetches the inventory snapshot through the gateway and records one
replenishment order for every item strictly below the threshold.

Orders are not deduplicated: running twice over the same stock records the
same shortfall twice.

Examples:
  # Use reconcile.threshold from the configuration
  run-check

  # Override the threshold for this pass
  run-check --threshold 25`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svcs, err := loadServices(ctx)
		if err != nil {
			return err
		}
		defer svcs.logger.Sync()

		gateway, err := svcs.gateway()
		if err != nil {
			return err
		}

		threshold := svcs.cfg.Reconcile.Threshold
		if cmd.Flags().Changed("threshold") {
			threshold = thresholdFlag
		}

		if timeout := svcs.cfg.Reconcile.PassTimeout(); timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		engine := svcs.engine(gateway)
		orders, err := engine.RunCheck(ctx, threshold)
		engine.Wait()
		if err != nil {
			return fmt.Errorf("reconciliation failed (%s): %w", reconcile.KindOf(err), err)
		}

		svcs.logger.Info("Reconciliation completed", zap.Int("created", len(orders)))
		return printJSON(orders)
	},
}

func init() {
	RootCmd.AddCommand(runCheckCmd)
	runCheckCmd.Flags().IntVar(&thresholdFlag, "threshold", 0, "Threshold for this pass (defaults to reconcile.threshold)")
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
