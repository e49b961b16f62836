package cmd

import (
	"fmt"

	"replenishment-service/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd checks the collaborators of a reconciliation pass.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the ledger, the gateway and the snapshot archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := loadServices(cmd.Context())
		if err != nil {
			return err
		}
		defer svcs.logger.Sync()
		logg := svcs.logger

		gateway, err := svcs.gateway()
		if err != nil {
			return err
		}

		svc := integrity.NewService(svcs.store, gateway, svcs.archiveInspector(), logg)
		report := svc.CheckAll(cmd.Context())

		failed := 0
		for _, name := range []string{"ledger", "gateway", "archive"} {
			r := report[name]
			if !r.Healthy() {
				failed++
				logg.Warn("Check failed", zap.String("check", name), zap.String("kind", r.Kind), zap.String("error", r.Error))
				continue
			}
			logg.Info("Check passed", zap.String("check", name), zap.String("status", r.Status))
		}

		if err := printJSON(report); err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d integrity check(s) failed", failed)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
}
