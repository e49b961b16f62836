package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var yesConfirm bool

// ordersCmd is the parent command for ledger operations.
var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Inspect or clear the replenishment ledger",
}

// ordersListCmd prints every recorded order.
var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every recorded order, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := loadServices(cmd.Context())
		if err != nil {
			return err
		}
		defer svcs.logger.Sync()

		orders, err := svcs.store.ListAll(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(orders)
	},
}

// ordersClearCmd removes every recorded order.
var ordersClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded order",
	Long: `Deletes every order in the ledger. Asks for confirmation unless --yes is given.

Examples:
  orders clear
  orders clear --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmDestructiveAction(os.Stdin, os.Stdout, yesConfirm) {
			fmt.Println("Aborted, ledger left untouched.")
			return nil
		}

		svcs, err := loadServices(cmd.Context())
		if err != nil {
			return err
		}
		defer svcs.logger.Sync()

		deleted, err := svcs.store.ClearAll(cmd.Context())
		if err != nil {
			return err
		}
		svcs.logger.Info("Ledger cleared", zap.Int64("deleted", deleted))
		return printJSON(map[string]int64{"deletedCount": deleted})
	},
}

func init() {
	RootCmd.AddCommand(ordersCmd)
	ordersCmd.AddCommand(ordersListCmd, ordersClearCmd)
	ordersClearCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm (non-interactive)")
}

// confirmDestructiveAction prompts for confirmation unless yes is set.
func confirmDestructiveAction(in io.Reader, out io.Writer, yes bool) bool {
	if yes {
		fmt.Fprintln(out, "Auto-confirmed via --yes flag")
		return true
	}

	fmt.Fprint(out, "Type 'yes' to delete every recorded order: ")
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
