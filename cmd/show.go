// =============================================================================
// Inventory Voucher Manager - Show Command
// =============================================================================
//
// This file defines the 'show' command: the printable rendering of a single
// voucher, with the same fields as the detail export.
//
// COMMAND USAGE:
//   voucher show 24.03.001
//   voucher show 24.03.001 | lp
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/namphatvn/inventory-voucher/internal/printer"
)

// showCmd represents the 'show' command.
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Render one voucher as a printable document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(id string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	record, ok := a.store.Get(id)
	if !ok {
		return fmt.Errorf("voucher %s not found", id)
	}

	return printer.Render(os.Stdout, a.cfg.Company, record)
}
