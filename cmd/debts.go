// =============================================================================
// Inventory Voucher Manager - Debts Command
// =============================================================================
//
// This file defines the 'debts' command: the per-partner debt rollup. Partners
// are grouped by the exact recipient-unit string; each gets total debt,
// transaction count, the most recent transaction date, and the identifier of
// the voucher bearing it. A system-wide total closes the report.
//
// COMMAND USAGE:
//   voucher debts
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/namphatvn/inventory-voucher/internal/voucher"
	"github.com/namphatvn/inventory-voucher/pkg/format"
)

// debtsCmd represents the 'debts' command.
var debtsCmd = &cobra.Command{
	Use:   "debts",
	Short: "Show the per-partner debt rollup",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDebts()
	},
}

func init() {
	rootCmd.AddCommand(debtsCmd)
}

func runDebts() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	summaries := voucher.AggregateByPartner(a.store.List())
	if len(summaries) == 0 {
		fmt.Println("No debt data to display.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PARTNER\tVOUCHERS\tLAST TRANSACTION\tLATEST ID\tTOTAL DEBT")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n",
			s.Name, s.TransactionCount, s.LastTransaction,
			s.LatestRecord.ID, format.MoneyVND(s.TotalDebt))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nSystem-wide total debt: %s\n",
		format.MoneyVND(voucher.TotalDebt(summaries)))
	return nil
}
