// =============================================================================
// Inventory Voucher Manager - History Command
// =============================================================================
//
// This file defines the 'history' command: the full voucher list, newest
// entries first, one row per voucher.
//
// COMMAND USAGE:
//   voucher history
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/namphatvn/inventory-voucher/pkg/format"
)

// historyCmd represents the 'history' command.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List all vouchers",
	Long: `The history command lists every voucher in the collection, newest entry
first. Use 'show <id>' for the printable detail of one voucher, 'entry --edit
<id>' to change it, 'delete <id>' to remove it, and 'export --all' for the
bulk XLSX report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHistory()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	records := a.store.List()
	if len(records) == 0 {
		fmt.Println("No vouchers recorded yet. Create one with 'voucher entry'.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tRECIPIENT\tDRIVER\tTRIP COST\tITEMS\tGRAND TOTAL")
	for _, r := range records {
		driver := r.DriverName
		if driver == "" {
			driver = "N/A"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			r.ID, r.Date, r.RecipientUnit, driver,
			format.Money(r.DriverTripCost), len(r.Items),
			format.MoneyVND(r.GrandTotal))
	}
	return tw.Flush()
}
