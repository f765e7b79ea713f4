// =============================================================================
// Inventory Voucher Manager - Dashboard Command
// =============================================================================
//
// This file defines the 'dashboard' command: headline stats over the whole
// collection plus the five most recent vouchers.
//
// COMMAND USAGE:
//   voucher dashboard
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

// recentCount is how many recent vouchers the dashboard lists.
const recentCount = 5

// dashboardCmd represents the 'dashboard' command.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show aggregate stats and recent vouchers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	records := a.store.List()
	stats := voucher.Summarize(records)

	fmt.Printf("=== %s ===\n\n", a.cfg.Company.Name)
	fmt.Printf("Total value:      %s\n", format.MoneyVND(stats.TotalValue))
	fmt.Printf("Line items:       %d\n", stats.ItemCount)
	fmt.Printf("Partners:         %d\n", stats.PartnerCount)
	fmt.Printf("Vouchers:         %d\n\n", stats.VoucherCount)

	recent := voucher.Recent(records, recentCount)
	if len(recent) == 0 {
		fmt.Println("No transactions recorded yet.")
		return nil
	}

	fmt.Println("Recent transactions:")
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, r := range recent {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%d items\t%s\n",
			r.ID, r.Date, r.RecipientUnit, len(r.Items),
			format.MoneyVND(r.GrandTotal))
	}
	return tw.Flush()
}
