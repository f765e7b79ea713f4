// =============================================================================
// Inventory Voucher Manager - Export Command
// =============================================================================
//
// This file defines the 'export' command, covering both spreadsheet modes:
//
//   voucher export --id 24.03.001   : one voucher as a fixed-layout detail
//                                     workbook (<org>_Detail_<id>.xlsx)
//   voucher export --all            : every line item of every voucher as one
//                                     flattened row (<org>_TongHop_LichSu.xlsx)
//
// Exports are write-only, one-shot generations into the configured output
// directory; there is no import path.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/namphatvn/inventory-voucher/internal/exporter"
	"github.com/namphatvn/inventory-voucher/pkg/logger"
)

var (
	// exportID selects single-voucher detail export.
	exportID string

	// exportAll selects the flattened bulk history export.
	exportAll bool
)

// exportCmd represents the 'export' command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export vouchers to XLSX workbooks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport()
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportID, "id", "", "Export one voucher as a detail workbook")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export the full history, one row per line item")
}

func runExport() error {
	if exportAll == (exportID != "") {
		return fmt.Errorf("specify exactly one of --id or --all")
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	exp := exporter.New(a.cfg.Export.OutputDir, a.cfg.Company, logger.Named(a.log, "exporter"))

	if exportAll {
		records := a.store.List()
		if len(records) == 0 {
			return fmt.Errorf("nothing to export: no vouchers recorded")
		}
		path, err := exp.ExportHistory(records)
		if err != nil {
			return fmt.Errorf("failed to export history: %w", err)
		}
		fmt.Printf("Exported %d voucher(s) to %s\n", len(records), path)
		return nil
	}

	record, ok := a.store.Get(exportID)
	if !ok {
		return fmt.Errorf("voucher %s not found", exportID)
	}
	path, err := exp.ExportDetail(record)
	if err != nil {
		return fmt.Errorf("failed to export voucher %s: %w", exportID, err)
	}
	fmt.Printf("Exported voucher %s to %s\n", exportID, path)
	return nil
}
