// =============================================================================
// Inventory Voucher Manager - Main Entry Point
// =============================================================================
//
// This is the main entry point for the inventory voucher manager, a CLI tool
// for recording inbound/outbound warehouse vouchers, tracking partner debts,
// and exporting vouchers to spreadsheets. It initializes the Cobra CLI
// framework and delegates command execution to the cmd package.
//
// USAGE:
//   voucher dashboard       - Aggregate stats and recent vouchers
//   voucher entry           - Create or edit a voucher
//   voucher history         - List all vouchers
//   voucher debts           - Per-partner debt rollup
//   voucher show <id>       - Render one voucher as a printable document
//   voucher delete <id>     - Delete a voucher (asks for confirmation)
//   voucher export          - Export vouchers to XLSX
//   voucher version         - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core business logic (not for external import)
//   - pkg/           : Shared utilities (logging, formatting, file helpers)
//
// =============================================================================

package main

import (
	"github.com/namphatvn/inventory-voucher/cmd"
)

func main() {
	cmd.Execute()
}
