// =============================================================================
// Inventory Voucher Manager - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// (dashboard, entry, history, debts, show, delete, export, version) attach to
// it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (voucher)
//   ├── dashboardCmd (voucher dashboard)
//   ├── entryCmd     (voucher entry)
//   ├── historyCmd   (voucher history)
//   ├── debtsCmd     (voucher debts)
//   ├── showCmd      (voucher show <id>)
//   ├── deleteCmd    (voucher delete <id>)
//   ├── exportCmd    (voucher export)
//   └── versionCmd   (voucher version)
//
// The root command owns the global flags (--config, --verbose) and the app
// bootstrap shared by every subcommand: load config, build the logger, open
// the record store.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/namphatvn/inventory-voucher/internal/config"
	"github.com/namphatvn/inventory-voucher/internal/store"
	"github.com/namphatvn/inventory-voucher/pkg/logger"
)

// cfgFile holds the path to the configuration file.
// Overridden with the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "voucher",
	Short: "Inventory voucher manager - record warehouse vouchers and partner debts",
	Long: `Inventory voucher manager is a CLI tool for a single-tenant warehouse
operation. It records inbound/outbound vouchers (recipient unit, driver and
trip cost, line items with quantities and prices), tracks per-partner debt
totals, and exports vouchers to XLSX workbooks.

All data lives in one local JSON file; there is no server and no network.

Example Usage:
  voucher entry --recipient "Công ty A" --item "Xi măng:10:85000"
  voucher history                 # List all vouchers
  voucher debts                   # Per-partner debt rollup
  voucher export --all            # Bulk XLSX report`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// app bundles everything a subcommand needs to run.
type app struct {
	cfg   *config.Config
	log   *zap.Logger
	store *store.Store
}

// newApp loads the configuration, builds the logger, and opens the record
// store. Every subcommand starts here.
func newApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.Must(logger.New(verbose))

	st := store.Open(cfg.Storage.Path, logger.Named(log, "store"))

	return &app{cfg: cfg, log: log, store: st}, nil
}

// close flushes the logger. Deferred by every subcommand.
func (a *app) close() {
	_ = a.log.Sync()
}
