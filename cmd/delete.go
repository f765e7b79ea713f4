// =============================================================================
// Inventory Voucher Manager - Delete Command
// =============================================================================
//
// This file defines the 'delete' command, the only destructive action in the
// tool. It asks for confirmation before deleting; declining aborts with zero
// side effects. --yes skips the prompt for scripted use.
//
// COMMAND USAGE:
//   voucher delete 24.03.001
//   voucher delete 24.03.001 --yes
//
// =============================================================================

package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// deleteYes skips the confirmation prompt.
var deleteYes bool

// deleteCmd represents the 'delete' command.
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a voucher (asks for confirmation)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDelete(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolVarP(
		&deleteYes,
		"yes",
		"y",
		false,
		"Delete without asking for confirmation",
	)
}

func runDelete(cmd *cobra.Command, id string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	record, ok := a.store.Get(id)
	if !ok {
		return fmt.Errorf("voucher %s not found", id)
	}

	if !deleteYes {
		fmt.Printf("Delete voucher %s (%s, %s)? [y/N]: ",
			record.ID, record.Date, record.RecipientUnit)

		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	a.store.Delete(id)
	a.log.Info("voucher deleted", zap.String("id", id))
	fmt.Printf("Deleted voucher %s\n", id)
	return nil
}
