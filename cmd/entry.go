// =============================================================================
// Inventory Voucher Manager - Entry Command
// =============================================================================
//
// This file defines the 'entry' command: create a new voucher or edit an
// existing one.
//
// COMMAND USAGE:
//   voucher entry --recipient "Công ty A" --item "Xi măng:10:85000" [flags]
//   voucher entry --edit 24.03.001 --recipient "Công ty B" --item "Cát:5:30000"
//
// FLAGS:
//   --recipient   : Recipient unit (required)
//   --driver      : Driver name (optional)
//   --trip-cost   : Driver trip cost
//   --date        : Voucher date YYYY-MM-DD (default: today)
//   --item        : Line item as "name:quantity:unitPrice" (repeatable)
//   --notes       : Free-text notes
//   --edit        : Identifier of an existing voucher to replace
//
// SAVE SEMANTICS:
//   - New voucher: the YY.MM.NNN identifier is allocated at save time from the
//     current collection and clock, and the voucher is prepended (the
//     collection is newest-first).
//   - Edit: the identifier is preserved and every other field is replaced.
//   - Line totals and the grand total are recomputed from the raw inputs
//     before the save; validation failures block the save entirely.
//
// =============================================================================

package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/namphatvn/inventory-voucher/internal/voucher"
	"github.com/namphatvn/inventory-voucher/pkg/format"
)

var (
	entryRecipient string
	entryDriver    string
	entryTripCost  float64
	entryDate      string
	entryItems     []string
	entryNotes     string
	entryEditID    string
)

// entryCmd represents the 'entry' command.
var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Create a new voucher or edit an existing one",
	Long: `The entry command saves one inbound/outbound voucher. Provide the recipient
unit and at least one line item; line totals and the grand total are computed
automatically. With --edit, the named voucher keeps its identifier and has all
other fields replaced.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runEntry()
	},
}

func init() {
	rootCmd.AddCommand(entryCmd)

	entryCmd.Flags().StringVar(&entryRecipient, "recipient", "", "Recipient unit (required)")
	entryCmd.Flags().StringVar(&entryDriver, "driver", "", "Driver name")
	entryCmd.Flags().Float64Var(&entryTripCost, "trip-cost", 0, "Driver trip cost")
	entryCmd.Flags().StringVar(&entryDate, "date", "", "Voucher date YYYY-MM-DD (default: today)")
	entryCmd.Flags().StringArrayVar(&entryItems, "item", nil,
		`Line item as "name:quantity:unitPrice" (repeatable)`)
	entryCmd.Flags().StringVar(&entryNotes, "notes", "", "Free-text notes")
	entryCmd.Flags().StringVar(&entryEditID, "edit", "", "Identifier of an existing voucher to edit")
}

func runEntry() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	date := entryDate
	if date == "" {
		date = time.Now().Format(voucher.DateLayout)
	} else if _, err := time.Parse(voucher.DateLayout, date); err != nil {
		return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", entryDate)
	}

	items, err := parseItems(entryItems)
	if err != nil {
		return err
	}

	record := voucher.Record{
		Date:           date,
		RecipientUnit:  entryRecipient,
		DriverName:     entryDriver,
		DriverTripCost: entryTripCost,
		Items:          items,
		Notes:          entryNotes,
	}
	record.Recalculate()

	if err := record.Validate(); err != nil {
		return err
	}

	if entryEditID != "" {
		record.ID = entryEditID
		if !a.store.Update(record) {
			return fmt.Errorf("voucher %s not found", entryEditID)
		}
		a.log.Info("voucher updated", zap.String("id", record.ID))
		fmt.Printf("Updated voucher %s (grand total %s)\n",
			record.ID, format.MoneyVND(record.GrandTotal))
		return nil
	}

	record.ID = voucher.NextID(a.store.List(), time.Now())
	a.store.Create(record)
	a.log.Info("voucher created", zap.String("id", record.ID))
	fmt.Printf("Created voucher %s (grand total %s)\n",
		record.ID, format.MoneyVND(record.GrandTotal))
	return nil
}

// parseItems converts --item specs into line items with fresh identifiers and
// contiguous STT positions. The quantity and unit price are the last two
// colon-separated segments, so item names may themselves contain colons.
func parseItems(specs []string) ([]voucher.Item, error) {
	items := make([]voucher.Item, 0, len(specs))

	for _, spec := range specs {
		item, err := parseItemSpec(spec, len(items)+1)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func parseItemSpec(spec string, stt int) (voucher.Item, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 3 {
		return voucher.Item{}, fmt.Errorf(
			"invalid --item %q: expected \"name:quantity:unitPrice\"", spec)
	}

	name := strings.Join(parts[:len(parts)-2], ":")
	qtyStr := strings.TrimSpace(parts[len(parts)-2])
	priceStr := strings.TrimSpace(parts[len(parts)-1])

	quantity, err := strconv.ParseFloat(qtyStr, 64)
	if err != nil {
		return voucher.Item{}, fmt.Errorf("invalid quantity %q in --item %q", qtyStr, spec)
	}
	unitPrice, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return voucher.Item{}, fmt.Errorf("invalid unit price %q in --item %q", priceStr, spec)
	}

	item := voucher.NewItem(stt)
	item.Name = strings.TrimSpace(name)
	item.Quantity = quantity
	item.UnitPrice = unitPrice
	item.Total = voucher.LineTotal(quantity, unitPrice)
	return item, nil
}
