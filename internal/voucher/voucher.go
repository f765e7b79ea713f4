// =============================================================================
// Inventory Voucher Manager - Voucher Entities
// =============================================================================
//
// Core entities for inbound/outbound vouchers and the derivation rules applied
// whenever a voucher is constructed or edited:
//   - Line totals:   total = quantity * unit price
//   - Grand total:   sum of line totals + driver trip cost
//   - STT positions: contiguous 1..N matching item order
//
// Totals are stored fields recomputed from raw inputs on every mutation before
// save; loaded records are trusted as-is. JSON field names match the persisted
// blob format, so data written by earlier versions of the system loads
// unchanged.
//
// =============================================================================

package voucher

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used on vouchers.
const DateLayout = "2006-01-02"

// Item is one line within a voucher.
type Item struct {
	// ID is unique within the parent record and stable across edits.
	ID string `json:"id"`

	// STT is the 1-based sequence position, contiguous and matching the
	// item's position in the parent's ordered item list.
	STT int `json:"stt"`

	// Name is the item name, required non-empty at save time.
	Name string `json:"itemName"`

	// Quantity may be fractional. Negative values are accepted.
	Quantity float64 `json:"quantity"`

	// UnitPrice is the per-unit price. Negative values are accepted.
	UnitPrice float64 `json:"unitPrice"`

	// Total is the derived line total (quantity * unit price).
	Total float64 `json:"total"`
}

// Record is one inbound/outbound voucher.
type Record struct {
	// ID has the format YY.MM.NNN and is immutable once assigned.
	ID string `json:"id"`

	// Date is the user-editable voucher date (YYYY-MM-DD). It is independent
	// of the month embedded in the identifier; the two are never reconciled.
	Date string `json:"date"`

	// RecipientUnit is the counterparty receiving the goods.
	RecipientUnit string `json:"recipientUnit"`

	// DriverName is optional.
	DriverName string `json:"driverName"`

	// DriverTripCost is the transport cost added to the grand total.
	DriverTripCost float64 `json:"driverTripCost"`

	// Items is the ordered line item list; first-to-last is display order.
	Items []Item `json:"items"`

	// GrandTotal is the derived sum of line totals plus trip cost.
	GrandTotal float64 `json:"grandTotal"`

	// Notes is optional free text.
	Notes string `json:"notes,omitempty"`
}

// NewItem creates a blank line item at the given sequence position with a
// fresh identifier.
func NewItem(stt int) Item {
	return Item{ID: uuid.NewString(), STT: stt}
}

// LineTotal computes a line total from quantity and unit price.
func LineTotal(quantity, unitPrice float64) float64 {
	return quantity * unitPrice
}

// ItemsSubtotal sums the line totals of all items.
func ItemsSubtotal(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Total
	}
	return sum
}

// GrandTotal computes the voucher total: items subtotal plus trip cost.
func GrandTotal(items []Item, tripCost float64) float64 {
	return ItemsSubtotal(items) + tripCost
}

// Renumber rewrites STT positions to the contiguous range 1..N in list order.
func Renumber(items []Item) {
	for i := range items {
		items[i].STT = i + 1
	}
}

// RemoveItem filters out the item with the given id and renumbers the rest.
// Removing the last remaining item is a no-op: at least one item survives.
func RemoveItem(items []Item, id string) []Item {
	if len(items) <= 1 {
		return items
	}

	kept := make([]Item, 0, len(items)-1)
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	Renumber(kept)
	return kept
}

// Recalculate rederives every line total and the grand total from the raw
// quantity, price, and trip cost inputs.
func (r *Record) Recalculate() {
	for i := range r.Items {
		r.Items[i].Total = LineTotal(r.Items[i].Quantity, r.Items[i].UnitPrice)
	}
	r.GrandTotal = GrandTotal(r.Items, r.DriverTripCost)
}

// ValidationError is a save-time validation failure. It blocks the save and is
// surfaced to the user synchronously; no partial save occurs.
type ValidationError struct {
	// Field is the voucher field that failed validation.
	Field string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("field '%s': %s", e.Field, e.Message)
}

// Validate applies the save-time rules: the recipient unit must be non-empty,
// the voucher must have at least one item, and every item needs a name.
// Negative quantities and prices are accepted without rejection.
func (r *Record) Validate() error {
	if strings.TrimSpace(r.RecipientUnit) == "" {
		return &ValidationError{Field: "recipientUnit", Message: "recipient unit is required"}
	}
	if len(r.Items) == 0 {
		return &ValidationError{Field: "items", Message: "at least one item is required"}
	}
	for _, it := range r.Items {
		if strings.TrimSpace(it.Name) == "" {
			return &ValidationError{
				Field:   "itemName",
				Message: fmt.Sprintf("item %d is missing a name", it.STT),
			}
		}
	}
	return nil
}
