// =============================================================================
// Inventory Voucher Manager - Display Formatting
// =============================================================================
//
// Display conventions for amounts and quantities on vouchers, lists, and
// exports. Amounts are Vietnamese đồng: rounded to whole đồng for display and
// grouped with dots (1234567.89 -> "1.234.568"). Stored values keep full
// float64 precision; rounding happens only here.
//
// =============================================================================

package format

import (
	"math"
	"strconv"
	"strings"
)

// Money renders an amount as whole đồng with dot-separated thousands groups.
func Money(v float64) string {
	n := int64(math.Round(v))

	negative := n < 0
	if negative {
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}

// MoneyVND renders an amount with the currency suffix used on printed vouchers.
func MoneyVND(v float64) string {
	return Money(v) + " VNĐ"
}

// Quantity renders a quantity without trailing zeros (2.50 -> "2.5", 3 -> "3").
func Quantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
