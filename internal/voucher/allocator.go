// =============================================================================
// Inventory Voucher Manager - Identifier Allocator
// =============================================================================
//
// Voucher identifiers have the form YY.MM.NNN: a two-digit year, a zero-padded
// month, and a zero-padded counter scoped to that calendar month. The counter
// restarts at 000 each month and advances as max-in-use plus one, derived from
// the record collection at call time.
//
// Consequence of the max+1 scan: deleting the highest-numbered voucher of a
// month frees its counter, and the next allocation reuses it. This matches the
// behavior of the paper numbering it replaced and is asserted by tests.
//
// =============================================================================

package voucher

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NextID returns the next unused identifier for the month of now, given the
// full current record collection. It is a pure read of the collection and the
// clock; assigning and persisting the identifier is the caller's job.
//
// Identifiers whose counter segment does not parse contribute the sentinel -1,
// so malformed legacy identifiers are tolerated without affecting allocation.
func NextID(records []Record, now time.Time) string {
	prefix := now.Format("06.01")

	maxCounter := -1
	matched := false
	for _, r := range records {
		if !strings.HasPrefix(r.ID, prefix+".") {
			continue
		}
		matched = true

		counter := -1
		parts := strings.Split(r.ID, ".")
		if len(parts) == 3 {
			if n, err := strconv.Atoi(parts[2]); err == nil {
				counter = n
			}
		}
		if counter > maxCounter {
			maxCounter = counter
		}
	}

	if !matched {
		return prefix + ".000"
	}
	return fmt.Sprintf("%s.%03d", prefix, maxCounter+1)
}
