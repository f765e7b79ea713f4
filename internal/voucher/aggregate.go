// =============================================================================
// Inventory Voucher Manager - Record Aggregation
// =============================================================================
//
// Derived views over the record collection: the per-partner debt rollup behind
// the debts view and the headline stats behind the dashboard. All functions
// here are pure; they are re-run in full whenever a view renders.
//
// =============================================================================

package voucher

import "time"

// PartnerSummary is the derived per-partner aggregate. It is never persisted.
type PartnerSummary struct {
	// Name is the recipient unit string, matched exactly (case-sensitive,
	// no normalization).
	Name string

	// TotalDebt is the sum of grand totals across the partner's vouchers.
	TotalDebt float64

	// TransactionCount is the number of vouchers for this partner.
	TransactionCount int

	// LastTransaction is the most recent voucher date (calendar comparison).
	LastTransaction string

	// LatestRecord points at the voucher bearing the most recent date. Among
	// date ties, the record appearing later in collection order wins.
	LatestRecord *Record
}

// AggregateByPartner groups records by exact recipient-unit equality and
// computes each partner's debt rollup. Partners appear in order of first
// appearance in the collection. The input is not mutated.
func AggregateByPartner(records []Record) []PartnerSummary {
	index := make(map[string]int, len(records))
	summaries := make([]PartnerSummary, 0)

	for i := range records {
		r := &records[i]

		pos, ok := index[r.RecipientUnit]
		if !ok {
			pos = len(summaries)
			index[r.RecipientUnit] = pos
			summaries = append(summaries, PartnerSummary{
				Name:            r.RecipientUnit,
				LastTransaction: r.Date,
				LatestRecord:    r,
			})
		}

		s := &summaries[pos]
		s.TotalDebt += r.GrandTotal
		s.TransactionCount++
		if dateOnOrAfter(r.Date, s.LastTransaction) {
			s.LastTransaction = r.Date
			s.LatestRecord = r
		}
	}

	return summaries
}

// TotalDebt sums the debt across all partner summaries.
func TotalDebt(summaries []PartnerSummary) float64 {
	var sum float64
	for _, s := range summaries {
		sum += s.TotalDebt
	}
	return sum
}

// dateOnOrAfter reports whether candidate is on or after current, comparing as
// calendar dates. An unparsable candidate never wins; an unparsable current
// always loses.
func dateOnOrAfter(candidate, current string) bool {
	c, err := time.Parse(DateLayout, candidate)
	if err != nil {
		return false
	}
	cur, err := time.Parse(DateLayout, current)
	if err != nil {
		return true
	}
	return !c.Before(cur)
}

// Stats are the headline numbers shown on the dashboard.
type Stats struct {
	// TotalValue is the sum of grand totals across all vouchers.
	TotalValue float64

	// ItemCount is the total number of line items across all vouchers.
	ItemCount int

	// PartnerCount is the number of distinct recipient units.
	PartnerCount int

	// VoucherCount is the number of vouchers.
	VoucherCount int
}

// Summarize computes dashboard stats over the full collection.
func Summarize(records []Record) Stats {
	partners := make(map[string]struct{}, len(records))
	stats := Stats{VoucherCount: len(records)}

	for _, r := range records {
		stats.TotalValue += r.GrandTotal
		stats.ItemCount += len(r.Items)
		partners[r.RecipientUnit] = struct{}{}
	}
	stats.PartnerCount = len(partners)

	return stats
}

// Recent returns up to n records from the head of the collection. The
// collection is newest-insertion-first, so these are the latest entries.
func Recent(records []Record, n int) []Record {
	if len(records) < n {
		n = len(records)
	}
	return records[:n]
}
