package voucher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateByPartner(t *testing.T) {
	records := []Record{
		{ID: "24.01.000", Date: "2024-01-01", RecipientUnit: "A", GrandTotal: 100},
		{ID: "24.01.001", Date: "2024-01-15", RecipientUnit: "A", GrandTotal: 200},
		{ID: "24.01.002", Date: "2024-01-10", RecipientUnit: "B", GrandTotal: 50},
	}

	summaries := AggregateByPartner(records)

	require.Len(t, summaries, 2)

	a := summaries[0]
	assert.Equal(t, "A", a.Name)
	assert.Equal(t, 300.0, a.TotalDebt)
	assert.Equal(t, 2, a.TransactionCount)
	assert.Equal(t, "2024-01-15", a.LastTransaction)
	assert.Equal(t, "24.01.001", a.LatestRecord.ID)

	b := summaries[1]
	assert.Equal(t, "B", b.Name)
	assert.Equal(t, 50.0, b.TotalDebt)
	assert.Equal(t, 1, b.TransactionCount)
	assert.Equal(t, "2024-01-10", b.LastTransaction)
	assert.Equal(t, "24.01.002", b.LatestRecord.ID)
}

func TestAggregateDateTieBreak(t *testing.T) {
	// Among equal dates, the record appearing later in collection order wins
	// the latest-record pointer.
	records := []Record{
		{ID: "24.02.001", Date: "2024-02-10", RecipientUnit: "A", GrandTotal: 10},
		{ID: "24.02.000", Date: "2024-02-10", RecipientUnit: "A", GrandTotal: 20},
	}

	summaries := AggregateByPartner(records)

	require.Len(t, summaries, 1)
	assert.Equal(t, "24.02.000", summaries[0].LatestRecord.ID)
	assert.Equal(t, 30.0, summaries[0].TotalDebt)
}

func TestAggregateExactStringGrouping(t *testing.T) {
	// Keys are raw strings: no trimming, no case folding.
	records := []Record{
		{ID: "1", Date: "2024-01-01", RecipientUnit: "Công ty A", GrandTotal: 10},
		{ID: "2", Date: "2024-01-02", RecipientUnit: "công ty a", GrandTotal: 20},
		{ID: "3", Date: "2024-01-03", RecipientUnit: "Công ty A ", GrandTotal: 30},
	}

	summaries := AggregateByPartner(records)

	assert.Len(t, summaries, 3)
}

func TestAggregateIsIdempotent(t *testing.T) {
	records := []Record{
		{ID: "1", Date: "2024-01-01", RecipientUnit: "A", GrandTotal: 100},
		{ID: "2", Date: "2024-01-15", RecipientUnit: "A", GrandTotal: 200},
		{ID: "3", Date: "2024-01-10", RecipientUnit: "B", GrandTotal: 50},
	}

	first := AggregateByPartner(records)
	second := AggregateByPartner(records)

	assert.Equal(t, first, second)
}

func TestAggregateSkipsUnparsableCandidateDates(t *testing.T) {
	records := []Record{
		{ID: "1", Date: "2024-01-05", RecipientUnit: "A", GrandTotal: 10},
		{ID: "2", Date: "not-a-date", RecipientUnit: "A", GrandTotal: 20},
	}

	summaries := AggregateByPartner(records)

	require.Len(t, summaries, 1)
	assert.Equal(t, "2024-01-05", summaries[0].LastTransaction)
	assert.Equal(t, "1", summaries[0].LatestRecord.ID)
	assert.Equal(t, 30.0, summaries[0].TotalDebt)
}

func TestTotalDebt(t *testing.T) {
	summaries := []PartnerSummary{
		{Name: "A", TotalDebt: 300},
		{Name: "B", TotalDebt: 50},
	}

	assert.Equal(t, 350.0, TotalDebt(summaries))
	assert.Equal(t, 0.0, TotalDebt(nil))
}

func TestSummarize(t *testing.T) {
	records := []Record{
		{ID: "1", RecipientUnit: "A", GrandTotal: 100, Items: []Item{{}, {}}},
		{ID: "2", RecipientUnit: "B", GrandTotal: 50, Items: []Item{{}}},
		{ID: "3", RecipientUnit: "A", GrandTotal: 25, Items: []Item{{}, {}, {}}},
	}

	stats := Summarize(records)

	assert.Equal(t, 175.0, stats.TotalValue)
	assert.Equal(t, 6, stats.ItemCount)
	assert.Equal(t, 2, stats.PartnerCount)
	assert.Equal(t, 3, stats.VoucherCount)
}

func TestRecent(t *testing.T) {
	records := []Record{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	assert.Len(t, Recent(records, 5), 3)
	recent := Recent(records, 2)
	require.Len(t, recent, 2)
	assert.Equal(t, "1", recent[0].ID)
	assert.Equal(t, "2", recent[1].ID)
}
