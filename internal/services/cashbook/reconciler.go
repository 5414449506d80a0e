package cashbook

import (
	"time"

	"clinic-cashbook-backend/internal/dates"
	"clinic-cashbook-backend/internal/models"

	"github.com/shopspring/decimal"
)

// dayTotals accumulates one calendar day's transactions split by sign.
type dayTotals struct {
	in  decimal.Decimal
	out decimal.Decimal
}

// bucketByDay groups transactions by the calendar date of their timestamp.
// A transaction counts toward exactly one day; the time of day is discarded
// once the bucket is chosen.
func bucketByDay(txs []models.LedgerTransaction) map[string]dayTotals {
	buckets := make(map[string]dayTotals)
	for _, tx := range txs {
		key := dates.DayKey(tx.OccurredAt)
		b := buckets[key]
		if tx.Amount.Sign() >= 0 {
			b.in = b.in.Add(tx.Amount)
		} else {
			b.out = b.out.Add(tx.Amount.Neg())
		}
		buckets[key] = b
	}
	return buckets
}

// resolveCarryForward decides which balance seeds the next day. A manually
// counted balance is ground truth and overrides the projection, so a day's
// miscount is absorbed there instead of compounding through every later day.
// Unconfirmed days carry the projection forward unchanged.
func resolveCarryForward(recorded *decimal.Decimal, expected decimal.Decimal) decimal.Decimal {
	if recorded != nil {
		return *recorded
	}
	return expected
}

// Reconcile walks [from, to] one calendar day at a time and emits exactly one
// record per day, gaps and all. Pure function of its inputs: previous is the
// anchor balance (nil means the running balance starts at zero), transactions
// and recordedBalances are the pre-loaded window contents, with
// recordedBalances keyed by day.
func Reconcile(
	from, to time.Time,
	previous *models.RecordedBalance,
	transactions []models.LedgerTransaction,
	recordedBalances map[string]models.RecordedBalance,
) []models.DailyBalanceRecord {
	running := decimal.Zero
	if previous != nil {
		running = previous.Amount
	}

	buckets := bucketByDay(transactions)

	end := dates.DayOf(to)
	records := make([]models.DailyBalanceRecord, 0, max(dates.DaysBetween(from, to), 0))
	for current := dates.DayOf(from); !current.After(end); current = dates.NextDay(current) {
		totals := buckets[dates.DayKey(current)]
		netChange := totals.in.Sub(totals.out)
		expected := running.Add(netChange)

		rec := models.DailyBalanceRecord{
			Date:            current,
			TotalIn:         totals.in,
			TotalOut:        totals.out,
			NetChange:       netChange,
			ExpectedBalance: expected,
		}
		if rb, ok := recordedBalances[dates.DayKey(current)]; ok {
			amount := rb.Amount
			diff := amount.Sub(expected)
			rec.RecordedBalance = &amount
			rec.Difference = &diff
			rec.Note = rb.Note
		}
		records = append(records, rec)

		running = resolveCarryForward(rec.RecordedBalance, expected)
	}

	return records
}
