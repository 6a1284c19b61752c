// Package report derives the current-month view of the record log: a
// per-customer aggregation of quantity and amount. Summaries are recomputed
// on every render and never stored.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"milklog/internal/core"
)

// Clock abstracts the time source so tests can fix the date instead of
// depending on wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// CurrentMonth returns the calendar year-month at the moment of the call.
// Callers that need the month for both filtering and naming must read it
// once and reuse the value, so a render near a month boundary cannot
// disagree with itself.
func CurrentMonth(clock Clock) core.Month {
	return core.MonthOf(clock.Now())
}

// FilterMonth returns the records whose date falls into the given month,
// preserving insertion order.
func FilterMonth(records []core.DeliveryRecord, month core.Month) []core.DeliveryRecord {
	var out []core.DeliveryRecord
	for _, rec := range records {
		if rec.Date.Month() == month {
			out = append(out, rec)
		}
	}
	return out
}

// Summarize groups the given month's records by customer and sums quantity
// and amount per group. Rows are sorted ascending by customer name so the
// output is deterministic.
func Summarize(records []core.DeliveryRecord, month core.Month) core.MonthlySummary {
	subset := FilterMonth(records, month)

	totals := make(map[string]*core.CustomerTotal)
	for _, rec := range subset {
		t, ok := totals[rec.Customer]
		if !ok {
			t = &core.CustomerTotal{
				Customer: rec.Customer,
				Quantity: decimal.Zero,
				Amount:   decimal.Zero,
			}
			totals[rec.Customer] = t
		}
		t.Quantity = t.Quantity.Add(rec.Quantity)
		t.Amount = t.Amount.Add(rec.Amount)
	}

	rows := make([]core.CustomerTotal, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, *t)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Customer < rows[j].Customer })

	return core.MonthlySummary{Month: month, Rows: rows, Count: len(subset)}
}
