package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"milklog/internal/core"
)

func record(t *testing.T, date core.Date, customer, qty, rate string) core.DeliveryRecord {
	t.Helper()
	rec, err := core.NewDeliveryRecord(date, customer,
		decimal.RequireFromString(qty), decimal.RequireFromString(rate))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	return rec
}

func TestCurrentMonthUsesInjectedClock(t *testing.T) {
	clock := FixedClock{T: time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC)}
	if got := CurrentMonth(clock); got.String() != "2024-06" {
		t.Fatalf("CurrentMonth = %s", got)
	}
}

func TestSummarizeGroupsAndSorts(t *testing.T) {
	june := core.Month{Year: 2024, Month: time.June}
	records := []core.DeliveryRecord{
		record(t, core.NewDate(2024, time.June, 1), "Ravi", "2", "40"),
		record(t, core.NewDate(2024, time.June, 2), "Anand", "1.5", "42"),
		record(t, core.NewDate(2024, time.June, 3), "Ravi", "1", "50"),
		record(t, core.NewDate(2024, time.May, 30), "Ravi", "9", "40"), // prior month, excluded
	}

	sum := Summarize(records, june)
	if sum.Count != 3 {
		t.Fatalf("count = %d, want 3", sum.Count)
	}
	if len(sum.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(sum.Rows))
	}
	if sum.Rows[0].Customer != "Anand" || sum.Rows[1].Customer != "Ravi" {
		t.Fatalf("rows not sorted by name: %v", sum.Rows)
	}
	if !sum.Rows[1].Quantity.Equal(decimal.RequireFromString("3")) {
		t.Fatalf("Ravi quantity = %s, want 3", sum.Rows[1].Quantity)
	}
	if !sum.Rows[1].Amount.Equal(decimal.RequireFromString("130")) {
		t.Fatalf("Ravi amount = %s, want 130", sum.Rows[1].Amount)
	}
}

// Conservation: summary totals must equal the sums over the month's subset.
func TestSummarizeConservesTotals(t *testing.T) {
	june := core.Month{Year: 2024, Month: time.June}
	records := []core.DeliveryRecord{
		record(t, core.NewDate(2024, time.June, 1), "Ravi", "2", "40"),
		record(t, core.NewDate(2024, time.June, 2), "Anand", "0.5", "42"),
		record(t, core.NewDate(2024, time.June, 5), "Meera", "3.25", "38"),
		record(t, core.NewDate(2024, time.July, 1), "Ravi", "7", "40"),
	}

	sum := Summarize(records, june)

	wantQty, wantAmt := decimal.Zero, decimal.Zero
	for _, rec := range FilterMonth(records, june) {
		wantQty = wantQty.Add(rec.Quantity)
		wantAmt = wantAmt.Add(rec.Amount)
	}
	if !sum.TotalQuantity().Equal(wantQty) {
		t.Fatalf("quantity total = %s, want %s", sum.TotalQuantity(), wantQty)
	}
	if !sum.TotalAmount().Equal(wantAmt) {
		t.Fatalf("amount total = %s, want %s", sum.TotalAmount(), wantAmt)
	}
}

func TestSummarizePriorMonthOnlyIsEmpty(t *testing.T) {
	june := core.Month{Year: 2024, Month: time.June}
	records := []core.DeliveryRecord{
		record(t, core.NewDate(2024, time.May, 12), "Ravi", "2", "40"),
	}

	sum := Summarize(records, june)
	if !sum.Empty() {
		t.Fatalf("expected empty summary, got %v", sum.Rows)
	}
	if sum.Count != 0 {
		t.Fatalf("count = %d, want 0", sum.Count)
	}
}
