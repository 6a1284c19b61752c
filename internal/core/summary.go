package core

import "github.com/shopspring/decimal"

// CustomerTotal represents quantity and amount summed for one customer.
type CustomerTotal struct {
	Customer string
	Quantity decimal.Decimal
	Amount   decimal.Decimal
}

// MonthlySummary is the per-customer aggregation over one calendar month.
// It is derived on every render and never stored.
type MonthlySummary struct {
	Month Month
	Rows  []CustomerTotal // ascending by customer name
	Count int             // records contributing to the month
}

// Empty reports whether no record fell into the summarized month.
func (s MonthlySummary) Empty() bool {
	return len(s.Rows) == 0
}

// TotalQuantity sums the aggregated quantities across all customers.
func (s MonthlySummary) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, r := range s.Rows {
		total = total.Add(r.Quantity)
	}
	return total
}

// TotalAmount sums the aggregated amounts across all customers.
func (s MonthlySummary) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, r := range s.Rows {
		total = total.Add(r.Amount)
	}
	return total
}
