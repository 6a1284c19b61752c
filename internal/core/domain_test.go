package core

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewCustomer(t *testing.T) {
	cases := []struct {
		name string
		rate string
		err  error
	}{
		{"Ravi", "40", nil},
		{"  Ravi  ", "40", nil},
		{"", "40", ErrEmptyName},
		{"   ", "40", ErrEmptyName},
		{"Ravi", "-1", ErrNegativeRate},
		{"Ravi", "0", nil}, // zero rate is allowed
	}
	for _, tc := range cases {
		rate := decimal.RequireFromString(tc.rate)
		c, err := NewCustomer(tc.name, rate)
		if !errors.Is(err, tc.err) {
			t.Fatalf("NewCustomer(%q, %s): err=%v, want %v", tc.name, tc.rate, err, tc.err)
		}
		if err == nil && c.Name != "Ravi" {
			t.Fatalf("NewCustomer(%q): name not trimmed: %q", tc.name, c.Name)
		}
	}
}

func TestNewDeliveryRecordComputesAmountOnce(t *testing.T) {
	date := NewDate(2024, time.June, 15)
	qty := decimal.RequireFromString("2.0")
	rate := decimal.RequireFromString("40.0")

	rec, err := NewDeliveryRecord(date, "Ravi", qty, rate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.Amount.Equal(decimal.RequireFromString("80")) {
		t.Fatalf("amount = %s, want 80", rec.Amount)
	}

	// Zero quantity produces a zero-amount record, no guard against it.
	rec, err = NewDeliveryRecord(date, "Ravi", decimal.Zero, rate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.Amount.IsZero() {
		t.Fatalf("zero quantity amount = %s, want 0", rec.Amount)
	}
}

func TestNewDeliveryRecordValidation(t *testing.T) {
	date := NewDate(2024, time.June, 15)
	one := decimal.New(1, 0)

	if _, err := NewDeliveryRecord(Date{}, "Ravi", one, one); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("zero date: err=%v", err)
	}
	if _, err := NewDeliveryRecord(date, "", one, one); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("empty customer: err=%v", err)
	}
	if _, err := NewDeliveryRecord(date, "Ravi", one.Neg(), one); !errors.Is(err, ErrNegativeQuantity) {
		t.Fatalf("negative quantity: err=%v", err)
	}
	if _, err := NewDeliveryRecord(date, "Ravi", one, one.Neg()); !errors.Is(err, ErrNegativeRate) {
		t.Fatalf("negative rate: err=%v", err)
	}
}

func TestMonthKey(t *testing.T) {
	d := NewDate(2024, time.June, 30)
	if got := d.Month(); got != (Month{Year: 2024, Month: time.June}) {
		t.Fatalf("month key = %v", got)
	}
	if got := d.Month().String(); got != "2024-06" {
		t.Fatalf("month string = %q", got)
	}
	if got := d.String(); got != "2024-06-30" {
		t.Fatalf("date string = %q", got)
	}
	if got := MonthOf(time.Date(2023, time.December, 31, 23, 59, 0, 0, time.UTC)); got.String() != "2023-12" {
		t.Fatalf("MonthOf = %q", got)
	}
}
