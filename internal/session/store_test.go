package session

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"milklog/internal/core"
)

func TestUpsertCustomerLastRateWins(t *testing.T) {
	s := NewStore()

	if _, err := s.UpsertCustomer("Ravi", dec("40")); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := s.UpsertCustomer("Ravi", dec("50")); err != nil {
		t.Fatalf("upsert again: %v", err)
	}
	if _, err := s.UpsertCustomer("Meera", dec("42")); err != nil {
		t.Fatalf("upsert other: %v", err)
	}

	if got := s.CustomerCount(); got != 2 {
		t.Fatalf("customer count = %d, want 2", got)
	}
	rate, ok := s.Rate("Ravi")
	if !ok || !rate.Equal(dec("50")) {
		t.Fatalf("Rate(Ravi) = %s, %v; want 50", rate, ok)
	}
}

func TestUpsertCustomerEmptyNameRejected(t *testing.T) {
	s := NewStore()
	_, err := s.UpsertCustomer("  ", dec("40"))
	if !errors.Is(err, core.ErrEmptyName) {
		t.Fatalf("err = %v, want ErrEmptyName", err)
	}
	if got := s.CustomerCount(); got != 0 {
		t.Fatalf("rejected upsert changed state: count=%d", got)
	}
}

func TestCustomersSequenceSortedAndRestartable(t *testing.T) {
	s := NewStore()
	for _, name := range []string{"Meera", "Anand", "Ravi"} {
		if _, err := s.UpsertCustomer(name, dec("40")); err != nil {
			t.Fatalf("upsert %s: %v", name, err)
		}
	}

	collect := func() []string {
		var names []string
		for name := range s.Customers() {
			names = append(names, name)
		}
		return names
	}

	want := []string{"Anand", "Meera", "Ravi"}
	for pass := 0; pass < 2; pass++ { // restartable: same result twice
		got := collect()
		if len(got) != len(want) {
			t.Fatalf("pass %d: got %v", pass, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("pass %d: got %v, want %v", pass, got, want)
			}
		}
	}

	// Early break must not deadlock or corrupt state.
	for range s.Customers() {
		break
	}
	if got := s.CustomerCount(); got != 3 {
		t.Fatalf("count after early break = %d", got)
	}
}

func TestCustomersEmptySequence(t *testing.T) {
	s := NewStore()
	for name := range s.Customers() {
		t.Fatalf("unexpected customer %q in empty store", name)
	}
}

func TestRecordLogAppendOnlyAndSnapshotInvariant(t *testing.T) {
	s := NewStore()
	if _, err := s.UpsertCustomer("Ravi", dec("40")); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	date := core.NewDate(2024, time.June, 15)
	rate, _ := s.Rate("Ravi")
	rec1, err := core.NewDeliveryRecord(date, "Ravi", dec("2"), rate)
	if err != nil {
		t.Fatalf("record 1: %v", err)
	}
	s.AppendRecord(rec1)

	// Rate update must not retroactively change the stored record.
	if _, err := s.UpsertCustomer("Ravi", dec("50")); err != nil {
		t.Fatalf("rate update: %v", err)
	}
	rate, _ = s.Rate("Ravi")
	rec2, err := core.NewDeliveryRecord(date, "Ravi", dec("1"), rate)
	if err != nil {
		t.Fatalf("record 2: %v", err)
	}
	s.AppendRecord(rec2)

	records := s.Records()
	if len(records) != 2 {
		t.Fatalf("record count = %d, want 2", len(records))
	}
	if !records[0].Amount.Equal(dec("80")) {
		t.Fatalf("record 1 amount = %s, want 80", records[0].Amount)
	}
	if !records[1].Amount.Equal(dec("50")) {
		t.Fatalf("record 2 amount = %s, want 50", records[1].Amount)
	}

	// Records() hands out a copy; mutating it must not touch the log.
	records[0].Customer = "tampered"
	if got := s.Records()[0].Customer; got != "Ravi" {
		t.Fatalf("log mutated through snapshot: %q", got)
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
