// Package session holds the per-session mutable state of the ledger: the
// customer rate table and the append-only delivery record log. Nothing here
// survives a restart.
package session

import (
	"iter"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"milklog/internal/core"
)

// Store is one session's state. It starts empty and is garbage-collected
// with the session; there is no teardown.
type Store struct {
	mu        sync.Mutex
	customers map[string]decimal.Decimal
	records   []core.DeliveryRecord
}

func NewStore() *Store {
	return &Store{customers: make(map[string]decimal.Decimal)}
}

// UpsertCustomer inserts or overwrites the rate for a customer name.
// Re-adding a name wins; there is no delete operation.
func (s *Store) UpsertCustomer(name string, rate decimal.Decimal) (core.Customer, error) {
	c, err := core.NewCustomer(name, rate)
	if err != nil {
		return core.Customer{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.Name] = c.Rate
	return c, nil
}

// Rate returns the current rate for a customer name.
func (s *Store) Rate(name string) (decimal.Decimal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rate, ok := s.customers[name]
	return rate, ok
}

// CustomerCount returns the number of registered customers.
func (s *Store) CustomerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.customers)
}

// Customers returns a restartable sequence of (name, rate) pairs in
// ascending name order. Each iteration sees a fresh snapshot; an empty
// sequence is a valid state.
func (s *Store) Customers() iter.Seq2[string, decimal.Decimal] {
	return func(yield func(string, decimal.Decimal) bool) {
		s.mu.Lock()
		names := make([]string, 0, len(s.customers))
		for name := range s.customers {
			names = append(names, name)
		}
		rates := make(map[string]decimal.Decimal, len(s.customers))
		for name, rate := range s.customers {
			rates[name] = rate
		}
		s.mu.Unlock()

		sort.Strings(names)
		for _, name := range names {
			if !yield(name, rates[name]) {
				return
			}
		}
	}
}

// AppendRecord appends to the record log. Validation beyond what the record
// constructor already performed is the caller's job.
func (s *Store) AppendRecord(rec core.DeliveryRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

// Records returns a snapshot copy of the log in insertion order.
func (s *Store) Records() []core.DeliveryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.DeliveryRecord, len(s.records))
	copy(out, s.records)
	return out
}

// RecordCount returns the current length of the record log.
func (s *Store) RecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
