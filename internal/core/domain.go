package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type (
	// Month is a calendar year-month key derived from a record date.
	Month struct {
		Year  int
		Month time.Month
	}

	// Customer maps a unique name to its current rate per litre.
	Customer struct {
		Name string
		Rate decimal.Decimal
	}

	// DeliveryRecord is one immutable daily delivery entry. Rate is the
	// customer's rate copied at insertion time, never a live reference;
	// Amount is Quantity*Rate computed once when the record is built.
	DeliveryRecord struct {
		Date     Date
		Customer string
		Quantity decimal.Decimal
		Rate     decimal.Decimal
		Amount   decimal.Decimal
	}

	Date struct {
		time.Time
	}
)

var (
	ErrEmptyName        = errors.New("empty customer name")
	ErrNegativeRate     = errors.New("rate must not be negative")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
	ErrUnknownCustomer  = errors.New("unknown customer")
	ErrInvalidDate      = errors.New("invalid date")
)

// NewDate creates a new Date at day granularity (UTC midnight).
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to day granularity.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Month returns the year-month key of the date.
func (d Date) Month() Month {
	return Month{Year: d.Time.Year(), Month: d.Time.Month()}
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Time.Format("2006-01-02")
}

// String formats the month key as YYYY-MM, as used in the export filename.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// MonthOf returns the year-month key of an instant.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// NewCustomer validates and builds a customer entry. The name is the unique
// key of the rate table; an empty name is the one recoverable user error.
func NewCustomer(name string, rate decimal.Decimal) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, ErrEmptyName
	}
	if rate.IsNegative() {
		return Customer{}, ErrNegativeRate
	}
	return Customer{Name: name, Rate: rate}, nil
}

// NewDeliveryRecord snapshots the given rate and computes the amount once.
// Quantity zero is permitted and yields a zero-amount record.
func NewDeliveryRecord(date Date, customer string, quantity, rate decimal.Decimal) (DeliveryRecord, error) {
	if err := date.Validate(); err != nil {
		return DeliveryRecord{}, err
	}
	if strings.TrimSpace(customer) == "" {
		return DeliveryRecord{}, ErrEmptyName
	}
	if quantity.IsNegative() {
		return DeliveryRecord{}, ErrNegativeQuantity
	}
	if rate.IsNegative() {
		return DeliveryRecord{}, ErrNegativeRate
	}
	return DeliveryRecord{
		Date:     date,
		Customer: customer,
		Quantity: quantity,
		Rate:     rate,
		Amount:   quantity.Mul(rate),
	}, nil
}
