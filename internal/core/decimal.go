// Package core provides the milk ledger domain types and parsing utilities.
//
// This file contains functions for parsing rates and quantities from form
// input and formatting decimal values for display.
package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseRate converts a decimal string into a non-negative rate per litre.
//
// It accepts both dot (40.5) and comma (40,5) decimal separators. Zero is a
// valid rate; an empty field defaults to zero, matching the form floor.
func ParseRate(s string) (decimal.Decimal, error) {
	d, err := parseNonNegative(s)
	if err != nil {
		if errors.Is(err, errNegative) {
			return decimal.Decimal{}, ErrNegativeRate
		}
		return decimal.Decimal{}, fmt.Errorf("parse rate: %w", err)
	}
	return d, nil
}

// ParseQuantity converts a decimal string into a non-negative litre quantity.
// Zero is permitted; the entry workflow allows degenerate zero entries.
func ParseQuantity(s string) (decimal.Decimal, error) {
	d, err := parseNonNegative(s)
	if err != nil {
		if errors.Is(err, errNegative) {
			return decimal.Decimal{}, ErrNegativeQuantity
		}
		return decimal.Decimal{}, fmt.Errorf("parse quantity: %w", err)
	}
	return d, nil
}

var errNegative = errors.New("negative value")

func parseNonNegative(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		// Numeric fields default to zero, matching the entry form floor.
		return decimal.Zero, nil
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() {
		return decimal.Decimal{}, errNegative
	}
	return d, nil
}

// FormatQuantity renders a litre quantity with two decimal places.
func FormatQuantity(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatAmount renders a currency amount with two decimal places and the
// rupee symbol used throughout the ledger.
func FormatAmount(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-₹" + d.Neg().StringFixed(2)
	}
	return "₹" + d.StringFixed(2)
}
