// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits kept for currency amounts.
const moneyScale = 2

// Money is a decimal currency amount. It embeds [decimal.Decimal] so the
// database/sql Scanner and Valuer implementations are inherited, and renders
// in JSON as a fixed two-decimal string (e.g. "25.00").
type Money struct {
	decimal.Decimal
}

// NewMoney parses s into a Money value.
func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// MustMoney is like [NewMoney] but panics on malformed input.
// Intended for constants and tests.
func MustMoney(s string) Money {
	m, err := NewMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Mul returns m multiplied by an integer quantity.
func (m Money) Mul(quantity int) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// String renders the amount with two fractional digits.
func (m Money) String() string {
	return m.Decimal.StringFixed(moneyScale)
}

// MarshalJSON renders the amount as a quoted fixed-point string, the way the
// database returns NUMERIC values.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// HasSubCents reports whether m carries more than two significant
// fractional digits.
func (m Money) HasSubCents() bool {
	return !m.Decimal.Equal(m.Decimal.Round(moneyScale))
}
