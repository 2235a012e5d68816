// Package money provides the Money value object used for every balance and
// ledger amount in the system.
package money

import (
	"errors"
	"fmt"
	"math"

	"github.com/andeanbank/corebank/pkg/currency"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidCurrencyCode is returned when a currency code is not a
	// well-formed ISO 4217 code.
	ErrInvalidCurrencyCode = errors.New("invalid currency code")

	// ErrInvalidAmount is returned when an amount is not a finite number.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrCurrencyMismatch is returned when arithmetic or comparison is
	// attempted across two different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// Amount is a monetary amount expressed in the smallest currency unit
// (e.g. centavos for COP).
type Amount = int64

// Money represents a monetary value in a specific currency.
//
// Invariants:
//   - The amount is always stored in the smallest currency unit.
//   - The currency code is always a registered ISO 4217 code.
//   - All arithmetic requires matching currencies.
type Money struct {
	amount   Amount
	currency currency.Code
}

// New creates Money from a main-unit amount (e.g. pesos, not centavos).
// The amount is rounded half-up to the currency's number of decimals;
// decimal arithmetic avoids binary float artifacts on the way in.
func New(amount float64, code currency.Code) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, ErrInvalidAmount
	}
	if code == "" {
		code = currency.DefaultCurrency
	}
	if !currency.IsValidFormat(string(code)) {
		return Money{}, ErrInvalidCurrencyCode
	}
	meta, err := currency.Get(string(code))
	if err != nil {
		return Money{}, err
	}
	units := decimal.NewFromFloat(amount).
		Shift(int32(meta.Decimals)).
		Round(0)
	if !units.IsInteger() || !units.BigInt().IsInt64() {
		return Money{}, fmt.Errorf("amount %v out of range for %s", amount, code)
	}
	return Money{amount: units.IntPart(), currency: code}, nil
}

// NewFromSmallestUnit creates Money directly from smallest-unit data.
// Used for hydrating persisted values; no rounding is involved.
func NewFromSmallestUnit(amount Amount, code currency.Code) (Money, error) {
	if code == "" {
		code = currency.DefaultCurrency
	}
	if !currency.IsValidFormat(string(code)) {
		return Money{}, ErrInvalidCurrencyCode
	}
	return Money{amount: amount, currency: code}, nil
}

// Zero returns a zero amount in the given currency.
func Zero(code currency.Code) Money {
	if code == "" {
		code = currency.DefaultCurrency
	}
	return Money{amount: 0, currency: code}
}

// Amount returns the amount in the smallest currency unit.
func (m Money) Amount() Amount {
	return m.amount
}

// AmountFloat returns the amount in main currency units.
func (m Money) AmountFloat() float64 {
	meta, err := currency.Get(string(m.currency))
	if err != nil {
		return float64(m.amount)
	}
	f, _ := decimal.New(m.amount, -int32(meta.Decimals)).Float64()
	return f
}

// Currency returns the currency code.
func (m Money) Currency() currency.Code {
	return m.currency
}

// Add returns m + other. Currencies must match.
func (m Money) Add(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Subtract returns m - other. Currencies must match.
func (m Money) Subtract(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

// Negate returns the additive inverse of m.
func (m Money) Negate() Money {
	return Money{amount: -m.amount, currency: m.currency}
}

// Equals reports whether m and other have the same currency and amount.
func (m Money) Equals(other Money) bool {
	return m.IsSameCurrency(other) && m.amount == other.amount
}

// GreaterThan reports whether m > other. Currencies must match.
func (m Money) GreaterThan(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, ErrCurrencyMismatch
	}
	return m.amount > other.amount, nil
}

// LessThan reports whether m < other. Currencies must match.
func (m Money) LessThan(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, ErrCurrencyMismatch
	}
	return m.amount < other.amount, nil
}

// IsSameCurrency reports whether m and other share a currency.
func (m Money) IsSameCurrency(other Money) bool {
	return m.currency == other.currency
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsNegative reports whether the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount < 0
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// String renders the amount in main units with the currency code appended.
func (m Money) String() string {
	meta, err := currency.Get(string(m.currency))
	if err != nil {
		return fmt.Sprintf("%d %s", m.amount, m.currency)
	}
	return fmt.Sprintf("%s %s",
		decimal.New(m.amount, -int32(meta.Decimals)).StringFixed(int32(meta.Decimals)),
		m.currency,
	)
}
