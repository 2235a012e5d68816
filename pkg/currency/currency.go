// Package currency holds the registry of currencies the bank can hold
// balances in, together with their display metadata.
package currency

import (
	"errors"
	"regexp"
)

// Code is an ISO 4217 currency code (3 uppercase letters).
type Code string

// DefaultCurrency is used whenever a caller does not specify a currency.
const DefaultCurrency Code = "COP"

// ErrUnsupportedCurrency is returned when a currency code is well formed
// but not registered.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// Meta describes a registered currency.
type Meta struct {
	Code     Code
	Name     string
	Symbol   string
	Decimals int
}

var registry = map[Code]Meta{
	"COP": {Code: "COP", Name: "Colombian Peso", Symbol: "$", Decimals: 2},
	"USD": {Code: "USD", Name: "US Dollar", Symbol: "$", Decimals: 2},
	"EUR": {Code: "EUR", Name: "Euro", Symbol: "€", Decimals: 2},
}

var codeFormat = regexp.MustCompile(`^[A-Z]{3}$`)

// IsValidFormat reports whether s looks like an ISO 4217 code.
func IsValidFormat(s string) bool {
	return codeFormat.MatchString(s)
}

// IsSupported reports whether the code is registered.
func IsSupported(s string) bool {
	_, ok := registry[Code(s)]
	return ok
}

// Get returns the metadata for a registered currency.
func Get(s string) (Meta, error) {
	meta, ok := registry[Code(s)]
	if !ok {
		return Meta{}, ErrUnsupportedCurrency
	}
	return meta, nil
}

func (c Code) String() string {
	return string(c)
}
