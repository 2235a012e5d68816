package money_test

import (
	"math"
	"testing"

	"github.com/andeanbank/corebank/pkg/currency"
	"github.com/andeanbank/corebank/pkg/domain/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, amount float64, code currency.Code) money.Money {
	t.Helper()
	m, err := money.New(amount, code)
	require.NoError(t, err, "failed to create money for test")
	return m
}

func TestNew_Precision(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		code     currency.Code
		expected string
		wantErr  bool
	}{
		{"COP with centavos", 100.50, "COP", "100.50 COP", false},
		{"USD with cents", 99.99, "USD", "99.99 USD", false},
		{"more than 2 decimals rounds half-up", 100.999, "USD", "101.00 USD", false},
		{"float artifact 0.1+0.2", 0.30000000000000004, "COP", "0.30 COP", false},
		{"empty code falls back to default", 10, "", "10.00 COP", false},
		{"malformed code", 1, currency.Code("usd"), "", true},
		{"unregistered code", 1, currency.Code("XXX"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := money.New(tt.amount, tt.code)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m.String())
		})
	}
}

func TestNew_NonFinite(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
	}{
		{"NaN", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				_, err := money.New(tt.amount, "COP")
				assert.ErrorIs(t, err, money.ErrInvalidAmount)
			})
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	cop100 := mustNew(t, 100, "COP")
	cop50 := mustNew(t, 50, "COP")
	usd100 := mustNew(t, 100, "USD")

	t.Run("add same currency", func(t *testing.T) {
		result, err := cop100.Add(cop50)
		require.NoError(t, err)
		assert.Equal(t, int64(15000), result.Amount())
	})

	t.Run("add different currency", func(t *testing.T) {
		_, err := cop100.Add(usd100)
		assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
	})

	t.Run("subtract same currency", func(t *testing.T) {
		result, err := cop100.Subtract(cop50)
		require.NoError(t, err)
		assert.InDelta(t, 50.0, result.AmountFloat(), 0.001)
	})

	t.Run("subtract below zero", func(t *testing.T) {
		result, err := cop50.Subtract(cop100)
		require.NoError(t, err)
		assert.True(t, result.IsNegative())
	})

	t.Run("negate", func(t *testing.T) {
		assert.Equal(t, int64(-10000), cop100.Negate().Amount())
	})
}

func TestMoney_Comparison(t *testing.T) {
	cop100 := mustNew(t, 100, "COP")
	cop50 := mustNew(t, 50, "COP")
	usd100 := mustNew(t, 100, "USD")

	t.Run("greater than", func(t *testing.T) {
		got, err := cop100.GreaterThan(cop50)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("less than", func(t *testing.T) {
		got, err := cop50.LessThan(cop100)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("cross-currency comparison fails", func(t *testing.T) {
		_, err := cop100.GreaterThan(usd100)
		assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
	})

	t.Run("equals", func(t *testing.T) {
		assert.True(t, cop100.Equals(mustNew(t, 100, "COP")))
		assert.False(t, cop100.Equals(usd100))
	})
}

func TestMoney_Predicates(t *testing.T) {
	zero := money.Zero("COP")
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsPositive())
	assert.False(t, zero.IsNegative())
	assert.Equal(t, currency.Code("COP"), zero.Currency())

	m := mustNew(t, 0.01, "COP")
	assert.True(t, m.IsPositive())
	assert.Equal(t, int64(1), m.Amount())
}

func TestNewFromSmallestUnit(t *testing.T) {
	m, err := money.NewFromSmallestUnit(12345, "COP")
	require.NoError(t, err)
	assert.Equal(t, int64(12345), m.Amount())
	assert.InDelta(t, 123.45, m.AmountFloat(), 0.001)
}
