package ledger_test

import (
	"testing"

	"github.com/andeanbank/corebank/pkg/currency"
	"github.com/andeanbank/corebank/pkg/domain/ledger"
	"github.com/andeanbank/corebank/pkg/domain/money"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	credits := []ledger.Kind{ledger.KindDeposit, ledger.KindTransferIn}
	debits := []ledger.Kind{
		ledger.KindWithdrawal, ledger.KindTransferOut,
		ledger.KindPayment, ledger.KindRecharge,
	}
	for _, k := range credits {
		assert.True(t, k.Valid(), k)
		assert.False(t, k.Debits(), k)
	}
	for _, k := range debits {
		assert.True(t, k.Valid(), k)
		assert.True(t, k.Debits(), k)
	}
	assert.False(t, ledger.Kind("REVERSAL").Valid())
}

func TestNewMovement(t *testing.T) {
	accountID := uuid.New()
	amount := mustMoney(t, 100)
	after := mustMoney(t, 250)

	t.Run("valid", func(t *testing.T) {
		mv, err := ledger.NewMovement(accountID, ledger.KindDeposit, amount, "Salary", "", after)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, mv.ID)
		assert.Equal(t, accountID, mv.AccountID)
		assert.Equal(t, amount, mv.Amount)
		assert.Equal(t, after, mv.Balance)
		assert.False(t, mv.CreatedAt.IsZero())
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := ledger.NewMovement(accountID, "REVERSAL", amount, "x", "", after)
		assert.ErrorIs(t, err, ledger.ErrInvalidMovementKind)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := ledger.NewMovement(accountID, ledger.KindDeposit, money.Zero("COP"), "x", "", after)
		assert.ErrorIs(t, err, ledger.ErrAmountMustBePositive)
	})

	t.Run("blank description", func(t *testing.T) {
		_, err := ledger.NewMovement(accountID, ledger.KindDeposit, amount, "   ", "", after)
		assert.ErrorIs(t, err, ledger.ErrInvalidDescription)
	})

	t.Run("negative post balance", func(t *testing.T) {
		_, err := ledger.NewMovement(accountID, ledger.KindWithdrawal, amount, "x", "", amount.Negate())
		assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	})

	t.Run("currency mismatch with post balance", func(t *testing.T) {
		usd, err := money.New(100, "USD")
		require.NoError(t, err)
		_, err = ledger.NewMovement(accountID, ledger.KindDeposit, usd, "x", "", after)
		assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
	})
}

func TestMovement_Signed(t *testing.T) {
	amount := mustMoney(t, 100)
	in, err := ledger.NewMovement(uuid.New(), ledger.KindDeposit, amount, "in", "", amount)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), in.Signed().Amount())

	out, err := ledger.NewMovement(uuid.New(), ledger.KindPayment, amount, "out", "", money.Zero("COP"))
	require.NoError(t, err)
	assert.Equal(t, int64(-10000), out.Signed().Amount())
}

func TestReplay(t *testing.T) {
	accountID := uuid.New()
	build := func(kind ledger.Kind, amount, after float64) *ledger.Movement {
		mv, err := ledger.NewMovement(accountID, kind, mustMoney(t, amount), "seed", "", mustMoney(t, after))
		require.NoError(t, err)
		return mv
	}

	t.Run("sums signed amounts", func(t *testing.T) {
		movements := []*ledger.Movement{
			build(ledger.KindDeposit, 1000, 1000),
			build(ledger.KindWithdrawal, 300, 700),
			build(ledger.KindTransferIn, 50, 750),
			build(ledger.KindPayment, 750, 0),
		}
		total, err := ledger.Replay(movements, currency.DefaultCurrency)
		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})

	t.Run("empty ledger replays to zero", func(t *testing.T) {
		total, err := ledger.Replay(nil, currency.DefaultCurrency)
		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})

	t.Run("currency mismatch surfaces", func(t *testing.T) {
		_, err := ledger.Replay([]*ledger.Movement{build(ledger.KindDeposit, 10, 10)}, "USD")
		assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
	})
}

func TestNewReference(t *testing.T) {
	ref := ledger.NewReference()
	assert.Regexp(t, `^TRF-[0-9A-F]{12}$`, ref)
	assert.NotEqual(t, ref, ledger.NewReference())
}

func TestNewTransfer(t *testing.T) {
	from, to := uuid.New(), uuid.New()
	amount := mustMoney(t, 300)

	tr, err := ledger.NewTransfer(from, to, amount, "Rent", ledger.NewReference())
	require.NoError(t, err)
	assert.Equal(t, from, tr.FromAccountID)
	assert.Equal(t, to, tr.ToAccountID)
	assert.Equal(t, amount, tr.Amount)

	_, err = ledger.NewTransfer(from, from, amount, "Rent", ledger.NewReference())
	assert.ErrorIs(t, err, ledger.ErrSameAccountTransfer)
}
