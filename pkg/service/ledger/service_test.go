package ledger_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/andeanbank/corebank/infra/repository/memory"
	"github.com/andeanbank/corebank/pkg/config"
	"github.com/andeanbank/corebank/pkg/domain/ledger"
	"github.com/andeanbank/corebank/pkg/repository"
	ledgersvc "github.com/andeanbank/corebank/pkg/service/ledger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*ledgersvc.Service, *memory.UoW) {
	t.Helper()
	uow := memory.NewUoW()
	deps := config.Deps{
		Uow:    uow,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return ledgersvc.New(deps), uow
}

func seedAccount(t *testing.T, uow *memory.UoW, number string, balance int64) *ledger.Account {
	t.Helper()
	acct, err := ledger.New().
		WithNumber(number).
		WithFullName("Holder " + number).
		WithEmail(number + "@example.com").
		WithBalance(balance).
		Build()
	require.NoError(t, err)
	err = uow.Do(context.Background(), func(u repository.UnitOfWork) error {
		accounts, err := u.AccountRepository()
		if err != nil {
			return err
		}
		return accounts.Create(acct)
	})
	require.NoError(t, err)
	return acct
}

func balanceOf(t *testing.T, svc *ledgersvc.Service, id uuid.UUID) int64 {
	t.Helper()
	balance, err := svc.GetBalance(context.Background(), id)
	require.NoError(t, err)
	return balance.Amount()
}

func TestApplyMovement_Deposit(t *testing.T) {
	svc, uow := newTestService(t)
	acct := seedAccount(t, uow, "400000000101", 0)

	mv, err := svc.ApplyMovement(context.Background(), acct.ID, ledger.KindDeposit, 50, "First deposit")
	require.NoError(t, err)
	assert.Equal(t, ledger.KindDeposit, mv.Kind)
	assert.Equal(t, int64(5000), mv.Balance.Amount())
	assert.Equal(t, int64(5000), balanceOf(t, svc, acct.ID))
}

func TestApplyMovement_WithdrawalOverdraft(t *testing.T) {
	svc, uow := newTestService(t)
	acct := seedAccount(t, uow, "400000000102", 100_00)

	_, err := svc.ApplyMovement(context.Background(), acct.ID, ledger.KindWithdrawal, 150, "Too much")
	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)

	// The rejected operation must leave no trace: balance unchanged,
	// no movement appended.
	assert.Equal(t, int64(10000), balanceOf(t, svc, acct.ID))
	movements, err := svc.ListMovements(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestApplyMovement_DrainToZero(t *testing.T) {
	svc, uow := newTestService(t)
	acct := seedAccount(t, uow, "400000000103", 100_00)

	mv, err := svc.ApplyMovement(context.Background(), acct.ID, ledger.KindWithdrawal, 100, "Everything")
	require.NoError(t, err)
	assert.True(t, mv.Balance.IsZero())
}

func TestApplyMovement_Validation(t *testing.T) {
	svc, uow := newTestService(t)
	acct := seedAccount(t, uow, "400000000104", 100_00)
	ctx := context.Background()

	_, err := svc.ApplyMovement(ctx, acct.ID, ledger.KindPayment, -10, "Negative")
	assert.ErrorIs(t, err, ledger.ErrAmountMustBePositive)

	_, err = svc.ApplyMovement(ctx, acct.ID, ledger.KindPayment, 0, "Zero")
	assert.ErrorIs(t, err, ledger.ErrAmountMustBePositive)

	_, err = svc.ApplyMovement(ctx, acct.ID, ledger.KindDeposit, 10, "   ")
	assert.ErrorIs(t, err, ledger.ErrInvalidDescription)

	_, err = svc.ApplyMovement(ctx, acct.ID, "REVERSAL", 10, "Bogus kind")
	assert.ErrorIs(t, err, ledger.ErrInvalidMovementKind)

	_, err = svc.ApplyMovement(ctx, uuid.New(), ledger.KindDeposit, 10, "Ghost")
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestTransfer(t *testing.T) {
	svc, uow := newTestService(t)
	src := seedAccount(t, uow, "400000000105", 1000_00)
	dst := seedAccount(t, uow, "400000000106", 500_00)
	ctx := context.Background()

	tr, err := svc.Transfer(ctx, src.ID, dst.ID, 300, "Rent")
	require.NoError(t, err)
	assert.Regexp(t, `^TRF-[0-9A-F]{12}$`, tr.Reference)
	assert.Equal(t, int64(30000), tr.Amount.Amount())

	// Conservation: total across the pair is unchanged.
	assert.Equal(t, int64(70000), balanceOf(t, svc, src.ID))
	assert.Equal(t, int64(80000), balanceOf(t, svc, dst.ID))

	// Both legs share the transfer reference.
	srcMoves, err := svc.ListMovements(ctx, src.ID)
	require.NoError(t, err)
	require.Len(t, srcMoves, 1)
	assert.Equal(t, ledger.KindTransferOut, srcMoves[0].Kind)
	assert.Equal(t, tr.Reference, srcMoves[0].Reference)

	dstMoves, err := svc.ListMovements(ctx, dst.ID)
	require.NoError(t, err)
	require.Len(t, dstMoves, 1)
	assert.Equal(t, ledger.KindTransferIn, dstMoves[0].Kind)
	assert.Equal(t, tr.Reference, dstMoves[0].Reference)
}

func TestTransfer_DefaultDescriptions(t *testing.T) {
	svc, uow := newTestService(t)
	src := seedAccount(t, uow, "400000000107", 100_00)
	dst := seedAccount(t, uow, "400000000108", 0)
	ctx := context.Background()

	_, err := svc.Transfer(ctx, src.ID, dst.ID, 10, "")
	require.NoError(t, err)

	srcMoves, err := svc.ListMovements(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, "Transfer to "+dst.FullName, srcMoves[0].Description)

	dstMoves, err := svc.ListMovements(ctx, dst.ID)
	require.NoError(t, err)
	assert.Equal(t, "Transfer from "+src.FullName, dstMoves[0].Description)
}

func TestTransfer_Rejections(t *testing.T) {
	svc, uow := newTestService(t)
	src := seedAccount(t, uow, "400000000109", 100_00)
	dst := seedAccount(t, uow, "400000000110", 0)
	ctx := context.Background()

	t.Run("same account", func(t *testing.T) {
		_, err := svc.Transfer(ctx, src.ID, src.ID, 10, "Loop")
		assert.ErrorIs(t, err, ledger.ErrSameAccountTransfer)
	})

	t.Run("insufficient funds leaves both untouched", func(t *testing.T) {
		_, err := svc.Transfer(ctx, src.ID, dst.ID, 500, "Too much")
		assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
		assert.Equal(t, int64(10000), balanceOf(t, svc, src.ID))
		assert.Equal(t, int64(0), balanceOf(t, svc, dst.ID))
	})

	t.Run("unknown destination", func(t *testing.T) {
		_, err := svc.Transfer(ctx, src.ID, uuid.New(), 10, "Ghost")
		assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
	})
}

func TestTransfer_ConcurrentConservation(t *testing.T) {
	svc, uow := newTestService(t)
	a := seedAccount(t, uow, "400000000115", 0)
	b := seedAccount(t, uow, "400000000116", 0)
	ctx := context.Background()

	_, err := svc.ApplyMovement(ctx, a.ID, ledger.KindDeposit, 1000, "seed")
	require.NoError(t, err)
	_, err = svc.ApplyMovement(ctx, b.ID, ledger.KindDeposit, 1000, "seed")
	require.NoError(t, err)

	// Opposite-direction transfers over the same pair, racing. Each one
	// runs as its own unit of work, so every interleaving must conserve
	// the pair's total and keep both histories consistent.
	const rounds = 25
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.Transfer(ctx, a.ID, b.ID, 1, "ping")
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := svc.Transfer(ctx, b.ID, a.ID, 1, "pong")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(2000_00), balanceOf(t, svc, a.ID)+balanceOf(t, svc, b.ID))

	for _, id := range []uuid.UUID{a.ID, b.ID} {
		movements, err := svc.ListMovements(ctx, id)
		require.NoError(t, err)
		// The seeding deposit plus one leg per transfer.
		assert.Len(t, movements, 1+2*rounds)

		consistent, err := svc.Audit(ctx, id)
		require.NoError(t, err)
		assert.True(t, consistent)
	}
}

func TestLookupCounterparty(t *testing.T) {
	svc, uow := newTestService(t)
	acct := seedAccount(t, uow, "400000000111", 0)

	found, err := svc.LookupCounterparty(context.Background(), "400000000111")
	require.NoError(t, err)
	assert.Equal(t, acct.ID, found.ID)

	_, err = svc.LookupCounterparty(context.Background(), "400099999999")
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestListMovements_NewestFirst(t *testing.T) {
	svc, uow := newTestService(t)
	acct := seedAccount(t, uow, "400000000112", 0)
	ctx := context.Background()

	for _, d := range []string{"first", "second", "third"} {
		_, err := svc.ApplyMovement(ctx, acct.ID, ledger.KindDeposit, 10, d)
		require.NoError(t, err)
	}

	movements, err := svc.ListMovements(ctx, acct.ID)
	require.NoError(t, err)
	require.Len(t, movements, 3)
	assert.Equal(t, "third", movements[0].Description)
	assert.Equal(t, "first", movements[2].Description)
}

func TestAudit(t *testing.T) {
	svc, uow := newTestService(t)
	acct := seedAccount(t, uow, "400000000113", 0)
	ctx := context.Background()

	_, err := svc.ApplyMovement(ctx, acct.ID, ledger.KindDeposit, 1000, "seed")
	require.NoError(t, err)
	_, err = svc.ApplyMovement(ctx, acct.ID, ledger.KindWithdrawal, 300, "spend")
	require.NoError(t, err)

	consistent, err := svc.Audit(ctx, acct.ID)
	require.NoError(t, err)
	assert.True(t, consistent)

	// An account seeded with a balance but no movements is, by the same
	// measure, inconsistent.
	rich := seedAccount(t, uow, "400000000114", 55_00)
	consistent, err = svc.Audit(ctx, rich.ID)
	require.NoError(t, err)
	assert.False(t, consistent)
}
