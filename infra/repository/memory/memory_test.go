package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/andeanbank/corebank/infra/repository/memory"
	"github.com/andeanbank/corebank/pkg/domain/ledger"
	"github.com/andeanbank/corebank/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(t *testing.T, number, email string) *ledger.Account {
	t.Helper()
	a, err := ledger.New().
		WithNumber(number).
		WithFullName("Store Holder").
		WithEmail(email).
		Build()
	require.NoError(t, err)
	return a
}

func TestUoW_RollbackRestoresTheStore(t *testing.T) {
	uow := memory.NewUoW()
	ctx := context.Background()
	acct := newAccount(t, "400000000301", "store@example.com")

	boom := errors.New("boom")
	err := uow.Do(ctx, func(u repository.UnitOfWork) error {
		accounts, err := u.AccountRepository()
		if err != nil {
			return err
		}
		if err := accounts.Create(acct); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// The create must have been undone.
	err = uow.Do(ctx, func(u repository.UnitOfWork) error {
		accounts, err := u.AccountRepository()
		if err != nil {
			return err
		}
		_, err = accounts.Get(acct.ID)
		return err
	})
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestAccountRepository_UniquenessAndList(t *testing.T) {
	uow := memory.NewUoW()
	ctx := context.Background()
	first := newAccount(t, "400000000302", "first@example.com")
	second := newAccount(t, "400000000303", "second@example.com")

	err := uow.Do(ctx, func(u repository.UnitOfWork) error {
		accounts, err := u.AccountRepository()
		if err != nil {
			return err
		}
		if err := accounts.Create(first); err != nil {
			return err
		}
		return accounts.Create(second)
	})
	require.NoError(t, err)

	t.Run("duplicate email", func(t *testing.T) {
		dup := newAccount(t, "400000000304", "first@example.com")
		err := uow.Do(ctx, func(u repository.UnitOfWork) error {
			accounts, err := u.AccountRepository()
			if err != nil {
				return err
			}
			return accounts.Create(dup)
		})
		assert.ErrorIs(t, err, ledger.ErrEmailAlreadyRegistered)
	})

	t.Run("duplicate number", func(t *testing.T) {
		dup := newAccount(t, "400000000302", "third@example.com")
		err := uow.Do(ctx, func(u repository.UnitOfWork) error {
			accounts, err := u.AccountRepository()
			if err != nil {
				return err
			}
			return accounts.Create(dup)
		})
		assert.ErrorIs(t, err, ledger.ErrAccountNumberTaken)
	})

	t.Run("list newest first", func(t *testing.T) {
		var listed []*ledger.Account
		err := uow.Do(ctx, func(u repository.UnitOfWork) error {
			accounts, err := u.AccountRepository()
			if err != nil {
				return err
			}
			listed, err = accounts.List()
			return err
		})
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, second.ID, listed[0].ID)
		assert.Equal(t, first.ID, listed[1].ID)
	})
}

func TestRepositories_CopyOnRead(t *testing.T) {
	uow := memory.NewUoW()
	ctx := context.Background()
	acct := newAccount(t, "400000000305", "copy@example.com")

	err := uow.Do(ctx, func(u repository.UnitOfWork) error {
		accounts, err := u.AccountRepository()
		if err != nil {
			return err
		}
		return accounts.Create(acct)
	})
	require.NoError(t, err)

	// Mutating a result of Get must not leak into the store.
	err = uow.Do(ctx, func(u repository.UnitOfWork) error {
		accounts, err := u.AccountRepository()
		if err != nil {
			return err
		}
		got, err := accounts.Get(acct.ID)
		if err != nil {
			return err
		}
		got.FullName = "Mutated"
		return nil
	})
	require.NoError(t, err)

	err = uow.Do(ctx, func(u repository.UnitOfWork) error {
		accounts, err := u.AccountRepository()
		if err != nil {
			return err
		}
		got, err := accounts.Get(acct.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, "Store Holder", got.FullName)
		return nil
	})
	require.NoError(t, err)
}
