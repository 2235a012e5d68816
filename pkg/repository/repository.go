// Package repository defines the persistence contracts consumed by the
// service layer. Implementations live under infra; tests use the
// in-memory variant so every test gets an isolated store.
package repository

import (
	"context"

	"github.com/andeanbank/corebank/pkg/domain/ledger"
	"github.com/google/uuid"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Get(id uuid.UUID) (*ledger.Account, error)
	// GetForUpdate fetches the given accounts with exclusive row locks,
	// acquired in ascending id order so that two transfers over the same
	// pair in opposite directions cannot deadlock. Results are returned
	// in the requested order.
	GetForUpdate(ids ...uuid.UUID) ([]*ledger.Account, error)
	GetByNumber(number string) (*ledger.Account, error)
	GetByEmail(email string) (*ledger.Account, error)
	Create(a *ledger.Account) error
	Update(a *ledger.Account) error
	Delete(id uuid.UUID) error
	// List returns all accounts ordered by creation time descending.
	List() ([]*ledger.Account, error)
}

// MovementRepository defines data access for ledger movements. Movements
// are append-only; there is deliberately no update or delete.
type MovementRepository interface {
	Create(m *ledger.Movement) error
	// ListByAccount returns an account's movements newest first.
	ListByAccount(accountID uuid.UUID) ([]*ledger.Movement, error)
	CountByAccount(accountID uuid.UUID) (int64, error)
}

// TransferRepository defines data access for transfer records.
type TransferRepository interface {
	Create(t *ledger.Transfer) error
	GetByReference(reference string) (*ledger.Transfer, error)
	ListByAccount(accountID uuid.UUID) ([]*ledger.Transfer, error)
}

// CreditRepository defines read access to an account's credit lines.
type CreditRepository interface {
	ListByAccount(accountID uuid.UUID) ([]*ledger.Credit, error)
	CountByAccount(accountID uuid.UUID) (int64, error)
}

// LoanRepository defines read access to an account's loans.
type LoanRepository interface {
	ListByAccount(accountID uuid.UUID) ([]*ledger.Loan, error)
	CountByAccount(accountID uuid.UUID) (int64, error)
}

// UnitOfWork is the transaction boundary for all balance-changing work.
// All repositories obtained inside Do share one session, so a debit, a
// credit and their movements commit or roll back together. That is the
// whole atomicity contract of the ledger core.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. If fn returns an
	// error the transaction is rolled back and nothing fn did is
	// observable.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	AccountRepository() (AccountRepository, error)
	MovementRepository() (MovementRepository, error)
	TransferRepository() (TransferRepository, error)
	CreditRepository() (CreditRepository, error)
	LoanRepository() (LoanRepository, error)
}
