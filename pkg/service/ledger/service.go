// Package ledger provides the transaction orchestrator: the only
// component that changes account balances and appends ledger movements.
// Every operation runs inside a single unit of work, so a balance change
// and its movements commit together or not at all.
package ledger

import (
	"context"
	"log/slog"

	"github.com/andeanbank/corebank/pkg/config"
	"github.com/andeanbank/corebank/pkg/domain/ledger"
	"github.com/andeanbank/corebank/pkg/domain/money"
	"github.com/andeanbank/corebank/pkg/repository"
	"github.com/google/uuid"
)

// Service orchestrates balance-changing operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a ledger Service from the shared dependencies.
func New(deps config.Deps) *Service {
	return &Service{uow: deps.Uow, logger: deps.Logger}
}

// Apply debits or credits acct by amount and appends the movement that
// records it, using the repositories of the supplied unit of work. It is
// exported so other services (account seeding, for one) can post a
// movement inside their own transaction boundary.
func Apply(
	uow repository.UnitOfWork,
	acct *ledger.Account,
	kind ledger.Kind,
	amount money.Money,
	description, reference string,
) (*ledger.Movement, error) {
	var (
		newBalance money.Money
		err        error
	)
	if kind.Debits() {
		newBalance, err = acct.Debit(amount)
	} else {
		newBalance, err = acct.Credit(amount)
	}
	if err != nil {
		return nil, err
	}
	mv, err := ledger.NewMovement(acct.ID, kind, amount, description, reference, newBalance)
	if err != nil {
		return nil, err
	}
	accounts, err := uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	if err = accounts.Update(acct); err != nil {
		return nil, err
	}
	movements, err := uow.MovementRepository()
	if err != nil {
		return nil, err
	}
	if err = movements.Create(mv); err != nil {
		return nil, err
	}
	return mv, nil
}

// ApplyMovement performs a single-account operation: deposit, withdrawal,
// payment or recharge. On any precondition failure the account and its
// movement list are left untouched.
func (s *Service) ApplyMovement(
	ctx context.Context,
	accountID uuid.UUID,
	kind ledger.Kind,
	amount float64,
	description string,
) (mv *ledger.Movement, err error) {
	logger := s.logger.With(
		"operation", "ApplyMovement",
		"accountID", accountID,
		"kind", kind,
	)
	if !kind.Valid() {
		return nil, ledger.ErrInvalidMovementKind
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		locked, err := accounts.GetForUpdate(accountID)
		if err != nil {
			return err
		}
		acct := locked[0]
		m, err := money.New(amount, acct.Currency())
		if err != nil {
			return err
		}
		mv, err = Apply(uow, acct, kind, m, description, "")
		return err
	})
	if err != nil {
		logger.Error("movement rejected", "error", err)
		mv = nil
		return
	}
	logger.Info("movement applied", "movementID", mv.ID, "balance", mv.Balance)
	return
}

// Transfer atomically moves amount from one account to another: debit,
// credit, two linked movements sharing one reference, and the transfer
// record, all in a single unit of work. Row locks are taken in id order
// so opposite-direction transfers over the same pair cannot deadlock.
func (s *Service) Transfer(
	ctx context.Context,
	fromID, toID uuid.UUID,
	amount float64,
	description string,
) (tr *ledger.Transfer, err error) {
	logger := s.logger.With(
		"operation", "Transfer",
		"from", fromID,
		"to", toID,
	)
	if fromID == toID {
		return nil, ledger.ErrSameAccountTransfer
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		locked, err := accounts.GetForUpdate(fromID, toID)
		if err != nil {
			return err
		}
		src, dst := locked[0], locked[1]
		m, err := money.New(amount, src.Currency())
		if err != nil {
			return err
		}
		if err = src.ValidateTransfer(dst, m); err != nil {
			return err
		}

		if description == "" {
			description = "Transfer to " + dst.FullName
		}
		ref := ledger.NewReference()
		if _, err = Apply(uow, src, ledger.KindTransferOut, m, description, ref); err != nil {
			return err
		}
		if _, err = Apply(uow, dst, ledger.KindTransferIn, m, "Transfer from "+src.FullName, ref); err != nil {
			return err
		}

		tr, err = ledger.NewTransfer(src.ID, dst.ID, m, description, ref)
		if err != nil {
			return err
		}
		transfers, err := uow.TransferRepository()
		if err != nil {
			return err
		}
		return transfers.Create(tr)
	})
	if err != nil {
		logger.Error("transfer rejected", "error", err)
		tr = nil
		return
	}
	logger.Info("transfer committed", "reference", tr.Reference, "amount", tr.Amount)
	return
}

// LookupCounterparty resolves a destination account by its external
// account number, so callers can fail fast before a transfer is even
// attempted.
func (s *Service) LookupCounterparty(
	ctx context.Context,
	accountNumber string,
) (acct *ledger.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acct, err = accounts.GetByNumber(accountNumber)
		return err
	})
	if err != nil {
		acct = nil
	}
	return
}

// GetBalance returns an account's current balance.
func (s *Service) GetBalance(
	ctx context.Context,
	accountID uuid.UUID,
) (balance money.Money, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acct, err := accounts.Get(accountID)
		if err != nil {
			return err
		}
		balance = acct.Balance
		return nil
	})
	return
}

// ListMovements returns an account's movements, newest first.
func (s *Service) ListMovements(
	ctx context.Context,
	accountID uuid.UUID,
) (movements []*ledger.Movement, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if _, err = accounts.Get(accountID); err != nil {
			return err
		}
		repo, err := uow.MovementRepository()
		if err != nil {
			return err
		}
		movements, err = repo.ListByAccount(accountID)
		return err
	})
	if err != nil {
		movements = nil
	}
	return
}

// Audit replays an account's movement list from zero and reports whether
// the sum of signed amounts equals the stored balance.
func (s *Service) Audit(
	ctx context.Context,
	accountID uuid.UUID,
) (consistent bool, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acct, err := accounts.Get(accountID)
		if err != nil {
			return err
		}
		repo, err := uow.MovementRepository()
		if err != nil {
			return err
		}
		movements, err := repo.ListByAccount(accountID)
		if err != nil {
			return err
		}
		replayed, err := ledger.Replay(movements, acct.Currency())
		if err != nil {
			return err
		}
		consistent = replayed.Equals(acct.Balance)
		return nil
	})
	return
}
