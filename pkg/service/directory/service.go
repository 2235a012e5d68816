// Package directory maintains the account directory: opening accounts,
// lookups by number or email, listings, and administrative closure.
package directory

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/andeanbank/corebank/pkg/config"
	"github.com/andeanbank/corebank/pkg/currency"
	"github.com/andeanbank/corebank/pkg/domain/ledger"
	"github.com/andeanbank/corebank/pkg/domain/money"
	"github.com/andeanbank/corebank/pkg/repository"
	ledgersvc "github.com/andeanbank/corebank/pkg/service/ledger"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// numberAttempts bounds retries when a generated account number collides.
const numberAttempts = 5

// Service exposes the account directory operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a directory Service from the shared dependencies.
func New(deps config.Deps) *Service {
	return &Service{uow: deps.Uow, logger: deps.Logger}
}

// OpenParams carries the data needed to open an account.
type OpenParams struct {
	FullName       string
	Email          string
	Password       string
	Role           ledger.Role
	Currency       currency.Code
	InitialBalance float64
}

// AccountSummary is an account together with the counts an administrator
// sees in the directory listing.
type AccountSummary struct {
	Account   *ledger.Account
	Movements int64
	Credits   int64
	Loans     int64
}

// Certificate is the clearance (paz y salvo) summary for an account.
type Certificate struct {
	AccountNumber  string
	FullName       string
	InGoodStanding bool
	IssuedAt       time.Time
}

// Open creates an account with a freshly generated account number. A
// duplicate email is rejected. A nonzero initial balance is seeded as one
// deposit movement through the ledger orchestrator, inside the same unit
// of work as the account row itself.
func (s *Service) Open(ctx context.Context, p OpenParams) (acct *ledger.Account, err error) {
	logger := s.logger.With("operation", "Open", "email", p.Email)
	if p.InitialBalance < 0 {
		return nil, ledger.ErrAmountMustBePositive
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := p.Role
	if role == "" {
		role = ledger.RoleUser
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		switch _, err := accounts.GetByEmail(p.Email); {
		case err == nil:
			return ledger.ErrEmailAlreadyRegistered
		case !errors.Is(err, ledger.ErrAccountNotFound):
			return err
		}
		number, err := s.freeNumber(accounts)
		if err != nil {
			return err
		}
		acct, err = ledger.New().
			WithNumber(number).
			WithFullName(p.FullName).
			WithEmail(p.Email).
			WithPasswordHash(string(hash)).
			WithRole(role).
			WithCurrency(p.Currency).
			Build()
		if err != nil {
			return err
		}
		if err = accounts.Create(acct); err != nil {
			return err
		}
		if p.InitialBalance > 0 {
			m, err := money.New(p.InitialBalance, acct.Currency())
			if err != nil {
				return err
			}
			if _, err = ledgersvc.Apply(
				uow, acct, ledger.KindDeposit, m, "Initial deposit", "",
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("open account failed", "error", err)
		acct = nil
		return
	}
	logger.Info("account opened", "accountID", acct.ID, "number", acct.Number)
	return
}

// Get returns the account with the given id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (acct *ledger.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acct, err = accounts.Get(id)
		return err
	})
	if err != nil {
		acct = nil
	}
	return
}

// FindByNumber returns the account with the given external number.
func (s *Service) FindByNumber(ctx context.Context, number string) (acct *ledger.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acct, err = accounts.GetByNumber(number)
		return err
	})
	if err != nil {
		acct = nil
	}
	return
}

// FindByEmail returns the account owned by the given email.
func (s *Service) FindByEmail(ctx context.Context, email string) (acct *ledger.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acct, err = accounts.GetByEmail(email)
		return err
	})
	if err != nil {
		acct = nil
	}
	return
}

// List returns every account with its movement, credit and loan counts,
// ordered by creation time descending.
func (s *Service) List(ctx context.Context) (summaries []*AccountSummary, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		movements, err := uow.MovementRepository()
		if err != nil {
			return err
		}
		credits, err := uow.CreditRepository()
		if err != nil {
			return err
		}
		loans, err := uow.LoanRepository()
		if err != nil {
			return err
		}
		all, err := accounts.List()
		if err != nil {
			return err
		}
		summaries = make([]*AccountSummary, 0, len(all))
		for _, a := range all {
			mc, err := movements.CountByAccount(a.ID)
			if err != nil {
				return err
			}
			cc, err := credits.CountByAccount(a.ID)
			if err != nil {
				return err
			}
			lc, err := loans.CountByAccount(a.ID)
			if err != nil {
				return err
			}
			summaries = append(summaries, &AccountSummary{
				Account:   a,
				Movements: mc,
				Credits:   cc,
				Loans:     lc,
			})
		}
		return nil
	})
	if err != nil {
		summaries = nil
	}
	return
}

// Close removes an account. An account that still owns movements,
// credits or loans cannot be closed; that would orphan its history.
func (s *Service) Close(ctx context.Context, id uuid.UUID) error {
	logger := s.logger.With("operation", "Close", "accountID", id)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if _, err = accounts.Get(id); err != nil {
			return err
		}
		movements, err := uow.MovementRepository()
		if err != nil {
			return err
		}
		credits, err := uow.CreditRepository()
		if err != nil {
			return err
		}
		loans, err := uow.LoanRepository()
		if err != nil {
			return err
		}
		mc, err := movements.CountByAccount(id)
		if err != nil {
			return err
		}
		cc, err := credits.CountByAccount(id)
		if err != nil {
			return err
		}
		lc, err := loans.CountByAccount(id)
		if err != nil {
			return err
		}
		if mc+cc+lc > 0 {
			return ledger.ErrAccountHasHistory
		}
		return accounts.Delete(id)
	})
	if err != nil {
		logger.Error("close account failed", "error", err)
		return err
	}
	logger.Info("account closed")
	return nil
}

// Facilities returns an account's credit lines and loans.
func (s *Service) Facilities(
	ctx context.Context,
	id uuid.UUID,
) (credits []*ledger.Credit, loans []*ledger.Loan, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if _, err = accounts.Get(id); err != nil {
			return err
		}
		creditRepo, err := uow.CreditRepository()
		if err != nil {
			return err
		}
		loanRepo, err := uow.LoanRepository()
		if err != nil {
			return err
		}
		credits, err = creditRepo.ListByAccount(id)
		if err != nil {
			return err
		}
		loans, err = loanRepo.ListByAccount(id)
		return err
	})
	if err != nil {
		credits, loans = nil, nil
	}
	return
}

// Certificate issues the clearance summary for an account.
func (s *Service) Certificate(ctx context.Context, id uuid.UUID) (*Certificate, error) {
	acct, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	credits, loans, err := s.Facilities(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Certificate{
		AccountNumber:  acct.Number,
		FullName:       acct.FullName,
		InGoodStanding: ledger.InGoodStanding(credits, loans),
		IssuedAt:       time.Now(),
	}, nil
}

// freeNumber generates an unused account number: the 4000 prefix the
// bank issues, followed by eight random digits.
func (s *Service) freeNumber(accounts repository.AccountRepository) (string, error) {
	for range numberAttempts {
		n, err := rand.Int(rand.Reader, big.NewInt(100_000_000))
		if err != nil {
			return "", err
		}
		number := fmt.Sprintf("4000%08d", n.Int64())
		if _, err := accounts.GetByNumber(number); err != nil {
			return number, nil
		}
	}
	return "", ledger.ErrAccountNumberTaken
}
