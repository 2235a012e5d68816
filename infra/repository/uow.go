package repository

import (
	"context"
	"errors"

	"github.com/andeanbank/corebank/pkg/repository"
	"gorm.io/gorm"
)

// ErrNoSession is returned when repositories are requested outside a
// transaction boundary.
var ErrNoSession = errors.New("unit of work: no active session")

// UoW provides the transaction boundary and repository access in one
// abstraction. All repositories handed out inside Do share the same
// transaction, which is what makes a two-account transfer atomic.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a unit of work over the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn inside a database transaction. A returned error rolls the
// transaction back.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

func (u *UoW) session() (*gorm.DB, error) {
	if u.tx == nil {
		return nil, ErrNoSession
	}
	return u.tx, nil
}

// AccountRepository returns an account repository bound to the current
// transaction.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	tx, err := u.session()
	if err != nil {
		return nil, err
	}
	return NewAccountRepository(tx), nil
}

// MovementRepository returns a movement repository bound to the current
// transaction.
func (u *UoW) MovementRepository() (repository.MovementRepository, error) {
	tx, err := u.session()
	if err != nil {
		return nil, err
	}
	return NewMovementRepository(tx), nil
}

// TransferRepository returns a transfer repository bound to the current
// transaction.
func (u *UoW) TransferRepository() (repository.TransferRepository, error) {
	tx, err := u.session()
	if err != nil {
		return nil, err
	}
	return NewTransferRepository(tx), nil
}

// CreditRepository returns a credit repository bound to the current
// transaction.
func (u *UoW) CreditRepository() (repository.CreditRepository, error) {
	tx, err := u.session()
	if err != nil {
		return nil, err
	}
	return NewCreditRepository(tx), nil
}

// LoanRepository returns a loan repository bound to the current
// transaction.
func (u *UoW) LoanRepository() (repository.LoanRepository, error) {
	tx, err := u.session()
	if err != nil {
		return nil, err
	}
	return NewLoanRepository(tx), nil
}
