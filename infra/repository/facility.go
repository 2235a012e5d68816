package repository

import (
	"github.com/andeanbank/corebank/pkg/domain/ledger"
	"github.com/andeanbank/corebank/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type creditRepository struct {
	db *gorm.DB
}

// NewCreditRepository creates a credit repository bound to the given
// GORM session.
func NewCreditRepository(db *gorm.DB) repository.CreditRepository {
	return &creditRepository{db: db}
}

func (r *creditRepository) ListByAccount(accountID uuid.UUID) ([]*ledger.Credit, error) {
	var rows []Credit
	err := r.db.Where("account_id = ?", accountID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]*ledger.Credit, 0, len(rows))
	for i := range rows {
		c, err := mapCreditToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *creditRepository) CountByAccount(accountID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&Credit{}).
		Where("account_id = ?", accountID).
		Count(&count).Error
	return count, err
}

type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a loan repository bound to the given GORM
// session.
func NewLoanRepository(db *gorm.DB) repository.LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) ListByAccount(accountID uuid.UUID) ([]*ledger.Loan, error) {
	var rows []Loan
	err := r.db.Where("account_id = ?", accountID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]*ledger.Loan, 0, len(rows))
	for i := range rows {
		l, err := mapLoanToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *loanRepository) CountByAccount(accountID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&Loan{}).
		Where("account_id = ?", accountID).
		Count(&count).Error
	return count, err
}
