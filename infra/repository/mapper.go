package repository

import (
	"github.com/andeanbank/corebank/pkg/currency"
	"github.com/andeanbank/corebank/pkg/domain/ledger"
	"github.com/andeanbank/corebank/pkg/domain/money"
)

func mapAccountToDomain(row *Account) (*ledger.Account, error) {
	return ledger.New().
		WithID(row.ID).
		WithNumber(row.Number).
		WithFullName(row.FullName).
		WithEmail(row.Email).
		WithPasswordHash(row.PasswordHash).
		WithRole(ledger.Role(row.Role)).
		WithCurrency(currency.Code(row.Currency)).
		WithBalance(row.Balance).
		WithCreatedAt(row.CreatedAt).
		WithUpdatedAt(row.UpdatedAt).
		Build()
}

func mapAccountToModel(a *ledger.Account) Account {
	return Account{
		ID:           a.ID,
		Number:       a.Number,
		FullName:     a.FullName,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         string(a.Role),
		Balance:      a.Balance.Amount(),
		Currency:     a.Balance.Currency().String(),
	}
}

func mapMovementToDomain(row *Movement) (*ledger.Movement, error) {
	amount, err := money.NewFromSmallestUnit(row.Amount, currency.Code(row.Currency))
	if err != nil {
		return nil, err
	}
	balance, err := money.NewFromSmallestUnit(row.Balance, currency.Code(row.Currency))
	if err != nil {
		return nil, err
	}
	return &ledger.Movement{
		ID:          row.ID,
		AccountID:   row.AccountID,
		Kind:        ledger.Kind(row.Kind),
		Amount:      amount,
		Description: row.Description,
		Reference:   row.Reference,
		Balance:     balance,
		CreatedAt:   row.CreatedAt,
	}, nil
}

func mapMovementToModel(m *ledger.Movement) Movement {
	return Movement{
		ID:          m.ID,
		AccountID:   m.AccountID,
		Kind:        string(m.Kind),
		Amount:      m.Amount.Amount(),
		Currency:    m.Amount.Currency().String(),
		Description: m.Description,
		Reference:   m.Reference,
		Balance:     m.Balance.Amount(),
	}
}

func mapTransferToDomain(row *Transfer) (*ledger.Transfer, error) {
	amount, err := money.NewFromSmallestUnit(row.Amount, currency.Code(row.Currency))
	if err != nil {
		return nil, err
	}
	return &ledger.Transfer{
		ID:            row.ID,
		FromAccountID: row.FromAccountID,
		ToAccountID:   row.ToAccountID,
		Amount:        amount,
		Description:   row.Description,
		Reference:     row.Reference,
		CreatedAt:     row.CreatedAt,
	}, nil
}

func mapTransferToModel(t *ledger.Transfer) Transfer {
	return Transfer{
		ID:            t.ID,
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		Amount:        t.Amount.Amount(),
		Currency:      t.Amount.Currency().String(),
		Description:   t.Description,
		Reference:     t.Reference,
	}
}

func mapCreditToDomain(row *Credit) (*ledger.Credit, error) {
	amount, err := money.NewFromSmallestUnit(row.Amount, currency.Code(row.Currency))
	if err != nil {
		return nil, err
	}
	limit, err := money.NewFromSmallestUnit(row.CreditLimit, currency.Code(row.Currency))
	if err != nil {
		return nil, err
	}
	return &ledger.Credit{
		ID:           row.ID,
		AccountID:    row.AccountID,
		Amount:       amount,
		Limit:        limit,
		InterestRate: row.InterestRate,
		DueDate:      row.DueDate,
		Status:       ledger.CreditStatus(row.Status),
		CreatedAt:    row.CreatedAt,
	}, nil
}

func mapLoanToDomain(row *Loan) (*ledger.Loan, error) {
	code := currency.Code(row.Currency)
	amount, err := money.NewFromSmallestUnit(row.Amount, code)
	if err != nil {
		return nil, err
	}
	monthly, err := money.NewFromSmallestUnit(row.MonthlyPayment, code)
	if err != nil {
		return nil, err
	}
	remaining, err := money.NewFromSmallestUnit(row.RemainingBalance, code)
	if err != nil {
		return nil, err
	}
	return &ledger.Loan{
		ID:               row.ID,
		AccountID:        row.AccountID,
		Amount:           amount,
		InterestRate:     row.InterestRate,
		TermMonths:       row.TermMonths,
		MonthlyPayment:   monthly,
		RemainingBalance: remaining,
		Status:           ledger.LoanStatus(row.Status),
		StartDate:        row.StartDate,
		CreatedAt:        row.CreatedAt,
	}, nil
}
