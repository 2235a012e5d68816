package ledger

import (
	"errors"
	"time"

	"github.com/andeanbank/corebank/pkg/domain/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditStatus enumerates the lifecycle states of a revolving credit.
type CreditStatus string

const (
	CreditActive  CreditStatus = "ACTIVE"
	CreditPaid    CreditStatus = "PAID"
	CreditOverdue CreditStatus = "OVERDUE"
)

// LoanStatus enumerates the lifecycle states of a loan.
type LoanStatus string

const (
	LoanActive    LoanStatus = "ACTIVE"
	LoanPaid      LoanStatus = "PAID"
	LoanDefaulted LoanStatus = "DEFAULTED"
)

// Credit is a revolving credit line owned by an account. The ledger core
// tracks its existence and status; drawdowns and repayments move through
// regular payment movements.
type Credit struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	Amount       money.Money
	Limit        money.Money
	InterestRate float64
	DueDate      time.Time
	Status       CreditStatus
	CreatedAt    time.Time
}

// Loan is an installment loan owned by an account.
type Loan struct {
	ID               uuid.UUID
	AccountID        uuid.UUID
	Amount           money.Money
	InterestRate     float64
	TermMonths       int
	MonthlyPayment   money.Money
	RemainingBalance money.Money
	Status           LoanStatus
	StartDate        time.Time
	CreatedAt        time.Time
}

// MonthlyPayment computes the fixed installment for a loan using the
// standard annuity formula, with annualRate expressed as a percentage
// (e.g. 12.5 for 12.5% p.a.). Decimal arithmetic keeps the cents exact;
// the result is rounded half-up to the smallest currency unit.
func MonthlyPayment(principal money.Money, annualRate float64, termMonths int) (money.Money, error) {
	if !principal.IsPositive() {
		return money.Money{}, ErrAmountMustBePositive
	}
	if termMonths <= 0 {
		return money.Money{}, errors.New("term must be at least one month")
	}
	if annualRate < 0 {
		return money.Money{}, errors.New("interest rate must not be negative")
	}

	p := decimal.NewFromInt(principal.Amount())
	if annualRate == 0 {
		units := p.DivRound(decimal.NewFromInt(int64(termMonths)), 0)
		return money.NewFromSmallestUnit(units.IntPart(), principal.Currency())
	}

	// monthly rate = annual percentage / 12 / 100
	r := decimal.NewFromFloat(annualRate).
		Div(decimal.NewFromInt(1200))
	one := decimal.NewFromInt(1)
	// (1+r)^n
	growth := one.Add(r).Pow(decimal.NewFromInt(int64(termMonths)))
	// P * r * (1+r)^n / ((1+r)^n - 1)
	payment := p.Mul(r).Mul(growth).
		DivRound(growth.Sub(one), 0)
	return money.NewFromSmallestUnit(payment.IntPart(), principal.Currency())
}

// InGoodStanding reports whether an account with the given facilities
// qualifies for a clearance certificate: nothing overdue, nothing in
// default.
func InGoodStanding(credits []*Credit, loans []*Loan) bool {
	for _, c := range credits {
		if c.Status == CreditOverdue {
			return false
		}
	}
	for _, l := range loans {
		if l.Status == LoanDefaulted {
			return false
		}
	}
	return true
}
