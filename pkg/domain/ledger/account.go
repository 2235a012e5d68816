package ledger

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/andeanbank/corebank/pkg/currency"
	"github.com/andeanbank/corebank/pkg/domain/money"
	"github.com/google/uuid"
)

// Role distinguishes administrative accounts from regular customers.
// There is one Account shape; role is an attribute, not a subtype.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Account is the aggregate root for a customer's money state.
//
// Invariants:
//   - The balance is a Money value object and is never negative after a
//     committed operation.
//   - The balance always equals the sum of the signed amounts of the
//     account's movements.
//   - Balance and movement list change only through the ledger service.
type Account struct {
	ID           uuid.UUID
	Number       string
	FullName     string
	Email        string
	PasswordHash string
	Role         Role
	Balance      money.Money
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Builder provides a fluent API for constructing Account instances, so
// that only valid accounts can be built.
type Builder struct {
	id           uuid.UUID
	number       string
	fullName     string
	email        string
	passwordHash string
	role         Role
	balance      int64
	currency     currency.Code
	createdAt    time.Time
	updatedAt    time.Time
}

// New creates a Builder with a fresh UUID, the default currency and the
// user role.
func New() *Builder {
	return &Builder{
		id:        uuid.New(),
		currency:  currency.DefaultCurrency,
		role:      RoleUser,
		createdAt: time.Now(),
	}
}

// WithID sets the account id. Used when hydrating from a data store.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithNumber sets the external account number. Mandatory.
func (b *Builder) WithNumber(number string) *Builder {
	b.number = number
	return b
}

// WithFullName sets the owner's full name. Mandatory.
func (b *Builder) WithFullName(name string) *Builder {
	b.fullName = name
	return b
}

// WithEmail sets the owner's email. Mandatory and unique bank-wide.
func (b *Builder) WithEmail(email string) *Builder {
	b.email = email
	return b
}

// WithPasswordHash sets the bcrypt hash of the owner's password.
func (b *Builder) WithPasswordHash(hash string) *Builder {
	b.passwordHash = hash
	return b
}

// WithRole sets the account role. Defaults to RoleUser.
func (b *Builder) WithRole(role Role) *Builder {
	b.role = role
	return b
}

// WithCurrency sets the balance currency. An empty code keeps the
// system default.
func (b *Builder) WithCurrency(code currency.Code) *Builder {
	if code != "" {
		b.currency = code
	}
	return b
}

// WithBalance sets the balance in the smallest currency unit. Only for
// hydrating an existing account or for test setup; new accounts start at
// zero and are seeded through the ledger service.
func (b *Builder) WithBalance(balance int64) *Builder {
	b.balance = balance
	return b
}

// WithCreatedAt sets the creation timestamp, for hydration.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// WithUpdatedAt sets the last-updated timestamp, for hydration.
func (b *Builder) WithUpdatedAt(t time.Time) *Builder {
	b.updatedAt = t
	return b
}

// Build validates all account invariants and returns the Account.
func (b *Builder) Build() (*Account, error) {
	if !currency.IsValidFormat(string(b.currency)) {
		return nil, money.ErrInvalidCurrencyCode
	}
	if !currency.IsSupported(string(b.currency)) {
		return nil, currency.ErrUnsupportedCurrency
	}
	if strings.TrimSpace(b.number) == "" {
		return nil, errors.New("account number is required")
	}
	if strings.TrimSpace(b.fullName) == "" {
		return nil, errors.New("full name is required")
	}
	if _, err := mail.ParseAddress(b.email); err != nil {
		return nil, errors.New("valid email is required")
	}
	if !b.role.Valid() {
		return nil, errors.New("invalid role")
	}
	if b.balance < 0 {
		return nil, ErrInsufficientFunds
	}
	bal, err := money.NewFromSmallestUnit(b.balance, b.currency)
	if err != nil {
		return nil, err
	}
	return &Account{
		ID:           b.id,
		Number:       b.number,
		FullName:     b.fullName,
		Email:        b.email,
		PasswordHash: b.passwordHash,
		Role:         b.role,
		Balance:      bal,
		CreatedAt:    b.createdAt,
		UpdatedAt:    b.updatedAt,
	}, nil
}

// Currency returns the currency of the account balance.
func (a *Account) Currency() currency.Code {
	return a.Balance.Currency()
}

// IsAdmin reports whether the account holds the administrative role.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// ValidateCredit checks the invariants for crediting the account by
// amount: the amount must be positive and in the account's currency.
// There is no upper bound in this design.
func (a *Account) ValidateCredit(amount money.Money) error {
	if a == nil {
		return ErrNilAccount
	}
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	if !a.Balance.IsSameCurrency(amount) {
		return money.ErrCurrencyMismatch
	}
	return nil
}

// ValidateDebit checks the invariants for debiting the account by amount.
// A debit that drains the balance to exactly zero is allowed.
func (a *Account) ValidateDebit(amount money.Money) error {
	if err := a.ValidateCredit(amount); err != nil {
		return err
	}
	short, err := a.Balance.LessThan(amount)
	if err != nil {
		return err
	}
	if short {
		return ErrInsufficientFunds
	}
	return nil
}

// Credit validates and applies a credit, returning the new balance.
func (a *Account) Credit(amount money.Money) (money.Money, error) {
	if err := a.ValidateCredit(amount); err != nil {
		return money.Money{}, err
	}
	newBalance, err := a.Balance.Add(amount)
	if err != nil {
		return money.Money{}, err
	}
	a.Balance = newBalance
	a.UpdatedAt = time.Now()
	return newBalance, nil
}

// Debit validates and applies a debit, returning the new balance.
func (a *Account) Debit(amount money.Money) (money.Money, error) {
	if err := a.ValidateDebit(amount); err != nil {
		return money.Money{}, err
	}
	newBalance, err := a.Balance.Subtract(amount)
	if err != nil {
		return money.Money{}, err
	}
	a.Balance = newBalance
	a.UpdatedAt = time.Now()
	return newBalance, nil
}

// ValidateTransfer ensures a funds transfer from a to dest is valid:
// distinct accounts, positive amount, matching currencies and sufficient
// funds on the source.
func (a *Account) ValidateTransfer(dest *Account, amount money.Money) error {
	if a == nil || dest == nil {
		return ErrNilAccount
	}
	if a.ID == dest.ID {
		return ErrSameAccountTransfer
	}
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	if !a.Balance.IsSameCurrency(amount) || !dest.Balance.IsSameCurrency(amount) {
		return money.ErrCurrencyMismatch
	}
	return a.ValidateDebit(amount)
}
