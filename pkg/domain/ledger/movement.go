package ledger

import (
	"strings"
	"time"

	"github.com/andeanbank/corebank/pkg/currency"
	"github.com/andeanbank/corebank/pkg/domain/money"
	"github.com/google/uuid"
)

// Kind enumerates the ledger movement kinds.
type Kind string

// Movement kinds. Deposit and transfer-in credit an account; the rest
// debit it.
const (
	KindDeposit     Kind = "DEPOSIT"
	KindWithdrawal  Kind = "WITHDRAWAL"
	KindTransferIn  Kind = "TRANSFER_IN"
	KindTransferOut Kind = "TRANSFER_OUT"
	KindPayment     Kind = "PAYMENT"
	KindRecharge    Kind = "RECHARGE"
)

// Valid reports whether k is one of the enumerated kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindDeposit, KindWithdrawal, KindTransferIn, KindTransferOut,
		KindPayment, KindRecharge:
		return true
	}
	return false
}

// Debits reports whether k reduces the account balance.
func (k Kind) Debits() bool {
	switch k {
	case KindWithdrawal, KindTransferOut, KindPayment, KindRecharge:
		return true
	}
	return false
}

// Movement is one immutable ledger line: a single balance change and the
// balance that resulted from it. Movements are never edited or deleted
// once created.
type Movement struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Kind        Kind
	Amount      money.Money
	Description string
	// Reference links the two legs of a transfer; empty for
	// single-account movements.
	Reference string
	// Balance is the owning account's balance immediately after this
	// movement was appended. It is an audit trail independent of the
	// live balance field.
	Balance   money.Money
	CreatedAt time.Time
}

// NewMovement builds a Movement. The caller supplies the post-balance
// explicitly; this constructor never reaches into shared state to guess
// the order of operations.
func NewMovement(
	accountID uuid.UUID,
	kind Kind,
	amount money.Money,
	description string,
	reference string,
	postBalance money.Money,
) (*Movement, error) {
	if !kind.Valid() {
		return nil, ErrInvalidMovementKind
	}
	if !amount.IsPositive() {
		return nil, ErrAmountMustBePositive
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrInvalidDescription
	}
	if postBalance.IsNegative() {
		return nil, ErrInsufficientFunds
	}
	if !amount.IsSameCurrency(postBalance) {
		return nil, money.ErrCurrencyMismatch
	}
	return &Movement{
		ID:          uuid.New(),
		AccountID:   accountID,
		Kind:        kind,
		Amount:      amount,
		Description: description,
		Reference:   reference,
		Balance:     postBalance,
		CreatedAt:   time.Now(),
	}, nil
}

// Signed returns the movement amount with its ledger sign applied:
// negative for debiting kinds, positive for crediting kinds.
func (m *Movement) Signed() money.Money {
	if m.Kind.Debits() {
		return m.Amount.Negate()
	}
	return m.Amount
}

// Replay folds a movement sequence from a zero balance and returns the
// resulting sum of signed amounts. For a consistent ledger the result
// equals the account's stored balance.
func Replay(movements []*Movement, code currency.Code) (money.Money, error) {
	total := money.Zero(code)
	var err error
	for _, m := range movements {
		total, err = total.Add(m.Signed())
		if err != nil {
			return money.Money{}, err
		}
	}
	return total, nil
}
