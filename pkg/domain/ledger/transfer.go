package ledger

import (
	"strings"
	"time"

	"github.com/andeanbank/corebank/pkg/domain/money"
	"github.com/google/uuid"
)

// Transfer records a committed paired debit/credit across two accounts.
// A transfer is terminal by construction: it exists only after both legs
// have been applied, or not at all.
type Transfer struct {
	ID            uuid.UUID
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        money.Money
	Description   string
	// Reference is unique per transfer and shared by the transfer-out
	// and transfer-in movements it produced.
	Reference string
	CreatedAt time.Time
}

// NewTransfer builds a Transfer record. Both movements must already have
// been validated; this constructor re-checks the structural invariants.
func NewTransfer(
	fromID, toID uuid.UUID,
	amount money.Money,
	description, reference string,
) (*Transfer, error) {
	if fromID == toID {
		return nil, ErrSameAccountTransfer
	}
	if !amount.IsPositive() {
		return nil, ErrAmountMustBePositive
	}
	if strings.TrimSpace(reference) == "" {
		return nil, ErrInvalidDescription
	}
	return &Transfer{
		ID:            uuid.New(),
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        amount,
		Description:   description,
		Reference:     reference,
		CreatedAt:     time.Now(),
	}, nil
}

// NewReference generates a transfer reference. The TRF prefix matches
// the format customers see on their statements.
func NewReference() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "TRF-" + strings.ToUpper(raw[:12])
}
