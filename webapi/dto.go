package webapi

import (
	"time"

	"github.com/andeanbank/corebank/pkg/domain/ledger"
	"github.com/andeanbank/corebank/pkg/service/directory"
)

// AccountDTO is the API representation of an account. The password hash
// never leaves the server.
type AccountDTO struct {
	ID        string  `json:"id"`
	Number    string  `json:"account_number"`
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	Balance   float64 `json:"balance"`
	Currency  string  `json:"currency"`
	CreatedAt string  `json:"created_at"`
}

// AccountSummaryDTO extends AccountDTO with the directory counts.
type AccountSummaryDTO struct {
	AccountDTO
	MovementCount int64 `json:"movement_count"`
	CreditCount   int64 `json:"credit_count"`
	LoanCount     int64 `json:"loan_count"`
}

// MovementDTO is the API representation of a ledger movement.
type MovementDTO struct {
	ID          string  `json:"id"`
	AccountID   string  `json:"account_id"`
	Kind        string  `json:"kind"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Reference   string  `json:"reference,omitempty"`
	Balance     float64 `json:"balance"`
	Currency    string  `json:"currency"`
	CreatedAt   string  `json:"created_at"`
}

// TransferDTO is the API representation of a committed transfer.
type TransferDTO struct {
	ID            string  `json:"id"`
	FromAccountID string  `json:"from_account_id"`
	ToAccountID   string  `json:"to_account_id"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
	Reference     string  `json:"reference"`
	Currency      string  `json:"currency"`
	CreatedAt     string  `json:"created_at"`
}

// CreditDTO is the API representation of a revolving credit line.
type CreditDTO struct {
	ID           string  `json:"id"`
	Amount       float64 `json:"amount"`
	Limit        float64 `json:"limit"`
	InterestRate float64 `json:"interest_rate"`
	DueDate      string  `json:"due_date"`
	Status       string  `json:"status"`
	Currency     string  `json:"currency"`
}

// LoanDTO is the API representation of an installment loan.
type LoanDTO struct {
	ID               string  `json:"id"`
	Amount           float64 `json:"amount"`
	InterestRate     float64 `json:"interest_rate"`
	TermMonths       int     `json:"term_months"`
	MonthlyPayment   float64 `json:"monthly_payment"`
	RemainingBalance float64 `json:"remaining_balance"`
	Status           string  `json:"status"`
	StartDate        string  `json:"start_date"`
	Currency         string  `json:"currency"`
}

// CertificateDTO is the API representation of a clearance certificate.
type CertificateDTO struct {
	AccountNumber  string `json:"account_number"`
	FullName       string `json:"full_name"`
	InGoodStanding bool   `json:"in_good_standing"`
	IssuedAt       string `json:"issued_at"`
}

func toAccountDTO(a *ledger.Account) *AccountDTO {
	if a == nil {
		return nil
	}
	return &AccountDTO{
		ID:        a.ID.String(),
		Number:    a.Number,
		FullName:  a.FullName,
		Email:     a.Email,
		Role:      string(a.Role),
		Balance:   a.Balance.AmountFloat(),
		Currency:  a.Balance.Currency().String(),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func toAccountSummaryDTO(s *directory.AccountSummary) *AccountSummaryDTO {
	return &AccountSummaryDTO{
		AccountDTO:    *toAccountDTO(s.Account),
		MovementCount: s.Movements,
		CreditCount:   s.Credits,
		LoanCount:     s.Loans,
	}
}

func toMovementDTO(m *ledger.Movement) *MovementDTO {
	if m == nil {
		return nil
	}
	return &MovementDTO{
		ID:          m.ID.String(),
		AccountID:   m.AccountID.String(),
		Kind:        string(m.Kind),
		Amount:      m.Amount.AmountFloat(),
		Description: m.Description,
		Reference:   m.Reference,
		Balance:     m.Balance.AmountFloat(),
		Currency:    m.Amount.Currency().String(),
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}

func toMovementDTOs(ms []*ledger.Movement) []*MovementDTO {
	out := make([]*MovementDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, toMovementDTO(m))
	}
	return out
}

func toTransferDTO(t *ledger.Transfer) *TransferDTO {
	if t == nil {
		return nil
	}
	return &TransferDTO{
		ID:            t.ID.String(),
		FromAccountID: t.FromAccountID.String(),
		ToAccountID:   t.ToAccountID.String(),
		Amount:        t.Amount.AmountFloat(),
		Description:   t.Description,
		Reference:     t.Reference,
		Currency:      t.Amount.Currency().String(),
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
	}
}

func toCreditDTOs(cs []*ledger.Credit) []*CreditDTO {
	out := make([]*CreditDTO, 0, len(cs))
	for _, cr := range cs {
		out = append(out, &CreditDTO{
			ID:           cr.ID.String(),
			Amount:       cr.Amount.AmountFloat(),
			Limit:        cr.Limit.AmountFloat(),
			InterestRate: cr.InterestRate,
			DueDate:      cr.DueDate.Format(time.RFC3339),
			Status:       string(cr.Status),
			Currency:     cr.Amount.Currency().String(),
		})
	}
	return out
}

func toLoanDTOs(ls []*ledger.Loan) []*LoanDTO {
	out := make([]*LoanDTO, 0, len(ls))
	for _, ln := range ls {
		out = append(out, &LoanDTO{
			ID:               ln.ID.String(),
			Amount:           ln.Amount.AmountFloat(),
			InterestRate:     ln.InterestRate,
			TermMonths:       ln.TermMonths,
			MonthlyPayment:   ln.MonthlyPayment.AmountFloat(),
			RemainingBalance: ln.RemainingBalance.AmountFloat(),
			Status:           string(ln.Status),
			StartDate:        ln.StartDate.Format(time.RFC3339),
			Currency:         ln.Amount.Currency().String(),
		})
	}
	return out
}

func toCertificateDTO(cert *directory.Certificate) *CertificateDTO {
	return &CertificateDTO{
		AccountNumber:  cert.AccountNumber,
		FullName:       cert.FullName,
		InGoodStanding: cert.InGoodStanding,
		IssuedAt:       cert.IssuedAt.Format(time.RFC3339),
	}
}
