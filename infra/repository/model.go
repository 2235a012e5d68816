package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account is the persisted account row. Deleting through GORM soft
// deletes via gorm.Model.DeletedAt, so a closed account's row survives
// for audit.
type Account struct {
	gorm.Model
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Number       string    `gorm:"uniqueIndex;not null;size:20"`
	FullName     string    `gorm:"not null;size:120"`
	Email        string    `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(10);not null;default:'USER'"`
	Balance      int64
	Currency     string `gorm:"type:varchar(3);not null;default:'COP'"`
	Movements    []Movement
	Credits      []Credit
	Loans        []Loan
}

// Movement is a persisted ledger line. Rows are append-only.
type Movement struct {
	gorm.Model
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	AccountID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Kind        string    `gorm:"type:varchar(16);not null"`
	Amount      int64     `gorm:"not null"`
	Currency    string    `gorm:"type:varchar(3);not null;default:'COP'"`
	Description string    `gorm:"not null"`
	Reference   string    `gorm:"size:40;index"`
	Balance     int64     `gorm:"not null"`
}

// Transfer is a persisted transfer record linking two accounts.
type Transfer struct {
	gorm.Model
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	FromAccountID uuid.UUID `gorm:"type:uuid;index;not null"`
	ToAccountID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Amount        int64     `gorm:"not null"`
	Currency      string    `gorm:"type:varchar(3);not null;default:'COP'"`
	Description   string
	Reference     string `gorm:"uniqueIndex;not null;size:40"`
}

// Credit is a persisted revolving credit line.
type Credit struct {
	gorm.Model
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	AccountID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Amount       int64     `gorm:"not null"`
	CreditLimit  int64     `gorm:"not null"`
	InterestRate float64   `gorm:"type:decimal(6,3)"`
	Currency     string    `gorm:"type:varchar(3);not null;default:'COP'"`
	DueDate      time.Time
	Status       string `gorm:"type:varchar(10);not null;default:'ACTIVE'"`
}

// Loan is a persisted installment loan.
type Loan struct {
	gorm.Model
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	AccountID        uuid.UUID `gorm:"type:uuid;index;not null"`
	Amount           int64     `gorm:"not null"`
	InterestRate     float64   `gorm:"type:decimal(6,3)"`
	TermMonths       int       `gorm:"not null"`
	MonthlyPayment   int64     `gorm:"not null"`
	RemainingBalance int64     `gorm:"not null"`
	Currency         string    `gorm:"type:varchar(3);not null;default:'COP'"`
	Status           string    `gorm:"type:varchar(10);not null;default:'ACTIVE'"`
	StartDate        time.Time
}
