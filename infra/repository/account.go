package repository

import (
	"errors"

	"github.com/andeanbank/corebank/pkg/domain/ledger"
	"github.com/andeanbank/corebank/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository bound to the given
// GORM session.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Get(id uuid.UUID) (*ledger.Account, error) {
	var row Account
	if err := r.db.First(&row, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return mapAccountToDomain(&row)
}

// GetForUpdate locks the requested rows with SELECT ... FOR UPDATE.
// The WHERE-IN query orders by id, so concurrent transfers over the same
// account pair always acquire locks in the same order. Results are
// rearranged back into the requested order for the caller.
func (r *accountRepository) GetForUpdate(ids ...uuid.UUID) ([]*ledger.Account, error) {
	var rows []Account
	err := r.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) != len(ids) {
		return nil, ledger.ErrAccountNotFound
	}
	byID := make(map[uuid.UUID]*Account, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}
	out := make([]*ledger.Account, 0, len(ids))
	for _, id := range ids {
		row, ok := byID[id]
		if !ok {
			return nil, ledger.ErrAccountNotFound
		}
		acct, err := mapAccountToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, acct)
	}
	return out, nil
}

func (r *accountRepository) GetByNumber(number string) (*ledger.Account, error) {
	var row Account
	if err := r.db.First(&row, "number = ?", number).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return mapAccountToDomain(&row)
}

func (r *accountRepository) GetByEmail(email string) (*ledger.Account, error) {
	var row Account
	if err := r.db.First(&row, "email = ?", email).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return mapAccountToDomain(&row)
}

func (r *accountRepository) Create(a *ledger.Account) error {
	row := mapAccountToModel(a)
	if err := r.db.Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ledger.ErrEmailAlreadyRegistered
		}
		return err
	}
	return nil
}

func (r *accountRepository) Update(a *ledger.Account) error {
	return r.db.Model(&Account{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{
			"balance":    a.Balance.Amount(),
			"full_name":  a.FullName,
			"email":      a.Email,
			"updated_at": a.UpdatedAt,
		}).Error
}

func (r *accountRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Account{}, "id = ?", id).Error
}

func (r *accountRepository) List() ([]*ledger.Account, error) {
	var rows []Account
	if err := r.db.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*ledger.Account, 0, len(rows))
	for i := range rows {
		acct, err := mapAccountToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, acct)
	}
	return out, nil
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ledger.ErrAccountNotFound
	}
	return err
}
