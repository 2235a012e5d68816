package repository

import (
	"errors"

	"github.com/andeanbank/corebank/pkg/domain/ledger"
	"github.com/andeanbank/corebank/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a transfer repository bound to the given
// GORM session.
func NewTransferRepository(db *gorm.DB) repository.TransferRepository {
	return &transferRepository{db: db}
}

func (r *transferRepository) Create(t *ledger.Transfer) error {
	row := mapTransferToModel(t)
	return r.db.Create(&row).Error
}

func (r *transferRepository) GetByReference(reference string) (*ledger.Transfer, error) {
	var row Transfer
	if err := r.db.First(&row, "reference = ?", reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrAccountNotFound
		}
		return nil, err
	}
	return mapTransferToDomain(&row)
}

func (r *transferRepository) ListByAccount(accountID uuid.UUID) ([]*ledger.Transfer, error) {
	var rows []Transfer
	err := r.db.
		Where("from_account_id = ? OR to_account_id = ?", accountID, accountID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]*ledger.Transfer, 0, len(rows))
	for i := range rows {
		t, err := mapTransferToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
