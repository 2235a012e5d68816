package repository

import (
	"github.com/andeanbank/corebank/pkg/domain/ledger"
	"github.com/andeanbank/corebank/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type movementRepository struct {
	db *gorm.DB
}

// NewMovementRepository creates a movement repository bound to the given
// GORM session.
func NewMovementRepository(db *gorm.DB) repository.MovementRepository {
	return &movementRepository{db: db}
}

func (r *movementRepository) Create(m *ledger.Movement) error {
	row := mapMovementToModel(m)
	return r.db.Create(&row).Error
}

func (r *movementRepository) ListByAccount(accountID uuid.UUID) ([]*ledger.Movement, error) {
	var rows []Movement
	err := r.db.
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]*ledger.Movement, 0, len(rows))
	for i := range rows {
		m, err := mapMovementToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *movementRepository) CountByAccount(accountID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&Movement{}).
		Where("account_id = ?", accountID).
		Count(&count).Error
	return count, err
}
