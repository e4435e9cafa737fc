package atmcore

import (
	"time"

	"gorm.io/gorm"
)

type MovementStore interface {
	// Insert appends one row to the log, assigning id and entry time.
	// Rows are never updated or deleted afterwards.
	Insert(mov *Movement) error
	ListByAccount(accountID uint) ([]*Movement, error)
}

type movementStoreImpl struct {
	tx *gorm.DB
}

// Insert implements MovementStore.
func (m *movementStoreImpl) Insert(mov *Movement) error {
	if mov.EntryTime.IsZero() {
		mov.EntryTime = time.Now()
	}
	return m.tx.Create(mov).Error
}

// ListByAccount implements MovementStore.
func (m *movementStoreImpl) ListByAccount(accountID uint) ([]*Movement, error) {
	movs := []*Movement{}
	err := m.
		tx.
		Model(&Movement{}).
		Where("account_id = ?", accountID).
		Order("entry_time asc, id asc").
		Find(&movs).
		Error

	return movs, err
}

func NewMovementStore(tx *gorm.DB) MovementStore {
	return &movementStoreImpl{
		tx: tx,
	}
}
