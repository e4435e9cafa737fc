package atmcore

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccountStore interface {
	FindByID(id uint) (*Account, error)
	// FindByIDForUpdate loads the row under a FOR UPDATE lock. Call it
	// only inside an open transaction.
	FindByIDForUpdate(id uint) (*Account, error)
	Exists(id uint) (bool, error)
	Save(acc *Account) error
}

type accountStoreImpl struct {
	tx *gorm.DB
}

// FindByID implements AccountStore.
func (a *accountStoreImpl) FindByID(id uint) (*Account, error) {
	return a.findByID(a.tx, id)
}

// FindByIDForUpdate implements AccountStore.
func (a *accountStoreImpl) FindByIDForUpdate(id uint) (*Account, error) {
	tx := a.tx
	// sqlite has no SELECT ... FOR UPDATE, its single writer already
	// serializes the mutation.
	if tx.Dialector.Name() != "sqlite" {
		tx = tx.Clauses(clause.Locking{
			Strength: "UPDATE",
		})
	}
	return a.findByID(tx, id)
}

func (a *accountStoreImpl) findByID(tx *gorm.DB, id uint) (*Account, error) {
	var acc Account
	err := tx.Model(&Account{}).First(&acc, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &acc, nil
}

// Exists implements AccountStore.
func (a *accountStoreImpl) Exists(id uint) (bool, error) {
	var count int64
	err := a.tx.Model(&Account{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save implements AccountStore.
func (a *accountStoreImpl) Save(acc *Account) error {
	return a.tx.Save(acc).Error
}

func NewAccountStore(tx *gorm.DB) AccountStore {
	return &accountStoreImpl{
		tx: tx,
	}
}
