package atmmock

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cajeroweb/atmcore"
)

// SqliteDatabase opens a migrated in-memory database. The named shared
// cache keeps every pooled connection on the same database while
// isolating tests from each other.
func SqliteDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.Nil(t, err)

	err = db.AutoMigrate(
		&atmcore.Account{},
		&atmcore.Movement{},
	)
	assert.Nil(t, err)

	return db
}

func PopulateAccount(t *testing.T, db *gorm.DB, id uint, balance string, accountType string) *atmcore.Account {
	t.Helper()

	amount, err := decimal.NewFromString(balance)
	assert.Nil(t, err)

	acc := atmcore.Account{
		ID:          id,
		Balance:     amount,
		AccountType: accountType,
	}
	err = db.Create(&acc).Error
	assert.Nil(t, err)

	return &acc
}
