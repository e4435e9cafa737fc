package cajeroweb

import (
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cajeroweb/atmcore"
)

type MigrationHandler func() error

func NewMigrationHandler(
	db *gorm.DB,
) MigrationHandler {
	return func() error {
		log.Println("migrating cajeroweb")
		return db.AutoMigrate(
			&atmcore.Account{},
			&atmcore.Movement{},
		)
	}
}

type SeedHandler func() error

// NewSeedHandler inserts the demo accounts. Accounts are never created
// by a request path, so a fresh database needs these to be usable.
func NewSeedHandler(
	db *gorm.DB,
) SeedHandler {
	return func() error {
		log.Println("seeding cajeroweb")

		accounts := []*atmcore.Account{
			{
				ID:          1001,
				Balance:     decimal.NewFromFloat(500.00),
				AccountType: "corriente",
			},
			{
				ID:          1002,
				Balance:     decimal.NewFromFloat(100.00),
				AccountType: "ahorro",
			},
		}

		for _, acc := range accounts {
			err := db.
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(acc).Error

			if err != nil {
				return err
			}
		}

		return nil
	}
}
