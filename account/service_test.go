package account_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"cajeroweb/account"
	"cajeroweb/atmcore"
	"cajeroweb/atmmock"
)

func dec(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(raw)
	assert.Nil(t, err)
	return d
}

func balanceOf(t *testing.T, db *gorm.DB, id uint) decimal.Decimal {
	t.Helper()
	acc, err := atmcore.NewAccountStore(db).FindByID(id)
	assert.Nil(t, err)
	return acc.Balance
}

func movementsOf(t *testing.T, db *gorm.DB, id uint) []*atmcore.Movement {
	t.Helper()
	movs, err := atmcore.NewMovementStore(db).ListByAccount(id)
	assert.Nil(t, err)
	return movs
}

func TestMoneyOperations(t *testing.T) {
	db := atmmock.SqliteDatabase(t)
	atmmock.PopulateAccount(t, db, 1001, "500.00", "corriente")
	atmmock.PopulateAccount(t, db, 1002, "100.00", "ahorro")

	service := account.NewAccountService(db)
	ctx := context.Background()

	t.Run("deposit credits balance and logs one movement", func(t *testing.T) {
		mov, err := service.Deposit(ctx, 1001, dec(t, "250.00"))
		assert.Nil(t, err)
		assert.Equal(t, atmcore.KindDeposit, mov.Kind)
		assert.True(t, mov.Amount.Equal(dec(t, "250.00")))

		assert.True(t, balanceOf(t, db, 1001).Equal(dec(t, "750.00")))
		assert.Len(t, movementsOf(t, db, 1001), 1)
	})

	t.Run("withdraw over balance is rejected without mutation", func(t *testing.T) {
		mov, err := service.Withdraw(ctx, 1001, dec(t, "900.00"))
		assert.Nil(t, mov)
		assert.ErrorIs(t, err, atmcore.ErrInsufficientBalance)

		assert.True(t, balanceOf(t, db, 1001).Equal(dec(t, "750.00")))
		assert.Len(t, movementsOf(t, db, 1001), 1)
	})

	t.Run("transfer moves money and logs both legs", func(t *testing.T) {
		res, err := service.Transfer(ctx, 1001, 1002, dec(t, "300.00"))
		assert.Nil(t, err)
		assert.NotEmpty(t, res.Reference)
		assert.Equal(t, res.Reference, res.Debit.Reference)
		assert.Equal(t, res.Reference, res.Credit.Reference)
		assert.True(t, res.Debit.Amount.Equal(dec(t, "-300.00")))
		assert.True(t, res.Credit.Amount.Equal(dec(t, "300.00")))

		assert.True(t, balanceOf(t, db, 1001).Equal(dec(t, "450.00")))
		assert.True(t, balanceOf(t, db, 1002).Equal(dec(t, "400.00")))

		assert.Len(t, movementsOf(t, db, 1001), 2)
		assert.Len(t, movementsOf(t, db, 1002), 1)
	})
}

func TestDepositValidation(t *testing.T) {
	db := atmmock.SqliteDatabase(t)
	atmmock.PopulateAccount(t, db, 1001, "500.00", "corriente")

	service := account.NewAccountService(db)
	ctx := context.Background()

	for _, amount := range []string{"0", "-10.00"} {
		mov, err := service.Deposit(ctx, 1001, dec(t, amount))
		assert.Nil(t, mov)
		assert.ErrorIs(t, err, atmcore.ErrInvalidAmount)
	}

	mov, err := service.Withdraw(ctx, 1001, dec(t, "-1"))
	assert.Nil(t, mov)
	assert.ErrorIs(t, err, atmcore.ErrInvalidAmount)

	assert.True(t, balanceOf(t, db, 1001).Equal(dec(t, "500.00")))
	assert.Len(t, movementsOf(t, db, 1001), 0)
}

func TestDepositUnknownAccount(t *testing.T) {
	db := atmmock.SqliteDatabase(t)

	service := account.NewAccountService(db)

	mov, err := service.Deposit(context.Background(), 9999, dec(t, "10.00"))
	assert.Nil(t, mov)
	assert.ErrorIs(t, err, atmcore.ErrAccountNotFound)
}

func TestTransferGuards(t *testing.T) {
	db := atmmock.SqliteDatabase(t)
	atmmock.PopulateAccount(t, db, 1001, "500.00", "corriente")
	atmmock.PopulateAccount(t, db, 1002, "100.00", "ahorro")

	service := account.NewAccountService(db)
	ctx := context.Background()

	t.Run("self transfer is always rejected", func(t *testing.T) {
		res, err := service.Transfer(ctx, 1001, 1001, dec(t, "50.00"))
		assert.Nil(t, res)
		assert.ErrorIs(t, err, atmcore.ErrSameAccount)
	})

	t.Run("non positive amount is rejected", func(t *testing.T) {
		res, err := service.Transfer(ctx, 1001, 1002, dec(t, "0"))
		assert.Nil(t, res)
		assert.ErrorIs(t, err, atmcore.ErrInvalidAmount)
	})

	t.Run("insufficient balance leaves both accounts untouched", func(t *testing.T) {
		res, err := service.Transfer(ctx, 1001, 1002, dec(t, "600.00"))
		assert.Nil(t, res)
		assert.ErrorIs(t, err, atmcore.ErrInsufficientBalance)

		assert.True(t, balanceOf(t, db, 1001).Equal(dec(t, "500.00")))
		assert.True(t, balanceOf(t, db, 1002).Equal(dec(t, "100.00")))
	})

	t.Run("unknown destination rolls back the debit", func(t *testing.T) {
		res, err := service.Transfer(ctx, 1001, 9999, dec(t, "50.00"))
		assert.Nil(t, res)
		assert.ErrorIs(t, err, atmcore.ErrAccountNotFound)

		assert.True(t, balanceOf(t, db, 1001).Equal(dec(t, "500.00")))
		assert.Len(t, movementsOf(t, db, 1001), 0)
	})
}
