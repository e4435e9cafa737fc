package account

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"cajeroweb/atmcore"
)

// Deposit implements Service.
func (a *accountServiceImpl) Deposit(
	ctx context.Context,
	accountID uint,
	amount decimal.Decimal,
) (*atmcore.Movement, error) {
	if !amount.IsPositive() {
		return nil, atmcore.ErrInvalidAmount
	}

	var mov *atmcore.Movement
	err := atmcore.OpenTransaction(ctx, a.db, func(tx *gorm.DB) error {
		accounts := atmcore.NewAccountStore(tx)

		acc, err := accounts.FindByIDForUpdate(accountID)
		if err != nil {
			return err
		}

		acc.Balance = acc.Balance.Add(amount)
		err = accounts.Save(acc)
		if err != nil {
			return err
		}

		mov = &atmcore.Movement{
			AccountID: acc.ID,
			Amount:    amount,
			Kind:      atmcore.KindDeposit,
		}
		return atmcore.NewMovementStore(tx).Insert(mov)
	})
	if err != nil {
		return nil, err
	}

	return mov, nil
}
