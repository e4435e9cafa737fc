package account

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"cajeroweb/atmcore"
)

// Withdraw implements Service. The movement is stored with a negative
// amount.
func (a *accountServiceImpl) Withdraw(
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

		if !acc.CanWithdraw(amount) {
			return atmcore.ErrInsufficientBalance
		}

		acc.Balance = acc.Balance.Sub(amount)
		err = accounts.Save(acc)
		if err != nil {
			return err
		}

		mov = &atmcore.Movement{
			AccountID: acc.ID,
			Amount:    amount.Neg(),
			Kind:      atmcore.KindWithdrawal,
		}
		return atmcore.NewMovementStore(tx).Insert(mov)
	})
	if err != nil {
		return nil, err
	}

	return mov, nil
}
