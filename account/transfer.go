package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"cajeroweb/atmcore"
)

// Transfer implements Service. Debit and credit commit or roll back
// together, a failed credit leg never leaves the source debited.
func (a *accountServiceImpl) Transfer(
	ctx context.Context,
	fromID uint,
	toID uint,
	amount decimal.Decimal,
) (*TransferResult, error) {
	if !amount.IsPositive() {
		return nil, atmcore.ErrInvalidAmount
	}
	if fromID == toID {
		return nil, atmcore.ErrSameAccount
	}

	result := TransferResult{
		Reference: uuid.NewString(),
	}

	err := atmcore.OpenTransaction(ctx, a.db, func(tx *gorm.DB) error {
		accounts := atmcore.NewAccountStore(tx)
		movements := atmcore.NewMovementStore(tx)

		// lock in id order so two opposing transfers cannot deadlock
		firstID, secondID := fromID, toID
		if toID < fromID {
			firstID, secondID = toID, fromID
		}

		first, err := accounts.FindByIDForUpdate(firstID)
		if err != nil {
			return err
		}
		second, err := accounts.FindByIDForUpdate(secondID)
		if err != nil {
			return err
		}

		source, dest := first, second
		if source.ID != fromID {
			source, dest = second, first
		}

		if !source.CanWithdraw(amount) {
			return atmcore.ErrInsufficientBalance
		}

		source.Balance = source.Balance.Sub(amount)
		err = accounts.Save(source)
		if err != nil {
			return err
		}

		dest.Balance = dest.Balance.Add(amount)
		err = accounts.Save(dest)
		if err != nil {
			return err
		}

		result.Debit = &atmcore.Movement{
			AccountID: source.ID,
			Reference: result.Reference,
			Amount:    amount.Neg(),
			Kind:      atmcore.KindTransfer,
		}
		err = movements.Insert(result.Debit)
		if err != nil {
			return err
		}

		result.Credit = &atmcore.Movement{
			AccountID: dest.ID,
			Reference: result.Reference,
			Amount:    amount,
			Kind:      atmcore.KindTransfer,
		}
		return movements.Insert(result.Credit)
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
