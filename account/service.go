package account

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"cajeroweb/atmcore"
)

// Service wraps the account store with the three money operations.
// Each operation runs inside a single database transaction with the
// touched rows locked, so a transfer is all-or-nothing and concurrent
// withdrawals cannot drive a balance negative.
type Service interface {
	Deposit(ctx context.Context, accountID uint, amount decimal.Decimal) (*atmcore.Movement, error)
	Withdraw(ctx context.Context, accountID uint, amount decimal.Decimal) (*atmcore.Movement, error)
	Transfer(ctx context.Context, fromID uint, toID uint, amount decimal.Decimal) (*TransferResult, error)
}

// TransferResult carries the two legs of a completed transfer. Both
// movements share Reference.
type TransferResult struct {
	Reference string
	Debit     *atmcore.Movement
	Credit    *atmcore.Movement
}

type accountServiceImpl struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) Service {
	return &accountServiceImpl{
		db: db,
	}
}
