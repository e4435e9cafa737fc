package atmcore

import (
	"time"

	"github.com/shopspring/decimal"
)

type MovementKind string

const (
	KindDeposit    MovementKind = "Deposit"
	KindWithdrawal MovementKind = "Withdrawal"
	KindTransfer   MovementKind = "Transfer"
)

// Account is a ledger record. IDs are assigned outside the system,
// there is no request path that creates one.
type Account struct {
	ID          uint            `json:"id" gorm:"primarykey"`
	Balance     decimal.Decimal `json:"balance" gorm:"type:decimal(20,2)"`
	AccountType string          `json:"account_type"`
}

// CanWithdraw reports whether debiting amount keeps the balance
// non-negative.
func (a *Account) CanWithdraw(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(a.Balance)
}

// Movement is one immutable row of the transaction log. Amount is
// signed: credits positive, debits negative. Reference groups the two
// legs of a transfer, it is empty on deposits and withdrawals.
type Movement struct {
	ID        uint            `json:"id" gorm:"primarykey"`
	AccountID uint            `json:"account_id" gorm:"index"`
	Reference string          `json:"reference"`
	EntryTime time.Time       `json:"entry_time"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(20,2)"`
	Kind      MovementKind    `json:"kind"`

	Account *Account `json:"-"`
}
