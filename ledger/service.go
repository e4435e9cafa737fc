package ledger

import (
	"context"

	"gorm.io/gorm"

	"cajeroweb/atmcore"
)

// Service is the read side of the transaction log.
type Service interface {
	ListByAccount(ctx context.Context, accountID uint) ([]*atmcore.Movement, error)
}

type ledgerServiceImpl struct {
	db *gorm.DB
}

// ListByAccount implements Service. Movements come back chronological
// ascending, ties broken by insertion order.
func (l *ledgerServiceImpl) ListByAccount(ctx context.Context, accountID uint) ([]*atmcore.Movement, error) {
	movs := []*atmcore.Movement{}

	db := l.db.WithContext(ctx)
	err := NewMovementView(db).
		AccountID(accountID).
		Find(&movs).
		Err()

	return movs, err
}

func NewLedgerService(db *gorm.DB) Service {
	return &ledgerServiceImpl{
		db: db,
	}
}
