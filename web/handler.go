package web

import (
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"cajeroweb/account"
	"cajeroweb/atmcore"
	"cajeroweb/ledger"
)

// Handler serves the session-backed ATM surface. Authentication is
// the presence of an account id in the session, the account itself is
// re-fetched on every request.
type Handler struct {
	db       *gorm.DB
	accounts atmcore.AccountStore
	money    account.Service
	ledger   ledger.Service
	sessions *session.Store
}

func NewHandler(db *gorm.DB, sessions *session.Store) *Handler {
	return &Handler{
		db:       db,
		accounts: atmcore.NewAccountStore(db),
		money:    account.NewAccountService(db),
		ledger:   ledger.NewLedgerService(db),
		sessions: sessions,
	}
}
