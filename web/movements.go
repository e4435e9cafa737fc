package web

import (
	"github.com/gofiber/fiber/v2"
)

// Movements renders the transaction history of the session account.
func (h *Handler) Movements(c *fiber.Ctx) error {
	id, ok := h.sessionAccountID(c)
	if !ok {
		return c.Redirect("/login")
	}

	acc, err := h.accounts.FindByID(id)
	if err != nil {
		_ = h.destroySession(c)
		return c.Redirect("/login")
	}

	movs, err := h.ledger.ListByAccount(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.Render("movimientos", fiber.Map{
		"Cuenta":      acc,
		"Movimientos": movs,
	})
}
