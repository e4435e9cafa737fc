package web

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"cajeroweb/atmcore"
)

const msgWrongAccount = "CUENTA INCORRECTA"

// LoginPage renders the login form, or the home view when the session
// already holds an account.
func (h *Handler) LoginPage(c *fiber.Ctx) error {
	id, ok := h.sessionAccountID(c)
	if !ok {
		return c.Render("login", fiber.Map{
			"Mensaje": h.takeFlash(c),
		})
	}

	acc, err := h.accounts.FindByID(id)
	if err != nil {
		// account disappeared under the session
		_ = h.destroySession(c)
		return c.Render("login", fiber.Map{
			"Mensaje": h.takeFlash(c),
		})
	}

	return c.Render("home", fiber.Map{
		"Cuenta":  acc,
		"Mensaje": h.takeFlash(c),
	})
}

// Login authenticates by account number.
func (h *Handler) Login(c *fiber.Ctx) error {
	raw := c.FormValue("numeroCuenta")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		h.setFlash(c, msgWrongAccount)
		return c.Redirect("/login")
	}

	acc, err := h.accounts.FindByID(uint(id))
	if err != nil {
		if !errors.Is(err, atmcore.ErrAccountNotFound) {
			return err
		}
		h.setFlash(c, msgWrongAccount)
		return c.Redirect("/login")
	}

	err = h.setSessionAccountID(c, acc.ID)
	if err != nil {
		return err
	}
	return c.Redirect("/login")
}

// Logout clears the authenticated state regardless of what it was.
func (h *Handler) Logout(c *fiber.Ctx) error {
	_ = h.destroySession(c)
	return c.Redirect("/login")
}
