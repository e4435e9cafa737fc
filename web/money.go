package web

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"cajeroweb/atmcore"
)

const (
	msgInvalidAmount       = "Operación incorrecta: cantidad incorrecta."
	msgInsufficientBalance = "Operación incorrecta: saldo insuficiente"
	msgWrongDestination    = "Operación incorrecta: cuenta incorrecta."
	msgOperationFailed     = "Operación incorrecta: inténtelo de nuevo."

	msgDepositOk  = "Ingreso realizado con éxito"
	msgWithdrawOk = "Extracción realizada con éxito"
	msgTransferOk = "Transferencia realizada con éxito"
)

// DepositPage, WithdrawPage and TransferPage render the operation
// forms for an authenticated session.
func (h *Handler) DepositPage(c *fiber.Ctx) error {
	return h.formPage(c, "ingresar")
}

func (h *Handler) WithdrawPage(c *fiber.Ctx) error {
	return h.formPage(c, "extraer")
}

func (h *Handler) TransferPage(c *fiber.Ctx) error {
	return h.formPage(c, "transferencia")
}

func (h *Handler) formPage(c *fiber.Ctx, view string) error {
	if _, ok := h.sessionAccountID(c); !ok {
		return c.Redirect("/login")
	}
	return c.Render(view, fiber.Map{
		"Mensaje": h.takeFlash(c),
	})
}

// Deposit credits the session account.
func (h *Handler) Deposit(c *fiber.Ctx) error {
	id, ok := h.sessionAccountID(c)
	if !ok {
		return c.Redirect("/login")
	}

	amount, err := parseAmount(c.FormValue("ingreso"))
	if err != nil {
		h.setFlash(c, msgInvalidAmount)
		return c.Redirect("/ingresar")
	}

	_, err = h.money.Deposit(c.UserContext(), id, amount)
	if err != nil {
		h.setFlash(c, h.operationMessage(err))
		return c.Redirect("/ingresar")
	}

	h.setFlash(c, msgDepositOk)
	return c.Redirect("/login")
}

// Withdraw debits the session account when the balance allows it.
func (h *Handler) Withdraw(c *fiber.Ctx) error {
	id, ok := h.sessionAccountID(c)
	if !ok {
		return c.Redirect("/login")
	}

	amount, err := parseAmount(c.FormValue("extraer"))
	if err != nil {
		h.setFlash(c, msgInvalidAmount)
		return c.Redirect("/extraer")
	}

	_, err = h.money.Withdraw(c.UserContext(), id, amount)
	if err != nil {
		h.setFlash(c, h.operationMessage(err))
		return c.Redirect("/extraer")
	}

	h.setFlash(c, msgWithdrawOk)
	return c.Redirect("/login")
}

// Transfer moves money from the session account to a destination
// account.
func (h *Handler) Transfer(c *fiber.Ctx) error {
	id, ok := h.sessionAccountID(c)
	if !ok {
		return c.Redirect("/login")
	}

	amount, err := parseAmount(c.FormValue("cantidad"))
	if err != nil {
		h.setFlash(c, msgInvalidAmount)
		return c.Redirect("/transferencia")
	}

	destID, err := strconv.ParseUint(c.FormValue("cuentaDestino"), 10, 64)
	if err != nil {
		h.setFlash(c, msgWrongDestination)
		return c.Redirect("/transferencia")
	}

	_, err = h.money.Transfer(c.UserContext(), id, uint(destID), amount)
	if err != nil {
		h.setFlash(c, h.operationMessage(err))
		return c.Redirect("/transferencia")
	}

	h.setFlash(c, msgTransferOk)
	return c.Redirect("/login")
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, atmcore.ErrInvalidAmount
	}
	return amount, nil
}

// operationMessage maps service errors onto the user-facing flash
// message. Unexpected store failures are logged and collapse into a
// generic message, the request stays on the form.
func (h *Handler) operationMessage(err error) string {
	switch {
	case errors.Is(err, atmcore.ErrInvalidAmount):
		return msgInvalidAmount
	case errors.Is(err, atmcore.ErrInsufficientBalance):
		return msgInsufficientBalance
	case errors.Is(err, atmcore.ErrAccountNotFound),
		errors.Is(err, atmcore.ErrSameAccount):
		return msgWrongDestination
	default:
		slog.Error("money operation failed", "err", err)
		return msgOperationFailed
	}
}
