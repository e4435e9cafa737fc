package cajeroweb

import (
	"github.com/gofiber/fiber/v2"

	"cajeroweb/web"
)

type RegisterHandler func()

// NewRegister mounts the whole route table onto the app.
func NewRegister(
	app *fiber.App,
	handler *web.Handler,
) RegisterHandler {
	return func() {
		app.Get("/", func(c *fiber.Ctx) error {
			return c.Redirect("/login")
		})

		app.Get("/login", handler.LoginPage)
		app.Post("/login", handler.Login)
		app.Get("/logout", handler.Logout)

		app.Get("/ingresar", handler.DepositPage)
		app.Post("/ingresar", handler.Deposit)

		app.Get("/extraer", handler.WithdrawPage)
		app.Post("/extraer", handler.Withdraw)

		app.Get("/transferencia", handler.TransferPage)
		app.Post("/transferencia", handler.Transfer)

		app.Get("/movimientos", handler.Movements)
	}
}
