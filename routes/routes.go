package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coopwatt/coopwatt/controllers"
	"github.com/coopwatt/coopwatt/controllers/admin_controllers"
	"github.com/coopwatt/coopwatt/routes/middlewares"
)

func SetupRouter() *fiber.App {
	app := fiber.New()

	app.Get("/api/v2/public/timestamp", controllers.GetTimestamp)
	app.Get("/api/v2/public/asset_types", controllers.GetAssetTypes)

	app.Use("/api/v2/account", middlewares.Authenticate)
	app.Use("/api/v2/admin", middlewares.Authenticate)

	app.Get("/api/v2/account/balances", controllers.GetAccounts)
	app.Post("/api/v2/account/balances", controllers.CreateAccount)
	app.Get("/api/v2/account/balances/:id/history", controllers.GetAccountHistory)
	app.Get("/api/v2/account/balances/:id/transactions", controllers.GetTransactions)
	app.Post("/api/v2/account/deposits", controllers.CreateDeposit)
	app.Post("/api/v2/account/withdraws", controllers.CreateWithdraw)
	app.Post("/api/v2/account/transfers", controllers.CreateTransfer)

	app.Post("/api/v2/admin/accounts/:id/freeze", admin_controllers.FreezeAccount)
	app.Post("/api/v2/admin/accounts/:id/unfreeze", admin_controllers.UnfreezeAccount)
	app.Post("/api/v2/admin/transactions/:id/reverse", admin_controllers.ReverseTransaction)
	app.Post("/api/v2/admin/transactions/:id/reconcile", admin_controllers.ReconcileTransaction)
	app.Post("/api/v2/admin/transactions/:id/process", admin_controllers.ProcessTransaction)
	app.Post("/api/v2/admin/transactions/:id/cancel", admin_controllers.CancelTransaction)
	app.Get("/api/v2/admin/transactions/:id/export", admin_controllers.ExportTransaction)

	return app
}
