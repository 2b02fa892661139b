package routes

import (
	"poinadmin/controllers/agent"
	"poinadmin/controllers/client"
	"poinadmin/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	// operator panel: client receivable ledger
	clientroutes := app.Group("/client", middlewares.AdminAuth())
	clientroutes.Post("/register", client.RegisterClient)
	clientroutes.Post("/:id/billing", client.CreateBilling)
	clientroutes.Post("/:id/charge", client.AddCharge)
	clientroutes.Post("/:id/payment", client.RecordPayment)
	clientroutes.Get("/:id/account", client.AccountSnapshot)
	clientroutes.Post("/:id/disable", client.DisableClient)

	app.Post("/agent/register", middlewares.AdminAuth(), agent.RegisterAgent)

	// agent wallets
	agentroutes := app.Group("/agent", middlewares.AgentAuth())
	agentroutes.Post("/wallet/topup", agent.TopupSubAgent)
	agentroutes.Post("/wallet/credit", agent.CreditWallet)
	agentroutes.Post("/wallet/debit", agent.DebitWallet)
	agentroutes.Post("/wallet/balance", agent.WalletBalances)
	agentroutes.Post("/wallet/transactions", agent.ListWalletTransactions)
}
