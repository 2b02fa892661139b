package agent

import (
	"poinadmin/database"
	"poinadmin/helpers"
	"poinadmin/models"
	"poinadmin/services/agentwallet"

	"github.com/gofiber/fiber/v2"
)

func sessionAgent(c *fiber.Ctx) (models.Agent, bool) {
	agent, ok := c.Locals("agent").(models.Agent)
	return agent, ok
}

func CreditWallet(c *fiber.Ctx) error {
	agent, ok := sessionAgent(c)
	if !ok {
		return helpers.JSONError(c, "INVALID_AGENT_SESSION")
	}

	var req agentwallet.MovementInput
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	wallet, entry, err := agentwallet.Credit(database.DB, agent.ID, req)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return walletMovementResponse(c, "Wallet credited successfully", wallet, entry)
}

func DebitWallet(c *fiber.Ctx) error {
	agent, ok := sessionAgent(c)
	if !ok {
		return helpers.JSONError(c, "INVALID_AGENT_SESSION")
	}

	var req agentwallet.MovementInput
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	wallet, entry, err := agentwallet.Debit(database.DB, agent.ID, req)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return walletMovementResponse(c, "Wallet debited successfully", wallet, entry)
}

func walletMovementResponse(c *fiber.Ctx, message string, wallet *models.AgentWallet, entry *models.WalletTransaction) error {
	return helpers.JSONSuccess(c, message, fiber.Map{
		"wallet_type":    wallet.WalletType,
		"balance":        wallet.Balance,
		"currency":       wallet.Currency,
		"trx_type":       entry.TrxType,
		"amount":         entry.Amount,
		"balance_before": entry.BalanceBefore,
		"balance_after":  entry.BalanceAfter,
		"reference_id":   entry.ReferenceID,
	})
}

type balanceRequest struct {
	ClientID *uint `json:"client_id"`
}

func WalletBalances(c *fiber.Ctx) error {
	agent, ok := sessionAgent(c)
	if !ok {
		return helpers.JSONError(c, "INVALID_AGENT_SESSION")
	}

	var req balanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	balances, err := agentwallet.Balances(database.DB, agent.ID, req.ClientID)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Balances retrieved successfully", fiber.Map{
		"agent_code": agent.AgentCode,
		"balances":   balances,
	})
}
