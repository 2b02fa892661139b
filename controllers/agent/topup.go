package agent

import (
	"poinadmin/database"
	"poinadmin/helpers"
	"poinadmin/models"
	"poinadmin/services/agentwallet"

	"github.com/gofiber/fiber/v2"
)

// TopupSubAgent moves funds from the authenticated master agent's
// wallet into a direct sub-agent's wallet.
func TopupSubAgent(c *fiber.Ctx) error {
	master, ok := c.Locals("agent").(models.Agent)
	if !ok {
		return helpers.JSONError(c, "INVALID_AGENT_SESSION")
	}

	var req agentwallet.TopupInput
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	subWallet, err := agentwallet.Topup(database.DB, master.ID, req)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Top-up successful", fiber.Map{
		"sub_agent_id": subWallet.AgentID,
		"wallet_type":  subWallet.WalletType,
		"balance":      subWallet.Balance,
		"currency":     subWallet.Currency,
	})
}
