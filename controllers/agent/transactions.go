package agent

import (
	"poinadmin/database"
	"poinadmin/helpers"
	"poinadmin/services/agentwallet"

	"github.com/gofiber/fiber/v2"
)

type listTransactionsRequest struct {
	ClientID   *uint  `json:"client_id"`
	WalletType string `json:"wallet_type"`
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
}

func ListWalletTransactions(c *fiber.Ctx) error {
	agent, ok := sessionAgent(c)
	if !ok {
		return helpers.JSONError(c, "INVALID_AGENT_SESSION")
	}

	var req listTransactionsRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	entries, err := agentwallet.ListTransactions(database.DB, agent.ID, req.ClientID, req.WalletType, req.Limit, req.Offset)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Transactions retrieved successfully", fiber.Map{
		"wallet_type":  req.WalletType,
		"count":        len(entries),
		"transactions": entries,
	})
}
