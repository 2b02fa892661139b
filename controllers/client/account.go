package client

import (
	"poinadmin/database"
	"poinadmin/helpers"
	"poinadmin/services/clientledger"

	"github.com/gofiber/fiber/v2"
)

func AccountSnapshot(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return helpers.JSONError(c, "INVALID_CLIENT_ID")
	}

	snap, err := clientledger.Snapshot(database.DB, clientID)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Account snapshot retrieved successfully", snap)
}

func DisableClient(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return helpers.JSONError(c, "INVALID_CLIENT_ID")
	}

	client, err := clientledger.DisableClient(database.DB, clientID)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Client disabled successfully", fiber.Map{
		"client_id":   client.ID,
		"client_code": client.ClientCode,
		"status":      client.Status,
	})
}
