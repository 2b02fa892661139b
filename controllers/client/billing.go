package client

import (
	"poinadmin/database"
	"poinadmin/helpers"
	"poinadmin/services/clientledger"

	"github.com/gofiber/fiber/v2"
)

func clientIDParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(id), nil
}

func CreateBilling(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return helpers.JSONError(c, "INVALID_CLIENT_ID")
	}

	var req clientledger.BillingInput
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	billing, err := clientledger.CreateBilling(database.DB, clientID, req)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Billing created successfully", fiber.Map{
		"billing_id":    billing.ID,
		"month":         billing.Month,
		"game_provider": billing.GameProvider,
		"final_amount":  billing.FinalAmount,
		"due_date":      billing.DueDate.Format("2006-01-02"),
		"status":        billing.Status,
	})
}
