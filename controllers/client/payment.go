package client

import (
	"poinadmin/database"
	"poinadmin/helpers"
	"poinadmin/services/clientledger"

	"github.com/gofiber/fiber/v2"
)

func RecordPayment(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return helpers.JSONError(c, "INVALID_CLIENT_ID")
	}

	var req clientledger.PaymentInput
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	entry, err := clientledger.RecordPayment(database.DB, clientID, req)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	snap, err := clientledger.Snapshot(database.DB, clientID)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Payment recorded successfully", fiber.Map{
		"reference_number": entry.ReferenceNumber,
		"amount":           entry.Amount,
		"balance_before":   entry.BalanceBefore,
		"balance_after":    entry.BalanceAfter,
		"snapshot":         snap,
	})
}

func AddCharge(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return helpers.JSONError(c, "INVALID_CLIENT_ID")
	}

	var req clientledger.ChargeInput
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	entry, err := clientledger.AddCharge(database.DB, clientID, req)
	if err != nil {
		return helpers.ServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Charge added successfully", fiber.Map{
		"reference_number": entry.ReferenceNumber,
		"trx_type":         entry.TrxType,
		"amount":           entry.Amount,
		"balance_before":   entry.BalanceBefore,
		"balance_after":    entry.BalanceAfter,
	})
}
