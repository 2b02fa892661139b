package helpers

import (
	"errors"

	"poinadmin/services/agentwallet"
	"poinadmin/services/clientledger"

	"github.com/gofiber/fiber/v2"
)

func JSONSuccess(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JSONError(c *fiber.Ctx, message string) error {
	return JSONErrorStatus(c, fiber.StatusBadRequest, message)
}

func JSONErrorStatus(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"data":    nil,
	})
}

// serviceErrorCodes maps ledger-engine sentinels to the wire code and
// HTTP status the operator panel expects. Allocation and
// insufficient-funds failures are expected business outcomes, so they
// surface with their own codes, never a generic 500.
var serviceErrorCodes = []struct {
	err    error
	status int
	code   string
}{
	{clientledger.ErrClientNotFound, fiber.StatusNotFound, "CLIENT_NOT_FOUND"},
	{clientledger.ErrBillingNotFound, fiber.StatusNotFound, "BILLING_NOT_FOUND"},
	{clientledger.ErrDuplicateBilling, fiber.StatusConflict, "DUPLICATE_BILLING"},
	{clientledger.ErrInvalidAmount, fiber.StatusBadRequest, "INVALID_AMOUNT"},
	{clientledger.ErrInvalidMonth, fiber.StatusBadRequest, "INVALID_MONTH"},
	{clientledger.ErrAllocationRequired, fiber.StatusBadRequest, "ALLOCATION_REQUIRED"},
	{clientledger.ErrDepositOverAllocation, fiber.StatusBadRequest, "DEPOSIT_OVER_ALLOCATION"},
	{clientledger.ErrDepositExceedsPayment, fiber.StatusBadRequest, "DEPOSIT_EXCEEDS_PAYMENT"},
	{clientledger.ErrInvalidBillingReference, fiber.StatusBadRequest, "INVALID_BILLING_REFERENCE"},
	{clientledger.ErrInvalidDepositKind, fiber.StatusBadRequest, "INVALID_DEPOSIT_KIND"},
	{clientledger.ErrInvalidChargeType, fiber.StatusBadRequest, "INVALID_CHARGE_TYPE"},
	{agentwallet.ErrAgentNotFound, fiber.StatusNotFound, "AGENT_NOT_FOUND"},
	{agentwallet.ErrWalletNotFound, fiber.StatusNotFound, "WALLET_NOT_FOUND"},
	{agentwallet.ErrInsufficientBalance, fiber.StatusBadRequest, "INSUFFICIENT_BALANCE"},
	{agentwallet.ErrNotDirectSubAgent, fiber.StatusConflict, "NOT_DIRECT_SUB_AGENT"},
	{agentwallet.ErrSelfTopupForbidden, fiber.StatusConflict, "SELF_TOPUP_FORBIDDEN"},
	{agentwallet.ErrInvalidAmount, fiber.StatusBadRequest, "INVALID_AMOUNT"},
	{agentwallet.ErrInvalidWalletType, fiber.StatusBadRequest, "INVALID_WALLET_TYPE"},
	{agentwallet.ErrInvalidTrxType, fiber.StatusBadRequest, "INVALID_TRX_TYPE"},
}

// ServiceError translates a service-layer error into the standard
// error envelope.
func ServiceError(c *fiber.Ctx, err error) error {
	for _, m := range serviceErrorCodes {
		if errors.Is(err, m.err) {
			return JSONErrorStatus(c, m.status, m.code)
		}
	}
	return JSONErrorStatus(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
}
