package clientledger

import "errors"

var (
	ErrClientNotFound          = errors.New("client_not_found")
	ErrBillingNotFound         = errors.New("billing_not_found")
	ErrDuplicateBilling        = errors.New("duplicate_billing")
	ErrInvalidAmount           = errors.New("invalid_amount")
	ErrInvalidMonth            = errors.New("invalid_month")
	ErrInvalidChargeType       = errors.New("invalid_charge_type")
	ErrInvalidDepositKind      = errors.New("invalid_deposit_kind")
	ErrAllocationRequired      = errors.New("allocation_required")
	ErrDepositOverAllocation   = errors.New("deposit_over_allocation")
	ErrDepositExceedsPayment   = errors.New("deposit_exceeds_payment")
	ErrInvalidBillingReference = errors.New("invalid_billing_reference")
)
