package clientledger

import (
	"poinadmin/models"

	"github.com/shopspring/decimal"
)

// AccountState is the slice of a client's state the allocation rules
// read. The caller loads it inside the locked unit of work so the
// decision and its side effects see the same state.
type AccountState struct {
	ClientID            uint
	SecurityShortfall   decimal.Decimal
	AdditionalShortfall decimal.Decimal
	HasUnpaidBillings   bool
	// Billing is the referenced billing, loaded when the payment names
	// one; nil when it doesn't or the id matched nothing.
	Billing *models.ClientBilling
}

func (s AccountState) hasDepositRequirement() bool {
	return s.SecurityShortfall.IsPositive() || s.AdditionalShortfall.IsPositive()
}

func (s AccountState) shortfall(kind string) decimal.Decimal {
	if kind == models.DepositKindAdditional {
		return s.AdditionalShortfall
	}
	return s.SecurityShortfall
}

type PaymentRequest struct {
	Amount         decimal.Decimal
	DepositPayment bool
	DepositKind    string
	DepositAmount  decimal.Decimal
	HasBillingRef  bool
}

// Allocation says where the payment lands: a slice tagged to a deposit
// kind, a billing association, or both. The full payment amount still
// reduces the running balance either way; deposit paid fields and the
// ledger are independent views.
type Allocation struct {
	DepositKind   string
	DepositAmount decimal.Decimal
	BillingID     *uint
}

// ResolveAllocation decides how a payment applies against competing
// obligations, or rejects it as ambiguous. Rules, in order:
//
//  1. unpaid billings and no deposit requirement: a billing reference
//     is mandatory;
//  2. deposit requirement and no unpaid billings: a deposit allocation
//     is mandatory;
//  3. both outstanding: at least one of the two must be present.
//
// A deposit allocation may never exceed the kind's shortfall nor the
// payment itself.
func ResolveAllocation(state AccountState, req PaymentRequest) (Allocation, error) {
	depositRequested := req.DepositPayment && req.DepositAmount.IsPositive()

	switch {
	case state.HasUnpaidBillings && !state.hasDepositRequirement():
		if !req.HasBillingRef {
			return Allocation{}, ErrAllocationRequired
		}
	case state.hasDepositRequirement() && !state.HasUnpaidBillings:
		if !depositRequested {
			return Allocation{}, ErrAllocationRequired
		}
	case state.HasUnpaidBillings && state.hasDepositRequirement():
		if !req.HasBillingRef && !depositRequested {
			return Allocation{}, ErrAllocationRequired
		}
	}

	var alloc Allocation

	if req.DepositPayment {
		if !validDepositKind(req.DepositKind) {
			return Allocation{}, ErrInvalidDepositKind
		}
		if !req.DepositAmount.IsPositive() {
			return Allocation{}, ErrInvalidAmount
		}
		if req.DepositAmount.GreaterThan(state.shortfall(req.DepositKind)) {
			return Allocation{}, ErrDepositOverAllocation
		}
		if req.DepositAmount.GreaterThan(req.Amount) {
			return Allocation{}, ErrDepositExceedsPayment
		}
		alloc.DepositKind = req.DepositKind
		alloc.DepositAmount = req.DepositAmount
	}

	if req.HasBillingRef {
		b := state.Billing
		if b == nil || b.ClientID != state.ClientID || b.Status == models.BillingStatusPaid {
			return Allocation{}, ErrInvalidBillingReference
		}
		alloc.BillingID = &b.ID
	}

	return alloc, nil
}
