package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ClientTrxPayment    = "Payment"
	ClientTrxShareDue   = "Share Due"
	ClientTrxDeposit    = "Deposit"
	ClientTrxPenalty    = "Penalty"
	ClientTrxAdjustment = "Adjustment"
)

// ClientTransaction is one immutable entry in a client's receivable
// ledger. Amount is signed: charges are negative (the client owes
// more), payments positive. Rows are never updated or deleted.
type ClientTransaction struct {
	gorm.Model

	ClientID         uint            `gorm:"index"`
	ClientCode       string          `gorm:"size:32;index"`
	TrxType          string          `gorm:"size:16;index" json:"trx_type"`
	Amount           decimal.Decimal `gorm:"type:numeric(18,2)" json:"amount"`
	BalanceBefore    decimal.Decimal `gorm:"type:numeric(18,2)" json:"balance_before"`
	BalanceAfter     decimal.Decimal `gorm:"type:numeric(18,2)" json:"balance_after"`
	Currency         string          `gorm:"size:8" json:"currency"`
	Remarks          string          `gorm:"size:255" json:"remarks"`
	ReferenceNumber  string          `gorm:"size:64;index" json:"reference_number"`
	PaymentMethod    string          `gorm:"size:32" json:"payment_method"`
	RelatedBillingID *uint           `gorm:"index" json:"related_billing_id"`
	// DepositKind/DepositAmount record the slice of a payment tagged to
	// a deposit requirement; zero for everything else.
	DepositKind   string          `gorm:"size:16" json:"deposit_kind"`
	DepositAmount decimal.Decimal `gorm:"type:numeric(18,2)" json:"deposit_amount"`
}
