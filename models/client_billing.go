package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BillingStatusUnpaid        = "Unpaid"
	BillingStatusPartiallyPaid = "Partially Paid"
	BillingStatusPaid          = "Paid"
)

// ClientBilling is one monthly revenue-share obligation. Unique per
// (client, month, provider); never deleted, status only moves forward
// as payments are associated.
type ClientBilling struct {
	gorm.Model

	ClientID        uint            `gorm:"index:idx_billing_period,unique" json:"client_id"`
	Month           string          `gorm:"size:7;index:idx_billing_period,unique" json:"month"`
	GameProvider    string          `gorm:"size:64;index:idx_billing_period,unique" json:"game_provider"`
	Currency        string          `gorm:"size:8" json:"currency"`
	ExchangeRate    decimal.Decimal `gorm:"type:numeric(18,6)" json:"exchange_rate"`
	TotalGGR        decimal.Decimal `gorm:"type:numeric(18,2)" json:"total_ggr"`
	ShareAmount     decimal.Decimal `gorm:"type:numeric(18,2)" json:"share_amount"`
	SharePercentage decimal.Decimal `gorm:"type:numeric(8,4)" json:"share_percentage"`
	PlatformFee     decimal.Decimal `gorm:"type:numeric(18,2)" json:"platform_fee"`
	Adjustments     decimal.Decimal `gorm:"type:numeric(18,2)" json:"adjustments"`
	FinalAmount     decimal.Decimal `gorm:"type:numeric(18,2)" json:"final_amount"`
	DueDate         time.Time       `json:"due_date"`
	Status          string          `gorm:"size:16;index;default:Unpaid" json:"status"`
}
