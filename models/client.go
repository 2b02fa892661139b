package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
)

const (
	DepositKindSecurity   = "security"
	DepositKindAdditional = "additional"
)

type Client struct {
	gorm.Model

	ClientCode string `gorm:"uniqueIndex;size:32" json:"client_code"`
	Name       string `gorm:"size:128" json:"name"`
	Country    string `gorm:"size:64" json:"country"`
	Currency   string `gorm:"size:8" json:"currency"`
	Status     string `gorm:"size:16;default:active" json:"status"`

	Deposits     []ClientDeposit     `gorm:"foreignKey:ClientID"`
	Billings     []ClientBilling     `gorm:"foreignKey:ClientID"`
	Transactions []ClientTransaction `gorm:"foreignKey:ClientID"`
}

// ClientDeposit tracks one deposit requirement (security or additional)
// for a client. Rows are created lazily on the first charge or payment
// touching that kind.
type ClientDeposit struct {
	gorm.Model

	ClientID        uint            `gorm:"index:idx_client_deposit_kind,unique"`
	Kind            string          `gorm:"size:16;index:idx_client_deposit_kind,unique"`
	Required        decimal.Decimal `gorm:"type:numeric(18,2)" json:"required"`
	Paid            decimal.Decimal `gorm:"type:numeric(18,2)" json:"paid"`
	Currency        string          `gorm:"size:8" json:"currency"`
	LastDepositDate *time.Time      `json:"last_deposit_date"`
}

// Shortfall is required minus paid, floored at zero.
func (d ClientDeposit) Shortfall() decimal.Decimal {
	s := d.Required.Sub(d.Paid)
	if s.IsNegative() {
		return decimal.Zero
	}
	return s
}
