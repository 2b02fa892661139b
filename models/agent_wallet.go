package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	WalletTypeSeamless = "seamless"
	WalletTypeTransfer = "transfer"
	WalletTypeHoldem   = "holdem"
)

const (
	WalletTrxDeposit     = "deposit"
	WalletTrxWithdraw    = "withdraw"
	WalletTrxAdjustment  = "adjustment"
	WalletTrxProviderFee = "provider_fee"
	WalletTrxSettlement  = "settlement"
	WalletTrxTransferIn  = "transfer_in"
	WalletTrxTransferOut = "transfer_out"
)

// WalletTypes lists the supported wallet types in creation order.
var WalletTypes = []string{WalletTypeSeamless, WalletTypeTransfer, WalletTypeHoldem}

// AgentWallet caches its balance on the row; every mutation writes the
// new balance together with a WalletTransaction inside one tx.
type AgentWallet struct {
	gorm.Model

	AgentID    uint            `gorm:"index:idx_agent_wallet,unique" json:"agent_id"`
	ClientID   *uint           `gorm:"index:idx_agent_wallet,unique" json:"client_id"`
	WalletType string          `gorm:"size:16;index:idx_agent_wallet,unique" json:"wallet_type"`
	Balance    decimal.Decimal `gorm:"type:numeric(18,2)" json:"balance"`
	Currency   string          `gorm:"size:8" json:"currency"`
	TopupRate  decimal.Decimal `gorm:"type:numeric(8,4);default:100" json:"topup_rate"`

	Transactions []WalletTransaction `gorm:"foreignKey:WalletID"`
}

type WalletTransaction struct {
	gorm.Model

	WalletID      uint            `gorm:"index"`
	AgentID       uint            `gorm:"index"`
	TrxType       string          `gorm:"size:16;index" json:"trx_type"`
	Amount        decimal.Decimal `gorm:"type:numeric(18,2)" json:"amount"`
	BalanceBefore decimal.Decimal `gorm:"type:numeric(18,2)" json:"balance_before"`
	BalanceAfter  decimal.Decimal `gorm:"type:numeric(18,2)" json:"balance_after"`
	Currency      string          `gorm:"size:8" json:"currency"`
	ReferenceID   string          `gorm:"size:64;index" json:"reference_id"`
	Metadata      datatypes.JSON  `gorm:"type:jsonb" json:"metadata"`
}
