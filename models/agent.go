package models

import "gorm.io/gorm"

type Agent struct {
	gorm.Model

	Username  string `gorm:"uniqueIndex;size:32" json:"username"`
	AgentCode string `gorm:"uniqueIndex;size:32" json:"agent_code"`
	SecretKey string `gorm:"size:128" json:"secret_key"`
	ParentID  *uint  `gorm:"index" json:"parent_id"`
	Currency  string `gorm:"size:8" json:"currency"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`

	Wallets []AgentWallet `gorm:"foreignKey:AgentID"`
}
