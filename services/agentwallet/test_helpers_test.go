package agentwallet

import (
	"testing"

	"poinadmin/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory database pinned to a single connection
// so every query in a test sees the same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(
		&models.Agent{},
		&models.AgentWallet{},
		&models.WalletTransaction{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func seedAgentPair(t *testing.T, db *gorm.DB) (models.Agent, models.Agent) {
	t.Helper()

	master := models.Agent{Username: "master", AgentCode: "0aaa", Currency: "USD", IsActive: true}
	if err := db.Create(&master).Error; err != nil {
		t.Fatalf("seed master: %v", err)
	}

	sub := models.Agent{Username: "sub", AgentCode: "0bbb", ParentID: &master.ID, Currency: "USD", IsActive: true}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatalf("seed sub: %v", err)
	}

	return master, sub
}

func seedWallet(t *testing.T, db *gorm.DB, agentID uint, balance decimal.Decimal) models.AgentWallet {
	t.Helper()

	wallet := models.AgentWallet{
		AgentID:    agentID,
		WalletType: models.WalletTypeTransfer,
		Balance:    balance,
		Currency:   "USD",
		TopupRate:  decimal.NewFromInt(100),
	}
	if err := db.Create(&wallet).Error; err != nil {
		t.Fatalf("seed wallet: %v", err)
	}
	return wallet
}

func reloadWallet(t *testing.T, db *gorm.DB, id uint) models.AgentWallet {
	t.Helper()

	var wallet models.AgentWallet
	if err := db.First(&wallet, id).Error; err != nil {
		t.Fatalf("reload wallet %d: %v", id, err)
	}
	return wallet
}

func countWalletTransactions(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var n int64
	if err := db.Model(&models.WalletTransaction{}).Count(&n).Error; err != nil {
		t.Fatalf("count transactions: %v", err)
	}
	return n
}
