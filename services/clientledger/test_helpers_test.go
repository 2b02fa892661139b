package clientledger

import (
	"testing"

	"poinadmin/models"

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
		&models.Client{},
		&models.ClientDeposit{},
		&models.ClientBilling{},
		&models.ClientTransaction{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func seedTestClient(t *testing.T, db *gorm.DB) models.Client {
	t.Helper()

	client := models.Client{
		ClientCode: "c7test",
		Name:       "Operator Seven",
		Currency:   "USD",
		Status:     models.ClientStatusActive,
	}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return client
}

func countClientTransactions(t *testing.T, db *gorm.DB, clientID uint) int64 {
	t.Helper()

	var n int64
	err := db.Model(&models.ClientTransaction{}).
		Where("client_id = ?", clientID).Count(&n).Error
	if err != nil {
		t.Fatalf("count transactions: %v", err)
	}
	return n
}

func reloadBilling(t *testing.T, db *gorm.DB, id uint) models.ClientBilling {
	t.Helper()

	var billing models.ClientBilling
	if err := db.First(&billing, id).Error; err != nil {
		t.Fatalf("reload billing %d: %v", id, err)
	}
	return billing
}
