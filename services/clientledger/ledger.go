package clientledger

import (
	"errors"

	"poinadmin/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockClient takes the row lock that serializes all ledger mutations
// for one client. Every mutating unit of work goes through here first.
func lockClient(tx *gorm.DB, clientID uint) (models.Client, error) {
	var client models.Client
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&client, clientID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return client, ErrClientNotFound
	}
	return client, err
}

// currentBalance reads the running balance as the balance_after of the
// latest ledger row. The client row itself carries no balance field, so
// there is nothing to drift out of sync.
func currentBalance(tx *gorm.DB, clientID uint) (decimal.Decimal, error) {
	var last models.ClientTransaction
	err := tx.Where("client_id = ?", clientID).
		Order("id DESC").First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return last.BalanceAfter, nil
}

type entryMeta struct {
	Remarks          string
	ReferenceNumber  string
	PaymentMethod    string
	RelatedBillingID *uint
	DepositKind      string
	DepositAmount    decimal.Decimal
}

// applyEntry appends one immutable ledger row for the client. Amount is
// signed: negative for charges, positive for payments. Must run inside
// a transaction holding the client row lock.
func applyEntry(tx *gorm.DB, client models.Client, trxType string, amount decimal.Decimal, meta entryMeta) (models.ClientTransaction, error) {
	before, err := currentBalance(tx, client.ID)
	if err != nil {
		return models.ClientTransaction{}, err
	}

	entry := buildEntry(client, trxType, amount, before, meta)
	if err := tx.Create(&entry).Error; err != nil {
		return models.ClientTransaction{}, err
	}
	return entry, nil
}

// buildEntry constructs the immutable row so that balance_after is
// always balance_before plus the signed amount.
func buildEntry(client models.Client, trxType string, amount, before decimal.Decimal, meta entryMeta) models.ClientTransaction {
	return models.ClientTransaction{
		ClientID:         client.ID,
		ClientCode:       client.ClientCode,
		TrxType:          trxType,
		Amount:           amount,
		BalanceBefore:    before,
		BalanceAfter:     before.Add(amount),
		Currency:         client.Currency,
		Remarks:          meta.Remarks,
		ReferenceNumber:  meta.ReferenceNumber,
		PaymentMethod:    meta.PaymentMethod,
		RelatedBillingID: meta.RelatedBillingID,
		DepositKind:      meta.DepositKind,
		DepositAmount:    meta.DepositAmount,
	}
}

// DisableClient is the explicit soft-disable transition. Ledger history
// stays untouched; the client just stops accepting new obligations.
func DisableClient(db *gorm.DB, clientID uint) (models.Client, error) {
	var client models.Client
	if err := db.First(&client, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return client, ErrClientNotFound
		}
		return client, err
	}

	client.Status = models.ClientStatusInactive
	if err := db.Save(&client).Error; err != nil {
		return client, err
	}
	return client, nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}
