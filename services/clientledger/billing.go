package clientledger

import (
	"errors"
	"fmt"
	"time"

	"poinadmin/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BillingInput struct {
	Month           string          `json:"month"`
	GameProvider    string          `json:"game_provider"`
	Currency        string          `json:"currency"`
	ExchangeRate    decimal.Decimal `json:"exchange_rate"`
	TotalGGR        decimal.Decimal `json:"total_ggr"`
	ShareAmount     decimal.Decimal `json:"share_amount"`
	SharePercentage decimal.Decimal `json:"share_percentage"`
	PlatformFee     decimal.Decimal `json:"platform_fee"`
	Adjustments     decimal.Decimal `json:"adjustments"`
	DueDate         *time.Time      `json:"due_date"`
}

// finalAmount is what the client actually owes for the period.
func finalAmount(share, platformFee, adjustments decimal.Decimal) decimal.Decimal {
	return share.Sub(platformFee).Add(adjustments)
}

// defaultDueDate falls on the 15th of the month after the billing
// period.
func defaultDueDate(month time.Time) time.Time {
	return time.Date(month.Year(), month.Month()+1, 15, 0, 0, 0, 0, time.UTC)
}

// CreateBilling posts one monthly obligation: the billing row and its
// Share Due ledger entry commit together or not at all.
func CreateBilling(db *gorm.DB, clientID uint, in BillingInput) (*models.ClientBilling, error) {
	period, err := time.Parse("2006-01", in.Month)
	if err != nil {
		return nil, fmt.Errorf("%w: month must be YYYY-MM", ErrInvalidMonth)
	}
	if err := validateAmount(in.ShareAmount); err != nil {
		return nil, err
	}
	if in.PlatformFee.IsNegative() {
		return nil, ErrInvalidAmount
	}

	final := finalAmount(in.ShareAmount, in.PlatformFee, in.Adjustments)
	if !final.IsPositive() {
		return nil, ErrInvalidAmount
	}

	dueDate := defaultDueDate(period)
	if in.DueDate != nil {
		dueDate = *in.DueDate
	}

	var billing models.ClientBilling

	err = db.Transaction(func(tx *gorm.DB) error {
		client, err := lockClient(tx, clientID)
		if err != nil {
			return err
		}
		if client.Status != models.ClientStatusActive {
			return ErrClientNotFound
		}

		var existing models.ClientBilling
		err = tx.Where("client_id = ? AND month = ? AND game_provider = ?",
			clientID, in.Month, in.GameProvider).First(&existing).Error
		if err == nil {
			return ErrDuplicateBilling
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		currency := in.Currency
		if currency == "" {
			currency = client.Currency
		}

		billing = models.ClientBilling{
			ClientID:        clientID,
			Month:           in.Month,
			GameProvider:    in.GameProvider,
			Currency:        currency,
			ExchangeRate:    in.ExchangeRate,
			TotalGGR:        in.TotalGGR,
			ShareAmount:     in.ShareAmount,
			SharePercentage: in.SharePercentage,
			PlatformFee:     in.PlatformFee,
			Adjustments:     in.Adjustments,
			FinalAmount:     final,
			DueDate:         dueDate,
			Status:          models.BillingStatusUnpaid,
		}
		if err := tx.Create(&billing).Error; err != nil {
			return err
		}

		_, err = applyEntry(tx, client, models.ClientTrxShareDue, final.Neg(), entryMeta{
			Remarks:          "Share due " + in.Month + " " + in.GameProvider,
			ReferenceNumber:  uuid.New().String(),
			RelatedBillingID: &billing.ID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return &billing, nil
}

// deriveBillingStatus recomputes a billing's status from the payments
// associated with it so far.
func deriveBillingStatus(final, paid decimal.Decimal) string {
	switch {
	case paid.GreaterThanOrEqual(final):
		return models.BillingStatusPaid
	case paid.IsPositive():
		return models.BillingStatusPartiallyPaid
	default:
		return models.BillingStatusUnpaid
	}
}

// refreshBillingStatus re-derives the status after a payment was linked
// to the billing. Runs inside the payment's transaction. Only the slice
// of each payment not tagged to a deposit counts toward the billing; a
// 1500 payment with 1000 allocated to a deposit covers 500 of it.
func refreshBillingStatus(tx *gorm.DB, billing *models.ClientBilling) error {
	var paid decimal.Decimal
	err := tx.Model(&models.ClientTransaction{}).
		Where("related_billing_id = ? AND trx_type = ?", billing.ID, models.ClientTrxPayment).
		Select("COALESCE(SUM(amount - deposit_amount), 0)").Scan(&paid).Error
	if err != nil {
		return err
	}

	billing.Status = deriveBillingStatus(billing.FinalAmount, paid)
	return tx.Model(billing).Update("status", billing.Status).Error
}

// ListOverdueBillings returns unpaid or partially paid billings whose
// due date has passed.
func ListOverdueBillings(db *gorm.DB, asOf time.Time) ([]models.ClientBilling, error) {
	var overdue []models.ClientBilling
	err := db.Where("status <> ? AND due_date < ?", models.BillingStatusPaid, asOf).
		Order("due_date ASC").Find(&overdue).Error
	return overdue, err
}
