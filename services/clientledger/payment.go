package clientledger

import (
	"errors"
	"strconv"
	"time"

	"poinadmin/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentInput struct {
	Amount           decimal.Decimal `json:"amount"`
	PaymentMethod    string          `json:"payment_method"`
	DepositPayment   bool            `json:"deposit_payment"`
	DepositKind      string          `json:"deposit_kind"`
	DepositAmount    decimal.Decimal `json:"deposit_amount"`
	RelatedBillingID string          `json:"related_billing_id"`
	Remarks          string          `json:"remarks"`
}

// RecordPayment resolves where the payment applies and posts it in one
// unit of work: deposit paid fields, the Payment ledger entry, and the
// billing status refresh commit together or roll back together.
//
// The full amount is credited to the running balance. A payment larger
// than the balance owed leaves the client with a credit balance; no
// remainder is discarded.
func RecordPayment(db *gorm.DB, clientID uint, in PaymentInput) (*models.ClientTransaction, error) {
	if err := validateAmount(in.Amount); err != nil {
		return nil, err
	}

	var entry models.ClientTransaction

	err := db.Transaction(func(tx *gorm.DB) error {
		client, err := lockClient(tx, clientID)
		if err != nil {
			return err
		}

		state, err := loadAccountState(tx, client.ID, in.RelatedBillingID)
		if err != nil {
			return err
		}

		alloc, err := ResolveAllocation(state, PaymentRequest{
			Amount:         in.Amount,
			DepositPayment: in.DepositPayment,
			DepositKind:    in.DepositKind,
			DepositAmount:  in.DepositAmount,
			HasBillingRef:  in.RelatedBillingID != "",
		})
		if err != nil {
			return err
		}

		if alloc.DepositAmount.IsPositive() {
			if err := settleDepositPayment(tx, client.ID, alloc.DepositKind, alloc.DepositAmount, time.Now()); err != nil {
				return err
			}
		}

		entry, err = applyEntry(tx, client, models.ClientTrxPayment, in.Amount, entryMeta{
			Remarks:          in.Remarks,
			ReferenceNumber:  uuid.New().String(),
			PaymentMethod:    in.PaymentMethod,
			RelatedBillingID: alloc.BillingID,
			DepositKind:      alloc.DepositKind,
			DepositAmount:    alloc.DepositAmount,
		})
		if err != nil {
			return err
		}

		if alloc.BillingID != nil {
			return refreshBillingStatus(tx, state.Billing)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// loadAccountState gathers everything the allocation rules need, inside
// the locked transaction.
func loadAccountState(tx *gorm.DB, clientID uint, billingRef string) (AccountState, error) {
	state := AccountState{ClientID: clientID}

	var deposits []models.ClientDeposit
	if err := tx.Where("client_id = ?", clientID).Find(&deposits).Error; err != nil {
		return state, err
	}
	for _, dep := range deposits {
		switch dep.Kind {
		case models.DepositKindSecurity:
			state.SecurityShortfall = dep.Shortfall()
		case models.DepositKindAdditional:
			state.AdditionalShortfall = dep.Shortfall()
		}
	}

	var unpaid int64
	err := tx.Model(&models.ClientBilling{}).
		Where("client_id = ? AND status <> ?", clientID, models.BillingStatusPaid).
		Count(&unpaid).Error
	if err != nil {
		return state, err
	}
	state.HasUnpaidBillings = unpaid > 0

	if billingRef != "" {
		billingID, err := strconv.ParseUint(billingRef, 10, 64)
		if err != nil {
			return state, ErrInvalidBillingReference
		}

		var billing models.ClientBilling
		err = tx.First(&billing, uint(billingID)).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return state, ErrInvalidBillingReference
		}
		if err != nil {
			return state, err
		}
		state.Billing = &billing
	}

	return state, nil
}
