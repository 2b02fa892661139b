package clientledger

import (
	"errors"
	"time"

	"poinadmin/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ChargeInput struct {
	TrxType     string          `json:"trx_type"`
	Amount      decimal.Decimal `json:"amount"`
	DepositKind string          `json:"deposit_kind"`
	Remarks     string          `json:"remarks"`
}

func validChargeType(trxType string) bool {
	switch trxType {
	case models.ClientTrxDeposit, models.ClientTrxPenalty, models.ClientTrxAdjustment:
		return true
	}
	return false
}

func validDepositKind(kind string) bool {
	return kind == models.DepositKindSecurity || kind == models.DepositKindAdditional
}

// AddCharge posts a charge against the client: one negative ledger
// entry, plus a bump of the deposit requirement when the charge is a
// deposit. Share Due charges only ever come from CreateBilling.
func AddCharge(db *gorm.DB, clientID uint, in ChargeInput) (*models.ClientTransaction, error) {
	if !validChargeType(in.TrxType) {
		return nil, ErrInvalidChargeType
	}
	if err := validateAmount(in.Amount); err != nil {
		return nil, err
	}
	if in.TrxType == models.ClientTrxDeposit && !validDepositKind(in.DepositKind) {
		return nil, ErrInvalidDepositKind
	}

	var entry models.ClientTransaction

	err := db.Transaction(func(tx *gorm.DB) error {
		client, err := lockClient(tx, clientID)
		if err != nil {
			return err
		}
		if client.Status != models.ClientStatusActive {
			return ErrClientNotFound
		}

		if in.TrxType == models.ClientTrxDeposit {
			if err := raiseDepositRequirement(tx, client, in.DepositKind, in.Amount); err != nil {
				return err
			}
		}

		entry, err = applyEntry(tx, client, in.TrxType, in.Amount.Neg(), entryMeta{
			Remarks:         in.Remarks,
			ReferenceNumber: uuid.New().String(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// raiseDepositRequirement lazily creates the deposit sub-ledger for the
// kind on first use, then raises what the client must keep on deposit.
func raiseDepositRequirement(tx *gorm.DB, client models.Client, kind string, amount decimal.Decimal) error {
	var dep models.ClientDeposit
	err := tx.Where("client_id = ? AND kind = ?", client.ID, kind).First(&dep).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		dep = models.ClientDeposit{
			ClientID: client.ID,
			Kind:     kind,
			Required: amount,
			Paid:     decimal.Zero,
			Currency: client.Currency,
		}
		return tx.Create(&dep).Error
	}
	if err != nil {
		return err
	}

	dep.Required = dep.Required.Add(amount)
	return tx.Save(&dep).Error
}

// settleDepositPayment applies the allocated slice of a payment to the
// deposit sub-ledger. Runs inside the payment's transaction.
func settleDepositPayment(tx *gorm.DB, clientID uint, kind string, amount decimal.Decimal, when time.Time) error {
	var dep models.ClientDeposit
	err := tx.Where("client_id = ? AND kind = ?", clientID, kind).First(&dep).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No requirement on record means shortfall zero; the resolver
		// rejects that before we get here.
		return ErrDepositOverAllocation
	}
	if err != nil {
		return err
	}

	dep.Paid = dep.Paid.Add(amount)
	dep.LastDepositDate = &when
	return tx.Save(&dep).Error
}
