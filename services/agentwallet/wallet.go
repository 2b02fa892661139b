package agentwallet

import (
	"encoding/json"
	"errors"

	"poinadmin/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultWalletCurrency = "USD"

func validWalletType(walletType string) bool {
	for _, t := range models.WalletTypes {
		if t == walletType {
			return true
		}
	}
	return false
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

func walletScope(db *gorm.DB, agentID uint, clientID *uint, walletType string) *gorm.DB {
	q := db.Where("agent_id = ? AND wallet_type = ?", agentID, walletType)
	if clientID != nil {
		return q.Where("client_id = ?", *clientID)
	}
	return q.Where("client_id IS NULL")
}

// lockWallet loads the wallet row FOR UPDATE. Bare credit/debit never
// creates wallets; only top-up and the balance read do.
func lockWallet(tx *gorm.DB, agentID uint, clientID *uint, walletType string) (models.AgentWallet, error) {
	var wallet models.AgentWallet
	err := walletScope(tx.Clauses(clause.Locking{Strength: "UPDATE"}), agentID, clientID, walletType).
		First(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return wallet, ErrWalletNotFound
	}
	return wallet, err
}

func findOrCreateWallet(tx *gorm.DB, agentID uint, clientID *uint, walletType string) (models.AgentWallet, error) {
	var wallet models.AgentWallet
	err := walletScope(tx, agentID, clientID, walletType).First(&wallet).Error
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return wallet, err
	}

	wallet = models.AgentWallet{
		AgentID:    agentID,
		ClientID:   clientID,
		WalletType: walletType,
		Balance:    decimal.Zero,
		Currency:   defaultWalletCurrency,
		TopupRate:  decimal.NewFromInt(100),
	}
	if err := tx.Create(&wallet).Error; err != nil {
		return wallet, err
	}
	return wallet, nil
}

// applyWalletEntry mutates the cached balance and appends the matching
// immutable wallet transaction. Delta is signed; the wallet row must
// already be locked. A debit below zero is refused here as the final
// guard.
func applyWalletEntry(tx *gorm.DB, wallet *models.AgentWallet, trxType string, delta decimal.Decimal, refID string, metadata datatypes.JSON) (models.WalletTransaction, error) {
	before := wallet.Balance
	after := before.Add(delta)
	if after.IsNegative() {
		return models.WalletTransaction{}, ErrInsufficientBalance
	}

	wallet.Balance = after
	if err := tx.Save(wallet).Error; err != nil {
		return models.WalletTransaction{}, err
	}

	entry := models.WalletTransaction{
		WalletID:      wallet.ID,
		AgentID:       wallet.AgentID,
		TrxType:       trxType,
		Amount:        delta.Abs(),
		BalanceBefore: before,
		BalanceAfter:  after,
		Currency:      wallet.Currency,
		ReferenceID:   refID,
		Metadata:      metadata,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return models.WalletTransaction{}, err
	}
	return entry, nil
}

func metadataJSON(fields map[string]any) datatypes.JSON {
	if len(fields) == 0 {
		return nil
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func validCreditType(trxType string) bool {
	switch trxType {
	case models.WalletTrxDeposit, models.WalletTrxAdjustment, models.WalletTrxSettlement:
		return true
	}
	return false
}

func validDebitType(trxType string) bool {
	switch trxType {
	case models.WalletTrxWithdraw, models.WalletTrxAdjustment,
		models.WalletTrxProviderFee, models.WalletTrxSettlement:
		return true
	}
	return false
}

type MovementInput struct {
	ClientID   *uint           `json:"client_id"`
	WalletType string          `json:"wallet_type"`
	Amount     decimal.Decimal `json:"amount"`
	// TrxType optionally overrides the default deposit/withdraw type
	// for external settlement postings.
	TrxType string `json:"trx_type"`
	Note    string `json:"note"`
}

// Credit adds funds to an existing wallet.
func Credit(db *gorm.DB, agentID uint, in MovementInput) (*models.AgentWallet, *models.WalletTransaction, error) {
	trxType := in.TrxType
	if trxType == "" {
		trxType = models.WalletTrxDeposit
	}
	if !validCreditType(trxType) {
		return nil, nil, ErrInvalidTrxType
	}
	return move(db, agentID, in, trxType, false)
}

// Debit removes funds from an existing wallet; fails before any write
// when the balance does not cover the amount.
func Debit(db *gorm.DB, agentID uint, in MovementInput) (*models.AgentWallet, *models.WalletTransaction, error) {
	trxType := in.TrxType
	if trxType == "" {
		trxType = models.WalletTrxWithdraw
	}
	if !validDebitType(trxType) {
		return nil, nil, ErrInvalidTrxType
	}
	return move(db, agentID, in, trxType, true)
}

func move(db *gorm.DB, agentID uint, in MovementInput, trxType string, debit bool) (*models.AgentWallet, *models.WalletTransaction, error) {
	if !validWalletType(in.WalletType) {
		return nil, nil, ErrInvalidWalletType
	}
	if err := validateAmount(in.Amount); err != nil {
		return nil, nil, err
	}

	var (
		wallet models.AgentWallet
		entry  models.WalletTransaction
	)

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		wallet, err = lockWallet(tx, agentID, in.ClientID, in.WalletType)
		if err != nil {
			return err
		}

		delta := in.Amount
		if debit {
			if wallet.Balance.LessThan(in.Amount) {
				return ErrInsufficientBalance
			}
			delta = in.Amount.Neg()
		}

		entry, err = applyWalletEntry(tx, &wallet, trxType, delta, uuid.New().String(),
			metadataJSON(map[string]any{"note": in.Note}))
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return &wallet, &entry, nil
}

// Balances makes sure every supported wallet type exists for the agent
// and returns type → balance.
func Balances(db *gorm.DB, agentID uint, clientID *uint) (map[string]decimal.Decimal, error) {
	balances := make(map[string]decimal.Decimal, len(models.WalletTypes))

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, walletType := range models.WalletTypes {
			wallet, err := findOrCreateWallet(tx, agentID, clientID, walletType)
			if err != nil {
				return err
			}
			balances[wallet.WalletType] = wallet.Balance
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return balances, nil
}

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// clampPage normalizes limit/offset for transaction listings.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ListTransactions pages through a wallet's history, newest first.
func ListTransactions(db *gorm.DB, agentID uint, clientID *uint, walletType string, limit, offset int) ([]models.WalletTransaction, error) {
	if !validWalletType(walletType) {
		return nil, ErrInvalidWalletType
	}

	var wallet models.AgentWallet
	err := walletScope(db, agentID, clientID, walletType).First(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWalletNotFound
	}
	if err != nil {
		return nil, err
	}

	limit, offset = clampPage(limit, offset)

	var entries []models.WalletTransaction
	err = db.Where("wallet_id = ?", wallet.ID).
		Order("id DESC").Limit(limit).Offset(offset).
		Find(&entries).Error
	return entries, err
}
