package agentwallet

import (
	"errors"
	"strconv"

	"poinadmin/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TopupInput struct {
	SubAgentID uint            `json:"sub_agent_id"`
	ClientID   *uint           `json:"client_id"`
	WalletType string          `json:"wallet_type"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note"`
}

// validateTopupAgents enforces the hierarchy rule: a master may only
// top up its direct sub-agents, never itself.
func validateTopupAgents(master, sub models.Agent) error {
	if master.ID == sub.ID {
		return ErrSelfTopupForbidden
	}
	if sub.ParentID == nil || *sub.ParentID != master.ID {
		return ErrNotDirectSubAgent
	}
	return nil
}

// lockOrder fixes the locking sequence for a two-wallet transfer:
// ascending wallet id, so two concurrent transfers over the same pair
// cannot deadlock.
func lockOrder(a, b *models.AgentWallet) (*models.AgentWallet, *models.AgentWallet) {
	if a.ID <= b.ID {
		return a, b
	}
	return b, a
}

// Topup moves funds from a master agent's wallet to a direct
// sub-agent's wallet of the same type. Both balance writes and both
// transfer rows commit atomically; the sub wallet is created lazily on
// first top-up.
func Topup(db *gorm.DB, masterAgentID uint, in TopupInput) (*models.AgentWallet, error) {
	if !validWalletType(in.WalletType) {
		return nil, ErrInvalidWalletType
	}
	if err := validateAmount(in.Amount); err != nil {
		return nil, err
	}

	var master, sub models.Agent
	if err := db.Where("is_active = true").First(&master, masterAgentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAgentNotFound
		}
		return nil, err
	}
	if err := db.Where("is_active = true").First(&sub, in.SubAgentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAgentNotFound
		}
		return nil, err
	}
	if err := validateTopupAgents(master, sub); err != nil {
		return nil, err
	}

	var subWallet models.AgentWallet

	err := db.Transaction(func(tx *gorm.DB) error {
		masterWallet, err := walletRowNoLock(tx, master.ID, in.ClientID, in.WalletType)
		if errors.Is(err, ErrWalletNotFound) {
			// A master without a wallet of this type has nothing to
			// send; treat it as a zero balance.
			return ErrInsufficientBalance
		}
		if err != nil {
			return err
		}

		subW, err := findOrCreateWallet(tx, sub.ID, in.ClientID, in.WalletType)
		if err != nil {
			return err
		}

		first, second := lockOrder(&masterWallet, &subW)
		for _, w := range []*models.AgentWallet{first, second} {
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(w, w.ID).Error; err != nil {
				return err
			}
		}

		if masterWallet.Balance.LessThan(in.Amount) {
			return ErrInsufficientBalance
		}

		refID := uuid.New().String()

		_, err = applyWalletEntry(tx, &masterWallet, models.WalletTrxTransferOut, in.Amount.Neg(), refID,
			metadataJSON(map[string]any{
				"counterpart_agent_id": strconv.FormatUint(uint64(sub.ID), 10),
				"note":                 in.Note,
			}))
		if err != nil {
			return err
		}

		_, err = applyWalletEntry(tx, &subW, models.WalletTrxTransferIn, in.Amount, refID,
			metadataJSON(map[string]any{
				"counterpart_agent_id": strconv.FormatUint(uint64(master.ID), 10),
				"note":                 in.Note,
			}))
		if err != nil {
			return err
		}

		subWallet = subW
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &subWallet, nil
}

// walletRowNoLock loads a wallet without locking; Topup re-reads both
// rows under lock in fixed order before touching balances.
func walletRowNoLock(tx *gorm.DB, agentID uint, clientID *uint, walletType string) (models.AgentWallet, error) {
	var wallet models.AgentWallet
	err := walletScope(tx, agentID, clientID, walletType).First(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return wallet, ErrWalletNotFound
	}
	return wallet, err
}
