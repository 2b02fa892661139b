package clientledger

import (
	"errors"
	"time"

	"poinadmin/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountSummary is a pure projection over the transaction log and
// billing/deposit tables. Recomputing it never mutates anything, and an
// empty log yields the zero summary.
type AccountSummary struct {
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	BillingDue         decimal.Decimal `json:"billing_due"`
	DepositDue         decimal.Decimal `json:"deposit_due"`
	TotalDue           decimal.Decimal `json:"total_due"`
	PaidThisMonth      decimal.Decimal `json:"paid_this_month"`
}

// totalDue floors at zero: credit balances never show as negative dues.
func totalDue(billingDue, depositDue decimal.Decimal) decimal.Decimal {
	total := billingDue.Add(depositDue)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

func monthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

func depositDue(deposits []models.ClientDeposit) decimal.Decimal {
	due := decimal.Zero
	for _, dep := range deposits {
		due = due.Add(dep.Shortfall())
	}
	return due
}

// Summarize recomputes the due figures with aggregation queries; it
// never folds over a loaded transaction list.
func Summarize(db *gorm.DB, clientID uint) (AccountSummary, error) {
	var summary AccountSummary

	var exists models.Client
	if err := db.First(&exists, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return summary, ErrClientNotFound
		}
		return summary, err
	}

	// Charges count as positive owed amounts; payments reduce them.
	var charges decimal.Decimal
	err := db.Model(&models.ClientTransaction{}).
		Where("client_id = ? AND trx_type <> ?", clientID, models.ClientTrxPayment).
		Select("COALESCE(SUM(ABS(amount)), 0)").Scan(&charges).Error
	if err != nil {
		return summary, err
	}

	var payments decimal.Decimal
	err = db.Model(&models.ClientTransaction{}).
		Where("client_id = ? AND trx_type = ?", clientID, models.ClientTrxPayment).
		Select("COALESCE(SUM(amount), 0)").Scan(&payments).Error
	if err != nil {
		return summary, err
	}
	summary.OutstandingBalance = charges.Sub(payments)

	err = db.Model(&models.ClientBilling{}).
		Where("client_id = ? AND status <> ?", clientID, models.BillingStatusPaid).
		Select("COALESCE(SUM(final_amount), 0)").Scan(&summary.BillingDue).Error
	if err != nil {
		return summary, err
	}

	var deposits []models.ClientDeposit
	if err := db.Where("client_id = ?", clientID).Find(&deposits).Error; err != nil {
		return summary, err
	}
	summary.DepositDue = depositDue(deposits)
	summary.TotalDue = totalDue(summary.BillingDue, summary.DepositDue)

	err = db.Model(&models.ClientTransaction{}).
		Where("client_id = ? AND trx_type = ? AND created_at >= ?",
			clientID, models.ClientTrxPayment, monthStart(time.Now())).
		Select("COALESCE(SUM(amount), 0)").Scan(&summary.PaidThisMonth).Error
	if err != nil {
		return summary, err
	}

	return summary, nil
}

// AccountSnapshot is what the operator panel renders for one client.
type AccountSnapshot struct {
	Client       models.Client              `json:"client"`
	Balance      decimal.Decimal            `json:"balance"`
	Summary      AccountSummary             `json:"summary"`
	Deposits     []models.ClientDeposit     `json:"deposits"`
	Billings     []models.ClientBilling     `json:"billings"`
	Transactions []models.ClientTransaction `json:"transactions"`
}

const snapshotHistoryLimit = 50

// Snapshot reads the client's full account view: running balance, due
// summary, deposits, billings and recent ledger history.
func Snapshot(db *gorm.DB, clientID uint) (*AccountSnapshot, error) {
	var snap AccountSnapshot

	if err := db.First(&snap.Client, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	balance, err := currentBalance(db, clientID)
	if err != nil {
		return nil, err
	}
	snap.Balance = balance

	snap.Summary, err = Summarize(db, clientID)
	if err != nil {
		return nil, err
	}

	if err := db.Where("client_id = ?", clientID).Find(&snap.Deposits).Error; err != nil {
		return nil, err
	}
	if err := db.Where("client_id = ?", clientID).Order("month DESC").Find(&snap.Billings).Error; err != nil {
		return nil, err
	}
	err = db.Where("client_id = ?", clientID).
		Order("id DESC").Limit(snapshotHistoryLimit).
		Find(&snap.Transactions).Error
	if err != nil {
		return nil, err
	}

	return &snap, nil
}
